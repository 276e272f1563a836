package hangman

import (
	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
)

// Achievements returns the hangman achievement catalog.
func Achievements() []achievement.Definition {
	return []achievement.Definition{
		{ID: "first_hangman_win", Name: "Freedom!", Description: "Win one Hangman game", Condition: achievement.FirstOccurrence(core.EventWin)},
		{ID: "win_5_hangman_games", Name: "Word Master", Description: "Win 5 Hangman games", Condition: achievement.EventCount(core.EventWin, 5)},
		{ID: "guess_all_vowels", Name: "Vowel Expert", Description: "Guess all vowels (A, E, I, O, U) in one game", Condition: achievement.FirstOccurrence(EventAllVowels)},
		{ID: "no_wrong_guesses", Name: "Perfect Guess", Description: "Win a game without any wrong guesses", Condition: achievement.FirstOccurrence(EventFlawless)},
		{ID: "sound_toggler_hangman", Name: "Sound Maestro", Description: "Toggle sound 5 times", Condition: achievement.EventCount(core.EventSoundToggled, 5)},
	}
}
