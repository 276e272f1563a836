package tictactoe

import (
	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
)

// Achievements returns the tic-tac-toe catalog, shared by both modes.
// Wins by the computer never count.
func Achievements() []achievement.Definition {
	return []achievement.Definition{
		{ID: "first_win_x", Name: "X Factor", Description: "Win a game as X", Condition: achievement.FirstOccurrence(EventWinX)},
		{ID: "first_win_o", Name: "O-mazing Victory", Description: "Win a game as O", Condition: achievement.FirstOccurrence(EventWinO)},
		{ID: "first_ai_win", Name: "Bot Slayer", Description: "Beat the computer", Condition: achievement.FirstOccurrence(EventAIWin)},
		{ID: "sound_toggler", Name: "Sound Master", Description: "Toggle sound 5 times", Condition: achievement.EventCount(core.EventSoundToggled, 5)},
	}
}
