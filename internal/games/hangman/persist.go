package hangman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/parlor/internal/core"
)

const (
	keyWord       = "hangman_selectedWord"
	keyGuessed    = "hangman_guessedLetters"
	keyWrongCount = "hangman_wrongGuessesCount"
	keyActive     = "hangman_gameActive"
	keyCategory   = "hangman_category"
)

// Save stores the round in progress.
func (g *Game) Save(store core.Storage) error {
	letters := make([]string, len(g.guessed))
	for i, r := range g.guessed {
		letters[i] = string(r)
	}

	if err := store.Set(keyWord, g.word); err != nil {
		return fmt.Errorf("hangman: save word: %w", err)
	}
	if err := core.SetJSON(store, keyGuessed, letters); err != nil {
		return fmt.Errorf("hangman: save guesses: %w", err)
	}
	if err := core.SetInt(store, keyWrongCount, g.wrong); err != nil {
		return fmt.Errorf("hangman: save wrong count: %w", err)
	}
	if err := core.SetBool(store, keyActive, g.status == StatusPlaying); err != nil {
		return fmt.Errorf("hangman: save active flag: %w", err)
	}
	if err := store.Set(keyCategory, g.Category()); err != nil {
		return fmt.Errorf("hangman: save category: %w", err)
	}
	return nil
}

// Restore resumes an unfinished round. Finished rounds and malformed data
// report false; a known stored category is kept either way.
func (g *Game) Restore(store core.Storage) bool {
	if name, ok := store.Get(keyCategory); ok {
		for i, c := range g.conf.Categories {
			if c.Name == name && i != g.category {
				g.category = i
				g.NewRound()
			}
		}
	}

	if !core.GetBool(store, keyActive, false) {
		return false
	}

	word, ok := store.Get(keyWord)
	word = strings.ToUpper(strings.TrimSpace(word))
	if !ok || !validWord(word) {
		return false
	}

	var letters []string
	if !core.GetJSON(store, keyGuessed, &letters) {
		return false
	}
	guessed := make([]rune, 0, len(letters))
	seen := make(map[rune]bool, len(letters))
	for _, s := range letters {
		runes := []rune(strings.ToUpper(s))
		if len(runes) != 1 || runes[0] < 'A' || runes[0] > 'Z' || seen[runes[0]] {
			return false
		}
		seen[runes[0]] = true
		guessed = append(guessed, runes[0])
	}

	prev := *g
	g.word = word
	g.guessed = guessed
	g.wrong = len(g.Wrong())
	g.message = ""
	if g.wrong >= g.conf.MaxWrongGuesses || g.revealed() {
		*g = prev
		return false
	}
	g.status = StatusPlaying
	return true
}

func validWord(w string) bool {
	letters := 0
	for _, r := range w {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return letters > 0
}
