// Package hangman implements a word-guessing game: the player reveals a
// hidden word one letter at a time before the gallows figure is complete.
package hangman

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"unicode"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/config"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/registry"
)

// Game-specific event kinds.
const (
	EventAllVowels core.EventKind = "all_vowels" // won with every vowel guessed
	EventFlawless  core.EventKind = "flawless"   // won without a wrong guess
)

// Vowels checked by EventAllVowels.
const Vowels = "AEIOU"

// Guess errors.
var (
	ErrGameOver       = errors.New("hangman: round is over")
	ErrNotLetter      = errors.New("hangman: not a letter A-Z")
	ErrAlreadyGuessed = errors.New("hangman: letter already guessed")
)

// Status is the round outcome.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// Game is one round of hangman plus the category selection.
type Game struct {
	cfg  *config.HangmanConfig // explicit config, bypasses file loading
	conf config.HangmanConfig
	rng  *rand.Rand
	tick uint64

	category int
	word     string
	guessed  []rune // guess order
	wrong    int
	status   Status
	message  string

	screenW  int
	screenH  int
	tooSmall bool
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyDefault
	}
	difficultyPreset = p
}

// New creates a new hangman game.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(cfg config.HangmanConfig) *Game {
	return &Game{cfg: &cfg}
}

func init() {
	registry.Register("hangman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "hangman" }

// Title returns the display name.
func (g *Game) Title() string { return "Hangman" }

func (g *Game) loadConfig() config.HangmanConfig {
	if g.cfg != nil {
		return *g.cfg
	}
	cfg, err := config.LoadHangman(configPath)
	if err != nil {
		cfg = config.DefaultHangmanConfig()
	}
	if difficultyPreset != config.DifficultyDefault {
		config.ApplyHangmanPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset loads the configuration and starts a round in the default category.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.conf = g.loadConfig()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.category = g.conf.CategoryIndex(g.conf.DefaultCategory)
	g.NewRound()
}

// NewRound picks a fresh word from the current category.
func (g *Game) NewRound() {
	words := g.conf.Categories[g.category].Words
	g.word = strings.ToUpper(words[g.rng.Intn(len(words))])
	g.guessed = g.guessed[:0]
	g.wrong = 0
	g.status = StatusPlaying
	g.message = ""
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < 52 || g.screenH < 22
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// CycleCategory switches category by delta and starts a new round. It is
// only allowed before the first guess of a round.
func (g *Game) CycleCategory(delta int) bool {
	if g.status != StatusPlaying || len(g.guessed) > 0 {
		return false
	}
	n := len(g.conf.Categories)
	g.category = ((g.category+delta)%n + n) % n
	g.NewRound()
	return true
}

// Guess records a letter. Case is ignored.
func (g *Game) Guess(r rune) ([]core.Event, error) {
	if g.status != StatusPlaying {
		return nil, ErrGameOver
	}
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return nil, ErrNotLetter
	}
	if slices.Contains(g.guessed, r) {
		return nil, ErrAlreadyGuessed
	}

	g.guessed = append(g.guessed, r)
	if !strings.ContainsRune(g.word, r) {
		g.wrong++
		if g.wrong >= g.conf.MaxWrongGuesses {
			g.status = StatusLost
			return []core.Event{{Kind: core.EventLoss, Value: g.wrong}}, nil
		}
		return nil, nil
	}

	if !g.revealed() {
		return nil, nil
	}

	g.status = StatusWon
	events := []core.Event{
		{Kind: core.EventScore, Value: g.Score()},
		{Kind: core.EventWin, Value: g.Score()},
	}
	if g.guessedAll(Vowels) {
		events = append(events, core.Event{Kind: EventAllVowels})
	}
	if g.wrong == 0 {
		events = append(events, core.Event{Kind: EventFlawless})
	}
	return events, nil
}

func (g *Game) revealed() bool {
	for _, r := range g.word {
		if r >= 'A' && r <= 'Z' && !slices.Contains(g.guessed, r) {
			return false
		}
	}
	return true
}

func (g *Game) guessedAll(letters string) bool {
	for _, r := range letters {
		if !slices.Contains(g.guessed, r) {
			return false
		}
	}
	return true
}

// Step applies typed letters and navigation for one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	switch {
	case g.status != StatusPlaying && in.Has(core.ActionConfirm):
		g.NewRound()
	case in.Has(core.ActionLeft), in.Has(core.ActionUp):
		g.CycleCategory(-1)
	case in.Has(core.ActionRight), in.Has(core.ActionDown):
		g.CycleCategory(1)
	}

	for _, r := range in.Runes {
		evs, err := g.Guess(r)
		switch {
		case errors.Is(err, ErrAlreadyGuessed):
			g.message = "Already guessed " + string(unicode.ToUpper(r))
		case errors.Is(err, ErrNotLetter):
			g.message = "Letters A-Z only"
		case err == nil:
			g.message = ""
			events = append(events, evs...)
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

// AcceptsText reports that letters are consumed as guesses.
func (g *Game) AcceptsText() bool {
	return g.status == StatusPlaying
}

// Masked returns the word with unguessed letters as underscores,
// separated by spaces.
func (g *Game) Masked() string {
	var sb strings.Builder
	for i, r := range g.word {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if r >= 'A' && r <= 'Z' && !slices.Contains(g.guessed, r) {
			sb.WriteRune('_')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Correct returns the correctly guessed letters in guess order.
func (g *Game) Correct() []rune {
	return g.filter(true)
}

// Wrong returns the wrongly guessed letters in guess order.
func (g *Game) Wrong() []rune {
	return g.filter(false)
}

func (g *Game) filter(inWord bool) []rune {
	var out []rune
	for _, r := range g.guessed {
		if strings.ContainsRune(g.word, r) == inWord {
			out = append(out, r)
		}
	}
	return out
}

// Word returns the hidden word.
func (g *Game) Word() string { return g.word }

// Category returns the current category name.
func (g *Game) Category() string { return g.conf.Categories[g.category].Name }

// WrongGuesses returns the number of wrong guesses this round.
func (g *Game) WrongGuesses() int { return g.wrong }

// MaxWrongGuesses returns the number of wrong guesses that lose the round.
func (g *Game) MaxWrongGuesses() int { return g.conf.MaxWrongGuesses }

// Status returns the round outcome.
func (g *Game) Status() Status { return g.status }

// Score returns the round score: ten points per unused wrong guess on a
// win, zero otherwise.
func (g *Game) Score() int {
	if g.status != StatusWon {
		return 0
	}
	return (g.conf.MaxWrongGuesses - g.wrong) * 10
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.status != StatusPlaying,
		Paused:   g.tooSmall,
	}
}

// Achievements returns the hangman achievement catalog.
func (g *Game) Achievements() []achievement.Definition {
	return Achievements()
}
