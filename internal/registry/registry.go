// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/profile"
)

// Game is the core interface that all parlor games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "2048", "hangman").
	// Used for CLI commands, score storage and as the settings namespace.
	ID() string

	// Title returns a human-readable name for display (e.g., "Tic-Tac-Toe").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Up, Confirm, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Persistent is implemented by games that survive a restart of the program.
// Restore reports false when nothing usable is stored; the game then keeps
// the state from its last Reset.
type Persistent interface {
	Save(store core.Storage) error
	Restore(store core.Storage) bool
}

// TextEntry is implemented by games that consume typed letters. While
// AcceptsText is true the platform forwards runes instead of mapping
// letter shortcuts to actions.
type TextEntry interface {
	AcceptsText() bool
}

// Achiever exposes a game's achievement catalog.
type Achiever interface {
	Achievements() []achievement.Definition
}

// Undoer is implemented by games that can take back moves.
type Undoer interface {
	CanUndo() bool
}

// Clicker is implemented by games that react to a mouse click at a screen
// position.
type Clicker interface {
	Click(x, y int) []core.Event
}

// Resizer is implemented by games whose layout depends on the screen size.
type Resizer interface {
	Resize(w, h int)
}

// ErrUnknownGame is returned for IDs that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Family string // base game ID; modes of one family share a profile
}

// Variant reports whether the entry is an alternative mode of its family.
func (g GameInfo) Variant() bool {
	return g.ID != g.Family
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, info(id))
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})

	return result
}

// Lookup returns the metadata of one game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if _, ok := factories[id]; !ok {
		return GameInfo{}, false
	}
	return info(id), true
}

func info(id string) GameInfo {
	return GameInfo{ID: id, Title: titles[id], Family: profile.NamespaceFor(id)}
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
