package t2048

import (
	"math/rand"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/config"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Game wraps the engine with the state a player session owns: board, score,
// latched status and undo history.
type Game struct {
	mode   Mode
	cfg    *config.T2048Config // explicit config, bypasses file loading
	engine *Engine
	rng    *rand.Rand
	tick   uint64

	board   Board
	score   int
	status  Status
	history *History
	wonOnce bool // EventWin already reported this game

	lastSpawn    Pos
	hasLastSpawn bool

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config as loaded.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyDefault
	}
	difficultyPreset = p
}

// New creates a new classic 2048 game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a 2048 game without a winning tile.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(mode Mode, cfg config.T2048Config) *Game {
	return &Game{mode: mode, cfg: &cfg}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier, also used as the storage namespace.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

func (g *Game) loadConfig() config.T2048Config {
	if g.cfg != nil {
		return *g.cfg
	}
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if difficultyPreset != config.DifficultyDefault {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset starts a new game: an empty board with the starting tiles placed,
// score 0, and a history holding only the initial snapshot.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := g.loadConfig()

	target := cfg.Target
	if g.mode == ModeEndless {
		target = 0
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.engine = NewEngine(target, cfg.Spawn.FourProbability, g.rng)
	g.history = NewHistory(cfg.HistoryLimit)
	g.tick = 0
	g.score = 0
	g.status = StatusInProgress
	g.wonOnce = false
	g.paused = false
	g.hasLastSpawn = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.board = Board{}
	for range cfg.Spawn.StartTiles {
		board, _, err := g.engine.SpawnTile(g.board, cfg.Spawn.StartValue)
		if err != nil {
			break
		}
		g.board = board
	}
	g.status = g.engine.Classify(g.board)

	g.history.Push(Snapshot{Board: g.board, Score: g.score})
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (29 wide, 13 tall) + HUD (4 lines) + hint line
	minW := 31
	minH := 19
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the layout without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step handles at most one request per tick: pause, undo or a move.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) {
		g.Undo()
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}
	events := g.Move(dir)
	return core.StepResult{State: g.State(), Events: events}
}

func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return DirUp, false
}

// Move runs one resolve, spawn, classify cycle and returns the events it
// produced. Requests are ignored unless the game is in progress, and a move
// that changes nothing spawns nothing and is not recorded.
func (g *Game) Move(dir Direction) []core.Event {
	if g.status != StatusInProgress {
		return nil
	}

	res := g.engine.ResolveMove(g.board, g.score, dir)
	if !res.Moved {
		return nil
	}

	g.board = res.Board
	g.score = res.Score

	board, pos, err := g.engine.SpawnTile(g.board, 0)
	if err == nil {
		g.board = board
		g.lastSpawn = pos
		g.hasLastSpawn = true
	}

	g.status = g.engine.Classify(g.board)
	g.history.Push(Snapshot{Board: g.board, Score: g.score})

	events := make([]core.Event, 0, len(res.Merges)+4)
	for _, m := range res.Merges {
		events = append(events, core.Event{Kind: core.EventMerge, Value: m})
	}
	if res.Gained > 0 {
		events = append(events, core.Event{Kind: core.EventScore, Value: g.score})
	}
	events = append(events, core.Event{Kind: core.EventMaxTile, Value: MaxTile(g.board)})

	switch g.status {
	case StatusWon:
		if !g.wonOnce {
			g.wonOnce = true
			events = append(events, core.Event{Kind: core.EventWin, Value: g.score})
		}
	case StatusLost:
		events = append(events, core.Event{Kind: core.EventLoss, Value: g.score})
	}
	return events
}

// Undo restores the previous snapshot and re-classifies it. It reports
// false when only the initial state is recorded.
func (g *Game) Undo() bool {
	snap, ok := g.history.Undo()
	if !ok {
		return false
	}
	g.board = snap.Board
	g.score = snap.Score
	g.status = g.engine.Classify(g.board)
	g.hasLastSpawn = false
	return true
}

// CanUndo reports whether an undo step is available.
func (g *Game) CanUndo() bool {
	return g.history != nil && g.history.CanUndo()
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Status returns the latched game status.
func (g *Game) Status() Status {
	return g.status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status != StatusInProgress,
		Paused:   g.paused || g.tooSmall,
	}
}

// Achievements returns the 2048 achievement catalog.
func (g *Game) Achievements() []achievement.Definition {
	return Achievements()
}
