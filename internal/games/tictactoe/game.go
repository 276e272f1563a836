package tictactoe

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/config"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/registry"
)

// Mode selects the opponent.
type Mode string

const (
	ModeFriend Mode = "friend"
	ModeAI     Mode = "ai"
)

// Game-specific event kinds.
const (
	EventWinX  core.EventKind = "win_x"
	EventWinO  core.EventKind = "win_o"
	EventAIWin core.EventKind = "ai_win" // human beat the computer
)

// Move errors.
var (
	ErrOutOfBounds = errors.New("tictactoe: square out of range")
	ErrOccupied    = errors.New("tictactoe: square already taken")
	ErrGameOver    = errors.New("tictactoe: round is over")
	ErrNotYourTurn = errors.New("tictactoe: computer's turn")
)

// Status is the round outcome.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusDraw
)

// Game is a round of tic-tac-toe.
type Game struct {
	mode Mode
	cfg  *config.TicTacToeConfig // explicit config, bypasses file loading
	conf config.TicTacToeConfig
	rc   core.RuntimeConfig
	rng  *rand.Rand
	ai   Strategy
	tick uint64

	board   Board
	current Cell
	human   Cell // AI mode only
	status  Status
	winner  Cell
	line    [3]int
	cursor  int
	aiWait  int // ticks until the computer moves; 0 when idle

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

var configPath string
var difficultyPreset config.DifficultyPreset
var humanSymbol Cell

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

// SetHumanSymbol overrides the configured human symbol for AI games.
// Empty restores the configured one.
func SetHumanSymbol(c Cell) {
	humanSymbol = c
}

// New creates a two-player game.
func New() *Game {
	return &Game{mode: ModeFriend}
}

// NewAI creates a game against the computer.
func NewAI() *Game {
	return &Game{mode: ModeAI}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(mode Mode, cfg config.TicTacToeConfig) *Game {
	return &Game{mode: mode, cfg: &cfg}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
	registry.Register("tictactoe_ai", func() registry.Game {
		return NewAI()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAI {
		return "tictactoe_ai"
	}
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAI {
		return "Tic-Tac-Toe (vs AI)"
	}
	return "Tic-Tac-Toe"
}

func (g *Game) loadConfig() config.TicTacToeConfig {
	if g.cfg != nil {
		return *g.cfg
	}
	cfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		cfg = config.DefaultTicTacToeConfig()
	}
	if difficultyPreset != config.DifficultyDefault {
		config.ApplyTicTacToePreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset loads the configuration and starts a round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.conf = g.loadConfig()
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.checkScreenSize()

	g.ai = RandomStrategy{}
	if g.conf.AI.Strategy == config.StrategyGreedy {
		g.ai = GreedyStrategy{}
	}

	g.human = ParseCell(g.conf.HumanSymbol)
	if humanSymbol != Empty && g.cfg == nil {
		g.human = humanSymbol
	}
	if g.human == Empty {
		g.human = X
	}

	g.NewRound()
}

// NewRound clears the board. X always moves first.
func (g *Game) NewRound() {
	g.board = Board{}
	g.current = X
	g.status = StatusPlaying
	g.winner = Empty
	g.cursor = 4
	g.aiWait = 0
	g.scheduleAI()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < 30 || g.screenH < 18
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) aiTurn() bool {
	return g.mode == ModeAI && g.status == StatusPlaying && g.current != g.human
}

func (g *Game) scheduleAI() {
	if g.aiTurn() {
		g.aiWait = g.rc.Ticks(g.conf.AI.DelayMS)
	}
}

// Play marks square idx (0-8) for the player to move.
func (g *Game) Play(idx int) ([]core.Event, error) {
	if g.status != StatusPlaying {
		return nil, ErrGameOver
	}
	if g.aiTurn() {
		return nil, ErrNotYourTurn
	}
	return g.place(idx)
}

func (g *Game) place(idx int) ([]core.Event, error) {
	if idx < 0 || idx >= len(g.board) {
		return nil, ErrOutOfBounds
	}
	if g.board[idx] != Empty {
		return nil, ErrOccupied
	}

	mover := g.current
	g.board[idx] = mover

	if w, line, ok := g.board.Winner(); ok {
		g.status = StatusWon
		g.winner = w
		g.line = line
		return g.winEvents(), nil
	}
	if g.board.Full() {
		g.status = StatusDraw
		return []core.Event{{Kind: core.EventDraw}}, nil
	}

	g.current = mover.Opponent()
	g.scheduleAI()
	return nil, nil
}

func (g *Game) winEvents() []core.Event {
	if g.mode == ModeAI && g.winner != g.human {
		return []core.Event{{Kind: core.EventLoss}}
	}

	score := g.Score()
	events := []core.Event{
		{Kind: core.EventScore, Value: score},
		{Kind: core.EventWin, Value: score},
	}
	if g.winner == X {
		events = append(events, core.Event{Kind: EventWinX})
	} else {
		events = append(events, core.Event{Kind: EventWinO})
	}
	if g.mode == ModeAI {
		events = append(events, core.Event{Kind: EventAIWin})
	}
	return events
}

// Step advances the computer's timer and applies player input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.status != StatusPlaying {
		if in.Has(core.ActionConfirm) {
			g.NewRound()
		}
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if g.aiWait > 0 {
		g.aiWait--
		if g.aiWait == 0 && g.aiTurn() {
			evs, _ := g.place(g.ai.Choose(g.board, g.current, g.rng))
			events = append(events, evs...)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveCursor(in)

	idx := -1
	if in.Has(core.ActionConfirm) {
		idx = g.cursor
	}
	for _, r := range in.Runes {
		if r >= '1' && r <= '9' {
			idx = int(r - '1')
		}
	}
	if idx >= 0 {
		if evs, err := g.Play(idx); err == nil {
			g.cursor = idx
			events = append(events, evs...)
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/3, g.cursor%3
	switch {
	case in.Has(core.ActionUp):
		row = (row + 2) % 3
	case in.Has(core.ActionDown):
		row = (row + 1) % 3
	case in.Has(core.ActionLeft):
		col = (col + 2) % 3
	case in.Has(core.ActionRight):
		col = (col + 1) % 3
	}
	g.cursor = row*3 + col
}

// Click plays the square under screen position (x, y), if any.
func (g *Game) Click(x, y int) []core.Event {
	if g.paused || g.tooSmall || g.status != StatusPlaying {
		return nil
	}
	for i := range g.board {
		if g.cellRect(i).Contains(x, y) {
			evs, err := g.Play(i)
			if err != nil {
				return nil
			}
			g.cursor = i
			return evs
		}
	}
	return nil
}

// Board returns a copy of the board.
func (g *Game) Board() Board { return g.board }

// Current returns the symbol to move.
func (g *Game) Current() Cell { return g.current }

// Human returns the human's symbol in AI mode.
func (g *Game) Human() Cell { return g.human }

// Status returns the round outcome.
func (g *Game) Status() Status { return g.status }

// Winner returns the winning symbol, or Empty.
func (g *Game) Winner() Cell { return g.winner }

// Score returns the round score: ten points per square left free plus ten
// for a win counted for the player, zero otherwise.
func (g *Game) Score() int {
	if g.status != StatusWon || (g.mode == ModeAI && g.winner != g.human) {
		return 0
	}
	return (len(g.board.EmptyCells()) + 1) * 10
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.status != StatusPlaying,
		Paused:   g.paused || g.tooSmall,
	}
}

// Achievements returns the tic-tac-toe achievement catalog.
func (g *Game) Achievements() []achievement.Definition {
	return Achievements()
}
