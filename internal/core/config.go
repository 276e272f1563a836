package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Ticks converts a duration in milliseconds to simulation ticks, at least one.
func (c RuntimeConfig) Ticks(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := ms * rate / 1000
	if n < 1 {
		n = 1
	}
	return n
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended (won, lost or drawn)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events lists what happened during the tick, in order.
type StepResult struct {
	State  GameState
	Events []Event
}
