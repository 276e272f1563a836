package t2048

// Snapshot is an immutable capture of a board and its score, pushed to the
// undo history after every accepted move.
type Snapshot struct {
	Board Board `json:"board"`
	Score int   `json:"score"`
}

// Summary captures the complete game state for determinism testing and
// status displays.
type Summary struct {
	Tick     uint64
	Mode     Mode
	Target   int
	Score    int
	Board    Board
	MaxTile  int
	Status   Status
	Undos    int // Undo steps currently available
	Paused   bool
	TooSmall bool
}

// Summary returns the current game summary.
func (g *Game) Summary() Summary {
	return Summary{
		Tick:     g.tick,
		Mode:     g.mode,
		Target:   g.engine.Target,
		Score:    g.score,
		Board:    g.board,
		MaxTile:  MaxTile(g.board),
		Status:   g.status,
		Undos:    max(g.history.Len()-1, 0),
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
}
