package t2048

import (
	"fmt"

	"github.com/vovakirdan/parlor/internal/core"
)

// Storage keys, prefixed with the game ID.
const (
	keyBoard   = "board"
	keyScore   = "score"
	keyHistory = "history"
	keyWon     = "won"
)

func (g *Game) key(name string) string {
	return g.ID() + "_" + name
}

// Save writes the board, score, undo history and won latch to store.
func (g *Game) Save(store core.Storage) error {
	rows := make([][]int, BoardSize)
	for r := range BoardSize {
		rows[r] = g.board[r][:]
	}
	if err := core.SetJSON(store, g.key(keyBoard), rows); err != nil {
		return fmt.Errorf("t2048: save board: %w", err)
	}
	if err := core.SetInt(store, g.key(keyScore), g.score); err != nil {
		return fmt.Errorf("t2048: save score: %w", err)
	}
	if err := core.SetJSON(store, g.key(keyHistory), g.history.Snapshots()); err != nil {
		return fmt.Errorf("t2048: save history: %w", err)
	}
	if err := core.SetBool(store, g.key(keyWon), g.wonOnce); err != nil {
		return fmt.Errorf("t2048: save won flag: %w", err)
	}
	return nil
}

// Restore loads a game saved by Save. Missing or malformed data leaves the
// game as Reset prepared it and reports false. A stored history that does not
// end in the stored board is replaced by a single snapshot of that board.
func (g *Game) Restore(store core.Storage) bool {
	var rows [][]int
	if !core.GetJSON(store, g.key(keyBoard), &rows) {
		return false
	}
	board, ok := boardFromRows(rows)
	if !ok {
		return false
	}

	score := core.GetInt(store, g.key(keyScore), -1)
	if score < 0 {
		return false
	}

	g.board = board
	g.score = score
	g.wonOnce = core.GetBool(store, g.key(keyWon), false)
	g.status = g.engine.Classify(g.board)
	g.hasLastSpawn = false
	if g.status == StatusWon {
		g.wonOnce = true
	}

	current := Snapshot{Board: board, Score: score}
	g.history.Clear()

	var snaps []Snapshot
	if core.GetJSON(store, g.key(keyHistory), &snaps) && historyEndsWith(snaps, current) {
		start := max(len(snaps)-g.history.Limit(), 0)
		for _, s := range snaps[start:] {
			g.history.Push(s)
		}
	} else {
		g.history.Push(current)
	}
	return true
}

func boardFromRows(rows [][]int) (Board, bool) {
	var b Board
	if len(rows) != BoardSize {
		return b, false
	}
	for r, row := range rows {
		if len(row) != BoardSize {
			return b, false
		}
		copy(b[r][:], row)
	}
	return b, Valid(b)
}

func historyEndsWith(snaps []Snapshot, current Snapshot) bool {
	if len(snaps) == 0 {
		return false
	}
	for _, s := range snaps {
		if !Valid(s.Board) || s.Score < 0 {
			return false
		}
	}
	return snaps[len(snaps)-1] == current
}
