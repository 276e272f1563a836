package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/parlor/internal/core"
)

const (
	keyBoard   = "tictactoe_board"
	keyCurrent = "tictactoe_currentPlayer"
	keyActive  = "tictactoe_gameActive"
	keyMode    = "tictactoe_gameMode"
	keyHuman   = "tictactoe_humanPlayerSymbol"
)

// Save stores the round. Both modes share the keys; the stored mode tells
// them apart.
func (g *Game) Save(store core.Storage) error {
	cells := make([]string, len(g.board))
	for i, c := range g.board {
		cells[i] = c.String()
	}

	if err := core.SetJSON(store, keyBoard, cells); err != nil {
		return fmt.Errorf("tictactoe: save board: %w", err)
	}
	values := []struct{ key, value string }{
		{keyCurrent, g.current.String()},
		{keyMode, string(g.mode)},
		{keyHuman, g.human.String()},
	}
	for _, v := range values {
		if err := store.Set(v.key, v.value); err != nil {
			return fmt.Errorf("tictactoe: save %s: %w", v.key, err)
		}
	}
	if err := core.SetBool(store, keyActive, g.status == StatusPlaying); err != nil {
		return fmt.Errorf("tictactoe: save active flag: %w", err)
	}
	return nil
}

// Restore resumes an unfinished round of the same mode and, in AI mode,
// with the same human symbol. Anything else reports false.
func (g *Game) Restore(store core.Storage) bool {
	if !core.GetBool(store, keyActive, false) {
		return false
	}
	if mode, _ := store.Get(keyMode); Mode(mode) != g.mode {
		return false
	}
	if g.mode == ModeAI {
		if human, _ := store.Get(keyHuman); ParseCell(human) != g.human {
			return false
		}
	}

	var cells []string
	if !core.GetJSON(store, keyBoard, &cells) || len(cells) != len(g.board) {
		return false
	}
	var board Board
	xCount, oCount := 0, 0
	for i, s := range cells {
		c := ParseCell(s)
		if c == Empty && s != "" {
			return false
		}
		board[i] = c
		switch c {
		case X:
			xCount++
		case O:
			oCount++
		}
	}

	// X moves first, so X is never behind and at most one ahead.
	current := O
	switch xCount - oCount {
	case 0:
		current = X
	case 1:
	default:
		return false
	}
	if cur, _ := store.Get(keyCurrent); ParseCell(cur) != current {
		return false
	}
	if _, _, won := board.Winner(); won || board.Full() {
		return false
	}

	g.board = board
	g.current = current
	g.status = StatusPlaying
	g.winner = Empty
	g.aiWait = 0
	g.scheduleAI()
	return true
}
