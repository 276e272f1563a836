// Package tictactoe implements 3x3 noughts and crosses for two players on
// one keyboard or against a computer opponent.
package tictactoe

import "math/rand"

// Cell is the content of one board square.
type Cell int

const (
	Empty Cell = iota
	X
	O
)

// String returns "X", "O" or "" for an empty cell.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other symbol. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseCell parses "X" or "O"; anything else is Empty.
func ParseCell(s string) Cell {
	switch s {
	case "X", "x":
		return X
	case "O", "o":
		return O
	default:
		return Empty
	}
}

// Board holds the nine squares in row-major order.
type Board [9]Cell

// Lines lists the eight winning lines.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the symbol owning a complete line and that line.
func (b Board) Winner() (Cell, [3]int, bool) {
	for _, l := range Lines {
		c := b[l[0]]
		if c != Empty && c == b[l[1]] && c == b[l[2]] {
			return c, l, true
		}
	}
	return Empty, [3]int{}, false
}

// Full reports whether every square is taken.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the free squares in index order.
func (b Board) EmptyCells() []int {
	var out []int
	for i, c := range b {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Strategy chooses the computer's square on a board with at least one
// free square.
type Strategy interface {
	Choose(b Board, me Cell, rng *rand.Rand) int
}

// RandomStrategy picks any free square.
type RandomStrategy struct{}

// Choose implements Strategy.
func (RandomStrategy) Choose(b Board, _ Cell, rng *rand.Rand) int {
	free := b.EmptyCells()
	return free[rng.Intn(len(free))]
}

// GreedyStrategy completes its own line when it can, blocks the opponent's
// otherwise, and falls back to a random square.
type GreedyStrategy struct{}

// Choose implements Strategy.
func (GreedyStrategy) Choose(b Board, me Cell, rng *rand.Rand) int {
	if i, ok := completing(b, me); ok {
		return i
	}
	if i, ok := completing(b, me.Opponent()); ok {
		return i
	}
	return RandomStrategy{}.Choose(b, me, rng)
}

// completing finds a free square that gives who a full line.
func completing(b Board, who Cell) (int, bool) {
	for _, i := range b.EmptyCells() {
		b[i] = who
		w, _, ok := b.Winner()
		b[i] = Empty
		if ok && w == who {
			return i, true
		}
	}
	return 0, false
}
