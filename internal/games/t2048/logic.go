package t2048

import (
	"errors"
	"math/rand"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// BoardSize is the board dimension.
const BoardSize = 4

// DefaultTarget is the tile value that wins a classic game.
const DefaultTarget = 2048

// Board is a BoardSize x BoardSize grid indexed [row][col]. 0 is an empty cell.
type Board [BoardSize][BoardSize]int

// Pos addresses a cell.
type Pos struct {
	Row, Col int
}

// Status is the outcome classification of a board.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// ErrBoardFull is returned when a tile is spawned on a board with no empty cell.
var ErrBoardFull = errors.New("t2048: no empty cell to spawn into")

// MoveResult is the outcome of resolving one move.
type MoveResult struct {
	Board  Board
	Score  int
	Gained int   // Sum of all tiles created by merges
	Merges []int // Value of each tile created by a merge
	Moved  bool
	Status Status
}

// Engine applies the 2048 rules. It holds no board state; callers own the
// board and score and pass them in.
type Engine struct {
	Target          int // 0 disables winning
	FourProbability float64
	rng             *rand.Rand
}

// NewEngine creates an engine drawing spawn randomness from rng.
func NewEngine(target int, fourProbability float64, rng *rand.Rand) *Engine {
	return &Engine{
		Target:          target,
		FourProbability: fourProbability,
		rng:             rng,
	}
}

// line returns the cells of line i ordered toward the side tiles slide to.
// Rows serve left/right, columns serve up/down; down and right are reversed
// so resolution always moves toward index 0.
func line(dir Direction, i int) [BoardSize]Pos {
	var cells [BoardSize]Pos
	for k := range BoardSize {
		switch dir {
		case DirLeft:
			cells[k] = Pos{Row: i, Col: k}
		case DirRight:
			cells[k] = Pos{Row: i, Col: BoardSize - 1 - k}
		case DirUp:
			cells[k] = Pos{Row: k, Col: i}
		case DirDown:
			cells[k] = Pos{Row: BoardSize - 1 - k, Col: i}
		}
	}
	return cells
}

// resolveLine compacts a line toward index 0 and merges equal neighbours.
// A tile produced by a merge is never merged again in the same call.
func resolveLine(in [BoardSize]int) (out [BoardSize]int, merges []int) {
	compact := make([]int, 0, BoardSize)
	for _, v := range in {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	n := 0
	for i := 0; i < len(compact); i++ {
		v := compact[i]
		if i+1 < len(compact) && compact[i+1] == v {
			v *= 2
			merges = append(merges, v)
			i++ // pair consumed
		}
		out[n] = v
		n++
	}
	return out, merges
}

// ResolveMove slides and merges every line of the board in direction dir.
// When nothing changes, the input board and score are returned untouched
// with Moved false. Status classifies the resulting board before any spawn.
func (e *Engine) ResolveMove(board Board, score int, dir Direction) MoveResult {
	res := MoveResult{Board: board, Score: score}
	if dir < DirUp || dir > DirRight {
		res.Status = e.Classify(board)
		return res
	}

	var next Board
	for i := range BoardSize {
		cells := line(dir, i)
		var values [BoardSize]int
		for k, p := range cells {
			values[k] = board[p.Row][p.Col]
		}

		resolved, merges := resolveLine(values)
		for k, p := range cells {
			next[p.Row][p.Col] = resolved[k]
		}
		for _, m := range merges {
			res.Gained += m
		}
		res.Merges = append(res.Merges, merges...)
	}

	if next == board {
		res.Gained = 0
		res.Merges = nil
		res.Status = e.Classify(board)
		return res
	}

	res.Board = next
	res.Score = score + res.Gained
	res.Moved = true
	res.Status = e.Classify(next)
	return res
}

// SpawnTile places one tile on a uniformly chosen empty cell. The value is
// forced when forced > 0, else 4 with FourProbability and 2 otherwise.
// A full board is a caller error and yields ErrBoardFull.
func (e *Engine) SpawnTile(board Board, forced int) (Board, Pos, error) {
	empty := EmptyCells(board)
	if len(empty) == 0 {
		return board, Pos{}, ErrBoardFull
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := forced
	if value <= 0 {
		value = 2
		if e.rng.Float64() < e.FourProbability {
			value = 4
		}
	}

	board[cell.Row][cell.Col] = value
	return board, cell, nil
}

// Classify reports Won when any tile reaches the target, Lost when the board
// is full with no equal orthogonal neighbours, and InProgress otherwise.
// It is stateless: callers latch Won themselves.
func (e *Engine) Classify(board Board) Status {
	if e.Target > 0 && MaxTile(board) >= e.Target {
		return StatusWon
	}
	if !HasEmptyCell(board) && !HasPossibleMerge(board) {
		return StatusLost
	}
	return StatusInProgress
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Pos {
	var cells []Pos
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two orthogonally adjacent non-empty
// tiles are equal.
func HasPossibleMerge(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			v := board[r][c]
			if v == 0 {
				continue
			}
			if c < BoardSize-1 && board[r][c+1] == v {
				return true
			}
			if r < BoardSize-1 && board[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			maxVal = max(maxVal, board[r][c])
		}
	}
	return maxVal
}

// Transpose mirrors the board across its main diagonal.
func Transpose(board Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[r][c] = board[c][r]
		}
	}
	return out
}

// Valid reports whether every tile is 0 or a power of two >= 2.
func Valid(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			v := board[r][c]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}
