package tictactoe

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/vovakirdan/parlor/internal/core"
)

const (
	cellW  = 7
	cellH  = 3
	boardW = 3*cellW + 2
	boardH = 3*cellH + 2
	boardY = 4
)

func (g *Game) boardX() int {
	return (g.screenW - boardW) / 2
}

// cellRect returns the screen area of square i, borders excluded.
func (g *Game) cellRect(i int) core.Rect {
	row, col := i/3, i%3
	return core.NewRect(g.boardX()+col*(cellW+1), boardY+row*(cellH+1), cellW, cellH)
}

func symbolColor(c Cell) core.Color {
	if c == X {
		return core.ColorBrightCyan
	}
	return core.ColorBrightMagenta
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightYellow)
	if g.mode == ModeAI {
		dst.DrawTextCentered(1, fmt.Sprintf("You: %s  AI: %s", g.human, g.human.Opponent()))
	} else {
		dst.DrawTextCentered(1, "Player X vs Player O")
	}

	g.renderGrid(dst)
	for i := range g.board {
		g.renderCell(dst, i)
	}

	y := boardY + boardH + 1
	dst.DrawTextCenteredColored(y, g.statusText(), g.statusColor())
	if g.status != StatusPlaying {
		dst.DrawTextCenteredColored(y+1, "Enter: Play again", core.ColorGray)
	}
	if g.paused {
		dst.DrawTextCenteredColored(y+1, "PAUSED - press P to resume", core.ColorBrightCyan)
	}

	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), core.ColorGray)
}

func (g *Game) renderGrid(dst *core.Screen) {
	x0 := g.boardX()
	for k := 1; k < 3; k++ {
		ly := boardY + k*(cellH+1) - 1
		lx := x0 + k*(cellW+1) - 1
		for x := x0; x < x0+boardW; x++ {
			dst.SetColored(x, ly, '─', core.ColorGray)
		}
		for y := boardY; y < boardY+boardH; y++ {
			r := '│'
			if (y-boardY+1)%(cellH+1) == 0 {
				r = '┼'
			}
			dst.SetColored(lx, y, r, core.ColorGray)
		}
	}
}

func (g *Game) renderCell(dst *core.Screen, i int) {
	r := g.cellRect(i)
	cx, cy := r.Center()

	c := g.board[i]
	switch {
	case c != Empty:
		color := symbolColor(c)
		if g.status == StatusWon && slices.Contains(g.line[:], i) {
			color = core.ColorBrightGreen
		}
		dst.SetColored(cx, cy, []rune(c.String())[0], color)
	default:
		dst.SetColored(r.X, r.Y, []rune(strconv.Itoa(i + 1))[0], core.ColorGray)
	}

	if i == g.cursor && g.status == StatusPlaying {
		dst.SetColored(cx-2, cy, '[', core.ColorYellow)
		dst.SetColored(cx+2, cy, ']', core.ColorYellow)
	}
}

func (g *Game) statusText() string {
	switch g.status {
	case StatusDraw:
		return "It's a Draw!"
	case StatusWon:
		if g.mode == ModeAI {
			if g.winner == g.human {
				return fmt.Sprintf("You Win! (%s)", g.winner)
			}
			return fmt.Sprintf("AI Wins! (%s)", g.winner)
		}
		return fmt.Sprintf("Player %s Wins!", g.winner)
	}
	if g.aiTurn() {
		return "AI is thinking..."
	}
	return fmt.Sprintf("Player %s's turn", g.current)
}

func (g *Game) statusColor() core.Color {
	switch g.status {
	case StatusDraw:
		return core.ColorYellow
	case StatusWon:
		if g.mode == ModeAI && g.winner != g.human {
			return core.ColorBrightRed
		}
		return core.ColorBrightGreen
	}
	return symbolColor(g.current)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter/1-9/Click: Mark | P: Pause | R: New | Q: Quit"
}
