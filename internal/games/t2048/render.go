package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/parlor/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColors maps tile values to display colors; larger values use tileMaxColor.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorOrange,
	16:   core.ColorOrange,
	32:   core.ColorRed,
	64:   core.ColorBrightRed,
	128:  core.ColorYellow,
	256:  core.ColorBrightYellow,
	512:  core.ColorGreen,
	1024: core.ColorCyan,
	2048: core.ColorBrightMagenta,
}

const tileMaxColor = core.ColorMagenta

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	if v > 2048 {
		return tileMaxColor
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextCenteredColored(boardY+boardH+1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score, max tile and mode.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	maxStr := fmt.Sprintf("Max: %d", MaxTile(g.board))
	dst.DrawTextColored(max(boardX, boardX+boardW-len(maxStr)), 1, maxStr, TileColor(MaxTile(g.board)))

	var goal string
	if g.engine.Target > 0 {
		goal = fmt.Sprintf("Goal: %d", g.engine.Target)
	} else {
		goal = "Goal: none"
	}
	dst.DrawText(boardX, 2, goal)

	undoStr := fmt.Sprintf("Undo: %d", max(g.history.Len()-1, 0))
	dst.DrawTextColored(max(boardX, boardX+boardW-len(undoStr)), 2, undoStr, core.ColorGray)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val := g.board[r][c]
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY+(cellHeight-1)/2, valStr, TileColor(val))

			if g.hasLastSpawn && g.lastSpawn == (Pos{Row: r, Col: c}) {
				dst.SetColored(cellX, cellY, '•', core.ColorBrightGreen)
			}
		}
	}
}

// renderOverlays draws pause and end-of-game overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightCyan, "PAUSED", "Press P to resume")
	case g.status == StatusWon:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen,
			"YOU WIN!", fmt.Sprintf("Reached %d", MaxTile(g.board)), "U: Undo | R: New game")
	case g.status == StatusLost:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightRed,
			"GAME OVER", fmt.Sprintf("Max tile: %d", MaxTile(g.board)), "U: Undo | R: New game")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/Swipe: Move | U: Undo | P: Pause | R: New | Q: Quit"
}
