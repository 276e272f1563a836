package hangman

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/parlor/internal/core"
)

type stroke struct {
	x, y int
	r    rune
}

// figure lists the gallows parts in the order wrong guesses reveal them:
// base, pole, beam, rope, head, body, arms, legs.
var figure = [][]stroke{
	{{0, 6, '='}, {1, 6, '='}, {2, 6, '='}, {3, 6, '='}, {4, 6, '='}, {5, 6, '='}, {6, 6, '='}},
	{{2, 0, '+'}, {2, 1, '|'}, {2, 2, '|'}, {2, 3, '|'}, {2, 4, '|'}, {2, 5, '|'}},
	{{3, 0, '-'}, {4, 0, '-'}, {5, 0, '-'}, {6, 0, '-'}, {7, 0, '+'}},
	{{7, 1, '|'}},
	{{7, 2, 'O'}},
	{{7, 3, '|'}},
	{{6, 3, '/'}},
	{{8, 3, '\\'}},
	{{6, 4, '/'}},
	{{8, 4, '\\'}},
}

const (
	figureW = 9
	figureH = 7
)

// visibleParts scales the wrong guess count to the figure's part count.
func visibleParts(wrong, maxWrong int) int {
	if maxWrong <= 0 {
		return 0
	}
	return min(wrong*len(figure)/maxWrong, len(figure))
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

	category := "Category: " + g.Category()
	if g.status == StatusPlaying && len(g.guessed) == 0 {
		category = "< " + category + " >"
	}
	dst.DrawTextCenteredColored(1, category, core.ColorCyan)

	figX := (g.screenW - figureW) / 2
	g.renderFigure(dst, figX, 3)

	y := 3 + figureH + 1
	dst.DrawTextCenteredColored(y, g.Masked(), core.ColorBrightWhite)

	dst.DrawTextCenteredColored(y+2, "Correct: "+joinLetters(g.Correct()), core.ColorGreen)
	wrong := fmt.Sprintf("Wrong: %s (%d/%d)", joinLetters(g.Wrong()), g.wrong, g.conf.MaxWrongGuesses)
	dst.DrawTextCenteredColored(y+3, wrong, core.ColorRed)

	g.renderAlphabet(dst, y+5)

	switch g.status {
	case StatusWon:
		dst.DrawTextCenteredColored(y+7, fmt.Sprintf("You guessed %q! +%d", g.word, g.Score()), core.ColorBrightGreen)
		dst.DrawTextCenteredColored(y+8, "Enter: Next word", core.ColorGray)
	case StatusLost:
		dst.DrawTextCenteredColored(y+7, fmt.Sprintf("You lost! The word was %q", g.word), core.ColorBrightRed)
		dst.DrawTextCenteredColored(y+8, "Enter: Next word", core.ColorGray)
	default:
		if g.message != "" {
			dst.DrawTextCenteredColored(y+7, g.message, core.ColorYellow)
		}
	}

	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), core.ColorGray)
}

func (g *Game) renderFigure(dst *core.Screen, x, y int) {
	color := core.ColorWhite
	if g.status == StatusLost {
		color = core.ColorRed
	}
	for _, part := range figure[:visibleParts(g.wrong, g.conf.MaxWrongGuesses)] {
		for _, s := range part {
			dst.SetColored(x+s.x, y+s.y, s.r, color)
		}
	}
}

// renderAlphabet draws A-Z, coloring letters already guessed.
func (g *Game) renderAlphabet(dst *core.Screen, y int) {
	const width = 26*2 - 1
	x := (g.screenW - width) / 2
	for i := range 26 {
		r := rune('A' + i)
		color := core.ColorDefault
		if slices.Contains(g.guessed, r) {
			color = core.ColorGray
			if strings.ContainsRune(g.word, r) {
				color = core.ColorGreen
			}
		}
		dst.SetColored(x+i*2, y, r, color)
	}
}

func joinLetters(rs []rune) string {
	if len(rs) == 0 {
		return "-"
	}
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "A-Z: Guess | Arrows: Category | Ctrl+R: New | Esc: Quit"
}
