package core

import (
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("GetCell(%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)

	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 9, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.GetCell(7, 7).Color != ColorDefault {
		t.Error("out of bounds GetCell should be uncolored")
	}
}

func TestScreenColoredText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(2, 1, "2048", ColorBrightYellow)

	for i, ch := range "2048" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorBrightYellow {
			t.Errorf("cell %d = %+v, want %q in bright yellow", 2+i, c, ch)
		}
	}
	if s.GetCell(6, 1).Color != ColorDefault {
		t.Error("color should not leak past the text")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "♪ on")

	if s.Get(0, 0) != '♪' || s.Get(1, 0) != ' ' || s.Get(2, 0) != 'o' {
		t.Errorf("Row = %q, want %q", s.Row(0), "♪ on      ")
	}
}

func TestScreenCenteredText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at column %d: %q", x, s.Row(2))
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(1, 1, 'X', ColorGreen)

	s.Resize(10, 5)
	if c := s.GetCell(1, 1); c.Rune != 'X' || c.Color != ColorGreen {
		t.Errorf("after grow, GetCell(1, 1) = %+v", c)
	}

	s.Resize(1, 1)
	if s.Width() != 1 || s.Get(0, 0) != ' ' {
		t.Errorf("after shrink, screen = %q", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorCyan)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		cell := s.GetCell(c.x, c.y)
		if cell.Rune != c.r || cell.Color != ColorCyan {
			t.Errorf("corner (%d, %d) = %+v, want %q cyan", c.x, c.y, cell, c.r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 2, 2), '#')

	if s.Row(1) != " ##   " || s.Row(3) != "      " {
		t.Errorf("rows = %q / %q", s.Row(1), s.Row(3))
	}
}
