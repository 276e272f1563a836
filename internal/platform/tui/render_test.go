package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/parlor/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(2, 1, "red", core.ColorRed)
	s.DrawTextColored(6, 1, "WIN", core.ColorBrightGreen)
	s.SetColored(11, 2, '•', core.ColorGray)

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("RenderScreen text =\n%q\nwant\n%q", got, s.String())
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); ansi.Strip(got) != "x" {
		t.Errorf("unknown color rendered %q", got)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{10000, time.Second / maxTickRate},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
