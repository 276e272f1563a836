package core

import "testing"

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Action
		ok     bool
	}{
		{"right", 6, 1, ActionRight, true},
		{"left", -5, 2, ActionLeft, true},
		{"down", 1, 4, ActionDown, true},
		{"up", 0, -3, ActionUp, true},
		{"tie goes vertical", 3, -3, ActionUp, true},
		{"too short", 1, -1, ActionNone, false},
		{"no movement", 0, 0, ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Swipe(tt.dx, tt.dy)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Swipe(%d, %d) = %v, %v, want %v, %v", tt.dx, tt.dy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInputFrameRunes(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Type('a')
	f.Set(ActionUndo)
	if f.Empty() || !f.Has(ActionUndo) {
		t.Fatal("frame should carry the action and the rune")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should drop actions and runes")
	}
	if len(clone.Runes) != 1 || clone.Runes[0] != 'a' || !clone.Has(ActionUndo) {
		t.Errorf("clone lost data: %+v", clone)
	}
}

func TestRuntimeConfigTicks(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	if got := cfg.Ticks(500); got != 30 {
		t.Errorf("Ticks(500) = %d, want 30", got)
	}
	if got := cfg.Ticks(0); got != 1 {
		t.Errorf("Ticks(0) = %d, want 1", got)
	}
}
