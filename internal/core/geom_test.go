package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(4, 2, 12, 6)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 8, 4, true},
		{"top-left corner", 4, 2, true},
		{"last column", 15, 4, true},
		{"right edge is exclusive", 16, 4, false},
		{"bottom edge is exclusive", 8, 8, false},
		{"left of rect", 3, 4, false},
		{"above rect", 8, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, want 25/25", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), want (15, 17)", cx, cy)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.5, 0.5},
		{-0.2, 0},
		{1.7, 1},
		{1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 1); got != tc.expected {
			t.Errorf("ClampF(%v, 0, 1) = %v, want %v", tc.val, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(12, 0, 8); got != 8 {
		t.Errorf("Clamp(12, 0, 8) = %d, want 8", got)
	}
	if got := Clamp(-3, 0, 8); got != 0 {
		t.Errorf("Clamp(-3, 0, 8) = %d, want 0", got)
	}
}
