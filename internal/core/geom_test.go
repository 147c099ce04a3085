package core

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(800, 600, 80, 23, 1)

	tests := []struct {
		cx, cy int
	}{
		{0, 1},
		{79, 23},
		{40, 12},
		{13, 7},
	}
	for _, tt := range tests {
		x, y := v.ToWorld(tt.cx, tt.cy)
		cx, cy := v.ToCell(x, y)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("cell (%d,%d) -> world (%.1f,%.1f) -> cell (%d,%d)", tt.cx, tt.cy, x, y, cx, cy)
		}
	}
}

func TestViewportToWorldUsesCellCenter(t *testing.T) {
	v := NewViewport(800, 600, 80, 60, 0)
	x, y := v.ToWorld(0, 0)
	if x != 5 || y != 5 {
		t.Errorf("ToWorld(0,0) = (%v,%v), want (5,5)", x, y)
	}
}

func TestViewportToCellClamps(t *testing.T) {
	v := NewViewport(800, 600, 80, 23, 1)

	if cx, cy := v.ToCell(-50, -50); cx != 0 || cy != 1 {
		t.Errorf("ToCell below range = (%d,%d), want (0,1)", cx, cy)
	}
	if cx, cy := v.ToCell(800, 600); cx != 79 || cy != 23 {
		t.Errorf("ToCell at far edge = (%d,%d), want (79,23)", cx, cy)
	}
}

func TestViewportContains(t *testing.T) {
	v := NewViewport(800, 600, 10, 5, 2)
	tests := []struct {
		cx, cy int
		want   bool
	}{
		{0, 2, true},
		{9, 6, true},
		{0, 1, false}, // HUD row
		{10, 3, false},
		{-1, 3, false},
		{3, 7, false},
	}
	for _, tt := range tests {
		if got := v.Contains(tt.cx, tt.cy); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.cx, tt.cy, got, tt.want)
		}
	}
}

func TestNewViewportMinimumSize(t *testing.T) {
	v := NewViewport(800, 600, 0, -3, 0)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("grid = %dx%d, want 1x1", v.Cols, v.Rows)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Errorf("default color should have no code, got %q", ColorDefault.ANSI())
	}
	if ColorOrange.ANSI() != "208" {
		t.Errorf("orange = %q, want 208", ColorOrange.ANSI())
	}
	if Color(200).ANSI() != "" {
		t.Error("unknown colors should have no code")
	}

	colors := Colors()
	if colors[0] != ColorDefault || colors[len(colors)-1] != ColorGray {
		t.Errorf("Colors() = %v", colors)
	}
	for _, c := range colors[1:] {
		if c.ANSI() == "" {
			t.Errorf("color %d has no ANSI code", c)
		}
	}
}
