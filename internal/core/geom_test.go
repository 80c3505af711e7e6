package core

import "testing"

func TestRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), want (25, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), want (15, 17)", cx, cy)
	}

	points := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 10, 12, true},
		{"top-left corner", 5, 10, true},
		{"last cell", 24, 24, true},
		{"right edge is exclusive", 25, 12, false},
		{"bottom edge is exclusive", 10, 25, false},
		{"left of", 4, 12, false},
		{"above", 10, 9, false},
	}
	for _, p := range points {
		t.Run(p.name, func(t *testing.T) {
			if got := r.Contains(p.x, p.y); got != p.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", p.x, p.y, got, p.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		dx, dy int
		want   Rect
	}{
		{"tile interior", NewRect(1, 1, 6, 3), 1, 1, NewRect(2, 2, 4, 1)},
		{"horizontal only", NewRect(0, 0, 6, 3), 2, 0, NewRect(2, 0, 2, 3)},
		{"collapses to empty", NewRect(0, 0, 2, 2), 3, 3, NewRect(3, 3, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Inset(%d, %d) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{1.5, 1},
		{1, 1},
	}
	for _, tt := range tests {
		if got := ClampF(tt.val, 0, 1); got != tt.want {
			t.Errorf("ClampF(%v, 0, 1) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestRuntimeConfigWithDefaults(t *testing.T) {
	got := RuntimeConfig{Seed: 9}.WithDefaults()
	want := RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate, Seed: 9}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}

	custom := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30}
	if custom.WithDefaults() != custom {
		t.Error("WithDefaults() changed explicit values")
	}
}
