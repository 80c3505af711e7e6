package t2048

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

func TestSwipe(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    float64
		threshold float64
		want      engine.Direction
		wantOK    bool
	}{
		{"right", 3, 1, 0.5, engine.Right, true},
		{"left", -3, 1, 0.5, engine.Left, true},
		{"down", 1, 2, 0.5, engine.Down, true},
		{"up", 1, -2, 0.5, engine.Up, true},
		{"tie goes vertical", 2, 2, 0.5, engine.Down, true},
		{"tie upward", -2, -2, 0.5, engine.Up, true},
		{"click without threshold reads as up", 0, 0, 0, engine.Up, true},
		{"below threshold", 0.1, 0.1, 0.5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Swipe(tt.dx, tt.dy, tt.threshold)
			if ok != tt.wantOK {
				t.Fatalf("Swipe(%v, %v) ok = %v, want %v", tt.dx, tt.dy, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Swipe(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestPointerGateState(t *testing.T) {
	var p pointerGate

	if _, _, ok := p.release(5, 5); ok {
		t.Error("release without press should be ignored")
	}

	p.press(1, 1)
	p.press(9, 9) // ignored while held
	dx, dy, ok := p.release(4, 3)
	if !ok || dx != 3 || dy != 2 {
		t.Errorf("release = (%d, %d, %v), want (3, 2, true)", dx, dy, ok)
	}

	if _, _, ok := p.release(4, 3); ok {
		t.Error("second release should be ignored")
	}
}
