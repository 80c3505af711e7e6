package t2048

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// pointerGate pairs a press with the next release. A release without a
// preceding press is ignored, and a second press while held is ignored too.
type pointerGate struct {
	down   bool
	startX int
	startY int
}

func (p *pointerGate) press(x, y int) {
	if p.down {
		return
	}
	p.down = true
	p.startX = x
	p.startY = y
}

// release closes the gate and returns the drag vector.
func (p *pointerGate) release(x, y int) (dx, dy int, ok bool) {
	if !p.down {
		return 0, 0, false
	}
	p.down = false
	return x - p.startX, y - p.startY, true
}

func (p *pointerGate) reset() {
	*p = pointerGate{}
}

// Swipe classifies a drag vector. The dominant axis wins; a tie goes to
// the vertical axis and a zero vertical component reads as Up. Drags
// shorter than threshold are discarded.
func Swipe(dx, dy, threshold float64) (engine.Direction, bool) {
	if math.Hypot(dx, dy) < threshold {
		return 0, false
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return engine.Right, true
		}
		return engine.Left, true
	}
	if dy > 0 {
		return engine.Down, true
	}
	return engine.Up, true
}

// actionDirections lists the move actions in priority order. Only one move
// is taken per frame.
var actionDirections = []struct {
	action core.Action
	dir    engine.Direction
}{
	{core.ActionUp, engine.Up},
	{core.ActionDown, engine.Down},
	{core.ActionLeft, engine.Left},
	{core.ActionRight, engine.Right},
}

func directionForFrame(in core.InputFrame) (engine.Direction, bool) {
	for _, ad := range actionDirections {
		if in.Has(ad.action) {
			return ad.dir, true
		}
	}
	return 0, false
}
