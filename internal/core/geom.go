// Package core holds the types shared by games and hosts: the screen
// buffer, input frames and runtime settings. It has no Bubble Tea
// dependency so game logic stays testable on its own.
package core

// Rect is an axis-aligned area in screen cells. Right and Bottom are
// exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rectangle at (x, y) with size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks r by dx columns and dy rows on every side. The result
// never has a negative size.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: max(r.W-2*dx, 0),
		H: max(r.H-2*dy, 0),
	}
}

// ClampF limits val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	switch {
	case val < lo:
		return lo
	case val > hi:
		return hi
	}
	return val
}
