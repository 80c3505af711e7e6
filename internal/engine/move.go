package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid direction.
var Directions = []Direction{Up, Down, Left, Right}

// Browser key codes for the arrow keys.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// DirectionForKeyCode maps an arrow key code (37-40) to a direction.
func DirectionForKeyCode(code int) (Direction, bool) {
	switch code {
	case KeyCodeLeft:
		return Left, true
	case KeyCodeUp:
		return Up, true
	case KeyCodeRight:
		return Right, true
	case KeyCodeDown:
		return Down, true
	}
	return 0, false
}

// ParseDirection accepts a direction name ("left"), its initial ("l") or an
// arrow key code ("37").
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	if code, err := strconv.Atoi(s); err == nil {
		if d, ok := DirectionForKeyCode(code); ok {
			return d, nil
		}
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// step is a unit offset in (row, col) space.
type step struct {
	dRow, dCol int
}

// sweep describes how a direction is resolved: which lines exist, where each
// line starts (the edge the tiles move toward) and which way the sweep walks
// from there.
type sweep struct {
	lines  int
	length int
	start  func(line int) Pos
	walk   step
}

// sweepFor returns the sweep for d. ok is false for invalid directions.
func (g *Grid) sweepFor(d Direction) (sweep, bool) {
	switch d {
	case Left:
		return sweep{
			lines: g.rows, length: g.cols,
			start: func(i int) Pos { return Pos{Row: i, Col: 0} },
			walk:  step{dCol: 1},
		}, true
	case Right:
		return sweep{
			lines: g.rows, length: g.cols,
			start: func(i int) Pos { return Pos{Row: i, Col: g.cols - 1} },
			walk:  step{dCol: -1},
		}, true
	case Up:
		return sweep{
			lines: g.cols, length: g.rows,
			start: func(i int) Pos { return Pos{Row: 0, Col: i} },
			walk:  step{dRow: 1},
		}, true
	case Down:
		return sweep{
			lines: g.cols, length: g.rows,
			start: func(i int) Pos { return Pos{Row: g.rows - 1, Col: i} },
			walk:  step{dRow: -1},
		}, true
	}
	return sweep{}, false
}

// Move slides every tile toward d, merging equal neighbours at most once
// per tile, and reports what changed.
func (g *Grid) Move(d Direction) Outcome {
	out := Outcome{Direction: d}

	sw, ok := g.sweepFor(d)
	if !ok {
		out.Full = g.IsFull()
		return out
	}

	g.clearMerged()
	for i := range sw.lines {
		g.resolveLine(sw.start(i), sw.walk, sw.length, &out)
	}
	g.clearMerged()

	out.Changed = len(out.Events) > 0
	out.Full = g.IsFull()
	return out
}

// resolveLine runs the frontier sweep over one line. Index k addresses the
// k-th cell counted from the target edge.
func (g *Grid) resolveLine(edge Pos, walk step, length int, out *Outcome) {
	posAt := func(k int) Pos {
		return Pos{Row: edge.Row + k*walk.dRow, Col: edge.Col + k*walk.dCol}
	}

	frontier := 0
	for k := 1; k < length; k++ {
		src := g.at(posAt(k))
		if src.Empty() {
			continue
		}
		front := g.at(posAt(frontier))

		switch {
		case front.Value == src.Value && !front.Merged:
			front.Value *= 2
			front.Merged = true
			out.Merges++
			out.Events = append(out.Events, Event{Kind: Merged, From: src.Pos, To: front.Pos, Value: front.Value})
			src.clear()

		case front.Empty() || frontier+1 != k:
			target := frontier
			if !front.Empty() {
				target = frontier + 1
			}
			dst := g.at(posAt(target))
			dst.Value = src.Value
			out.Events = append(out.Events, Event{Kind: Moved, From: src.Pos, To: dst.Pos, Value: dst.Value})
			src.clear()
			frontier = target

		default:
			frontier = k
		}
	}
}

// clearMerged resets the per-move merge flag on every cell.
func (g *Grid) clearMerged() {
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c].Merged = false
		}
	}
}

// CanMove reports whether a move in d would change the grid. The grid is
// not modified.
func (g *Grid) CanMove(d Direction) bool {
	sw, ok := g.sweepFor(d)
	if !ok {
		return false
	}
	for i := range sw.lines {
		edge := sw.start(i)
		prev := 0
		for k := range sw.length {
			v := g.at(edge.add(step{dRow: k * sw.walk.dRow, dCol: k * sw.walk.dCol})).Value
			if v == 0 {
				prev = -1
				continue
			}
			if prev == -1 || prev == v {
				return true
			}
			prev = v
		}
	}
	return false
}
