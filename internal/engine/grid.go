// Package engine implements the 2048 grid: tile storage, directional move
// resolution, random spawning and the terminal check.
//
// The engine is pure game logic. It never owns presentation objects; instead
// every mutation is reported as an Event so the caller can keep its own
// mapping from cell position to whatever visual handle it draws.
//
// A Grid is not safe for concurrent use. Callers serialize access, which the
// TUI does naturally by driving it from a single Bubble Tea update loop.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultSpawn4Probability is the chance that a spawned tile is a 4.
const DefaultSpawn4Probability = 0.5

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("engine: rows and cols must be positive")

	// ErrInvalidValue is returned by Load for values that are neither 0 nor a
	// power of two greater than one.
	ErrInvalidValue = errors.New("engine: tile value must be 0 or a power of two >= 2")
)

// Pos identifies a cell by row and column.
type Pos struct {
	Row int
	Col int
}

// String returns "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// add returns p shifted by the given step.
func (p Pos) add(s step) Pos {
	return Pos{Row: p.Row + s.dRow, Col: p.Col + s.dCol}
}

// Cell is one position on the grid.
type Cell struct {
	Pos    Pos
	Value  int  // 0 means empty
	Merged bool // absorbed a merge during the current move
}

// Empty reports whether the cell holds no tile.
func (c *Cell) Empty() bool {
	return c.Value == 0
}

// clear empties the cell.
func (c *Cell) clear() {
	c.Value = 0
	c.Merged = false
}

// Grid is a fixed-size matrix of cells. It is allocated once by New and
// reset in place afterwards.
type Grid struct {
	rows   int
	cols   int
	cells  [][]Cell
	rng    *rand.Rand
	spawn4 float64
	logger *log.Logger
}

// Option configures a Grid.
type Option func(*Grid)

// WithRand sets the random source used by SpawnTile.
func WithRand(rng *rand.Rand) Option {
	return func(g *Grid) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSpawn4Probability sets the chance (0..1) of spawning a 4 instead of a 2.
func WithSpawn4Probability(p float64) Option {
	return func(g *Grid) {
		switch {
		case p < 0:
			g.spawn4 = 0
		case p > 1:
			g.spawn4 = 1
		default:
			g.spawn4 = p
		}
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.logger = l
		}
	}
}

// New allocates a rows x cols grid with every cell empty.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}

	g := &Grid{
		rows:   rows,
		cols:   cols,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		spawn4: DefaultSpawn4Probability,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.cells = make([][]Cell, rows)
	for r := range rows {
		g.cells[r] = make([]Cell, cols)
		for c := range cols {
			g.cells[r][c].Pos = Pos{Row: r, Col: c}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Contains reports whether p lies on the grid.
func (g *Grid) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cell returns a copy of the cell at p. Out-of-range positions return an
// empty cell carrying p.
func (g *Grid) Cell(p Pos) Cell {
	if !g.Contains(p) {
		return Cell{Pos: p}
	}
	return g.cells[p.Row][p.Col]
}

// Value returns the tile value at (row, col), or 0 when out of range.
func (g *Grid) Value(row, col int) int {
	return g.Cell(Pos{Row: row, Col: col}).Value
}

// at returns a pointer to the cell at p. p must be on the grid.
func (g *Grid) at(p Pos) *Cell {
	return &g.cells[p.Row][p.Col]
}

// Values returns a copy of all tile values indexed [row][col].
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.rows {
		out[r] = make([]int, g.cols)
		for c := range g.cols {
			out[r][c] = g.cells[r][c].Value
		}
	}
	return out
}

// Load replaces the grid contents with values. The dimensions must match
// the grid exactly.
func (g *Grid) Load(values [][]int) error {
	if len(values) != g.rows {
		return fmt.Errorf("%w: load has %d rows, grid has %d", ErrInvalidSize, len(values), g.rows)
	}
	for r, row := range values {
		if len(row) != g.cols {
			return fmt.Errorf("%w: load row %d has %d cols, grid has %d", ErrInvalidSize, r, len(row), g.cols)
		}
		for c, v := range row {
			if !validValue(v) {
				return fmt.Errorf("%w: %d at %v", ErrInvalidValue, v, Pos{Row: r, Col: c})
			}
		}
	}

	for r, row := range values {
		for c, v := range row {
			g.cells[r][c].Value = v
			g.cells[r][c].Merged = false
		}
	}
	return nil
}

func validValue(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// Reset empties every cell in place and returns a Destroyed event for each
// tile that was removed.
func (g *Grid) Reset() []Event {
	var events []Event
	for r := range g.rows {
		for c := range g.cols {
			cell := &g.cells[r][c]
			if !cell.Empty() {
				events = append(events, Event{Kind: Destroyed, From: cell.Pos, To: cell.Pos, Value: cell.Value})
			}
			cell.clear()
		}
	}
	return events
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Pos {
	var out []Pos
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c].Empty() {
				out = append(out, g.cells[r][c].Pos)
			}
		}
	}
	return out
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

// IsFull reports whether every cell holds a tile.
//
// A full grid counts as terminal even when neighbouring tiles could still
// merge; the game ends on a full board, not on "no legal move".
func (g *Grid) IsFull() bool {
	return g.EmptyCount() == 0
}

// MaxTile returns the highest tile value on the grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for r := range g.rows {
		for c := range g.cols {
			if v := g.cells[r][c].Value; v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// SpawnTile places a 2 or a 4 on a uniformly chosen empty cell. It returns
// the Created event and true, or false when the grid has no empty cell.
// Callers check IsFull first; spawning on a full grid is a no-op.
func (g *Grid) SpawnTile() (Event, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		g.logger.Debug("spawn skipped, grid is full")
		return Event{}, false
	}

	pos := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < g.spawn4 {
		value = 4
	}

	cell := g.at(pos)
	cell.Value = value
	cell.Merged = false

	return Event{Kind: Created, From: pos, To: pos, Value: value}, true
}

// String renders the grid as rows of right-aligned values, '.' for empty.
func (g *Grid) String() string {
	width := len(strconv.Itoa(g.MaxTile()))
	var sb strings.Builder
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			s := "."
			if v := g.cells[r][c].Value; v != 0 {
				s = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", max(0, width-len(s))))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
