package t2048

import (
	"maps"
	"slices"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Tile is the visual counterpart of one occupied grid cell. Tiles are
// created, moved and dropped only by engine events, never by reading the
// grid.
type Tile struct {
	Value  int
	Pos    engine.Pos // logical position
	From   engine.Pos // slide start
	Merged bool       // absorbed another tile this move
	New    bool       // spawned this move
}

// ghost is a merge source sliding into its target before it disappears.
type ghost struct {
	Value int
	From  engine.Pos
	To    engine.Pos
}

// boardView keeps the tiles in step with the grid and times the slide and
// pop phases.
type boardView struct {
	tiles  map[engine.Pos]*Tile
	ghosts []ghost

	enabled    bool
	slideTicks int
	popTicks   int
	ticks      int
	animating  bool
}

func newBoardView(cfg config.AnimationConfig) *boardView {
	return &boardView{
		tiles:      make(map[engine.Pos]*Tile),
		enabled:    cfg.Enabled,
		slideTicks: max(cfg.SlideTicks, 1),
		popTicks:   max(cfg.PopTicks, 1),
	}
}

// apply folds events into the tile map. Events of one move must be applied
// in emission order.
func (b *boardView) apply(events ...engine.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case engine.Created:
			b.tiles[ev.To] = &Tile{Value: ev.Value, Pos: ev.To, From: ev.To, New: true}

		case engine.Moved:
			t := b.take(ev.From, ev.Value)
			t.From = ev.From
			t.Pos = ev.To
			b.tiles[ev.To] = t

		case engine.Merged:
			src := b.take(ev.From, ev.Value/2)
			b.ghosts = append(b.ghosts, ghost{Value: src.Value, From: src.From, To: ev.To})
			dst, ok := b.tiles[ev.To]
			if !ok {
				dst = &Tile{Pos: ev.To, From: ev.To}
				b.tiles[ev.To] = dst
			}
			dst.Value = ev.Value
			dst.Merged = true

		case engine.Destroyed:
			delete(b.tiles, ev.From)
		}
	}
}

// take removes and returns the tile at p. A missing tile is rebuilt from
// the event so the view heals rather than panics.
func (b *boardView) take(p engine.Pos, value int) *Tile {
	t, ok := b.tiles[p]
	if !ok {
		return &Tile{Value: value, Pos: p, From: p}
	}
	delete(b.tiles, p)
	return t
}

// start begins presenting the events applied since the last start. A
// presentation still in progress is cut short.
func (b *boardView) start() {
	b.ticks = 0
	b.animating = true
	if !b.enabled {
		b.finish()
	}
}

// update advances the presentation by one tick.
func (b *boardView) update() {
	if !b.animating {
		return
	}
	b.ticks++
	if b.ticks >= b.slideTicks+b.popTicks {
		b.finish()
	}
}

// finish snaps every tile to its logical position.
func (b *boardView) finish() {
	b.animating = false
	b.ghosts = b.ghosts[:0]
	for _, t := range b.tiles {
		t.From = t.Pos
		t.Merged = false
		t.New = false
	}
}

// sliding reports whether tiles are still travelling.
func (b *boardView) sliding() bool {
	return b.animating && b.ticks < b.slideTicks
}

// slideProgress is the eased slide completion in [0, 1].
func (b *boardView) slideProgress() float64 {
	if !b.animating {
		return 1
	}
	return easeOutQuad(core.ClampF(float64(b.ticks)/float64(b.slideTicks), 0, 1))
}

// popping reports whether new tiles are in their pop phase.
func (b *boardView) popping() bool {
	return b.animating && b.ticks >= b.slideTicks
}

// values renders the tile map as a value matrix.
func (b *boardView) values(rows, cols int) [][]int {
	out := make([][]int, rows)
	for r := range out {
		out[r] = make([]int, cols)
	}
	for p, t := range b.tiles {
		if p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols {
			out[p.Row][p.Col] = t.Value
		}
	}
	return out
}

// sortedTiles returns tiles in row-major order for stable drawing.
func (b *boardView) sortedTiles() []*Tile {
	keys := slices.SortedFunc(maps.Keys(b.tiles), func(a, c engine.Pos) int {
		if a.Row != c.Row {
			return a.Row - c.Row
		}
		return a.Col - c.Col
	})
	out := make([]*Tile, 0, len(keys))
	for _, k := range keys {
		out = append(out, b.tiles[k])
	}
	return out
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// lerp interpolates between two grid positions.
func lerp(from, to engine.Pos, t float64) (row, col float64) {
	row = float64(from.Row) + float64(to.Row-from.Row)*t
	col = float64(from.Col) + float64(to.Col-from.Col)*t
	return row, col
}
