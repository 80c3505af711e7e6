package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 4 // Height of each cell (including top border)
	hudHeight  = 3
)

// layout is where the board sits on the screen.
type layout struct {
	board core.Rect
	minW  int
	minH  int
}

func computeLayout(rows, cols, screenW int) layout {
	boardW := cols*cellWidth + 1  // +1 for right border
	boardH := rows*cellHeight + 1 // +1 for bottom border
	boardX := max((screenW-boardW)/2, 0)
	return layout{
		board: core.NewRect(boardX, hudHeight+1, boardW, boardH),
		minW:  boardW,
		minH:  hudHeight + 1 + boardH,
	}
}

// tileStyle holds the colours for one tile value.
type tileStyle struct {
	fg, bg core.Color
}

var tileStyles = map[int]tileStyle{
	2:    {core.ColorBlack, core.ColorBeige},
	4:    {core.ColorBlack, core.ColorTan},
	8:    {core.ColorBrightWhite, core.ColorOrange},
	16:   {core.ColorBrightWhite, core.ColorSalmon},
	32:   {core.ColorBrightWhite, core.ColorRed},
	64:   {core.ColorBrightWhite, core.ColorBrightRed},
	128:  {core.ColorBlack, core.ColorBrightYellow},
	256:  {core.ColorBlack, core.ColorYellow},
	512:  {core.ColorBlack, core.ColorGold},
	1024: {core.ColorBrightWhite, core.ColorGreen},
	2048: {core.ColorBrightWhite, core.ColorMagenta},
}

// styleFor returns the colours for value; anything past 2048 shares one style.
func styleFor(value int) tileStyle {
	if s, ok := tileStyles[value]; ok {
		return s
	}
	return tileStyle{core.ColorBrightWhite, core.ColorBrightMagenta}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.grid == nil {
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGridLines(dst)
	g.renderTiles(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH))
}

// renderHUD draws the title, score and max tile above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	b := g.layout.board

	title := "2048"
	dst.DrawText(b.X+(b.W-len(title))/2, 0, title)

	dst.DrawText(b.X, 1, fmt.Sprintf("Score: %d", g.score))

	info := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	dst.DrawText(max(b.X+b.W-len(info), b.X), 1, info)

	moves := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(b.X+(b.W-len(moves))/2, 2, moves)
}

// renderGridLines draws the rows x cols cell borders.
func (g *Game) renderGridLines(dst *core.Screen) {
	rows, cols := g.grid.Rows(), g.grid.Cols()
	b := g.layout.board

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := b.X + x*cellWidth
			py := b.Y + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, core.Cell{Rune: corner, Fg: core.ColorGray})

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Fg: core.ColorGray})
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Fg: core.ColorGray})
				}
			}
		}
	}
}

// renderTiles draws merge ghosts and tiles at their animated positions.
// New tiles appear once the slide is over.
func (g *Game) renderTiles(dst *core.Screen) {
	bv := g.board
	sliding := bv.sliding()
	t := bv.slideProgress()

	if sliding {
		for _, gh := range bv.ghosts {
			row, col := lerp(gh.From, gh.To, t)
			g.drawTile(dst, row, col, gh.Value, false)
		}
	}

	for _, tile := range bv.sortedTiles() {
		switch {
		case tile.New && sliding:
			continue
		case sliding:
			value := tile.Value
			if tile.Merged {
				value /= 2
			}
			row, col := lerp(tile.From, tile.Pos, t)
			g.drawTile(dst, row, col, value, false)
		default:
			pop := tile.New && bv.popping()
			g.drawTile(dst, float64(tile.Pos.Row), float64(tile.Pos.Col), tile.Value, pop)
		}
	}
}

// drawTile fills one cell interior at a fractional board position.
func (g *Game) drawTile(dst *core.Screen, row, col float64, value int, pop bool) {
	b := g.layout.board
	px := b.X + int(math.Round(col*cellWidth)) + 1
	py := b.Y + int(math.Round(row*cellHeight)) + 1
	w, h := cellWidth-1, cellHeight-1

	style := styleFor(value)
	area := core.NewRect(px, py, w, h)
	if pop {
		area = area.Inset(1, h/2)
	}
	dst.FillRect(area, ' ', style.fg, style.bg)

	label := strconv.Itoa(value)
	dst.DrawTextColor(px+max((w-len(label))/2, 0), py+h/2, label, style.fg, style.bg)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX, centerY := g.layout.board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.phase == PhaseGameOver {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Max tile: %d", g.grid.MaxTile()),
			"Press R to restart",
		)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.FillRect(box, ' ', core.ColorDefault, core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
