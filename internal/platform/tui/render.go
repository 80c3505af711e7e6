package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes. ColorDefault has no
// entry and leaves the terminal colour alone.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
	core.ColorBeige:         "230",
	core.ColorTan:           "223",
	core.ColorSalmon:        "209",
	core.ColorGold:          "220",
	core.ColorBlack:         "16",
}

type colorPair struct {
	fg, bg core.Color
}

// Renderer converts screen buffers to styled strings. Styles are built
// from one lipgloss renderer so SSH sessions get their own colour profile.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

// NewRenderer creates a renderer; a nil lipgloss renderer means the default
// one for stdout.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{lg: lg, styles: make(map[colorPair]lipgloss.Style)}
}

func (r *Renderer) style(p colorPair) lipgloss.Style {
	if s, ok := r.styles[p]; ok {
		return s
	}
	s := r.lg.NewStyle()
	if code, ok := ansiCodes[p.fg]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[p.bg]; ok {
		s = s.Background(lipgloss.Color(code))
	}
	r.styles[p] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Fg, cell.Bg}

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
