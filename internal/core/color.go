package core

// Color is a palette entry for a screen cell's foreground or background.
// Hosts map entries to terminal colours; ColorDefault leaves the terminal's
// own colour in place.
type Color uint8

const (
	ColorDefault Color = iota

	// ANSI base colours.
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// Extended shades, mostly for tiles.
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBeige
	ColorTan
	ColorSalmon
	ColorGold
	ColorBlack
)
