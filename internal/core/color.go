package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the flappy presentation.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBlue
	ColorOrange
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorTan
)
