package core

// Color is the foreground color of a screen cell.
// The platform maps each value onto a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorGray
)
