package core

// Color represents a foreground color for a screen cell.
// Frontends map it to their own palette (ANSI codes for lipgloss, tcell colors).
type Color uint8

// Fixed palette for runner elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
)
