package constants

// Widget Defaults
const (
	DefaultWidth  = 320
	DefaultHeight = 200

	DefaultDashSolid = 20
	DefaultDashGap   = 6

	DefaultMarkerRadius = 4
	DefaultMarkerStroke = "#333"
	DefaultMarkerFill   = "#fff"

	DefaultBorderStroke = "#333"
	DefaultBorderWidth  = 1
)

// Terminal Host Defaults
// One drawing unit is one cell, so the terminal demo runs at a much smaller scale
const (
	TerminalWidth        = 40
	TerminalHeight       = 12
	TerminalDashSolid    = 3
	TerminalDashGap      = 2
	TerminalMarkerRadius = 1
	TerminalPaneLeft     = 2
	TerminalPaneTop      = 1
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "antborder.log"
	MaxLogSize  = 10 * 1024 * 1024
)
