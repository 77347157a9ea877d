package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLine is a one-row bar at the bottom of the screen
type StatusLine struct {
	Style tcell.Style
}

// Draw fills row y with text, truncated to the screen width on display columns
func (s StatusLine) Draw(screen tcell.Screen, text string) {
	w, h := screen.Size()
	if h == 0 || w == 0 {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, s.Style)
	}
	drawText(screen, 0, y, w, text, s.Style)
}

// drawText writes text from (x, y) within width display columns, wide runes included
// Returns the number of columns used
func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	if width <= 0 {
		return 0
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}
	col := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += rw
	}
	return col
}
