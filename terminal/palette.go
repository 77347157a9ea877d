package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antborder/colorutil"
)

// Color converts an RGBA to a true-color tcell color; tcell downsamples on 256-color terminals
func Color(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// UI styles
var (
	StyleFrame  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleTitle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	StyleActive = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(Color(colorutil.Blend(colorutil.White, color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 255}, 0.6)))
)
