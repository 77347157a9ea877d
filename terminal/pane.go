package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/render"
)

// Pane is the screen region widgets mount into
// It implements widget.Container and geom.Positioned; a framed pane insets its content by one cell
type Pane struct {
	Left, Top     int
	Width, Height int
	Framed        bool
	Title         string

	children []render.Surface
}

// NewPane creates a pane at (left, top)
func NewPane(left, top, width, height int, framed bool) *Pane {
	return &Pane{Left: left, Top: top, Width: width, Height: height, Framed: framed}
}

// AppendChild attaches a surface; cell surfaces are laid out inside the pane
func (p *Pane) AppendChild(s render.Surface) {
	if s == nil {
		return
	}
	if cs, ok := s.(*CellSurface); ok {
		cs.parent = p
	}
	p.children = append(p.children, s)
}

// RemoveChild detaches a surface; unknown surfaces are ignored
func (p *Pane) RemoveChild(s render.Surface) {
	for i, child := range p.children {
		if child == s {
			if cs, ok := s.(*CellSurface); ok {
				cs.parent = nil
			}
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			return
		}
	}
}

// Children returns the number of attached surfaces
func (p *Pane) Children() int {
	return len(p.children)
}

func (p *Pane) Offset() (float64, float64, bool) {
	return float64(p.Left), float64(p.Top), true
}

func (p *Pane) ClientInset() (float64, float64) {
	if p.Framed {
		return 1, 1
	}
	return 0, 0
}

func (p *Pane) OffsetParent() geom.Positioned {
	return nil
}

// Draw renders the frame, then every cell surface shifted by the scroll offset
func (p *Pane) Draw(screen tcell.Screen, scroll geom.Point) {
	if p.Framed {
		p.drawFrame(screen)
	}
	il, it := p.ClientInset()
	ox := p.Left + int(il) - round(scroll.X)
	oy := p.Top + int(it) - round(scroll.Y)
	for _, child := range p.children {
		if cs, ok := child.(*CellSurface); ok {
			cs.FlushTo(screen, ox, oy)
		}
	}
}

func (p *Pane) drawFrame(screen tcell.Screen) {
	if p.Width < 2 || p.Height < 2 {
		return
	}
	x1, y1 := p.Left, p.Top
	x2, y2 := p.Left+p.Width-1, p.Top+p.Height-1

	for x := x1 + 1; x < x2; x++ {
		screen.SetContent(x, y1, tcell.RuneHLine, nil, StyleFrame)
		screen.SetContent(x, y2, tcell.RuneHLine, nil, StyleFrame)
	}
	for y := y1 + 1; y < y2; y++ {
		screen.SetContent(x1, y, tcell.RuneVLine, nil, StyleFrame)
		screen.SetContent(x2, y, tcell.RuneVLine, nil, StyleFrame)
	}
	screen.SetContent(x1, y1, tcell.RuneULCorner, nil, StyleFrame)
	screen.SetContent(x2, y1, tcell.RuneURCorner, nil, StyleFrame)
	screen.SetContent(x1, y2, tcell.RuneLLCorner, nil, StyleFrame)
	screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, StyleFrame)

	if p.Title != "" {
		drawText(screen, x1+2, y1, p.Width-4, " "+p.Title+" ", StyleTitle)
	}
}
