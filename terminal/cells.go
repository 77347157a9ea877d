// Package terminal hosts the widget in a tcell screen: a cell-grid drawing surface, the
// pane it mounts into, a scrollable viewport and the event/frame loop.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/colorutil"
	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/render"
)

// Glyphs used for border dashes and markers
const (
	GlyphHorizontal = '─'
	GlyphVertical   = '│'
	GlyphDiagonal   = '·'
	GlyphMarker     = '●'
	GlyphFill       = ' '
)

// cell is one drawn grid position; rune 0 is empty
type cell struct {
	r     rune
	style tcell.Style
}

// CellSurface is a render.Surface on a grid of terminal cells
// It is positioned inside its parent pane at base; Place moves the drawing, not base
type CellSurface struct {
	cells  []cell
	width  int
	height int

	base   geom.Point
	placed geom.Point
	parent *Pane
}

// NewCellSurface creates an empty surface laid out at (left, top) inside its pane
func NewCellSurface(left, top float64) *CellSurface {
	return &CellSurface{base: geom.Point{X: left, Y: top}}
}

// SetSize reallocates the grid only if capacity is insufficient, then clears it
func (s *CellSurface) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(s.cells) < size {
		s.cells = make([]cell, size)
	} else {
		s.cells = s.cells[:size]
	}
	s.width = width
	s.height = height
	s.Clear(width, height)
}

// Clear empties the region (0,0)-(width,height)
func (s *CellSurface) Clear(width, height int) {
	if width >= s.width && height >= s.height {
		if len(s.cells) == 0 {
			return
		}
		// Exponential copy from one empty cell
		s.cells[0] = cell{}
		for filled := 1; filled < len(s.cells); filled *= 2 {
			copy(s.cells[filled:], s.cells[:filled])
		}
		return
	}
	for y := 0; y < height && y < s.height; y++ {
		for x := 0; x < width && x < s.width; x++ {
			s.cells[y*s.width+x] = cell{}
		}
	}
}

// inBounds returns true if inside the grid
func (s *CellSurface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *CellSurface) set(x, y int, r rune, style tcell.Style) {
	if s.inBounds(x, y) {
		s.cells[y*s.width+x] = cell{r: r, style: style}
	}
}

// Line plots a Bresenham line with box-drawing glyphs
func (s *CellSurface) Line(from, to geom.Point, style render.LineStyle) {
	x1, y1 := round(from.X), round(from.Y)
	x2, y2 := round(to.X), round(to.Y)

	glyph := GlyphDiagonal
	switch {
	case y1 == y2:
		glyph = GlyphHorizontal
	case x1 == x2:
		glyph = GlyphVertical
	}
	st := tcell.StyleDefault.Foreground(Color(colorutil.Or(style.Stroke, colorutil.Charcoal)))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		s.set(x1, y1, glyph, st)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Arc draws a marker: one cell for small radii, otherwise a filled disc with a stroked rim
func (s *CellSurface) Arc(center geom.Point, style affordance.MarkerStyle) {
	if style.Radius <= 0 {
		return
	}
	stroke := Color(colorutil.Or(style.Stroke, colorutil.Charcoal))
	fill := Color(colorutil.Or(style.Fill, colorutil.White))
	cx, cy := round(center.X), round(center.Y)

	if style.Radius < 1.5 {
		s.set(cx, cy, GlyphMarker, tcell.StyleDefault.Foreground(stroke).Background(fill))
		return
	}

	r := int(math.Ceil(style.Radius))
	inner := style.Radius - 0.5
	outer := style.Radius + 0.5
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			d := math.Hypot(float64(x-cx), float64(y-cy))
			switch {
			case d < inner:
				s.set(x, y, GlyphFill, tcell.StyleDefault.Background(fill))
			case d <= outer:
				s.set(x, y, GlyphMarker, tcell.StyleDefault.Foreground(stroke))
			}
		}
	}
}

// Place records the translation applied when flushing
func (s *CellSurface) Place(x, y float64) {
	s.placed = geom.Point{X: x, Y: y}
}

// Size returns the grid dimensions
func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

// Placed returns the current translation
func (s *CellSurface) Placed() geom.Point {
	return s.placed
}

// Cell returns the glyph and style at (x, y); rune 0 means empty or out of bounds
func (s *CellSurface) Cell(x, y int) (rune, tcell.Style) {
	if !s.inBounds(x, y) {
		return 0, tcell.StyleDefault
	}
	c := s.cells[y*s.width+x]
	return c.r, c.style
}

// Offset reports the layout position inside the parent pane; not laid out until mounted
func (s *CellSurface) Offset() (float64, float64, bool) {
	if s.parent == nil {
		return 0, 0, false
	}
	return s.base.X, s.base.Y, true
}

func (s *CellSurface) ClientInset() (float64, float64) {
	return 0, 0
}

// OffsetParent returns the pane, nil when detached
func (s *CellSurface) OffsetParent() geom.Positioned {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

// FlushTo writes the drawn cells to screen with the grid origin at (ox, oy) plus placement
func (s *CellSurface) FlushTo(screen tcell.Screen, ox, oy int) {
	sw, sh := screen.Size()
	left := ox + round(s.base.X+s.placed.X)
	top := oy + round(s.base.Y+s.placed.Y)

	for y := 0; y < s.height; y++ {
		py := top + y
		if py < 0 || py >= sh {
			continue
		}
		row := s.cells[y*s.width : (y+1)*s.width]
		for x, c := range row {
			px := left + x
			if c.r == 0 || px < 0 || px >= sw {
				continue
			}
			screen.SetContent(px, py, c.r, nil, c.style)
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
