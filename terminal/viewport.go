package terminal

import "github.com/lixenwraith/antborder/geom"

// Viewport is the scroll position of the pane content
// It reports through the standard page offset only; the legacy pair stays zero
type Viewport struct {
	x, y       int
	maxX, maxY int
}

// NewViewport creates a viewport scrollable up to (maxX, maxY)
func NewViewport(maxX, maxY int) *Viewport {
	return &Viewport{maxX: maxX, maxY: maxY}
}

// ScrollBy moves the viewport, clamped to [0, max]
func (v *Viewport) ScrollBy(dx, dy int) {
	v.x = clamp(v.x+dx, 0, v.maxX)
	v.y = clamp(v.y+dy, 0, v.maxY)
}

// SetLimits changes the scroll range and re-clamps the position
func (v *Viewport) SetLimits(maxX, maxY int) {
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	v.maxX, v.maxY = maxX, maxY
	v.ScrollBy(0, 0)
}

func (v *Viewport) PageOffset() geom.Point {
	return geom.Point{X: float64(v.x), Y: float64(v.y)}
}

func (v *Viewport) DocumentScroll() geom.Point {
	return geom.Point{}
}

func (v *Viewport) BodyScroll() geom.Point {
	return geom.Point{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
