// Package render draws the marching-ants border and the resize markers onto a host
// drawing surface, one frame per scheduler tick.
package render

import (
	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/geom"
)

// LineStyle is the border stroke
type LineStyle struct {
	Stroke string
	Width  float64
}

// DefaultLineStyle is a 1 unit dark stroke
var DefaultLineStyle = LineStyle{Stroke: "#333", Width: 1}

// Surface is the drawing primitive set a host provides
// Coordinates are surface-local, origin at the top-left
type Surface interface {
	// SetSize reallocates the surface, which clears it
	SetSize(width, height int)

	// Clear erases the region (0,0)-(width,height)
	Clear(width, height int)

	// Line strokes a straight segment
	Line(from, to geom.Point, style LineStyle)

	// Arc strokes then fills a full circle of style.Radius around center
	Arc(center geom.Point, style affordance.MarkerStyle)
}

// Placer is implemented by surfaces that can be moved by their host
// Border calls Place with the rectangle translation on every drag step
type Placer interface {
	Place(x, y float64)
}

// Size rounds a rectangle's dimensions to surface units, never below zero
func Size(r geom.Rect) (int, int) {
	w := int(r.Width + 0.5)
	h := int(r.Height + 0.5)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
