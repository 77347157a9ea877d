// Package raster is an off-screen drawing surface backed by image.RGBA.
// Frames drawn into it can be encoded as PNG, BMP or TIFF snapshots.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/colorutil"
	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/render"
)

// Canvas implements render.Surface and render.Placer over an RGBA image
type Canvas struct {
	img    *image.RGBA
	origin geom.Point
	path   *vector.Rasterizer

	// Colors used when a style string does not parse
	defaultStroke color.RGBA
	defaultFill   color.RGBA
}

// NewCanvas allocates a transparent canvas
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		defaultStroke: colorutil.Charcoal,
		defaultFill:   colorutil.White,
	}
	c.SetSize(width, height)
	return c
}

// Image returns the backing image; it is replaced by SetSize
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Origin returns the last placement
func (c *Canvas) Origin() geom.Point {
	return c.origin
}

// SetSize reallocates the image, leaving it transparent
func (c *Canvas) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.path = vector.NewRasterizer(width, height)
}

// Clear resets the region to transparent
func (c *Canvas) Clear(width, height int) {
	r := image.Rect(0, 0, width, height).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, image.Transparent, image.Point{}, draw.Src)
}

// Place records the translation; the image itself stays surface-local
func (c *Canvas) Place(x, y float64) {
	c.origin = geom.Point{X: x, Y: y}
}

// Line strokes the segment style.Width pixels wide with square caps
// Endpoints address pixel centers, so a width 1 line covers both end pixels exactly
func (c *Canvas) Line(from, to geom.Point, style render.LineStyle) {
	if c.img.Bounds().Empty() {
		return
	}
	col := colorutil.Or(style.Stroke, c.defaultStroke)
	hw := style.Width / 2
	if !(hw >= 0.5) || math.IsInf(hw, 0) {
		hw = 0.5
	}

	x1, y1 := from.X+0.5, from.Y+0.5
	x2, y2 := to.X+0.5, to.Y+0.5
	if bad(x1) || bad(y1) || bad(x2) || bad(y2) {
		return
	}

	// Unit direction and its normal, scaled to half the width
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		dx, dy = hw, 0
	} else {
		dx, dy = dx/l*hw, dy/l*hw
	}
	nx, ny := -dy, dx

	c.begin()
	c.path.MoveTo(f32(x1-dx+nx), f32(y1-dy+ny))
	c.path.LineTo(f32(x2+dx+nx), f32(y2+dy+ny))
	c.path.LineTo(f32(x2+dx-nx), f32(y2+dy-ny))
	c.path.LineTo(f32(x1-dx-nx), f32(y1-dy-ny))
	c.path.ClosePath()
	c.paint(col)
}

// Arc fills a disc of style.Radius+0.5 in stroke, then one of style.Radius-0.5 in fill,
// leaving a one pixel ring
func (c *Canvas) Arc(center geom.Point, style affordance.MarkerStyle) {
	r := style.Radius
	if !(r > 0) || math.IsInf(r, 0) || c.img.Bounds().Empty() {
		return
	}
	cx, cy := center.X+0.5, center.Y+0.5
	if bad(cx) || bad(cy) {
		return
	}

	c.begin()
	c.circle(cx, cy, r+0.5)
	c.paint(colorutil.Or(style.Stroke, c.defaultStroke))

	if r > 0.5 {
		c.begin()
		c.circle(cx, cy, r-0.5)
		c.paint(colorutil.Or(style.Fill, c.defaultFill))
	}
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.path.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) paint(col color.RGBA) {
	c.path.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// kappa places cubic control points so four curves approximate a circle
const kappa = 0.5522847498

// circle adds a closed circular path as four cubic curves
func (c *Canvas) circle(cx, cy, r float64) {
	k := r * kappa
	c.path.MoveTo(f32(cx+r), f32(cy))
	c.path.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
	c.path.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
	c.path.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
	c.path.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
	c.path.ClosePath()
}

func f32(v float64) float32 {
	return float32(v)
}

func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
