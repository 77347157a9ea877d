// Package geom holds the value types shared by the interaction engine and the renderer,
// plus the helpers that translate a raw pointer position into widget-local coordinates.
package geom

// Point is a position in drawing units (terminal cells or raster pixels)
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is the selection geometry: size plus translation from the reference origin
// Passed by value, so every copy handed out is an immutable snapshot
type Rect struct {
	Width  float64
	Height float64
	X      float64
	Y      float64
}

// Sub returns the component-wise difference r - o
func (r Rect) Sub(o Rect) Rect {
	return Rect{
		Width:  r.Width - o.Width,
		Height: r.Height - o.Height,
		X:      r.X - o.X,
		Y:      r.Y - o.Y,
	}
}

// Origin returns the translation as a point
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// PointInRect reports whether p lies inside the box spanned by topLeft and bottomRight, edges included
func PointInRect(topLeft, bottomRight, p Point) bool {
	return p.X >= topLeft.X &&
		p.Y >= topLeft.Y &&
		p.X <= bottomRight.X &&
		p.Y <= bottomRight.Y
}
