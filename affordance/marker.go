package affordance

import "github.com/lixenwraith/antborder/geom"

// MarkerStyle is the look of one marker; Radius 0 disables the marker
type MarkerStyle struct {
	Radius float64
	Stroke string
	Fill   string
}

// Markers is the fully populated per-zone style record, indexed by resize zone
type Markers [ResizeZoneCount]MarkerStyle

// DefaultMarker is the stock marker: 4 units, dark stroke, white fill
var DefaultMarker = MarkerStyle{Radius: 4, Stroke: "#333", Fill: "#fff"}

// Uniform applies one style to all eight zones
func Uniform(style MarkerStyle) Markers {
	var m Markers
	for i := range m {
		m[i] = style
	}
	return m
}

// FromOverrides builds a record from a per-zone map
// Overrides that do not name every resize zone, or that name a non-resize zone, are
// rejected in favor of Uniform(fallback); the second result reports whether the map was used
func FromOverrides(overrides map[Zone]MarkerStyle, fallback MarkerStyle) (Markers, bool) {
	if len(overrides) != ResizeZoneCount {
		return Uniform(fallback), false
	}
	var m Markers
	for _, z := range ResizeZones {
		style, ok := overrides[z]
		if !ok {
			return Uniform(fallback), false
		}
		m[z] = style
	}
	return m, true
}

// Of returns the style for a resize zone; other zones get a zero style
func (m Markers) Of(z Zone) MarkerStyle {
	if !z.IsResize() {
		return MarkerStyle{}
	}
	return m[z]
}

// MaxRadius is the largest radius among enabled markers, 0 when none are enabled
func (m Markers) MaxRadius() float64 {
	var r float64
	for _, s := range m {
		if s.Radius > r {
			r = s.Radius
		}
	}
	return r
}

// Anchors holds marker centers relative to the rectangle's top-left, indexed by resize zone
type Anchors [ResizeZoneCount]geom.Point

// ComputeAnchors places the markers for a width x height rectangle
// Corners sit one unit inside the largest marker radius; mid-edge markers sit two units
// before the half-way point
func ComputeAnchors(width, height, radius float64) Anchors {
	lx := radius + 1
	mx := width/2 - 2
	rx := width - radius - 1

	ty := radius + 1
	my := height/2 - 2
	by := height - radius - 1

	return Anchors{
		NW: {X: lx, Y: ty},
		N:  {X: mx, Y: ty},
		NE: {X: rx, Y: ty},
		W:  {X: lx, Y: my},
		E:  {X: rx, Y: my},
		SW: {X: lx, Y: by},
		S:  {X: mx, Y: by},
		SE: {X: rx, Y: by},
	}
}

// At returns the anchor of a resize zone
func (a Anchors) At(z Zone) geom.Point {
	if !z.IsResize() {
		return geom.Point{}
	}
	return a[z]
}
