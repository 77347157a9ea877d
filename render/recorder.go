package render

import (
	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/geom"
)

// OpKind identifies a recorded surface call
type OpKind uint8

const (
	OpSetSize OpKind = iota
	OpClear
	OpLine
	OpArc
	OpPlace
)

// Op is one recorded surface call; only the fields of its kind are set
type Op struct {
	Kind   OpKind
	Width  int
	Height int
	From   geom.Point
	To     geom.Point
	Line   LineStyle
	Marker affordance.MarkerStyle
}

// Recorder is a Surface and Placer that keeps every call in order
// Used by tests and by the snapshot command's frame statistics
type Recorder struct {
	Ops []Op

	width, height int
	placed        geom.Point
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetSize(width, height int) {
	r.width, r.height = width, height
	r.Ops = append(r.Ops, Op{Kind: OpSetSize, Width: width, Height: height})
}

func (r *Recorder) Clear(width, height int) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Width: width, Height: height})
}

func (r *Recorder) Line(from, to geom.Point, style LineStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: from, To: to, Line: style})
}

func (r *Recorder) Arc(center geom.Point, style affordance.MarkerStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, From: center, Marker: style})
}

func (r *Recorder) Place(x, y float64) {
	r.placed = geom.Point{X: x, Y: y}
	r.Ops = append(r.Ops, Op{Kind: OpPlace, From: r.placed})
}

// Size returns the last size set
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Placed returns the last placement
func (r *Recorder) Placed() geom.Point {
	return r.placed
}

// Reset drops recorded calls, keeping size and placement
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many calls of kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind, in order
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
