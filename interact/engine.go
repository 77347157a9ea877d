// Package interact owns the selection rectangle and turns pointer gestures into
// constrained drag and resize steps.
package interact

import (
	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/event"
	"github.com/lixenwraith/antborder/geom"
)

// Hooks receives every accepted step, before listeners are notified
type Hooks interface {
	OnDrag(r geom.Rect)
	OnResize(r geom.Rect)
}

// Options are the engine's construction-time constraints
type Options struct {
	Draggable  bool
	Resizable  bool
	FixedRatio bool
	Markers    affordance.Markers
}

// Engine owns the current and reference rectangles and the per-gesture state
// Not safe for concurrent use: it expects the single host execution context
type Engine struct {
	current   geom.Rect
	reference geom.Rect
	ratio     float64

	opts    Options
	allowed [affordance.ZoneCount]bool

	// Gesture state
	tracking bool
	active   affordance.Zone
	last     geom.Point

	hooks   Hooks
	emitter *event.Emitter
}

// NewEngine creates an engine tracking initial as both current and reference rectangle
// A nil emitter gets a private one
func NewEngine(initial geom.Rect, opts Options, emitter *event.Emitter) *Engine {
	if emitter == nil {
		emitter = event.NewEmitter()
	}
	e := &Engine{
		opts:    opts,
		active:  affordance.Inner,
		emitter: emitter,
	}
	e.allowed = gestureTable(opts)
	e.Restore(initial)
	return e
}

// gestureTable resolves which zones may start a gesture
// Disabling resize also blocks dragging
func gestureTable(opts Options) [affordance.ZoneCount]bool {
	var t [affordance.ZoneCount]bool
	for z := affordance.Zone(0); z < affordance.ZoneCount; z++ {
		switch {
		case z == affordance.Inner:
			t[z] = false
		case z.IsDrag():
			t[z] = opts.Draggable && opts.Resizable
		case z.IsMidEdge():
			t[z] = opts.Resizable && !opts.FixedRatio
		case z.IsResize():
			t[z] = opts.Resizable
		}
	}
	return t
}

// SetHooks installs the hook receiver; nil removes it
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
}

// Emitter returns the notifier the engine raises drag and change on
func (e *Engine) Emitter() *event.Emitter {
	return e.emitter
}

// Options returns the construction options
func (e *Engine) Options() Options {
	return e.opts
}

// Current returns the committed rectangle
func (e *Engine) Current() geom.Rect {
	return e.current
}

// Reference returns the baseline rectangle deltas are measured against
func (e *Engine) Reference() geom.Rect {
	return e.reference
}

// Ratio returns the width/height ratio locked corners preserve
func (e *Engine) Ratio() float64 {
	return e.ratio
}

// MarkerRadius is the largest enabled marker radius, the hit-box half side
func (e *Engine) MarkerRadius() float64 {
	return e.opts.Markers.MaxRadius()
}

// MinimumSize is twice the largest marker radius
func (e *Engine) MinimumSize() float64 {
	return e.MarkerRadius() * 2
}

// Anchors returns the marker centers for the current rectangle, rectangle-relative
func (e *Engine) Anchors() affordance.Anchors {
	return affordance.ComputeAnchors(e.current.Width, e.current.Height, e.MarkerRadius())
}

// Allowed reports whether a gesture may start on z
func (e *Engine) Allowed(z affordance.Zone) bool {
	if z >= affordance.ZoneCount {
		return false
	}
	return e.allowed[z]
}

// Tracking reports whether a gesture is in progress
func (e *Engine) Tracking() bool {
	return e.tracking
}

// Active returns the zone of the gesture in progress, Inner when idle
func (e *Engine) Active() affordance.Zone {
	return e.active
}

// HitTest maps a point in reference-origin coordinates to a zone
// Markers win over edge bands; first match in NW..SE order, then top, bottom, left, right
func (e *Engine) HitTest(p geom.Point) affordance.Zone {
	r := e.MarkerRadius()
	anchors := e.Anchors()
	origin := e.current.Origin()

	for _, z := range affordance.ResizeZones {
		if e.opts.Markers.Of(z).Radius <= 0 {
			continue
		}
		center := origin.Add(anchors.At(z))
		tl := geom.Point{X: center.X - r, Y: center.Y - r}
		br := geom.Point{X: center.X + r, Y: center.Y + r}
		if geom.PointInRect(tl, br, p) {
			return z
		}
	}

	nw := origin.Add(anchors.At(affordance.NW))
	se := origin.Add(anchors.At(affordance.SE))
	switch {
	case p.Y <= nw.Y+r:
		return affordance.Top
	case p.Y >= se.Y-r:
		return affordance.Bottom
	case p.X <= nw.X+r:
		return affordance.Left
	case p.X >= se.X-r:
		return affordance.Right
	}
	return affordance.Inner
}

// BeginGesture starts tracking zone from pointer position p
// Returns false without touching state when the zone may not start a gesture
func (e *Engine) BeginGesture(z affordance.Zone, p geom.Point) bool {
	if !e.Allowed(z) {
		return false
	}
	e.tracking = true
	e.active = z
	e.last = p
	return true
}

// StepGesture applies the pointer delta since the last accepted position
// A candidate with width <= MinimumSize or height < MinimumSize is dropped: state is
// unchanged, the gesture keeps tracking and the result is false. An accepted step commits,
// runs the hooks, then emits drag (carrying raw) and change
func (e *Engine) StepGesture(p geom.Point, raw event.Pointer) (geom.Rect, bool) {
	if !e.tracking {
		return geom.Rect{}, false
	}

	dx := p.X - e.last.X
	dy := p.Y - e.last.Y
	candidate := Apply(e.active, e.current, dx, dy, e.ratio, e.opts.FixedRatio)

	minimum := e.MinimumSize()
	if candidate.Width <= minimum || candidate.Height < minimum {
		return geom.Rect{}, false
	}

	e.current = candidate
	e.last = p

	if e.hooks != nil {
		e.hooks.OnDrag(candidate)
		e.hooks.OnResize(candidate)
	}

	e.emitter.Emit(event.Event{Type: event.Drag, Pointer: raw})
	e.emitter.Emit(event.Event{
		Type: event.Change,
		Change: event.ChangePayload{
			Delta:     e.Delta(),
			Current:   candidate,
			Reference: e.reference,
		},
	})
	return candidate, true
}

// EndGesture discards the gesture state; committed steps stay
func (e *Engine) EndGesture() {
	e.tracking = false
	e.active = affordance.Inner
	e.last = geom.Point{}
}

// Delta returns Current minus Reference
func (e *Engine) Delta() geom.Rect {
	return e.current.Sub(e.reference)
}

// Restore replaces both rectangles with r and recaptures the lock ratio from it
func (e *Engine) Restore(r geom.Rect) {
	e.reference = r
	e.current = r
	if r.Height != 0 {
		e.ratio = r.Width / r.Height
	} else {
		e.ratio = 1
	}
}
