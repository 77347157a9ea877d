package interact

import (
	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/event"
	"github.com/lixenwraith/antborder/geom"
)

// Controller turns raw press/move/release reports into engine gestures
// Hit testing uses target-local coordinates; gesture deltas use raw client coordinates
type Controller struct {
	engine *Engine
	target geom.Positioned
	scroll geom.ScrollSource

	hover  affordance.Zone
	cursor string
}

// NewController binds a controller to engine; target and scroll may be nil
func NewController(engine *Engine, target geom.Positioned, scroll geom.ScrollSource) *Controller {
	return &Controller{
		engine: engine,
		target: target,
		scroll: scroll,
		hover:  affordance.Inner,
		cursor: affordance.CursorDefault,
	}
}

// SetTarget rebinds the element and scroll source used for local coordinates
func (c *Controller) SetTarget(target geom.Positioned, scroll geom.ScrollSource) {
	c.target = target
	c.scroll = scroll
}

// Local converts a raw pointer report to target-local coordinates
func (c *Controller) Local(raw event.Pointer) geom.Point {
	return geom.LocalPointerPosition(raw.Client(), c.target, c.scroll)
}

// Hover returns the zone under the pointer while idle
func (c *Controller) Hover() affordance.Zone {
	return c.hover
}

// Cursor returns the presentational cursor name for the current hover or gesture
func (c *Controller) Cursor() string {
	return c.cursor
}

// PointerDown starts a gesture on the zone under the pointer
// Emits dragstart and returns true only when the engine accepted the gesture
func (c *Controller) PointerDown(raw event.Pointer) bool {
	zone := c.engine.HitTest(c.Local(raw))
	if zone == affordance.Inner {
		return false
	}
	if !c.engine.BeginGesture(zone, raw.Client()) {
		return false
	}
	c.cursor = affordance.GestureCursor(zone)
	c.engine.Emitter().Emit(event.Event{Type: event.DragStart, Pointer: raw})
	return true
}

// PointerMove steps the gesture in progress, or updates hover state while idle
func (c *Controller) PointerMove(raw event.Pointer) (geom.Rect, bool) {
	if c.engine.Tracking() {
		return c.engine.StepGesture(raw.Client(), raw)
	}

	opts := c.engine.Options()
	c.hover = c.engine.HitTest(c.Local(raw))
	c.cursor = affordance.CursorFor(c.hover, opts.Resizable, opts.FixedRatio, opts.Draggable)
	return geom.Rect{}, false
}

// PointerUp applies a final step, emits dragend and ends the gesture
// A release without a gesture in progress does nothing
func (c *Controller) PointerUp(raw event.Pointer) (geom.Rect, bool) {
	if !c.engine.Tracking() {
		return geom.Rect{}, false
	}
	r, ok := c.engine.StepGesture(raw.Client(), raw)
	c.engine.Emitter().Emit(event.Event{Type: event.DragEnd, Pointer: raw})
	c.engine.EndGesture()
	c.cursor = affordance.CursorDefault
	return r, ok
}

// Cancel ends a gesture without a final step or dragend
func (c *Controller) Cancel() {
	c.engine.EndGesture()
	c.cursor = affordance.CursorDefault
}
