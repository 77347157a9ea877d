// Package widget wires the interaction engine and the border renderer into the
// marching-ants selection widget, and wraps it in a mountable instance handle.
package widget

import (
	"github.com/lixenwraith/antborder/config"
	"github.com/lixenwraith/antborder/event"
	"github.com/lixenwraith/antborder/frame"
	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/interact"
	"github.com/lixenwraith/antborder/render"
)

// AntBorder is the selection widget: engine, pointer controller, renderer and notifier
// It receives every accepted step through interact.Hooks
type AntBorder struct {
	opts    config.Options
	surface render.Surface

	emitter    *event.Emitter
	engine     *interact.Engine
	controller *interact.Controller
	border     *render.Border
}

// New builds the widget on surface and sizes the surface to the initial rectangle
// The loop is not started; call Run
func New(opts config.Options, surface render.Surface, sched frame.Scheduler) *AntBorder {
	a := &AntBorder{
		opts:    opts,
		surface: surface,
		emitter: event.NewEmitter(),
	}

	initial := opts.Rect()
	a.engine = interact.NewEngine(initial, opts.Interact(), a.emitter)
	a.engine.SetHooks(a)

	target, _ := surface.(geom.Positioned)
	a.controller = interact.NewController(a.engine, target, nil)

	a.border = render.NewBorder(surface, sched, opts.BorderOptions())
	a.border.Resize(initial.Width, initial.Height)
	a.border.Place(initial.X, initial.Y)
	return a
}

// OnDrag places the surface at the new translation
func (a *AntBorder) OnDrag(r geom.Rect) {
	a.border.Place(r.X, r.Y)
}

// OnResize reallocates the surface when the size changed
func (a *AntBorder) OnResize(r geom.Rect) {
	if w, h := a.border.Size(); w == r.Width && h == r.Height {
		return
	}
	a.border.Resize(r.Width, r.Height)
}

// Run starts the animation loop
func (a *AntBorder) Run() {
	a.border.Animate()
}

// Stop halts the animation loop
func (a *AntBorder) Stop() {
	a.border.Stop()
}

// SetSize resets the widget to width x height at the origin and restarts from phase 0
// Any gesture in progress is dropped
func (a *AntBorder) SetSize(width, height float64) {
	a.border.Stop()
	a.controller.Cancel()
	a.border.Resize(width, height)
	a.engine.Restore(geom.Rect{Width: width, Height: height})
	a.border.Place(0, 0)
	a.border.ResetPhase()
	a.border.Animate()
}

// SetScrollSource sets the page scroll used to convert pointer positions
func (a *AntBorder) SetScrollSource(scroll geom.ScrollSource) {
	target, _ := a.surface.(geom.Positioned)
	a.controller.SetTarget(target, scroll)
}

// Options returns the construction options
func (a *AntBorder) Options() config.Options {
	return a.opts
}

func (a *AntBorder) Surface() render.Surface {
	return a.surface
}

func (a *AntBorder) Emitter() *event.Emitter {
	return a.emitter
}

func (a *AntBorder) Engine() *interact.Engine {
	return a.engine
}

func (a *AntBorder) Controller() *interact.Controller {
	return a.controller
}

func (a *AntBorder) Border() *render.Border {
	return a.border
}
