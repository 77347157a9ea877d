package widget

import (
	"log"

	"github.com/lixenwraith/antborder/config"
	"github.com/lixenwraith/antborder/event"
	"github.com/lixenwraith/antborder/frame"
	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/render"
)

// Container is the host element an instance mounts its surface into
type Container interface {
	AppendChild(s render.Surface)
	RemoveChild(s render.Surface)
}

// Instance is the owned handle around one widget
//
// Lifecycle:
//   - Create builds the widget and starts its animation loop
//   - Mount attaches the surface; a second Mount only logs
//   - SetSize and the listener operations require Mount; before it they log a warning and do nothing
//   - Destroy detaches the surface, stops the loop and drops all listeners; afterwards the
//     instance behaves as if never mounted
type Instance struct {
	widget *AntBorder
	logger *log.Logger

	container Container
	mounted   bool
	destroyed bool

	subs []event.Subscription
}

// Create builds a widget on surface driven by sched; a nil logger uses the standard logger
func Create(opts config.Options, surface render.Surface, sched frame.Scheduler, logger *log.Logger) *Instance {
	if logger == nil {
		logger = log.Default()
	}
	if len(opts.Markers) > 0 {
		if _, ok := opts.MarkerStyles(); !ok {
			logger.Printf("[WIDGET] marker overrides (%s) incomplete, using uniform marker style", opts.OverrideZones())
		}
	}

	w := New(opts, surface, sched)
	w.Run()
	return &Instance{
		widget: w,
		logger: logger,
	}
}

// Widget returns the wrapped widget, nil after Destroy
func (i *Instance) Widget() *AntBorder {
	if i.destroyed {
		return nil
	}
	return i.widget
}

// Mounted reports whether the surface is attached
func (i *Instance) Mounted() bool {
	return i.mounted
}

func (i *Instance) requireMounted(op string) bool {
	if !i.mounted {
		i.logger.Printf("[WIDGET] %s ignored: make sure Mount is called first", op)
		return false
	}
	return true
}

// Mount attaches the widget surface to c
func (i *Instance) Mount(c Container) {
	if i.destroyed {
		i.logger.Printf("[WIDGET] mount ignored: instance destroyed")
		return
	}
	if i.mounted {
		i.logger.Printf("[WIDGET] component is already mounted")
		return
	}
	if c == nil {
		i.logger.Printf("[WIDGET] mount ignored: nil container")
		return
	}
	c.AppendChild(i.widget.Surface())
	i.container = c
	i.mounted = true
}

// Destroy detaches the surface and releases the widget; no-op unless mounted
func (i *Instance) Destroy() {
	if !i.mounted {
		return
	}
	i.widget.Stop()
	i.widget.Controller().Cancel()
	for _, sub := range i.subs {
		i.widget.Emitter().Off(sub)
	}
	i.subs = nil

	i.container.RemoveChild(i.widget.Surface())
	i.container = nil
	i.mounted = false
	i.destroyed = true
}

// SetSize restarts the widget at width x height, translation reset to the origin
func (i *Instance) SetSize(width, height float64) {
	if !i.requireMounted("setSize") {
		return
	}
	i.widget.SetSize(width, height)
}

// On subscribes fn to every signal of type t
func (i *Instance) On(t event.Type, fn event.Listener) event.Subscription {
	if !i.requireMounted("on") {
		return event.Subscription{}
	}
	sub := i.widget.Emitter().On(t, fn)
	if sub.Valid() {
		i.subs = append(i.subs, sub)
	}
	return sub
}

// Once subscribes fn to the next signal of type t
// The instance stops tracking the subscription once it fires
func (i *Instance) Once(t event.Type, fn event.Listener) event.Subscription {
	if !i.requireMounted("once") {
		return event.Subscription{}
	}
	if fn == nil {
		return event.Subscription{}
	}
	var sub event.Subscription
	sub = i.widget.Emitter().Once(t, func(ev event.Event) {
		i.forget(sub)
		fn(ev)
	})
	if sub.Valid() {
		i.subs = append(i.subs, sub)
	}
	return sub
}

// Off removes a subscription made through On or Once
func (i *Instance) Off(sub event.Subscription) bool {
	if !i.requireMounted("off") {
		return false
	}
	i.forget(sub)
	return i.widget.Emitter().Off(sub)
}

func (i *Instance) forget(sub event.Subscription) {
	for k, s := range i.subs {
		if s == sub {
			i.subs = append(i.subs[:k:k], i.subs[k+1:]...)
			return
		}
	}
}

// Listeners returns how many subscriptions the instance tracks
func (i *Instance) Listeners() int {
	return len(i.subs)
}

// Current returns the committed rectangle, zero after Destroy
func (i *Instance) Current() geom.Rect {
	if i.destroyed {
		return geom.Rect{}
	}
	return i.widget.Engine().Current()
}
