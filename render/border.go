package render

import (
	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/frame"
	"github.com/lixenwraith/antborder/geom"
)

// State is the animation state
type State uint8

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// BorderOptions configures the look and animation of a Border
type BorderOptions struct {
	Solid      float64
	Gap        float64
	Line       LineStyle
	Markers    affordance.Markers
	FixedRatio bool
	Animation  bool
}

// edge is one side of the border in drawing order
type edge struct {
	from, to affordance.Zone
	dir      Direction
}

// edges traverse the corner anchors clockwise from the top-left
var edges = [4]edge{
	{affordance.NW, affordance.NE, LeftToRight},
	{affordance.NE, affordance.SE, TopToBottom},
	{affordance.SE, affordance.SW, RightToLeft},
	{affordance.SW, affordance.NW, BottomToTop},
}

// Border is the marching-ants renderer
// Owns the phase and the animation loop; reads the rectangle size it was last resized to
type Border struct {
	opts    BorderOptions
	surface Surface
	sched   frame.Scheduler

	width  float64
	height float64

	phase  float64
	state  State
	tickID frame.TickID
	frames uint64
}

// NewBorder creates an idle border drawing onto surface
// A nil scheduler limits the border to explicit Draw calls
func NewBorder(surface Surface, sched frame.Scheduler, opts BorderOptions) *Border {
	return &Border{
		opts:    opts,
		surface: surface,
		sched:   sched,
	}
}

// Options returns the construction options
func (b *Border) Options() BorderOptions {
	return b.opts
}

// State returns Idle or Running
func (b *Border) State() State {
	return b.state
}

// Phase returns the current dash offset, always in [0, solid+gap)
func (b *Border) Phase() float64 {
	return b.phase
}

// ResetPhase rewinds the dash offset to 0
func (b *Border) ResetPhase() {
	b.phase = 0
}

// Frames returns the number of frames drawn
func (b *Border) Frames() uint64 {
	return b.frames
}

// Size returns the dimensions the border draws at
func (b *Border) Size() (float64, float64) {
	return b.width, b.height
}

// Resize updates the drawing dimensions and reallocates the surface
func (b *Border) Resize(width, height float64) {
	b.width = width
	b.height = height
	b.surface.SetSize(Size(geom.Rect{Width: width, Height: height}))
}

// Place moves the surface to the rectangle translation when the surface supports it
func (b *Border) Place(x, y float64) {
	if p, ok := b.surface.(Placer); ok {
		p.Place(x, y)
	}
}

// Animate starts the loop: draws the first frame now and schedules the next
// With animation disabled the border is drawn once and stays Idle
func (b *Border) Animate() {
	if b.state == Running {
		return
	}
	if !b.opts.Animation || b.sched == nil {
		b.Draw()
		return
	}
	b.state = Running
	b.tick()
}

// Stop cancels the pending tick; takes effect before the next frame
func (b *Border) Stop() {
	if b.state != Running {
		return
	}
	b.state = Idle
	if b.sched != nil && b.tickID != 0 {
		b.sched.CancelTick(b.tickID)
	}
	b.tickID = 0
}

// tick draws the frame, advances the phase and requests the next frame
func (b *Border) tick() {
	b.tickID = 0
	if b.state != Running {
		return
	}
	b.Draw()
	b.Advance()
	b.tickID = b.sched.RequestTick(b.tick)
}

// Advance moves the dash offset one unit, wrapping to 0 at solid+gap
func (b *Border) Advance() {
	b.phase++
	if b.phase >= b.opts.Solid+b.opts.Gap {
		b.phase = 0
	}
}

// Draw renders one complete frame at the current phase
func (b *Border) Draw() {
	w, h := Size(geom.Rect{Width: b.width, Height: b.height})
	b.surface.Clear(w, h)

	anchors := b.Anchors()
	for _, e := range edges {
		from := anchors.At(e.from)
		to := anchors.At(e.to)
		for _, seg := range DashSegments(from, to, e.dir, b.opts.Solid, b.opts.Gap, b.phase) {
			b.surface.Line(seg.From, seg.To, b.opts.Line)
		}
	}

	for _, z := range affordance.ResizeZones {
		if b.opts.FixedRatio && z.IsMidEdge() {
			continue
		}
		style := b.opts.Markers.Of(z)
		if style.Radius <= 0 {
			continue
		}
		b.surface.Arc(anchors.At(z), style)
	}

	b.frames++
}

// Anchors returns marker centers for the current dimensions
func (b *Border) Anchors() affordance.Anchors {
	return affordance.ComputeAnchors(b.width, b.height, b.opts.Markers.MaxRadius())
}
