package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/audio"
	"github.com/lixenwraith/antborder/config"
	"github.com/lixenwraith/antborder/constants"
	"github.com/lixenwraith/antborder/core"
	"github.com/lixenwraith/antborder/event"
	"github.com/lixenwraith/antborder/frame"
	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/widget"
)

// App runs one widget in a tcell screen
// Mouse cells are the client coordinates; the pane sits below a one-row margin, the status line at the bottom
type App struct {
	screen tcell.Screen
	opts   config.Options
	logger *log.Logger

	loop     *frame.Loop
	surface  *CellSurface
	pane     *Pane
	viewport *Viewport
	status   StatusLine
	instance *widget.Instance
	cues     *audio.Cues

	pressed bool
	paused  bool
	last    event.ChangePayload
	changes int
}

// NewApp mounts a widget built from opts into a pane filling screen
// A nil player disables audio cues; a nil logger uses the standard logger
func NewApp(opts config.Options, screen tcell.Screen, player audio.Player, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		screen:   screen,
		opts:     opts,
		logger:   logger,
		loop:     frame.NewLoop(frame.SystemClock{}),
		surface:  NewCellSurface(0, 0),
		pane:     NewPane(constants.TerminalPaneLeft, constants.TerminalPaneTop, 0, 0, true),
		viewport: NewViewport(0, 0),
		status:   StatusLine{Style: StyleStatus},
	}
	a.pane.Title = "antborder"

	a.instance = widget.Create(opts, a.surface, a.loop, logger)
	a.instance.Mount(a.pane)
	a.instance.Widget().SetScrollSource(a.viewport)
	a.instance.On(event.Change, func(ev event.Event) {
		a.last = ev.Change
		a.changes++
	})

	if opts.Audio {
		a.cues = audio.NewCues(player)
		a.cues.Attach(a.instance.Widget().Emitter())
	}

	a.layout()
	return a
}

// layout fits the pane to the screen and updates the scroll range
func (a *App) layout() {
	w, h := a.screen.Size()
	a.pane.Width = w - 2*a.pane.Left
	a.pane.Height = h - a.pane.Top - 1
	if a.pane.Width < 0 {
		a.pane.Width = 0
	}
	if a.pane.Height < 0 {
		a.pane.Height = 0
	}

	il, it := a.pane.ClientInset()
	innerW := a.pane.Width - 2*int(il)
	innerH := a.pane.Height - 2*int(it)
	r := a.instance.Current()
	a.viewport.SetLimits(round(r.X+r.Width)-innerW+1, round(r.Y+r.Height)-innerH+1)
}

// Instance returns the mounted widget handle
func (a *App) Instance() *widget.Instance {
	return a.instance
}

func (a *App) Surface() *CellSurface {
	return a.surface
}

func (a *App) Pane() *Pane {
	return a.pane
}

func (a *App) Viewport() *Viewport {
	return a.viewport
}

func (a *App) Loop() *frame.Loop {
	return a.loop
}

// Paused reports whether the animation was stopped from the keyboard
func (a *App) Paused() bool {
	return a.paused
}

// Changes returns the number of change signals received
func (a *App) Changes() int {
	return a.changes
}

// HandleEvent processes one screen event; returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.viewport.ScrollBy(0, -1)
	case tcell.KeyDown:
		a.viewport.ScrollBy(0, 1)
	case tcell.KeyLeft:
		a.viewport.ScrollBy(-1, 0)
	case tcell.KeyRight:
		a.viewport.ScrollBy(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			a.pressed = false
			a.paused = false
			a.instance.SetSize(a.opts.Width, a.opts.Height)
			a.layout()
			a.logger.Printf("[APP] reset to %vx%v", a.opts.Width, a.opts.Height)
		case ' ':
			a.togglePause()
		}
	}
	return true
}

func (a *App) togglePause() {
	w := a.instance.Widget()
	if w == nil {
		return
	}
	if a.paused {
		w.Run()
	} else {
		w.Stop()
	}
	a.paused = !a.paused
	a.logger.Printf("[APP] animation paused=%v", a.paused)
}

// handleMouse maps button-1 transitions to press/move/release
// tcell reports motion as repeated events with the same button mask
func (a *App) handleMouse(ev *tcell.EventMouse) {
	w := a.instance.Widget()
	if w == nil {
		return
	}
	x, y := ev.Position()
	ptr := event.Pointer{ClientX: float64(x), ClientY: float64(y), When: ev.When()}
	c := w.Controller()

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.viewport.ScrollBy(0, -1)
	case buttons&tcell.WheelDown != 0:
		a.viewport.ScrollBy(0, 1)
	case buttons&tcell.Button1 != 0:
		if !a.pressed {
			a.pressed = true
			c.PointerDown(ptr)
			return
		}
		c.PointerMove(ptr)
	case a.pressed:
		a.pressed = false
		c.PointerUp(ptr)
		a.layout()
	default:
		c.PointerMove(ptr)
	}
}

// Frame runs due ticks and redraws the screen
func (a *App) Frame() {
	a.loop.RunFrame()
	a.Draw()
}

// Draw renders the pane and the status line
func (a *App) Draw() {
	a.screen.Clear()
	a.pane.Draw(a.screen, a.viewport.PageOffset())

	style := a.status.Style
	if a.pressed {
		style = StyleActive
	}
	StatusLine{Style: style}.Draw(a.screen, a.statusText())
	a.screen.Show()
}

func (a *App) statusText() string {
	r := a.instance.Current()
	cursor := affordance.CursorDefault
	if w := a.instance.Widget(); w != nil {
		cursor = w.Controller().Cursor()
	}
	state := "running"
	if a.paused {
		state = "paused"
	}
	return fmt.Sprintf(" %s  delta %s  cursor:%s  %s f:%d %dms | q quit  r reset  space pause  arrows scroll",
		rectText(r), rectText(a.last.Delta), cursor, state, a.loop.Frames(), a.loop.Interval().Milliseconds())
}

func rectText(r geom.Rect) string {
	return fmt.Sprintf("x:%.0f y:%.0f w:%.0f h:%.0f", r.X, r.Y, r.Width, r.Height)
}

// Run drives the event and frame loop until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	defer a.screen.DisableMouse()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.Frame()
		}
	}
}

// Close destroys the widget and detaches audio
func (a *App) Close() {
	if a.cues != nil {
		if w := a.instance.Widget(); w != nil {
			a.cues.Detach(w.Emitter())
		}
	}
	a.instance.Destroy()
}
