package terminal

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/audio"
	"github.com/lixenwraith/antborder/config"
	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/render"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

type countingPlayer struct {
	plays int
}

func (p *countingPlayer) Play(s ...beep.Streamer) {
	p.plays += len(s)
}

func newApp(t *testing.T, player *countingPlayer) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := newScreen(t, 80, 24)
	opts := config.Terminal()
	opts.Audio = player != nil
	var p audio.Player
	if player != nil {
		p = player
	}
	app := NewApp(opts, s, p, log.New(io.Discard, "", 0))
	return app, s
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func TestCellSurfaceLines(t *testing.T) {
	s := NewCellSurface(0, 0)
	s.SetSize(10, 5)

	s.Line(geom.Point{X: 1, Y: 1}, geom.Point{X: 4, Y: 1}, render.DefaultLineStyle)
	s.Line(geom.Point{X: 8, Y: 0}, geom.Point{X: 8, Y: 3}, render.DefaultLineStyle)

	for x := 1; x <= 4; x++ {
		if r, _ := s.Cell(x, 1); r != GlyphHorizontal {
			t.Errorf("Cell(%d, 1) = %q, want %q", x, r, GlyphHorizontal)
		}
	}
	for y := 0; y <= 3; y++ {
		if r, _ := s.Cell(8, y); r != GlyphVertical {
			t.Errorf("Cell(8, %d) = %q, want %q", y, r, GlyphVertical)
		}
	}
	if r, _ := s.Cell(5, 1); r != 0 {
		t.Errorf("Cell(5, 1) = %q, want empty", r)
	}

	// Out of bounds is clipped
	s.Line(geom.Point{X: -3, Y: 4}, geom.Point{X: 20, Y: 4}, render.DefaultLineStyle)
	if r, _ := s.Cell(9, 4); r != GlyphHorizontal {
		t.Errorf("Cell(9, 4) = %q, want %q", r, GlyphHorizontal)
	}

	s.Clear(10, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if r, _ := s.Cell(x, y); r != 0 {
				t.Fatalf("Cell(%d, %d) = %q after Clear", x, y, r)
			}
		}
	}
}

func TestCellSurfaceArc(t *testing.T) {
	s := NewCellSurface(0, 0)
	s.SetSize(12, 12)

	s.Arc(geom.Point{X: 1, Y: 1}, affordance.MarkerStyle{Radius: 1, Stroke: "#f00", Fill: "#fff"})
	r, st := s.Cell(1, 1)
	if r != GlyphMarker {
		t.Errorf("small marker = %q, want %q", r, GlyphMarker)
	}
	fg, bg, _ := st.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("small marker fg = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("small marker bg = %v, want white", bg)
	}

	s.Arc(geom.Point{X: 6, Y: 6}, affordance.MarkerStyle{Radius: 3, Stroke: "#333", Fill: "#fff"})
	if r, _ := s.Cell(6, 6); r != GlyphFill {
		t.Errorf("disc center = %q, want fill", r)
	}
	if r, _ := s.Cell(9, 6); r != GlyphMarker {
		t.Errorf("disc rim = %q, want %q", r, GlyphMarker)
	}
	if r, _ := s.Cell(11, 11); r != 0 {
		t.Errorf("outside disc = %q, want empty", r)
	}

	// Zero radius draws nothing
	s.Clear(12, 12)
	s.Arc(geom.Point{X: 3, Y: 3}, affordance.MarkerStyle{})
	if r, _ := s.Cell(3, 3); r != 0 {
		t.Errorf("zero radius drew %q", r)
	}
}

func TestCellSurfaceResizeKeepsCapacity(t *testing.T) {
	s := NewCellSurface(0, 0)
	s.SetSize(20, 10)
	s.Line(geom.Point{X: 0, Y: 0}, geom.Point{X: 19, Y: 0}, render.DefaultLineStyle)

	s.SetSize(5, 5)
	if w, h := s.Size(); w != 5 || h != 5 {
		t.Fatalf("Size() = %d,%d, want 5,5", w, h)
	}
	if r, _ := s.Cell(0, 0); r != 0 {
		t.Errorf("SetSize did not clear, Cell(0,0) = %q", r)
	}

	s.SetSize(-1, 3)
	if w, h := s.Size(); w != 0 || h != 3 {
		t.Errorf("Size() = %d,%d, want 0,3", w, h)
	}
}

func TestPaneLayout(t *testing.T) {
	p := NewPane(2, 1, 60, 20, true)
	s := NewCellSurface(4, 3)

	if _, ok := geom.ElementDocPosition(s); ok {
		t.Error("detached surface reported a layout position")
	}
	if s.OffsetParent() != nil {
		t.Error("detached surface has an offset parent")
	}

	p.AppendChild(s)
	pos, ok := geom.ElementDocPosition(s)
	if !ok {
		t.Fatal("mounted surface has no layout position")
	}
	// pane offset + frame inset + surface base
	want := geom.Point{X: 2 + 1 + 4, Y: 1 + 1 + 3}
	if pos != want {
		t.Errorf("ElementDocPosition = %v, want %v", pos, want)
	}

	p.RemoveChild(s)
	if p.Children() != 0 {
		t.Errorf("Children() = %d, want 0", p.Children())
	}
	if _, _, ok := s.Offset(); ok {
		t.Error("removed surface still laid out")
	}
	p.RemoveChild(s)
}

func TestPaneDrawFlushesPlacedSurface(t *testing.T) {
	screen := newScreen(t, 40, 20)
	p := NewPane(1, 1, 30, 15, true)
	s := NewCellSurface(0, 0)
	p.AppendChild(s)

	s.SetSize(5, 3)
	s.Line(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, render.DefaultLineStyle)
	s.Place(3, 2)

	p.Draw(screen, geom.Point{})
	if r, _, _, _ := screen.GetContent(1, 1); r != tcell.RuneULCorner {
		t.Errorf("frame corner = %q, want %q", r, tcell.RuneULCorner)
	}
	// origin: pane 1 + inset 1 + placed 3, pane 1 + inset 1 + placed 2
	for x := 5; x < 10; x++ {
		if r, _, _, _ := screen.GetContent(x, 4); r != GlyphHorizontal {
			t.Errorf("GetContent(%d, 4) = %q, want %q", x, r, GlyphHorizontal)
		}
	}

	screen.Clear()
	p.Draw(screen, geom.Point{X: 2, Y: 1})
	if r, _, _, _ := screen.GetContent(3, 3); r != GlyphHorizontal {
		t.Errorf("scrolled GetContent(3, 3) = %q, want %q", r, GlyphHorizontal)
	}
}

func TestViewportClamp(t *testing.T) {
	v := NewViewport(5, 3)
	v.ScrollBy(10, -4)
	if got := v.PageOffset(); got != (geom.Point{X: 5, Y: 0}) {
		t.Errorf("PageOffset() = %v, want {5 0}", got)
	}
	v.ScrollBy(-2, 2)
	if got := v.PageOffset(); got != (geom.Point{X: 3, Y: 2}) {
		t.Errorf("PageOffset() = %v, want {3 2}", got)
	}
	v.SetLimits(1, -5)
	if got := v.PageOffset(); got != (geom.Point{X: 1, Y: 0}) {
		t.Errorf("PageOffset() after SetLimits = %v, want {1 0}", got)
	}
	if got := geom.ScrollOffset(v); got != (geom.Point{X: 1}) {
		t.Errorf("ScrollOffset() = %v, want {1 0}", got)
	}
}

func TestStatusLineTruncates(t *testing.T) {
	screen := newScreen(t, 10, 3)
	StatusLine{Style: StyleStatus}.Draw(screen, "0123456789abcdef")

	if r, _, _, _ := screen.GetContent(0, 2); r != '0' {
		t.Errorf("first cell = %q, want '0'", r)
	}
	if r, _, _, _ := screen.GetContent(9, 2); r != '…' {
		t.Errorf("last cell = %q, want ellipsis", r)
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	screen := newScreen(t, 10, 1)
	if cols := drawText(screen, 0, 0, 10, "日本a", tcell.StyleDefault); cols != 5 {
		t.Errorf("drawText() = %d columns, want 5", cols)
	}
	if r, _, _, _ := screen.GetContent(2, 0); r != '本' {
		t.Errorf("GetContent(2, 0) = %q, want '本'", r)
	}
	if r, _, _, _ := screen.GetContent(4, 0); r != 'a' {
		t.Errorf("GetContent(4, 0) = %q, want 'a'", r)
	}
}

func TestAppFrameDraws(t *testing.T) {
	app, screen := newApp(t, nil)
	app.Frame()

	if r, _, _, _ := screen.GetContent(2, 1); r != tcell.RuneULCorner {
		t.Errorf("pane corner = %q, want %q", r, tcell.RuneULCorner)
	}
	// Surface origin at (3, 2); NW anchor at (2, 2) for radius 1
	if r, _, _, _ := screen.GetContent(5, 4); r != GlyphMarker {
		t.Errorf("NW marker = %q, want %q", r, GlyphMarker)
	}
	if r, _, _, _ := screen.GetContent(7, 4); r != GlyphHorizontal {
		t.Errorf("top dash = %q, want %q", r, GlyphHorizontal)
	}
	if r, _, _, _ := screen.GetContent(1, 23); r != 'x' {
		t.Errorf("status line starts with %q, want 'x'", r)
	}
	if app.Loop().Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", app.Loop().Frames())
	}
	if got := app.statusText(); !strings.Contains(got, "f:1 0ms") {
		t.Errorf("status after one frame = %q, want frame count and zero interval", got)
	}

	app.Frame()
	want := fmt.Sprintf("f:2 %dms", app.Loop().Interval().Milliseconds())
	if got := app.statusText(); !strings.Contains(got, want) {
		t.Errorf("status = %q, want it to contain %q", got, want)
	}
}

func TestAppMouseResize(t *testing.T) {
	player := &countingPlayer{}
	app, _ := newApp(t, player)

	// SE anchor (38, 10) plus surface origin (3, 2)
	app.HandleEvent(mouse(41, 12, tcell.Button1))
	app.HandleEvent(mouse(45, 14, tcell.Button1))
	app.HandleEvent(mouse(45, 14, tcell.ButtonNone))

	want := geom.Rect{Width: 44, Height: 14}
	if got := app.Instance().Current(); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}
	if w, h := app.Surface().Size(); w != 44 || h != 14 {
		t.Errorf("surface size = %d,%d, want 44,14", w, h)
	}
	if app.Changes() == 0 {
		t.Error("no change signal received")
	}
	if player.plays != 2 {
		t.Errorf("cue plays = %d, want 2", player.plays)
	}
}

func TestAppMouseDrag(t *testing.T) {
	app, _ := newApp(t, nil)

	// Top band between NW and N markers
	app.HandleEvent(mouse(13, 4, tcell.Button1))
	app.HandleEvent(mouse(18, 6, tcell.Button1))
	app.HandleEvent(mouse(18, 6, tcell.ButtonNone))

	want := geom.Rect{X: 5, Y: 2, Width: 40, Height: 12}
	if got := app.Instance().Current(); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}
	if got := app.Surface().Placed(); got != (geom.Point{X: 5, Y: 2}) {
		t.Errorf("Placed() = %v, want {5 2}", got)
	}

	// Reset restores the configured size at the origin
	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if got := app.Instance().Current(); got != (geom.Rect{Width: 40, Height: 12}) {
		t.Errorf("Current() after reset = %v", got)
	}
}

func TestAppHoverCursor(t *testing.T) {
	app, _ := newApp(t, nil)
	app.HandleEvent(mouse(5, 4, tcell.ButtonNone))

	if got := app.Instance().Widget().Controller().Cursor(); got != affordance.CursorNWSE {
		t.Errorf("Cursor() = %q, want %q", got, affordance.CursorNWSE)
	}
}

func TestAppKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"other rune continues", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
		{"arrow continues", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newApp(t, nil)
			if got := app.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppPauseToggle(t *testing.T) {
	app, _ := newApp(t, nil)
	border := app.Instance().Widget().Border()
	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	app.HandleEvent(space)
	if !app.Paused() || border.State() != render.Idle {
		t.Fatalf("after pause: Paused() = %v, State() = %v", app.Paused(), border.State())
	}
	frames := border.Frames()
	app.Frame()
	if border.Frames() != frames {
		t.Errorf("paused border drew a frame")
	}

	app.HandleEvent(space)
	if app.Paused() || border.State() != render.Running {
		t.Errorf("after resume: Paused() = %v, State() = %v", app.Paused(), border.State())
	}
}

func TestAppClose(t *testing.T) {
	app, _ := newApp(t, &countingPlayer{})
	app.Close()

	if app.Instance().Mounted() {
		t.Error("instance still mounted after Close")
	}
	if app.Pane().Children() != 0 {
		t.Errorf("pane children = %d, want 0", app.Pane().Children())
	}
	// Events after close are ignored
	if !app.HandleEvent(mouse(41, 12, tcell.Button1)) {
		t.Error("HandleEvent() quit after Close")
	}
}
