// Package config holds the widget construction options, their defaults, and the TOML and
// YAML file codecs used by the command line host.
package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/colorutil"
	"github.com/lixenwraith/antborder/constants"
	"github.com/lixenwraith/antborder/geom"
	"github.com/lixenwraith/antborder/interact"
	"github.com/lixenwraith/antborder/render"
)

var (
	// ErrInvalid marks option values that fail validation
	ErrInvalid = errors.New("invalid options")

	// ErrUnsupportedFormat is returned for config files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Point is a translation offset
type Point struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// Marker is one marker style; radius 0 disables the marker
type Marker struct {
	Radius float64 `toml:"r" yaml:"r"`
	Stroke string  `toml:"stroke" yaml:"stroke"`
	Fill   string  `toml:"fill" yaml:"fill"`
}

// Border is the dashed line style
type Border struct {
	Stroke string  `toml:"stroke" yaml:"stroke"`
	Width  float64 `toml:"width" yaml:"width"`
}

// Options are the widget construction options
// Marker applies to all eight zones unless Markers overrides every one of them
type Options struct {
	Width      float64           `toml:"width" yaml:"width"`
	Height     float64           `toml:"height" yaml:"height"`
	Translate  Point             `toml:"translate" yaml:"translate"`
	Draggable  bool              `toml:"draggable" yaml:"draggable"`
	Resizable  bool              `toml:"resizable" yaml:"resizable"`
	FixedRatio bool              `toml:"fixed_ratio" yaml:"fixed_ratio"`
	Animation  bool              `toml:"animation" yaml:"animation"`
	Dasharray  []float64         `toml:"dasharray" yaml:"dasharray"`
	Marker     Marker            `toml:"marker" yaml:"marker"`
	Markers    map[string]Marker `toml:"markers,omitempty" yaml:"markers,omitempty"`
	Border     Border            `toml:"border" yaml:"border"`
	Audio      bool              `toml:"audio" yaml:"audio"`
}

// Default returns the stock options: 320x200, dashes [20, 6], 4 unit markers
func Default() Options {
	return Options{
		Width:     constants.DefaultWidth,
		Height:    constants.DefaultHeight,
		Draggable: true,
		Resizable: true,
		Animation: true,
		Dasharray: []float64{constants.DefaultDashSolid, constants.DefaultDashGap},
		Marker: Marker{
			Radius: constants.DefaultMarkerRadius,
			Stroke: constants.DefaultMarkerStroke,
			Fill:   constants.DefaultMarkerFill,
		},
		Border: Border{
			Stroke: constants.DefaultBorderStroke,
			Width:  constants.DefaultBorderWidth,
		},
	}
}

// Terminal returns defaults scaled to terminal cells
func Terminal() Options {
	o := Default()
	o.Width = constants.TerminalWidth
	o.Height = constants.TerminalHeight
	o.Dasharray = []float64{constants.TerminalDashSolid, constants.TerminalDashGap}
	o.Marker.Radius = constants.TerminalMarkerRadius
	return o
}

// Validate checks value ranges and colors
// Marker overrides are not validated here; Markers normalizes them instead
func (o Options) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	finite := func(name string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			fail("%s %v must be finite", name, v)
			return false
		}
		return true
	}

	widthOK := finite("width", o.Width)
	heightOK := finite("height", o.Height)
	if widthOK && heightOK && (o.Width <= 0 || o.Height <= 0) {
		fail("size %vx%v must be positive", o.Width, o.Height)
	}
	finite("translate x", o.Translate.X)
	finite("translate y", o.Translate.Y)
	if len(o.Dasharray) != 2 {
		fail("dasharray needs 2 values, got %d", len(o.Dasharray))
	} else {
		if finite("dash solid length", o.Dasharray[0]) && o.Dasharray[0] <= 0 {
			fail("dash solid length %v must be positive", o.Dasharray[0])
		}
		if finite("dash gap", o.Dasharray[1]) && o.Dasharray[1] < 0 {
			fail("dash gap %v must not be negative", o.Dasharray[1])
		}
	}
	if finite("marker radius", o.Marker.Radius) && o.Marker.Radius < 0 {
		fail("marker radius %v must not be negative", o.Marker.Radius)
	}
	if !colorutil.Valid(o.Marker.Stroke) {
		fail("marker stroke %q", o.Marker.Stroke)
	}
	if !colorutil.Valid(o.Marker.Fill) {
		fail("marker fill %q", o.Marker.Fill)
	}
	if !colorutil.Valid(o.Border.Stroke) {
		fail("border stroke %q", o.Border.Stroke)
	}
	if finite("border width", o.Border.Width) && o.Border.Width < 0 {
		fail("border width %v must not be negative", o.Border.Width)
	}

	return errors.Join(errs...)
}

// Dash returns the solid and gap lengths, falling back to the defaults when malformed
func (o Options) Dash() (float64, float64) {
	if len(o.Dasharray) != 2 {
		return constants.DefaultDashSolid, constants.DefaultDashGap
	}
	return o.Dasharray[0], o.Dasharray[1]
}

func (m Marker) style() affordance.MarkerStyle {
	return affordance.MarkerStyle{Radius: m.Radius, Stroke: m.Stroke, Fill: m.Fill}
}

// MarkerStyles resolves the per-zone marker record
// Overrides are used only when they name each of the eight marker zones exactly once;
// anything else falls back to Marker on every zone. The second result reports which applied
func (o Options) MarkerStyles() (affordance.Markers, bool) {
	fallback := o.Marker.style()
	if len(o.Markers) == 0 {
		return affordance.Uniform(fallback), false
	}

	overrides := make(map[affordance.Zone]affordance.MarkerStyle, len(o.Markers))
	for name, m := range o.Markers {
		z, ok := affordance.ParseZone(name)
		if !ok || !z.IsResize() {
			return affordance.Uniform(fallback), false
		}
		if _, dup := overrides[z]; dup {
			return affordance.Uniform(fallback), false
		}
		overrides[z] = m.style()
	}
	return affordance.FromOverrides(overrides, fallback)
}

// OverrideZones lists the override keys in sorted order, for log lines
func (o Options) OverrideZones() string {
	keys := make([]string, 0, len(o.Markers))
	for k := range o.Markers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

// Rect returns the initial rectangle
func (o Options) Rect() geom.Rect {
	return geom.Rect{Width: o.Width, Height: o.Height, X: o.Translate.X, Y: o.Translate.Y}
}

// Interact returns the engine options
func (o Options) Interact() interact.Options {
	markers, _ := o.MarkerStyles()
	return interact.Options{
		Draggable:  o.Draggable,
		Resizable:  o.Resizable,
		FixedRatio: o.FixedRatio,
		Markers:    markers,
	}
}

// BorderOptions returns the renderer options
func (o Options) BorderOptions() render.BorderOptions {
	markers, _ := o.MarkerStyles()
	solid, gap := o.Dash()
	return render.BorderOptions{
		Solid:      solid,
		Gap:        gap,
		Line:       render.LineStyle{Stroke: o.Border.Stroke, Width: o.Border.Width},
		Markers:    markers,
		FixedRatio: o.FixedRatio,
		Animation:  o.Animation,
	}
}
