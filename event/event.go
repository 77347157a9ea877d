// Package event is the notifier that carries gesture signals from the widget to its listeners.
package event

import (
	"strings"
	"time"

	"github.com/lixenwraith/antborder/geom"
)

// Type identifies a widget signal
type Type uint8

const (
	// DragStart fires when a pointer press begins an accepted gesture
	// Payload: Pointer
	DragStart Type = iota

	// Drag fires after every accepted gesture step
	// Payload: Pointer
	Drag

	// DragEnd fires on pointer release of a tracked gesture
	// Payload: Pointer
	DragEnd

	// Change fires after every accepted gesture step, after Drag
	// Payload: Change
	Change

	typeCount
)

var typeNames = [typeCount]string{
	DragStart: "dragstart",
	Drag:      "drag",
	DragEnd:   "dragend",
	Change:    "change",
}

// String returns the listener-facing signal name
func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return "unknown"
}

// ParseType resolves a signal name, case-insensitive
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// Pointer is the raw pointer event that drove a signal, in host client coordinates
type Pointer struct {
	ClientX float64
	ClientY float64
	Button  int
	When    time.Time
}

// Client returns the pointer position as a point
func (p Pointer) Client() geom.Point {
	return geom.Point{X: p.ClientX, Y: p.ClientY}
}

// ChangePayload carries the three geometry snapshots of a change signal
type ChangePayload struct {
	Delta     geom.Rect // Current minus Reference
	Current   geom.Rect
	Reference geom.Rect
}

// Event is one dispatched signal; only the field matching Type is meaningful
type Event struct {
	Type    Type
	Pointer Pointer
	Change  ChangePayload
}
