// Package affordance names the regions of the selection that a pointer gesture can grab,
// and carries the per-zone marker styles and anchor positions derived from them.
package affordance

import "strings"

// Zone is a named region of the widget
type Zone uint8

const (
	// Resize zones: corner and mid-edge markers
	NW Zone = iota
	N
	NE
	W
	E
	SW
	S
	SE

	// Drag zones: bands along the edges
	Top
	Right
	Bottom
	Left

	// Inner is the interior, no gesture
	Inner
)

const (
	// ResizeZoneCount is the number of marker zones, NW through SE
	ResizeZoneCount = 8

	// ZoneCount covers every zone including Inner
	ZoneCount = 13
)

// ResizeZones lists marker zones in hit-test order
var ResizeZones = [ResizeZoneCount]Zone{NW, N, NE, W, E, SW, S, SE}

var zoneNames = [ZoneCount]string{
	NW:     "nw",
	N:      "n",
	NE:     "ne",
	W:      "w",
	E:      "e",
	SW:     "sw",
	S:      "s",
	SE:     "se",
	Top:    "top",
	Right:  "right",
	Bottom: "bottom",
	Left:   "left",
	Inner:  "inner",
}

// String returns the short zone name used in configuration and logs
func (z Zone) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return "unknown"
}

// ParseZone resolves a zone name, case-insensitive
func ParseZone(name string) (Zone, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range zoneNames {
		if n == name {
			return Zone(i), true
		}
	}
	return Inner, false
}

// IsResize reports whether z is one of the eight marker zones
func (z Zone) IsResize() bool {
	return z <= SE
}

// IsDrag reports whether z is one of the four edge bands
func (z Zone) IsDrag() bool {
	return z >= Top && z <= Left
}

// IsMidEdge reports whether z is a mid-edge marker (n, e, s, w)
func (z Zone) IsMidEdge() bool {
	return z == N || z == E || z == S || z == W
}
