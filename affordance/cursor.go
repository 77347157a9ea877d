package affordance

// Cursor names follow the CSS cursor vocabulary; hosts map them to whatever they can show
const (
	CursorDefault = "default"
	CursorMove    = "move"
	CursorNWSE    = "nwse-resize"
	CursorNESW    = "nesw-resize"
	CursorNS      = "ns-resize"
	CursorEW      = "ew-resize"
)

var zoneCursors = [ZoneCount]string{
	NW:     CursorNWSE,
	N:      CursorNS,
	NE:     CursorNESW,
	W:      CursorEW,
	E:      CursorEW,
	SW:     CursorNESW,
	S:      CursorNS,
	SE:     CursorNWSE,
	Top:    CursorMove,
	Right:  CursorMove,
	Bottom: CursorMove,
	Left:   CursorMove,
	Inner:  CursorDefault,
}

// CursorFor returns the hover cursor for z given the widget's enable flags
// Zones the widget would refuse fall back to the default cursor
func CursorFor(z Zone, resizable, fixedRatio, draggable bool) string {
	switch {
	case z.IsMidEdge():
		if !resizable || fixedRatio {
			return CursorDefault
		}
	case z.IsResize():
		if !resizable {
			return CursorDefault
		}
	case z.IsDrag():
		if !draggable {
			return CursorDefault
		}
	}
	if int(z) >= len(zoneCursors) {
		return CursorDefault
	}
	return zoneCursors[z]
}

// GestureCursor is the cursor shown while a gesture on z is in progress
func GestureCursor(z Zone) string {
	if int(z) >= len(zoneCursors) {
		return CursorDefault
	}
	return zoneCursors[z]
}
