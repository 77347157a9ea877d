package interact

import (
	"github.com/lixenwraith/antborder/affordance"
	"github.com/lixenwraith/antborder/geom"
)

// Apply computes the candidate rectangle for one pointer step on zone
// With locked set, every corner is driven by dx alone and the other dimension is derived
// from ratio; mid-edge zones do nothing. Drag zones translate unconditionally
func Apply(zone affordance.Zone, r geom.Rect, dx, dy, ratio float64, locked bool) geom.Rect {
	switch zone {
	case affordance.Top, affordance.Right, affordance.Bottom, affordance.Left:
		r.X += dx
		r.Y += dy

	case affordance.N:
		if !locked {
			r.Height -= dy
			r.Y += dy
		}
	case affordance.S:
		if !locked {
			r.Height += dy
		}
	case affordance.W:
		if !locked {
			r.Width -= dx
			r.X += dx
		}
	case affordance.E:
		if !locked {
			r.Width += dx
		}

	case affordance.NW:
		if locked {
			r.Height -= dx
			r.Width = r.Height * ratio
			r.Y += dx
			r.X += dx * ratio
		} else {
			r.Height -= dy
			r.Width -= dx
			r.Y += dy
			r.X += dx
		}
	case affordance.SE:
		if locked {
			r.Height += dx
			r.Width = r.Height * ratio
		} else {
			r.Height += dy
			r.Width += dx
		}
	case affordance.NE:
		if locked {
			r.Height += dx
			r.Width = r.Height * ratio
			r.Y -= dx
		} else {
			r.Height -= dy
			r.Width += dx
			r.Y += dy
		}
	case affordance.SW:
		if locked {
			r.Width -= dx
			r.Height = r.Width / ratio
			r.X += dx
		} else {
			r.Height += dy
			r.Width -= dx
			r.X += dx
		}
	}
	return r
}
