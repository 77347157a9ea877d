package render

import (
	"math"

	"github.com/lixenwraith/antborder/geom"
)

// Direction is the travel direction of one border edge
type Direction uint8

const (
	LeftToRight Direction = iota
	TopToBottom
	RightToLeft
	BottomToTop
)

var directionNames = [...]string{"ltr", "ttb", "rtl", "btt"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Vertical reports whether the edge runs along the y axis
func (d Direction) Vertical() bool {
	return d == TopToBottom || d == BottomToTop
}

// Sign is +1 for directions that increase the coordinate, -1 otherwise
func (d Direction) Sign() float64 {
	if d == RightToLeft || d == BottomToTop {
		return -1
	}
	return 1
}

// along returns the coordinate of p on the direction's axis
func (d Direction) along(p geom.Point) float64 {
	if d.Vertical() {
		return p.Y
	}
	return p.X
}

// at returns base moved to coordinate v on the direction's axis
func (d Direction) at(base geom.Point, v float64) geom.Point {
	if d.Vertical() {
		base.Y = v
	} else {
		base.X = v
	}
	return base
}

// reached reports whether v is at or past end in travel order
func (d Direction) reached(v, end float64) bool {
	if d.Sign() > 0 {
		return v >= end
	}
	return v <= end
}

// Segment is one solid dash
type Segment struct {
	From, To geom.Point
}

// Length returns the absolute extent of the segment along its longer axis
func (s Segment) Length() float64 {
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// DashSegments walks one edge from start to end and returns its solid dashes
//
// Walk:
//   - With phase > gap, a carry-over dash of phase-gap starts at the edge start,
//     continuing the dash the previous edge cut at the corner
//   - Dashes then start phase units into the edge, each solid long (clipped at the edge
//     end) and followed by gap, until the cursor reaches or passes the end
//
// Edges with solid <= 0, or any non-finite length, produce no dashes.
func DashSegments(start, end geom.Point, dir Direction, solid, gap, phase float64) []Segment {
	if solid <= 0 || !finite(solid) || !finite(gap) || !finite(phase) {
		return nil
	}
	if gap < 0 {
		gap = 0
	}
	if phase < 0 {
		phase = 0
	}

	sign := dir.Sign()
	s := dir.along(start)
	e := dir.along(end)
	if !finite(s) || !finite(e) {
		return nil
	}

	var segs []Segment

	if phase > gap && !dir.reached(s, e) {
		to := s + sign*(phase-gap)
		if dir.reached(to, e) {
			to = e
		}
		segs = append(segs, Segment{From: start, To: dir.at(start, to)})
	}

	for cur := s + sign*phase; !dir.reached(cur, e); {
		next := cur + sign*solid
		if dir.reached(next, e) {
			next = e
		}
		segs = append(segs, Segment{From: dir.at(start, cur), To: dir.at(start, next)})
		advanced := next + sign*gap
		// Lengths below the float spacing at cur cannot move the cursor
		if advanced == cur || math.IsNaN(advanced) {
			break
		}
		cur = advanced
	}

	return segs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
