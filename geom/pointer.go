package geom

// Positioned is a laid-out host element
// Offsets are relative to the offset parent; ok is false until the element has a layout position
type Positioned interface {
	Offset() (left, top float64, ok bool)

	// ClientInset is the width of the element's own left/top border
	ClientInset() (left, top float64)

	// OffsetParent returns the containing element, nil at the root
	OffsetParent() Positioned
}

// ScrollSource exposes the host's page scroll position
// PageOffset is the standard property; DocumentScroll and BodyScroll are the legacy pair
type ScrollSource interface {
	PageOffset() Point
	DocumentScroll() Point
	BodyScroll() Point
}

// maxParentDepth bounds the offset-parent walk against cyclic host trees
const maxParentDepth = 256

// ScrollOffset returns the page scroll offset, preferring the standard property
// A nil source yields a zero offset
func ScrollOffset(src ScrollSource) Point {
	if src == nil {
		return Point{}
	}
	if page := src.PageOffset(); page.X != 0 || page.Y != 0 {
		return page
	}
	return src.DocumentScroll().Add(src.BodyScroll())
}

// ElementDocPosition sums the element offsets up the offset-parent chain
// Each parent also contributes its client inset. Returns ok=false and a zero point when
// the element itself has no layout position yet
func ElementDocPosition(el Positioned) (Point, bool) {
	if el == nil {
		return Point{}, false
	}
	left, top, ok := el.Offset()
	if !ok {
		return Point{}, false
	}

	parent := el.OffsetParent()
	for depth := 0; parent != nil && depth < maxParentDepth; depth++ {
		pl, pt, pok := parent.Offset()
		if pok {
			il, it := parent.ClientInset()
			left += pl + il
			top += pt + it
		}
		parent = parent.OffsetParent()
	}

	return Point{X: left, Y: top}, true
}

// LocalPointerPosition converts a raw (client) pointer position to target-local coordinates
// Subtracts the target's document position minus the page scroll. Never fails: an element
// without layout contributes a zero offset
func LocalPointerPosition(client Point, target Positioned, scroll ScrollSource) Point {
	doc, _ := ElementDocPosition(target)
	offset := doc.Sub(ScrollOffset(scroll))
	return client.Sub(offset)
}
