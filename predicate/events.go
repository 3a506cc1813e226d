package predicate

import "github.com/go-geom/voronoi/event"

// CompareEvents implements the event comparison predicate of §4.2. Events order
// primarily by the x of their lower point. At equal x, point sites (including a
// segment's expanded endpoints) and vertical segment bodies order among themselves by
// the y of their lower point, all of them come before non-vertical bodies, and two
// non-vertical bodies sharing their lower
// endpoint order so the one tilted further counter-clockwise comes first. Events
// equal on geometry tie-break by source category (point before segment start before
// segment body before segment end); full duplicates compare equal and collapse in
// the site queue.
func CompareEvents(a, b event.SiteEvent) int {
	pa, pb := a.SortedPoint0(), b.SortedPoint0()
	if pa.X != pb.X {
		return cmpI64(pa.X, pb.X)
	}
	if c := compareEventsAtX(a, b); c != 0 {
		return c
	}
	if ra, rb := categoryRank(a.Category()), categoryRank(b.Category()); ra != rb {
		return cmpInt(ra, rb)
	}
	return 0
}

// compareEventsAtX orders two events sharing their lower point's x. A point site is
// treated as a degenerate vertical segment, which is what makes the case analysis
// close: every point goes before every non-vertical segment body at the same sweep
// position, because the body's arc cannot be inserted until all arcs pinned to the
// sweep line exist.
func compareEventsAtX(a, b event.SiteEvent) int {
	pa, pb := a.SortedPoint0(), b.SortedPoint0()
	if !a.IsSegment() {
		if !b.IsSegment() {
			return cmpI64(pa.Y, pb.Y)
		}
		if b.IsVertical() {
			if pa.Y <= pb.Y {
				return -1
			}
			return 1
		}
		return -1
	}
	if b.IsVertical() {
		if a.IsVertical() {
			return cmpI64(pa.Y, pb.Y)
		}
		return 1
	}
	if a.IsVertical() {
		return -1
	}
	if pa.Y != pb.Y {
		return cmpI64(pa.Y, pb.Y)
	}
	// Both bodies rise from the same lower endpoint; the one tilted further
	// counter-clockwise owns the earlier stretch of the beach line.
	return -Orientation(a.SortedPoint1(), a.SortedPoint0(), b.SortedPoint1())
}

// Less adapts CompareEvents to the strict-weak-order shape event.Less expects.
func Less(a, b event.SiteEvent) bool {
	return CompareEvents(a, b) < 0
}

func cmpI64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// categoryRank gives the tiebreak order point < segment start < segment body < segment
// end named in §4.2.
func categoryRank(c event.SourceCategory) int {
	switch c {
	case event.SinglePoint:
		return 0
	case event.SegmentStart:
		return 1
	case event.InitialSegment, event.ReverseSegment:
		return 2
	case event.SegmentEnd:
		return 3
	default:
		return 4
	}
}
