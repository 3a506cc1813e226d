package predicate

import "github.com/go-geom/voronoi/event"

// NodeLess is the node comparison predicate of §4.2: it reports whether the bisector
// represented by the arc pair (l1, r1) lies before the one represented by (l2, r2)
// along the beach line. Nodes compare by the y of their arcs' intersection at the
// current sweep position, which is always the x of the newer node's newest site -
// the comparison is only ever asked while that site sits on the sweep line, so the
// newer node's arc degenerates to a horizontal line through it and the question
// reduces to the §4.2 distance predicates. Ties at equal x fall back to the pinned
// y-coordinates and arc directions of the two nodes.
func NodeLess(l1, r1, l2, r2 event.SiteEvent) bool {
	site1 := comparisonSite(l1, r1)
	site2 := comparisonSite(l2, r2)
	point1 := site1.SortedPoint0()
	point2 := site2.SortedPoint0()

	switch {
	case point1.X < point2.X:
		// The second node's site is on the sweep line.
		return DistanceLess(l1, r1, point2)
	case point1.X > point2.X:
		// The first node's site is on the sweep line.
		return !DistanceLess(l2, r2, point1)
	default:
		if site1.SortedIndex() == site2.SortedIndex() {
			// Both nodes were inserted while processing the same site event.
			y1, d1 := comparisonY(l1, r1, true)
			y2, d2 := comparisonY(l2, r2, true)
			if y1 != y2 {
				return y1 < y2
			}
			return d1 < d2
		}
		if site1.SortedIndex() < site2.SortedIndex() {
			y1, d1 := comparisonY(l1, r1, false)
			y2, _ := comparisonY(l2, r2, true)
			if y1 != y2 {
				return y1 < y2
			}
			if !site1.IsSegment() {
				return d1 < 0
			}
			return false
		}
		y1, _ := comparisonY(l1, r1, true)
		y2, d2 := comparisonY(l2, r2, false)
		if y1 != y2 {
			return y1 < y2
		}
		if !site2.IsSegment() {
			return d2 > 0
		}
		return true
	}
}

// comparisonSite returns the newer of a node's two sites - the one whose insertion
// fixed the node's position in the beach line.
func comparisonSite(left, right event.SiteEvent) event.SiteEvent {
	if left.SortedIndex() > right.SortedIndex() {
		return left
	}
	return right
}

// comparisonY returns the y-coordinate at which a node pinned into the beach line,
// paired with the direction (+1 newer site on the left, -1 newer site on the right,
// 0 for a segment's temporary self-bisector) used to break exact ties.
func comparisonY(left, right event.SiteEvent, isNewNode bool) (int64, int) {
	if left.SortedIndex() == right.SortedIndex() {
		return left.Point0().Y, 0
	}
	if left.SortedIndex() > right.SortedIndex() {
		if !isNewNode && left.IsSegment() && left.IsVertical() {
			return left.Point0().Y, 1
		}
		return left.Point1().Y, 1
	}
	return right.Point0().Y, -1
}
