package predicate

import "github.com/go-geom/voronoi/event"

// Segment is a plain pair of endpoints, used only by FindSelfIntersections so this
// package does not need to depend on the root package's richer Segment type.
type Segment struct {
	Start, End event.Point
}

// FindSelfIntersections reports the first pair of input segment indices (i < j) whose
// segments intersect at a point other than a shared endpoint, or ok=false if the input
// is clean. It is grounded in the teacher's orientation-based segment-intersection test
// (intersection.go's IntersectsLineSegment), applied pairwise across the input: each
// pair is classified with four orientation tests exactly as the teacher's general
// segment-intersection check does, then any intersection found is checked against the
// segments' four endpoints to rule out the allowed shared-endpoint case.
func FindSelfIntersections(segments []Segment) (i, j int, ok bool) {
	for a := 0; a < len(segments); a++ {
		for b := a + 1; b < len(segments); b++ {
			if segmentsImproperlyIntersect(segments[a], segments[b]) {
				return a, b, true
			}
		}
	}
	return 0, 0, false
}

func segmentsImproperlyIntersect(s1, s2 Segment) bool {
	if sharesEndpoint(s1, s2) {
		// endpoints may coincide; that is the one intersection shape §1's Non-goals
		// permit ("segments may share only endpoints").
		return properOverlapBeyondSharedEndpoint(s1, s2)
	}

	o1 := Orientation(s1.Start, s1.End, s2.Start)
	o2 := Orientation(s1.Start, s1.End, s2.End)
	o3 := Orientation(s2.Start, s2.End, s1.Start)
	o4 := Orientation(s2.Start, s2.End, s1.End)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// collinear special cases: one segment's endpoint lies on the other's interior.
	if o1 == 0 && onSegment(s1.Start, s1.End, s2.Start) {
		return true
	}
	if o2 == 0 && onSegment(s1.Start, s1.End, s2.End) {
		return true
	}
	if o3 == 0 && onSegment(s2.Start, s2.End, s1.Start) {
		return true
	}
	if o4 == 0 && onSegment(s2.Start, s2.End, s1.End) {
		return true
	}
	return false
}

func sharesEndpoint(s1, s2 Segment) bool {
	return s1.Start == s2.Start || s1.Start == s2.End || s1.End == s2.Start || s1.End == s2.End
}

// properOverlapBeyondSharedEndpoint reports whether two segments that already share an
// endpoint also overlap beyond it - i.e. they are collinear and run along the same
// line past the shared point, which §1's Non-goals forbid even though a bare shared
// endpoint is allowed.
func properOverlapBeyondSharedEndpoint(s1, s2 Segment) bool {
	if Orientation(s1.Start, s1.End, s2.Start) != 0 || Orientation(s1.Start, s1.End, s2.End) != 0 {
		return false
	}
	// collinear and sharing an endpoint: overlap exists iff the non-shared endpoints
	// lie on the same side of the shared point along the common line.
	shared, o1, o2 := sharedAndOthers(s1, s2)
	dx1, dy1 := o1.X-shared.X, o1.Y-shared.Y
	dx2, dy2 := o2.X-shared.X, o2.Y-shared.Y
	dot := dx1*dx2 + dy1*dy2
	return dot > 0
}

func sharedAndOthers(s1, s2 Segment) (shared, other1, other2 event.Point) {
	switch {
	case s1.Start == s2.Start:
		return s1.Start, s1.End, s2.End
	case s1.Start == s2.End:
		return s1.Start, s1.End, s2.Start
	case s1.End == s2.Start:
		return s1.End, s1.Start, s2.End
	default:
		return s1.End, s1.Start, s2.Start
	}
}

// onSegment reports whether q, known collinear with segment a-b, lies within its
// bounding box (and hence on the segment itself).
func onSegment(a, b, q event.Point) bool {
	return q.X >= min64(a.X, b.X) && q.X <= max64(a.X, b.X) &&
		q.Y >= min64(a.Y, b.Y) && q.Y <= max64(a.Y, b.Y)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
