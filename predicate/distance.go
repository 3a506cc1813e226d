package predicate

import (
	"math"

	"github.com/go-geom/voronoi/event"
	"github.com/go-geom/voronoi/numeric"
)

// The distance predicates decide, for a new site on the sweep line, which of two
// beach-line arcs a horizontal line through that site reaches first. Every function
// here works on the horizontal distance from the new site to an arc: for a point
// site's parabola (directrix at the sweep line) that distance is
// (dx*dx + dy*dy) / (2*dx); for a segment site's front it is the perpendicular
// cross product scaled by 1/(b + sqrt(a*a + b*b)), with the two algebraically equal
// forms below picked to avoid cancellation. Fast paths run in float64 with known ULP
// envelopes; comparisons inside the envelope are redone exactly over BigInt
// sqrt-expressions, which never need division.

// Tri-state result of a fast predicate path.
const (
	predicateLess      = -1
	predicateUndefined = 0
	predicateMore      = 1
)

// ulpCompare orders two float64 values, treating them as equal when within maxUlps
// representations of each other.
func ulpCompare(a, b float64, maxUlps uint64) int {
	if numeric.AlmostEqualUlps(a, b, maxUlps) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// robustCrossProduct returns a*d - b*c exactly. Operands are coordinate differences
// (at most 33 bits), so the products can overflow int64; small operands stay on the
// int64 fast path and anything larger is recomputed over BigInt.
func robustCrossProduct(a, b, c, d int64) float64 {
	const safe = 1 << 30
	if numeric.Abs(a) < safe && numeric.Abs(b) < safe && numeric.Abs(c) < safe && numeric.Abs(d) < safe {
		return float64(a*d - b*c)
	}
	ad := numeric.NewBigInt(a).Mul(numeric.NewBigInt(d))
	bc := numeric.NewBigInt(b).Mul(numeric.NewBigInt(c))
	return ad.Sub(bc).Float64()
}

// findDistanceToPointArc returns the horizontal distance from point to the parabolic
// arc of a point site whose directrix is the vertical line through point.
func findDistanceToPointArc(site event.SiteEvent, point event.Point) float64 {
	dx := float64(site.Point0().X) - float64(point.X)
	dy := float64(site.Point0().Y) - float64(point.Y)
	return (dx*dx + dy*dy) / (2 * dx)
}

// findDistanceToSegmentArc returns the horizontal distance from point to the front
// traced by a segment site. The scale factor 1/(b + sqrt(a*a + b*b)) is computed as
// (sqrt(a*a + b*b) - b) / (a*a) when b is negative, which is the same value without
// subtracting two nearly equal terms.
func findDistanceToSegmentArc(site event.SiteEvent, point event.Point) float64 {
	if site.IsVertical() {
		return (float64(site.SortedPoint0().X) - float64(point.X)) * 0.5
	}
	// The segment's current orientation decides which of its two fronts this arc
	// traces, so the oriented endpoints matter here, not the sorted ones.
	seg0 := site.Point0()
	seg1 := site.Point1()
	a := float64(seg1.X) - float64(seg0.X)
	b := float64(seg1.Y) - float64(seg0.Y)
	k := math.Sqrt(a*a + b*b)
	if b >= 0 {
		k = 1 / (b + k)
	} else {
		k = (k - b) / (a * a)
	}
	return k * robustCrossProduct(
		seg1.X-seg0.X, seg1.Y-seg0.Y,
		point.X-seg0.X, point.Y-seg0.Y,
	)
}

// PP is the point-vs-point distance predicate (§4.2): both arcs belong to point
// sites. It reports whether a horizontal line through newPoint reaches left's arc
// before right's. Only additions, subtractions and one division of exact inputs are
// involved, so a direct float64 computation suffices with no extended-precision
// fallback.
func PP(left, right event.SiteEvent, newPoint event.Point) bool {
	lp, rp := left.Point0(), right.Point0()
	switch {
	case lp.X > rp.X:
		if newPoint.Y <= lp.Y {
			return false
		}
	case lp.X < rp.X:
		if newPoint.Y >= rp.Y {
			return true
		}
	default:
		return float64(lp.Y)+float64(rp.Y) < 2*float64(newPoint.Y)
	}
	return findDistanceToPointArc(left, newPoint) < findDistanceToPointArc(right, newPoint)
}

// fastPS is PS's float64 fast path, deciding the easy configurations outright and
// reporting predicateUndefined for anything within rounding reach of a tie.
func fastPS(left, right event.SiteEvent, newPoint event.Point, reverseOrder bool) int {
	sitePoint := left.Point0()
	segStart := right.Point0()
	segEnd := right.Point1()

	if Orientation(segStart, segEnd, newPoint) != -1 {
		if !right.IsInverse() {
			return predicateLess
		}
		return predicateMore
	}

	difX := float64(newPoint.X) - float64(sitePoint.X)
	difY := float64(newPoint.Y) - float64(sitePoint.Y)
	a := float64(segEnd.X) - float64(segStart.X)
	b := float64(segEnd.Y) - float64(segStart.Y)

	if right.IsVertical() {
		if newPoint.Y < sitePoint.Y && !reverseOrder {
			return predicateMore
		}
		if newPoint.Y > sitePoint.Y && reverseOrder {
			return predicateLess
		}
		return predicateUndefined
	}

	if a*difY-b*difX > 0 {
		if !right.IsInverse() {
			if reverseOrder {
				return predicateLess
			}
			return predicateUndefined
		}
		if reverseOrder {
			return predicateUndefined
		}
		return predicateMore
	}

	fastLeft := a * (difY + difX) * (difY - difX)
	fastRight := 2 * b * difX * difY
	if cmp := ulpCompare(fastLeft, fastRight, 4); cmp != 0 {
		if (cmp > 0) != reverseOrder {
			if reverseOrder {
				return predicateLess
			}
			return predicateMore
		}
	}
	return predicateUndefined
}

// PS is the point-vs-segment distance predicate (§4.2): left is a point site, right
// a segment site in its current orientation, and reverseOrder flips the roles when
// the segment arc sits to the left of the point arc in the beach line. The fast path
// carries roughly a 10 ULP undefined band (3 for the point-arc distance, 7 for the
// segment-arc distance); comparisons landing inside it are redone exactly.
func PS(left, right event.SiteEvent, newPoint event.Point, reverseOrder bool) bool {
	if fast := fastPS(left, right, newPoint, reverseOrder); fast != predicateUndefined {
		return fast == predicateLess
	}
	dist1 := findDistanceToPointArc(left, newPoint)
	dist2 := findDistanceToSegmentArc(right, newPoint)
	if cmp := ulpCompare(dist1, dist2, 10); cmp != 0 {
		return reverseOrder != (cmp < 0)
	}
	return reverseOrder != (psExactLess(left, right, newPoint) < 0)
}

// psExactLess redoes the PS distance comparison exactly. With dx the point site's
// horizontal offset, N1 = dx*dx + dy*dy, c the segment cross product and L the
// squared segment length, dist1 < dist2 reduces to the sign of
// N1*b - 2*dx*c + N1*sqrt(L), flipped when dx is negative (per §4.2's BigInt
// orientation plus squared-distance combination).
func psExactLess(left, right event.SiteEvent, newPoint event.Point) int {
	sitePoint := left.Point0()
	dx := numeric.NewBigInt(sitePoint.X - newPoint.X)
	dy := numeric.NewBigInt(sitePoint.Y - newPoint.Y)
	n1 := dx.Mul(dx).Add(dy.Mul(dy))

	if right.IsVertical() {
		// dist2 = (x0 - px) / 2 exactly; compare n1/(2 dx) with it.
		m := numeric.NewBigInt(right.SortedPoint0().X - newPoint.X)
		diff := n1.Sub(dx.Mul(m))
		if dx.Sign() < 0 {
			return -diff.Sign()
		}
		return diff.Sign()
	}

	seg0, seg1 := right.Point0(), right.Point1()
	a := numeric.NewBigInt(seg1.X - seg0.X)
	b := numeric.NewBigInt(seg1.Y - seg0.Y)
	l := a.Mul(a).Add(b.Mul(b))
	cross := a.Mul(numeric.NewBigInt(newPoint.Y - seg0.Y)).
		Sub(b.Mul(numeric.NewBigInt(newPoint.X - seg0.X)))

	lead := n1.Mul(b).Sub(numeric.NewBigInt(2).Mul(dx).Mul(cross))
	sign := numeric.EvalSqrt2(
		[]numeric.BigInt{lead, n1},
		[]numeric.BigInt{numeric.NewBigInt(1), l},
	).Sign()
	if dx.Sign() < 0 {
		return -sign
	}
	return sign
}

// SS is the segment-vs-segment distance predicate (§4.2). Two occurrences of the
// same segment site can meet here through the temporary bisector a segment inserts
// for its open end; those order by plain orientation against the segment's current
// direction. Distinct segments compare by their arcs' horizontal distances, redone
// exactly when the float64 values land within the combined 14 ULP band.
func SS(left, right event.SiteEvent, newPoint event.Point) bool {
	if left.SortedIndex() == right.SortedIndex() {
		return Orientation(left.Point0(), left.Point1(), newPoint) == 1
	}
	dist1 := findDistanceToSegmentArc(left, newPoint)
	dist2 := findDistanceToSegmentArc(right, newPoint)
	if cmp := ulpCompare(dist1, dist2, 14); cmp != 0 {
		return cmp < 0
	}
	return ssExactLess(left, right, newPoint) < 0
}

// ssExactLess redoes the SS distance comparison exactly: with each distance in the
// form c/(b + sqrt(L)) (and the vertical form c/2), cross-multiplying the positive
// denominators leaves the sign of a two- or three-term sqrt expression.
func ssExactLess(left, right event.SiteEvent, newPoint event.Point) int {
	c1, b1, l1, vert1 := segmentArcTerms(left, newPoint)
	c2, b2, l2, vert2 := segmentArcTerms(right, newPoint)
	two := numeric.NewBigInt(2)
	one := numeric.NewBigInt(1)

	switch {
	case vert1 && vert2:
		return c1.Mul(two).Sub(c2.Mul(two)).Sign()
	case vert1:
		// c1/2 < c2/(b2 + sqrt(L2))  <=>  c1*b2 - 2*c2 + c1*sqrt(L2) < 0.
		return numeric.EvalSqrt2(
			[]numeric.BigInt{c1.Mul(b2).Sub(two.Mul(c2)), c1},
			[]numeric.BigInt{one, l2},
		).Sign()
	case vert2:
		return -numeric.EvalSqrt2(
			[]numeric.BigInt{c2.Mul(b1).Sub(two.Mul(c1)), c2},
			[]numeric.BigInt{one, l1},
		).Sign()
	default:
		// c1/(b1+sqrt(L1)) < c2/(b2+sqrt(L2)) cross-multiplies to
		// c1*b2 - c2*b1 + c1*sqrt(L2) - c2*sqrt(L1) < 0.
		return numeric.EvalSqrt3(
			[]numeric.BigInt{c1.Mul(b2).Sub(c2.Mul(b1)), c1, c2.Neg()},
			[]numeric.BigInt{one, l2, l1},
		).Sign()
	}
}

// segmentArcTerms returns the exact pieces of a segment arc's horizontal distance
// c/(b + sqrt(L)) from newPoint, or (c, _, _, true) for a vertical segment whose
// distance is c/2.
func segmentArcTerms(site event.SiteEvent, newPoint event.Point) (c, b, l numeric.BigInt, vertical bool) {
	if site.IsVertical() {
		return numeric.NewBigInt(site.SortedPoint0().X - newPoint.X), numeric.BigInt{}, numeric.BigInt{}, true
	}
	seg0, seg1 := site.Point0(), site.Point1()
	ab := numeric.NewBigInt(seg1.X - seg0.X)
	bb := numeric.NewBigInt(seg1.Y - seg0.Y)
	cross := ab.Mul(numeric.NewBigInt(newPoint.Y - seg0.Y)).
		Sub(bb.Mul(numeric.NewBigInt(newPoint.X - seg0.X)))
	return cross, bb, ab.Mul(ab).Add(bb.Mul(bb)), false
}

// DistanceLess dispatches the §4.2 distance predicates on the site-type pair,
// reporting whether a horizontal line through newPoint reaches site1's arc before
// site2's. When the segment of a mixed pair sits on the left, the roles swap and the
// result inverts, which is what the reverse flag of PS encodes.
func DistanceLess(site1, site2 event.SiteEvent, newPoint event.Point) bool {
	if !site1.IsSegment() {
		if !site2.IsSegment() {
			return PP(site1, site2, newPoint)
		}
		return PS(site1, site2, newPoint, false)
	}
	if !site2.IsSegment() {
		return PS(site2, site1, newPoint, true)
	}
	return SS(site1, site2, newPoint)
}
