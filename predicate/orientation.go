// Package predicate implements the geometric predicate hierarchy of §4.2: orientation,
// event comparison, the point/segment distance predicates that back the beach-line's
// node comparison, circle formation, and the pairwise self-intersection check used to validate
// input segments. Every predicate here is pure and side-effect-free; none allocates on
// its fast path. Ambiguous float64 results fall back to package numeric's BigInt tier
// rather than ever guessing.
package predicate

import (
	"github.com/go-geom/voronoi/event"
	"github.com/go-geom/voronoi/numeric"
)

// Orientation returns the sign of the cross product (p2-p1) x (p3-p1): +1 if p1, p2, p3
// turn counter-clockwise, -1 clockwise, 0 if collinear. It evaluates the RobustFpt fast
// path first; when the tracked error envelope cannot rule out zero, it falls back to
// exact BigInt arithmetic, per §4.2's "fast path is a f64 cross-product... on tie the
// BigInt version is computed."
func Orientation(p1, p2, p3 event.Point) int {
	ax := numeric.NewRobustFpt(float64(p2.X - p1.X))
	ay := numeric.NewRobustFpt(float64(p2.Y - p1.Y))
	bx := numeric.NewRobustFpt(float64(p3.X - p1.X))
	by := numeric.NewRobustFpt(float64(p3.Y - p1.Y))
	cross := ax.Mul(by).Sub(ay.Mul(bx))
	if sign, ok := cross.DefiniteSign(0); ok {
		return sign
	}
	return orientationExact(p1, p2, p3)
}

// orientationExact is the BigInt fallback: coordinates fit in 32 bits, so each
// difference fits in 33 and each product in 66, well within a handful of 32-bit limbs
// per §4.1 ("No division required").
func orientationExact(p1, p2, p3 event.Point) int {
	ax := numeric.NewBigInt(p2.X - p1.X)
	ay := numeric.NewBigInt(p2.Y - p1.Y)
	bx := numeric.NewBigInt(p3.X - p1.X)
	by := numeric.NewBigInt(p3.Y - p1.Y)
	return ax.Mul(by).Sub(ay.Mul(bx)).Sign()
}
