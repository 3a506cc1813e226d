package predicate

import (
	"errors"

	"github.com/go-geom/voronoi/event"
	"github.com/go-geom/voronoi/numeric"
)

// ErrRadiusLessThanZero is returned when a circle-formation sub-case derives a
// negative squared radius for a triple its existence pre-check accepted - an input
// contract violation or a numerics bug, never a near-tie.
var ErrRadiusLessThanZero = errors.New("circle-formation radius less than zero")

// CircleOptions carries the tuning knobs of the adaptive circle-formation predicate:
// the per-depth ULP envelopes at which a lazily computed coordinate is recomputed
// exactly, and whether that exact tier is enabled at all.
type CircleOptions struct {
	Thresholds    [4]uint64
	ExactFallback bool
}

// DefaultCircleOptions enables the exact tier with the documented thresholds.
func DefaultCircleOptions() CircleOptions {
	return CircleOptions{Thresholds: [4]uint64{4, 7, 16, 25}, ExactFallback: true}
}

func (o CircleOptions) threshold(depth int) float64 {
	return float64(o.Thresholds[depth-1])
}

// CircleFormation is the circle-formation predicate of §4.2: given three
// consecutive beach-line arcs, it decides whether they converge and, if so, returns
// the Voronoi vertex they converge to together with lower_x, the sweep position at
// which the event fires. The eight (point|segment)^3 sub-cases collapse onto four
// computations - ppp, pps, pss, sss - selected by how many of the arcs belong to
// segment bodies and where in the triple they sit.
func CircleFormation(site1, site2, site3 event.SiteEvent, opts CircleOptions) (event.Circle, bool, error) {
	var circle event.Circle
	var ok bool
	var err error

	if !site1.IsSegment() {
		if !site2.IsSegment() {
			if !site3.IsSegment() {
				circle, ok, err = circlePPP(site1, site2, site3, opts)
			} else {
				circle, ok, err = circlePPS(site1, site2, site3, 3, opts)
			}
		} else {
			if !site3.IsSegment() {
				circle, ok, err = circlePPS(site1, site3, site2, 2, opts)
			} else {
				circle, ok, err = circlePSS(site1, site2, site3, 1, opts)
			}
		}
	} else {
		if !site2.IsSegment() {
			if !site3.IsSegment() {
				circle, ok, err = circlePPS(site2, site3, site1, 1, opts)
			} else {
				circle, ok, err = circlePSS(site2, site1, site3, 2, opts)
			}
		} else {
			if !site3.IsSegment() {
				circle, ok, err = circlePSS(site3, site1, site2, 3, opts)
			} else {
				circle, ok, err = circleSSS(site1, site2, site3, opts)
			}
		}
	}
	if err != nil || !ok {
		return event.Circle{}, false, err
	}
	if liesOutsideVerticalSegment(circle, site1) ||
		liesOutsideVerticalSegment(circle, site2) ||
		liesOutsideVerticalSegment(circle, site3) {
		return event.Circle{}, false, nil
	}
	return circle, true, nil
}

// liesOutsideVerticalSegment rejects a candidate whose center falls beyond the y-span
// of a vertical segment arc in its triple; such an event belongs to the segment's
// endpoint arcs, not its body.
func liesOutsideVerticalSegment(c event.Circle, site event.SiteEvent) bool {
	if !site.IsSegment() || !site.IsVertical() {
		return false
	}
	y0 := float64(site.SortedPoint0().Y)
	y1 := float64(site.SortedPoint1().Y)
	if c.Y < y0 && !numeric.AlmostEqualUlps(c.Y, y0, 64) {
		return true
	}
	if c.Y > y1 && !numeric.AlmostEqualUlps(c.Y, y1, 64) {
		return true
	}
	return false
}

func rf(v float64) numeric.RobustFpt { return numeric.NewRobustFpt(v) }

func bi(v int64) numeric.BigInt { return numeric.NewBigInt(v) }

var (
	biOne = numeric.NewBigInt(1)
	biTwo = numeric.NewBigInt(2)
)

// difAdd folds one signed term into a RobustDif accumulator, keeping the positive and
// negative sides separated so the deferred subtraction happens exactly once.
func difAdd(d numeric.RobustDif, t numeric.RobustFpt) numeric.RobustDif {
	zero := numeric.NewRobustFpt(0)
	if t.Value() >= 0 {
		return d.Add(numeric.NewRobustDif(t, zero))
	}
	return d.Add(numeric.NewRobustDif(zero, t.Neg()))
}

// orientF is the float64 orientation of three already-computed points, used only to
// pick between candidate roots whose separation is far outside rounding reach.
func orientF(x1, y1, x2, y2, x3, y3 float64) int {
	cross := (x2-x1)*(y3-y1) - (y2-y1)*(x3-x1)
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// circlePPP handles three point arcs: the circumcircle, with the RobustDif lazy path
// recomputed over BigInt when a coordinate's tracked error leaves its envelope.
func circlePPP(s1, s2, s3 event.SiteEvent, opts CircleOptions) (event.Circle, bool, error) {
	p1, p2, p3 := s1.Point0(), s2.Point0(), s3.Point0()
	if Orientation(p1, p2, p3) != -1 {
		return event.Circle{}, false, nil
	}

	difX1 := rf(float64(p1.X) - float64(p2.X))
	difY1 := rf(float64(p1.Y) - float64(p2.Y))
	difX2 := rf(float64(p2.X) - float64(p3.X))
	difY2 := rf(float64(p2.Y) - float64(p3.Y))
	difX3 := rf(float64(p1.X) - float64(p3.X))
	difY3 := rf(float64(p1.Y) - float64(p3.Y))
	sumX1 := rf(float64(p1.X) + float64(p2.X))
	sumY1 := rf(float64(p1.Y) + float64(p2.Y))
	sumX2 := rf(float64(p2.X) + float64(p3.X))
	sumY2 := rf(float64(p2.Y) + float64(p3.Y))

	orientation := robustCrossProduct(p1.X-p2.X, p1.Y-p2.Y, p2.X-p3.X, p2.Y-p3.Y)
	invOrientation := numeric.NewRobustFptWithError(0.5/orientation, 2)

	zero := numeric.NewRobustFpt(0)
	cX := numeric.NewRobustDif(zero, zero)
	cX = difAdd(cX, difX1.Mul(sumX1).Mul(difY2))
	cX = difAdd(cX, difY1.Mul(sumY1).Mul(difY2))
	cX = difAdd(cX, difX2.Mul(sumX2).Mul(difY1).Neg())
	cX = difAdd(cX, difY2.Mul(sumY2).Mul(difY1).Neg())

	cY := numeric.NewRobustDif(zero, zero)
	cY = difAdd(cY, difX2.Mul(sumX2).Mul(difX1))
	cY = difAdd(cY, difY2.Mul(sumY2).Mul(difX1))
	cY = difAdd(cY, difX1.Mul(sumX1).Mul(difX2).Neg())
	cY = difAdd(cY, difY1.Mul(sumY1).Mul(difX2).Neg())

	sqrDist1 := difX1.Mul(difX1).Add(difY1.Mul(difY1))
	sqrDist2 := difX2.Mul(difX2).Add(difY2.Mul(difY2))
	sqrDist3 := difX3.Mul(difX3).Add(difY3.Mul(difY3))
	radical := sqrDist1.Mul(sqrDist2).Mul(sqrDist3).Sqrt()

	lowerX := cX.Sub(numeric.NewRobustDif(radical, zero))

	cxR := cX.Value().Mul(invOrientation)
	cyR := cY.Value().Mul(invOrientation)
	lxR := lowerX.Value().Mul(invOrientation)
	circle := event.Circle{X: cxR.Value(), Y: cyR.Value(), LowerX: lxR.Value()}

	if opts.ExactFallback &&
		(cxR.ErrorUlps() > opts.threshold(1) ||
			cyR.ErrorUlps() > opts.threshold(1) ||
			lxR.ErrorUlps() > opts.threshold(1)) {
		circle = exactPPP(p1, p2, p3)
	}
	if circle.LowerX < circle.X {
		return event.Circle{}, false, ErrRadiusLessThanZero
	}
	return circle, true, nil
}

func exactPPP(p1, p2, p3 event.Point) event.Circle {
	dx1 := bi(p1.X - p2.X)
	dy1 := bi(p1.Y - p2.Y)
	dx2 := bi(p2.X - p3.X)
	dy2 := bi(p2.Y - p3.Y)
	dx3 := bi(p1.X - p3.X)
	dy3 := bi(p1.Y - p3.Y)

	d1 := dx1.Mul(bi(p1.X + p2.X)).Add(dy1.Mul(bi(p1.Y + p2.Y)))
	d2 := dx2.Mul(bi(p2.X + p3.X)).Add(dy2.Mul(bi(p2.Y + p3.Y)))

	denom := dx1.Mul(dy2).Sub(dx2.Mul(dy1)).Mul(biTwo).ExtFloat()

	cxNum := d1.Mul(dy2).Sub(d2.Mul(dy1))
	cyNum := d2.Mul(dx1).Sub(d1.Mul(dx2))

	s1 := dx1.Mul(dx1).Add(dy1.Mul(dy1))
	s2 := dx2.Mul(dx2).Add(dy2.Mul(dy2))
	s3 := dx3.Mul(dx3).Add(dy3.Mul(dy3))
	radical := numeric.EvalSqrt1([]numeric.BigInt{biOne}, []numeric.BigInt{s1.Mul(s2).Mul(s3)})

	lowerNum := cxNum.ExtFloat().Sub(radical)
	return event.Circle{
		X:      cxNum.ExtFloat().Div(denom).Float64(),
		Y:      cyNum.ExtFloat().Div(denom).Float64(),
		LowerX: lowerNum.Div(denom).Float64(),
	}
}

// ppsExists is the (point, point, segment) existence pre-check: the two point sites
// must make a right turn against the segment's span consistent with the segment's
// position in the triple.
func ppsExists(pA, pB, seg event.SiteEvent, segmentIndex int) bool {
	if segmentIndex == 2 {
		return seg.Point0() != pA.Point0() || seg.Point1() != pB.Point0()
	}
	orient1 := Orientation(pA.Point0(), pB.Point0(), seg.Point0())
	orient2 := Orientation(pA.Point0(), pB.Point0(), seg.Point1())
	if segmentIndex == 1 && pA.Point0().X >= pB.Point0().X {
		return orient1 == -1
	}
	if segmentIndex == 3 && pB.Point0().X >= pA.Point0().X {
		return orient2 == -1
	}
	return orient1 == -1 || orient2 == -1
}

// circlePPS handles two point arcs and one segment arc. The center rides the
// perpendicular bisector of the two points: with M their midpoint, w the
// perpendicular, C = M + (u/2)*w, equidistance to the segment's line reduces to
// u^2*T^2 - 2*G*F*u + (d*L - G^2) = 0 whose discriminant d*L*R factors over exact
// integers (T the cross of segment and point-pair directions, G twice the midpoint's
// scaled line offset, F the directions' dot product, R = G^2 + F^2 - d*L).
func circlePPS(pA, pB, seg event.SiteEvent, segmentIndex int, opts CircleOptions) (event.Circle, bool, error) {
	if !ppsExists(pA, pB, seg, segmentIndex) {
		return event.Circle{}, false, nil
	}

	p1, p2 := pA.Point0(), pB.Point0()
	q0, q1 := seg.Point0(), seg.Point1()

	dxI, dyI := p2.X-p1.X, p2.Y-p1.Y
	aI, bI := q1.X-q0.X, q1.Y-q0.Y

	dx := rf(float64(dxI))
	dy := rf(float64(dyI))
	a := rf(float64(aI))
	b := rf(float64(bI))

	d := dx.Mul(dx).Add(dy.Mul(dy))
	l := a.Mul(a).Add(b.Mul(b))
	cc := rf(robustCrossProduct(bI, aI, q0.Y, q0.X)) // b*x0 - a*y0, exact
	g := a.Mul(rf(float64(p1.Y) + float64(p2.Y))).
		Sub(b.Mul(rf(float64(p1.X) + float64(p2.X)))).
		Add(cc.Mul(rf(2)))
	f := a.Mul(dx).Add(b.Mul(dy))
	t := rf(robustCrossProduct(aI, bI, dxI, dyI)) // exact

	sumX := rf(float64(p1.X) + float64(p2.X))
	sumY := rf(float64(p1.Y) + float64(p2.Y))
	n := l.Sqrt()

	buildCandidate := func(u numeric.RobustFpt) (event.Circle, [3]numeric.RobustFpt, bool) {
		cx := sumX.Sub(u.Mul(dy)).Mul(rf(0.5))
		cy := sumY.Add(u.Mul(dx)).Mul(rf(0.5))
		r := g.Add(u.Mul(f)).Div(rf(2).Mul(n))
		if r.Value() <= 0 {
			return event.Circle{}, [3]numeric.RobustFpt{}, false
		}
		// Tangency point on the segment's line; the arcs converge only if the
		// three touch points wind clockwise in beach-line order.
		tx := cx.Value() + r.Value()*b.Value()/n.Value()
		ty := cy.Value() - r.Value()*a.Value()/n.Value()
		var o int
		switch segmentIndex {
		case 1:
			o = orientF(tx, ty, float64(p1.X), float64(p1.Y), float64(p2.X), float64(p2.Y))
		case 2:
			o = orientF(float64(p1.X), float64(p1.Y), tx, ty, float64(p2.X), float64(p2.Y))
		default:
			o = orientF(float64(p1.X), float64(p1.Y), float64(p2.X), float64(p2.Y), tx, ty)
		}
		if o >= 0 {
			return event.Circle{}, [3]numeric.RobustFpt{}, false
		}
		lx := cx.Add(r)
		return event.Circle{X: cx.Value(), Y: cy.Value(), LowerX: lx.Value()},
			[3]numeric.RobustFpt{cx, cy, lx}, true
	}

	var circle event.Circle
	var tracked [3]numeric.RobustFpt
	var sign int
	found := false

	if t.Value() != 0 {
		rTerm := g.Mul(g).Add(f.Mul(f)).Sub(d.Mul(l))
		disc := d.Mul(l).Mul(rTerm)
		if disc.Value() < 0 {
			if _, definite := disc.DefiniteSign(0); definite {
				return event.Circle{}, false, nil
			}
			disc = numeric.NewRobustFptWithError(0, disc.ErrorUlps())
		}
		sq := disc.Sqrt()
		t2 := t.Mul(t)
		for _, s := range []int{1, -1} {
			num := g.Mul(f)
			if s > 0 {
				num = num.Add(sq)
			} else {
				num = num.Sub(sq)
			}
			if c, tr, ok := buildCandidate(num.Div(t2)); ok {
				circle, tracked, sign, found = c, tr, s, true
				break
			}
		}
	} else {
		// Segment parallel to the point pair: the quadratic degenerates to a
		// single linear root.
		gf := g.Mul(f)
		if gf.Value() == 0 {
			return event.Circle{}, false, nil
		}
		u := d.Mul(l).Sub(g.Mul(g)).Div(rf(2).Mul(gf))
		if c, tr, ok := buildCandidate(u); ok {
			circle, tracked, found = c, tr, true
		}
	}
	if !found {
		return event.Circle{}, false, nil
	}

	if opts.ExactFallback &&
		(tracked[0].ErrorUlps() > opts.threshold(2) ||
			tracked[1].ErrorUlps() > opts.threshold(2) ||
			tracked[2].ErrorUlps() > opts.threshold(4)) {
		exact, err := exactPPS(p1, p2, q0, q1, sign, t.Value() == 0)
		if err != nil {
			return event.Circle{}, false, err
		}
		circle = exact
	}
	if circle.LowerX < circle.X {
		return event.Circle{}, false, ErrRadiusLessThanZero
	}
	return circle, true, nil
}

func exactPPS(p1, p2, q0, q1 event.Point, sign int, parallel bool) (event.Circle, error) {
	dx := bi(p2.X - p1.X)
	dy := bi(p2.Y - p1.Y)
	a := bi(q1.X - q0.X)
	b := bi(q1.Y - q0.Y)
	sx := bi(p1.X + p2.X)
	sy := bi(p1.Y + p2.Y)

	d := dx.Mul(dx).Add(dy.Mul(dy))
	l := a.Mul(a).Add(b.Mul(b))
	c := b.Mul(bi(q0.X)).Sub(a.Mul(bi(q0.Y)))
	g := a.Mul(sy).Sub(b.Mul(sx)).Add(biTwo.Mul(c))
	f := a.Mul(dx).Add(b.Mul(dy))

	if parallel {
		gf := biTwo.Mul(g).Mul(f).ExtFloat()
		u := d.Mul(l).Sub(g.Mul(g)).ExtFloat().Div(gf)
		half := numeric.NewExtFloat(0.5)
		cx := sx.ExtFloat().Sub(u.Mul(dy.ExtFloat())).Mul(half)
		cy := sy.ExtFloat().Add(u.Mul(dx.ExtFloat())).Mul(half)
		r := g.ExtFloat().Add(u.Mul(f.ExtFloat())).
			Div(numeric.NewExtFloat(2).Mul(l.ExtFloat().Sqrt()))
		return event.Circle{
			X:      cx.Float64(),
			Y:      cy.Float64(),
			LowerX: cx.Add(r).Float64(),
		}, nil
	}

	t := a.Mul(dy).Sub(b.Mul(dx))
	t2 := t.Mul(t)
	r := g.Mul(g).Add(f.Mul(f)).Sub(d.Mul(l))
	if r.Sign() < 0 {
		return event.Circle{}, ErrRadiusLessThanZero
	}
	dlr := d.Mul(l).Mul(r)
	sgn := bi(int64(sign))

	denom := biTwo.Mul(t2).ExtFloat()
	cxNum := numeric.EvalSqrt2(
		[]numeric.BigInt{sx.Mul(t2).Sub(dy.Mul(g).Mul(f)), sgn.Neg().Mul(dy)},
		[]numeric.BigInt{biOne, dlr},
	)
	cyNum := numeric.EvalSqrt2(
		[]numeric.BigInt{sy.Mul(t2).Add(dx.Mul(g).Mul(f)), sgn.Mul(dx)},
		[]numeric.BigInt{biOne, dlr},
	)
	lowNum := numeric.EvalSqrt4(
		[]numeric.BigInt{sx.Mul(t2).Sub(dy.Mul(g).Mul(f)), sgn.Neg().Mul(dy), g.Mul(d), sgn.Mul(f)},
		[]numeric.BigInt{biOne, dlr, l, d.Mul(r)},
	)
	return event.Circle{
		X:      cxNum.Div(denom).Float64(),
		Y:      cyNum.Div(denom).Float64(),
		LowerX: lowNum.Div(denom).Float64(),
	}, nil
}

// pssExists is the (point, segment, segment) existence pre-check.
func pssExists(p, segA, segB event.SiteEvent, pointIndex int) bool {
	if segA.SortedIndex() == segB.SortedIndex() {
		return false
	}
	if pointIndex == 2 {
		if !segA.IsInverse() && segB.IsInverse() {
			return false
		}
		if segA.IsInverse() == segB.IsInverse() &&
			Orientation(segA.Point0(), p.Point0(), segB.Point1()) != -1 {
			return false
		}
	}
	return true
}

// circlePSS handles one point arc and two segment arcs. The center rides the
// oriented bisector of the two lines; with the point folded in, the distance rho to
// both lines satisfies rho^2*(S-K)^2 + 2*rho*(P*n2 - Q*n3) + (hx^2 + hy^2) = 0,
// where S = n2*n3, K the directions' dot product, and P, Q, hx, hy integer
// combinations of the line offsets against the point. The discriminant takes the
// W + V*S shape the PSS3 evaluator resolves exactly.
func circlePSS(p, segA, segB event.SiteEvent, pointIndex int, opts CircleOptions) (event.Circle, bool, error) {
	if !pssExists(p, segA, segB, pointIndex) {
		return event.Circle{}, false, nil
	}

	a0, a1 := segA.Point0(), segA.Point1()
	b0, b1 := segB.Point0(), segB.Point1()
	pp := p.Point0()

	a2I, b2I := a1.X-a0.X, a1.Y-a0.Y
	a3I, b3I := b1.X-b0.X, b1.Y-b0.Y

	a2 := rf(float64(a2I))
	b2 := rf(float64(b2I))
	a3 := rf(float64(a3I))
	b3 := rf(float64(b3I))
	c2 := rf(robustCrossProduct(b2I, a2I, a0.Y, a0.X))
	c3 := rf(robustCrossProduct(b3I, a3I, b0.Y, b0.X))

	l2 := a2.Mul(a2).Add(b2.Mul(b2))
	l3 := a3.Mul(a3).Add(b3.Mul(b3))
	n2 := l2.Sqrt()
	n3 := l3.Sqrt()

	dd := rf(robustCrossProduct(a2I, b2I, a3I, b3I)) // exact
	k := a2.Mul(a3).Add(b2.Mul(b3))
	s := n2.Mul(n3)

	if dd.Value() == 0 {
		return circlePSSParallel(pp, a2, b2, c2, a3, b3, c3, n2, n3, k, pointIndex)
	}

	hx0 := a2.Mul(c3).Sub(a3.Mul(c2))
	hy0 := b2.Mul(c3).Sub(b3.Mul(c2))
	hx := hx0.Sub(rf(float64(pp.X)).Mul(dd))
	hy := hy0.Sub(rf(float64(pp.Y)).Mul(dd))

	pTerm := a3.Mul(hx).Add(b3.Mul(hy))
	qTerm := a2.Mul(hx).Add(b2.Mul(hy))

	sk := s.Sub(k)
	alpha := sk.Mul(sk)
	beta := pTerm.Mul(n2).Sub(qTerm.Mul(n3))
	lambda := hx.Mul(hx).Add(hy.Mul(hy))

	disc := beta.Mul(beta).Sub(alpha.Mul(lambda))
	if disc.Value() < 0 {
		if _, definite := disc.DefiniteSign(0); definite {
			return event.Circle{}, false, nil
		}
		disc = numeric.NewRobustFptWithError(0, disc.ErrorUlps())
	}
	sq := disc.Sqrt()

	gx := a3.Mul(n2).Sub(a2.Mul(n3))
	gy := b3.Mul(n2).Sub(b2.Mul(n3))

	buildCandidate := func(rho numeric.RobustFpt) (event.Circle, [3]numeric.RobustFpt, bool) {
		if rho.Value() <= 0 {
			return event.Circle{}, [3]numeric.RobustFpt{}, false
		}
		cx := rho.Mul(gx).Add(hx0).Div(dd)
		cy := rho.Mul(gy).Add(hy0).Div(dd)
		// Touch points on both lines; beach-line order must wind clockwise.
		t2x := cx.Value() + rho.Value()*b2.Value()/n2.Value()
		t2y := cy.Value() - rho.Value()*a2.Value()/n2.Value()
		t3x := cx.Value() + rho.Value()*b3.Value()/n3.Value()
		t3y := cy.Value() - rho.Value()*a3.Value()/n3.Value()
		var o int
		switch pointIndex {
		case 1:
			o = orientF(float64(pp.X), float64(pp.Y), t2x, t2y, t3x, t3y)
		case 2:
			o = orientF(t2x, t2y, float64(pp.X), float64(pp.Y), t3x, t3y)
		default:
			o = orientF(t2x, t2y, t3x, t3y, float64(pp.X), float64(pp.Y))
		}
		if o >= 0 {
			return event.Circle{}, [3]numeric.RobustFpt{}, false
		}
		lx := cx.Add(rho)
		return event.Circle{X: cx.Value(), Y: cy.Value(), LowerX: lx.Value()},
			[3]numeric.RobustFpt{cx, cy, lx}, true
	}

	var circle event.Circle
	var tracked [3]numeric.RobustFpt
	var sign int
	found := false
	for _, sgn := range []int{1, -1} {
		num := beta.Neg()
		if sgn > 0 {
			num = num.Add(sq)
		} else {
			num = num.Sub(sq)
		}
		if c, tr, ok := buildCandidate(num.Div(alpha)); ok {
			circle, tracked, sign, found = c, tr, sgn, true
			break
		}
	}
	if !found {
		return event.Circle{}, false, nil
	}

	if opts.ExactFallback &&
		(tracked[0].ErrorUlps() > opts.threshold(4) ||
			tracked[1].ErrorUlps() > opts.threshold(4) ||
			tracked[2].ErrorUlps() > opts.threshold(4)) {
		exact, err := exactPSS(pp, a0, a1, b0, b1, sign)
		if err != nil {
			return event.Circle{}, false, err
		}
		circle = exact
	}
	if circle.LowerX < circle.X {
		return event.Circle{}, false, ErrRadiusLessThanZero
	}
	return circle, true, nil
}

// circlePSSParallel handles the two segment lines being parallel, where the locus of
// equal signed distance is their midline and every center on it shares one radius.
// The segment arcs must face each other (negative direction dot product) for a
// convergence to exist; the center is then the projection of the point onto the
// midline, slid along it until the point lies on the circle.
func circlePSSParallel(pp event.Point, a2, b2, c2, a3, b3, c3, n2, n3, k numeric.RobustFpt, pointIndex int) (event.Circle, bool, error) {
	if k.Value() > 0 {
		return event.Circle{}, false, nil
	}
	px := rf(float64(pp.X))
	py := rf(float64(pp.Y))
	d2p := a2.Mul(py).Sub(b2.Mul(px)).Add(c2).Div(n2)
	d3p := a3.Mul(py).Sub(b3.Mul(px)).Add(c3).Div(n3)

	half := rf(0.5)
	rho := d2p.Add(d3p).Mul(half)
	if rho.Value() <= 0 {
		return event.Circle{}, false, nil
	}
	// Signed distance from the point to the midline, measured along line 2's left
	// normal; the foot of that drop is the sliding base point.
	h := d2p.Sub(d3p).Mul(half)
	along2 := rho.Mul(rho).Sub(h.Mul(h))
	if along2.Value() < 0 {
		return event.Circle{}, false, nil
	}
	shift := along2.Sqrt()

	nux := b2.Div(n2).Neg()
	nuy := a2.Div(n2)
	ux := a2.Div(n2)
	uy := b2.Div(n2)
	baseX := px.Sub(nux.Mul(h))
	baseY := py.Sub(nuy.Mul(h))

	for _, sgn := range []float64{1, -1} {
		cx := baseX.Add(ux.Mul(shift).Mul(rf(sgn)))
		cy := baseY.Add(uy.Mul(shift).Mul(rf(sgn)))
		t2x := cx.Value() + rho.Value()*b2.Value()/n2.Value()
		t2y := cy.Value() - rho.Value()*a2.Value()/n2.Value()
		t3x := cx.Value() + rho.Value()*b3.Value()/n3.Value()
		t3y := cy.Value() - rho.Value()*a3.Value()/n3.Value()
		var o int
		switch pointIndex {
		case 1:
			o = orientF(float64(pp.X), float64(pp.Y), t2x, t2y, t3x, t3y)
		case 2:
			o = orientF(t2x, t2y, float64(pp.X), float64(pp.Y), t3x, t3y)
		default:
			o = orientF(t2x, t2y, t3x, t3y, float64(pp.X), float64(pp.Y))
		}
		if o < 0 {
			lx := cx.Add(rho)
			return event.Circle{X: cx.Value(), Y: cy.Value(), LowerX: lx.Value()}, true, nil
		}
	}
	return event.Circle{}, false, nil
}

func exactPSS(pp event.Point, a0, a1, b0, b1 event.Point, sign int) (event.Circle, error) {
	a2 := bi(a1.X - a0.X)
	b2 := bi(a1.Y - a0.Y)
	a3 := bi(b1.X - b0.X)
	b3 := bi(b1.Y - b0.Y)
	c2 := b2.Mul(bi(a0.X)).Sub(a2.Mul(bi(a0.Y)))
	c3 := b3.Mul(bi(b0.X)).Sub(a3.Mul(bi(b0.Y)))

	l2 := a2.Mul(a2).Add(b2.Mul(b2))
	l3 := a3.Mul(a3).Add(b3.Mul(b3))
	dd := a2.Mul(b3).Sub(a3.Mul(b2))
	k := a2.Mul(a3).Add(b2.Mul(b3))

	hx0 := a2.Mul(c3).Sub(a3.Mul(c2))
	hy0 := b2.Mul(c3).Sub(b3.Mul(c2))
	hx := hx0.Sub(bi(pp.X).Mul(dd))
	hy := hy0.Sub(bi(pp.Y).Mul(dd))

	pB := a3.Mul(hx).Add(b3.Mul(hy))
	qB := a2.Mul(hx).Add(b2.Mul(hy))
	lambda := hx.Mul(hx).Add(hy.Mul(hy))

	l23 := l2.Mul(l3)
	w := pB.Mul(pB).Mul(l2).
		Add(qB.Mul(qB).Mul(l3)).
		Sub(l23.Add(k.Mul(k)).Mul(lambda))
	v := biTwo.Mul(k.Mul(lambda).Sub(pB.Mul(qB)))

	disc := numeric.PSS3(
		[]numeric.BigInt{numeric.NewBigInt(0), numeric.NewBigInt(0), w, v},
		[]numeric.BigInt{l2, l3, numeric.NewBigInt(0), l23},
	)
	if disc.Sign() < 0 {
		// The lazy path already established a tangency exists; a sign flip here is
		// evaluator rounding on a touching (zero-discriminant) configuration.
		disc = numeric.NewExtFloat(0)
	}
	sqDisc := disc.Sqrt()

	beta := numeric.EvalSqrt2(
		[]numeric.BigInt{pB, qB.Neg()},
		[]numeric.BigInt{l2, l3},
	)

	// (S - K) = D^2 / (S + K), avoiding the near-parallel cancellation.
	sEF := l23.ExtFloat().Sqrt()
	sk := dd.Mul(dd).ExtFloat().Div(sEF.Add(k.ExtFloat()))
	alpha := sk.Mul(sk)

	// The two root numerators -beta +/- sqrt(disc) multiply to alpha*lambda, which
	// is nonnegative, so when the chosen numerator subtracts nearly equal values it
	// is recovered through its same-signed conjugate instead.
	var num numeric.ExtFloat
	if sign > 0 {
		if beta.Sign() > 0 {
			num = alpha.Mul(lambda.ExtFloat()).Div(beta.Neg().Sub(sqDisc))
		} else {
			num = beta.Neg().Add(sqDisc)
		}
	} else {
		if beta.Sign() < 0 {
			num = alpha.Mul(lambda.ExtFloat()).Div(beta.Neg().Add(sqDisc))
		} else {
			num = beta.Neg().Sub(sqDisc)
		}
	}
	rho := num.Div(alpha)

	gx := numeric.EvalSqrt2([]numeric.BigInt{a3, a2.Neg()}, []numeric.BigInt{l2, l3})
	gy := numeric.EvalSqrt2([]numeric.BigInt{b3, b2.Neg()}, []numeric.BigInt{l2, l3})

	ddEF := dd.ExtFloat()
	cx := rho.Mul(gx).Add(hx0.ExtFloat()).Div(ddEF)
	cy := rho.Mul(gy).Add(hy0.ExtFloat()).Div(ddEF)
	return event.Circle{
		X:      cx.Float64(),
		Y:      cy.Float64(),
		LowerX: cx.Add(rho).Float64(),
	}, nil
}

// sssExists rejects triples reusing an arc of the same segment on both sides.
func sssExists(s1, s2, s3 event.SiteEvent) bool {
	return s1.SortedIndex() != s2.SortedIndex() && s2.SortedIndex() != s3.SortedIndex()
}

// circleSSS handles three segment arcs: the center solves the pairwise equal signed
// distance system, whose Cramer solution is a three-term sqrt expression per
// coordinate over the segment lengths, plus the 3x3 determinant for the radius.
func circleSSS(s1, s2, s3 event.SiteEvent, opts CircleOptions) (event.Circle, bool, error) {
	if !sssExists(s1, s2, s3) {
		return event.Circle{}, false, nil
	}

	type line struct {
		a, b, c numeric.RobustFpt
		l, n    numeric.RobustFpt
	}
	mk := func(s event.SiteEvent) line {
		p0, p1 := s.Point0(), s.Point1()
		aI, bI := p1.X-p0.X, p1.Y-p0.Y
		a := rf(float64(aI))
		b := rf(float64(bI))
		c := rf(robustCrossProduct(bI, aI, p0.Y, p0.X))
		l := a.Mul(a).Add(b.Mul(b))
		return line{a: a, b: b, c: c, l: l, n: l.Sqrt()}
	}
	ln := [3]line{mk(s1), mk(s2), mk(s3)}

	var denom, cxNum, cyNum numeric.RobustFpt
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		gamma := ln[j].a.Mul(ln[k].b).Sub(ln[k].a.Mul(ln[j].b))
		alpha := ln[j].a.Mul(ln[k].c).Sub(ln[k].a.Mul(ln[j].c))
		beta := ln[j].b.Mul(ln[k].c).Sub(ln[k].b.Mul(ln[j].c))
		denom = denom.Add(gamma.Mul(ln[i].n))
		cxNum = cxNum.Add(alpha.Mul(ln[i].n))
		cyNum = cyNum.Add(beta.Mul(ln[i].n))
	}
	if denom.Value() == 0 {
		return event.Circle{}, false, nil
	}
	det := ln[0].a.Mul(ln[1].b.Mul(ln[2].c).Sub(ln[2].b.Mul(ln[1].c))).
		Sub(ln[0].b.Mul(ln[1].a.Mul(ln[2].c).Sub(ln[2].a.Mul(ln[1].c)))).
		Add(ln[0].c.Mul(ln[1].a.Mul(ln[2].b).Sub(ln[2].a.Mul(ln[1].b))))

	r := det.Div(denom)
	if r.Value() <= 0 {
		return event.Circle{}, false, nil
	}
	cx := cxNum.Div(denom)
	cy := cyNum.Div(denom)
	lx := cx.Add(r)
	circle := event.Circle{X: cx.Value(), Y: cy.Value(), LowerX: lx.Value()}

	if opts.ExactFallback &&
		(cx.ErrorUlps() > opts.threshold(3) ||
			cy.ErrorUlps() > opts.threshold(3) ||
			lx.ErrorUlps() > opts.threshold(4)) {
		circle = exactSSS(s1, s2, s3)
	}
	if circle.LowerX < circle.X {
		return event.Circle{}, false, ErrRadiusLessThanZero
	}
	return circle, true, nil
}

func exactSSS(s1, s2, s3 event.SiteEvent) event.Circle {
	type line struct{ a, b, c, l numeric.BigInt }
	mk := func(s event.SiteEvent) line {
		p0, p1 := s.Point0(), s.Point1()
		a := bi(p1.X - p0.X)
		b := bi(p1.Y - p0.Y)
		c := b.Mul(bi(p0.X)).Sub(a.Mul(bi(p0.Y)))
		return line{a: a, b: b, c: c, l: a.Mul(a).Add(b.Mul(b))}
	}
	ln := [3]line{mk(s1), mk(s2), mk(s3)}

	var gammas, alphas, betas, ls [3]numeric.BigInt
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		gammas[i] = ln[j].a.Mul(ln[k].b).Sub(ln[k].a.Mul(ln[j].b))
		alphas[i] = ln[j].a.Mul(ln[k].c).Sub(ln[k].a.Mul(ln[j].c))
		betas[i] = ln[j].b.Mul(ln[k].c).Sub(ln[k].b.Mul(ln[j].c))
		ls[i] = ln[i].l
	}
	det := ln[0].a.Mul(ln[1].b.Mul(ln[2].c).Sub(ln[2].b.Mul(ln[1].c))).
		Sub(ln[0].b.Mul(ln[1].a.Mul(ln[2].c).Sub(ln[2].a.Mul(ln[1].c)))).
		Add(ln[0].c.Mul(ln[1].a.Mul(ln[2].b).Sub(ln[2].a.Mul(ln[1].b))))

	denom := numeric.EvalSqrt3(gammas[:], ls[:])
	cx := numeric.EvalSqrt3(alphas[:], ls[:]).Div(denom)
	cy := numeric.EvalSqrt3(betas[:], ls[:]).Div(denom)
	lower := numeric.EvalSqrt4(
		[]numeric.BigInt{alphas[0], alphas[1], alphas[2], det},
		[]numeric.BigInt{ls[0], ls[1], ls[2], biOne},
	).Div(denom)
	return event.Circle{X: cx.Float64(), Y: cy.Float64(), LowerX: lower.Float64()}
}
