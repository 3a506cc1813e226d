package numeric

// This file evaluates expressions of the form sum(i = 1..n) A[i]*sqrt(B[i]),
// 1 <= n <= 4, over exact BigInt coefficients with a bounded relative error on
// the ExtFloat result. Same-signed terms add directly; opposite-signed terms go
// through the conjugate identity (a*sqrt(x) + b*sqrt(y)) * (a*sqrt(x) - b*sqrt(y))
// = a*a*x - b*b*y, which trades a catastrophic cancellation for an exact integer
// subtraction and a division by a same-signed sum. The per-depth error bounds are
// 4, 7, 16 and 25 ULP.

var (
	bigOne    = NewBigInt(1)
	bigTwo    = NewBigInt(2)
	bigNegTwo = NewBigInt(-2)
)

func termEval(a, b BigInt) ExtFloat {
	return a.ExtFloat().Mul(b.ExtFloat().Sqrt())
}

// sameSign reports whether a and b cannot cancel: one of them is zero or both
// carry the same sign.
func sameSign(a, b ExtFloat) bool {
	return a.Sign()*b.Sign() >= 0
}

// EvalSqrt1 evaluates A[0]*sqrt(B[0]). Relative error at most 4 ULP.
func EvalSqrt1(a, b []BigInt) ExtFloat {
	return termEval(a[0], b[0])
}

// EvalSqrt2 evaluates A[0]*sqrt(B[0]) + A[1]*sqrt(B[1]). Relative error at most
// 7 ULP.
func EvalSqrt2(a, b []BigInt) ExtFloat {
	ra := EvalSqrt1(a, b)
	rb := EvalSqrt1(a[1:], b[1:])
	if sameSign(ra, rb) {
		return ra.Add(rb)
	}
	numer := a[0].Mul(a[0]).Mul(b[0]).Sub(a[1].Mul(a[1]).Mul(b[1]))
	return numer.ExtFloat().Div(ra.Sub(rb))
}

// EvalSqrt3 evaluates A[0]*sqrt(B[0]) + A[1]*sqrt(B[1]) + A[2]*sqrt(B[2]).
// Relative error at most 16 ULP.
func EvalSqrt3(a, b []BigInt) ExtFloat {
	ra := EvalSqrt2(a, b)
	rb := EvalSqrt1(a[2:], b[2:])
	if sameSign(ra, rb) {
		return ra.Add(rb)
	}
	ta := []BigInt{
		a[0].Mul(a[0]).Mul(b[0]).Add(a[1].Mul(a[1]).Mul(b[1])).Sub(a[2].Mul(a[2]).Mul(b[2])),
		a[0].Mul(a[1]).Mul(bigTwo),
	}
	tb := []BigInt{
		bigOne,
		b[0].Mul(b[1]),
	}
	return EvalSqrt2(ta, tb).Div(ra.Sub(rb))
}

// EvalSqrt4 evaluates A[0]*sqrt(B[0]) + A[1]*sqrt(B[1]) + A[2]*sqrt(B[2]) +
// A[3]*sqrt(B[3]). Relative error at most 25 ULP.
func EvalSqrt4(a, b []BigInt) ExtFloat {
	ra := EvalSqrt2(a, b)
	rb := EvalSqrt2(a[2:], b[2:])
	if sameSign(ra, rb) {
		return ra.Add(rb)
	}
	ta := []BigInt{
		a[0].Mul(a[0]).Mul(b[0]).
			Add(a[1].Mul(a[1]).Mul(b[1])).
			Sub(a[2].Mul(a[2]).Mul(b[2])).
			Sub(a[3].Mul(a[3]).Mul(b[3])),
		a[0].Mul(a[1]).Mul(bigTwo),
		a[2].Mul(a[3]).Mul(bigNegTwo),
	}
	tb := []BigInt{
		bigOne,
		b[0].Mul(b[1]),
		b[2].Mul(b[3]),
	}
	return EvalSqrt3(ta, tb).Div(ra.Sub(rb))
}

// PSS3 evaluates A[0]*sqrt(B[0]) + A[1]*sqrt(B[1]) + A[2] + A[3]*sqrt(B[0]*B[1]),
// one of the two mixed expressions arising in point-segment-segment circle
// geometry, where B[0] and B[1] are the squared segment lengths. The caller must
// supply B[3] = B[0]*B[1].
func PSS3(a, b []BigInt) ExtFloat {
	lh := EvalSqrt2(a, b)
	rh := EvalSqrt2(
		[]BigInt{a[2], a[3]},
		[]BigInt{bigOne, b[3]},
	)
	if sameSign(lh, rh) {
		return lh.Add(rh)
	}
	ca := []BigInt{
		a[0].Mul(a[0]).Mul(b[0]).
			Add(a[1].Mul(a[1]).Mul(b[1])).
			Sub(a[2].Mul(a[2])).
			Sub(a[3].Mul(a[3]).Mul(b[0]).Mul(b[1])),
		a[0].Mul(a[1]).Sub(a[2].Mul(a[3])).Mul(bigTwo),
	}
	cb := []BigInt{
		bigOne,
		b[3],
	}
	return EvalSqrt2(ca, cb).Div(lh.Sub(rh))
}

// PSS4 evaluates A[3] + A[0]*sqrt(B[0]) + A[1]*sqrt(B[1]) +
// A[2]*sqrt(B[3]*(sqrt(B[0]*B[1]) + B[2])), the nested-radical expression of
// point-segment-segment circle geometry.
func PSS4(a, b []BigInt) ExtFloat {
	if a[3].IsZero() {
		lh := EvalSqrt2(a, b)
		rh := termEval(a[2], b[3]).Mul(EvalSqrt2(
			[]BigInt{bigOne, b[2]},
			[]BigInt{b[0].Mul(b[1]), bigOne},
		).Sqrt())
		if sameSign(lh, rh) {
			return lh.Add(rh)
		}
		ca := []BigInt{
			a[0].Mul(a[0]).Mul(b[0]).
				Add(a[1].Mul(a[1]).Mul(b[1])).
				Sub(a[2].Mul(a[2]).Mul(b[3]).Mul(b[2])),
			a[0].Mul(a[1]).Mul(bigTwo).Sub(a[2].Mul(a[2]).Mul(b[3])),
		}
		cb := []BigInt{
			bigOne,
			b[0].Mul(b[1]),
		}
		return EvalSqrt2(ca, cb).Div(lh.Sub(rh))
	}
	rh := termEval(a[2], b[3]).Mul(EvalSqrt2(
		[]BigInt{bigOne, b[2]},
		[]BigInt{b[0].Mul(b[1]), bigOne},
	).Sqrt())
	lh := EvalSqrt3(
		[]BigInt{a[0], a[1], a[3]},
		[]BigInt{b[0], b[1], bigOne},
	)
	if sameSign(lh, rh) {
		return lh.Add(rh)
	}
	ca := []BigInt{
		a[3].Mul(a[0]).Mul(bigTwo),
		a[3].Mul(a[1]).Mul(bigTwo),
		a[0].Mul(a[0]).Mul(b[0]).
			Add(a[1].Mul(a[1]).Mul(b[1])).
			Add(a[3].Mul(a[3])).
			Sub(a[2].Mul(a[2]).Mul(b[2]).Mul(b[3])),
		a[0].Mul(a[1]).Mul(bigTwo).Sub(a[2].Mul(a[2]).Mul(b[3])),
	}
	cb := []BigInt{
		b[0],
		b[1],
		bigOne,
		b[0].Mul(b[1]),
	}
	return PSS3(ca, cb).Div(lh.Sub(rh))
}
