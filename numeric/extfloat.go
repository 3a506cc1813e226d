package numeric

import "math"

// ExtFloat is a floating-point value represented as mantissa * 2^exponent, with the
// mantissa normalized to [0.5, 1) (or zero). Separating the exponent from the f64
// mantissa extends the usable dynamic range far beyond float64's own exponent field,
// which matters when squaring already-large coordinate products during circle-formation
// geometry. Precision stays at ordinary float64 (~52 bits of mantissa).
type ExtFloat struct {
	mantissa float64
	exponent int32
}

// NewExtFloat constructs a normalized ExtFloat from an ordinary float64.
func NewExtFloat(v float64) ExtFloat {
	if v == 0 {
		return ExtFloat{}
	}
	m, e := math.Frexp(v)
	return ExtFloat{mantissa: m, exponent: int32(e)}
}

// Float64 converts e back to an ordinary float64 via ldexp.
func (e ExtFloat) Float64() float64 {
	return math.Ldexp(e.mantissa, int(e.exponent))
}

// IsZero reports whether e represents zero.
func (e ExtFloat) IsZero() bool {
	return e.mantissa == 0
}

// Neg returns -e.
func (e ExtFloat) Neg() ExtFloat {
	return ExtFloat{mantissa: -e.mantissa, exponent: e.exponent}
}

// normalize re-normalizes a raw (mantissa, exponent) pair so mantissa lands in
// [0.5, 1) in magnitude, using Frexp on the mantissa itself to absorb any overflow the
// caller's arithmetic introduced.
func normalize(mantissa float64, exponent int32) ExtFloat {
	if mantissa == 0 {
		return ExtFloat{}
	}
	m, shift := math.Frexp(mantissa)
	return ExtFloat{mantissa: m, exponent: exponent + int32(shift)}
}

// Mul returns a * b.
func (a ExtFloat) Mul(b ExtFloat) ExtFloat {
	if a.IsZero() || b.IsZero() {
		return ExtFloat{}
	}
	return normalize(a.mantissa*b.mantissa, a.exponent+b.exponent)
}

// Div returns a / b. b must be nonzero.
func (a ExtFloat) Div(b ExtFloat) ExtFloat {
	if a.IsZero() {
		return ExtFloat{}
	}
	return normalize(a.mantissa/b.mantissa, a.exponent-b.exponent)
}

// alignedAdd brings b's mantissa to a's exponent scale so the two mantissas can be
// added directly with ordinary float64 arithmetic.
func (a ExtFloat) alignedAdd(b ExtFloat, bSign float64) ExtFloat {
	if a.IsZero() {
		return ExtFloat{mantissa: bSign * b.mantissa, exponent: b.exponent}
	}
	if b.IsZero() {
		return a
	}
	shift := a.exponent - b.exponent
	switch {
	case shift >= 0 && shift < 64:
		return normalize(a.mantissa+bSign*b.mantissa*math.Ldexp(1, -int(shift)), a.exponent)
	case shift < 0 && -shift < 64:
		return normalize(a.mantissa*math.Ldexp(1, int(shift))+bSign*b.mantissa, b.exponent)
	case shift >= 64:
		return a
	default:
		return ExtFloat{mantissa: bSign * b.mantissa, exponent: b.exponent}
	}
}

// Add returns a + b.
func (a ExtFloat) Add(b ExtFloat) ExtFloat {
	return a.alignedAdd(b, 1)
}

// Sub returns a - b.
func (a ExtFloat) Sub(b ExtFloat) ExtFloat {
	return a.alignedAdd(b, -1)
}

// Sqrt returns sqrt(e). e must be nonnegative.
func (e ExtFloat) Sqrt() ExtFloat {
	if e.IsZero() {
		return ExtFloat{}
	}
	exp := e.exponent
	mant := e.mantissa
	if exp%2 != 0 {
		mant *= 2
		exp--
	}
	return normalize(math.Sqrt(mant), exp/2)
}

// Sign returns -1, 0, or 1 according to the sign of e's mantissa.
func (e ExtFloat) Sign() int {
	switch {
	case e.mantissa > 0:
		return 1
	case e.mantissa < 0:
		return -1
	default:
		return 0
	}
}
