package numeric

// BigInt is an arbitrary-precision signed integer, represented as a sign plus a
// little-endian vector of 32-bit limbs (limbs[0] is least significant). A zero value
// has an empty limb vector and sign 0. No division is implemented: every use in this
// module's predicate hierarchy is exact sums and products of input coordinates, which
// never requires it.
type BigInt struct {
	sign  int // -1, 0, or 1
	limbs []uint32
}

// NewBigInt returns the BigInt representation of n.
func NewBigInt(n int64) BigInt {
	if n == 0 {
		return BigInt{}
	}
	sign := 1
	u := uint64(n)
	if n < 0 {
		sign = -1
		u = uint64(-n)
	}
	b := BigInt{sign: sign}
	for u != 0 {
		b.limbs = append(b.limbs, uint32(u))
		u >>= 32
	}
	return b
}

// Sign returns -1, 0, or 1 according to whether b is negative, zero, or positive.
func (b BigInt) Sign() int {
	return b.sign
}

// IsZero reports whether b is zero.
func (b BigInt) IsZero() bool {
	return b.sign == 0
}

// Neg returns -b.
func (b BigInt) Neg() BigInt {
	if b.sign == 0 {
		return b
	}
	return BigInt{sign: -b.sign, limbs: b.limbs}
}

func trimLimbs(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

// cmpAbs compares the magnitudes of a and b, ignoring sign.
func cmpAbs(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addAbs returns the limb-wise sum of two magnitudes.
func addAbs(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i, av := range a {
		s := uint64(av) + carry
		if i < len(b) {
			s += uint64(b[i])
		}
		out[i] = uint32(s)
		carry = s >> 32
	}
	out[len(a)] = uint32(carry)
	return trimLimbs(out)
}

// subAbs returns |a| - |b|, requiring |a| >= |b|.
func subAbs(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i, av := range a {
		d := int64(av) - borrow
		if i < len(b) {
			d -= int64(b[i])
		}
		if d < 0 {
			d += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return trimLimbs(out)
}

// Add returns a + b.
func (a BigInt) Add(b BigInt) BigInt {
	switch {
	case a.sign == 0:
		return b
	case b.sign == 0:
		return a
	case a.sign == b.sign:
		return BigInt{sign: a.sign, limbs: addAbs(a.limbs, b.limbs)}
	default:
		switch cmpAbs(a.limbs, b.limbs) {
		case 0:
			return BigInt{}
		case 1:
			return BigInt{sign: a.sign, limbs: subAbs(a.limbs, b.limbs)}
		default:
			return BigInt{sign: b.sign, limbs: subAbs(b.limbs, a.limbs)}
		}
	}
}

// Sub returns a - b.
func (a BigInt) Sub(b BigInt) BigInt {
	return a.Add(b.Neg())
}

// Mul returns a * b.
func (a BigInt) Mul(b BigInt) BigInt {
	if a.sign == 0 || b.sign == 0 {
		return BigInt{}
	}
	out := make([]uint32, len(a.limbs)+len(b.limbs))
	for i, av := range a.limbs {
		var carry uint64
		for j, bv := range b.limbs {
			s := uint64(out[i+j]) + uint64(av)*uint64(bv) + carry
			out[i+j] = uint32(s)
			carry = s >> 32
		}
		out[i+len(b.limbs)] += uint32(carry)
	}
	return BigInt{sign: a.sign * b.sign, limbs: trimLimbs(out)}
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a BigInt) Cmp(b BigInt) int {
	if a.sign != b.sign {
		switch {
		case a.sign < b.sign:
			return -1
		case a.sign > b.sign:
			return 1
		default:
			return 0
		}
	}
	c := cmpAbs(a.limbs, b.limbs)
	if a.sign < 0 {
		return -c
	}
	return c
}

// ExtFloat converts b to an [ExtFloat] without overflowing float64's exponent
// range: the top three limbs supply the 53-bit mantissa and the remaining limbs
// only shift the exponent.
func (b BigInt) ExtFloat() ExtFloat {
	n := len(b.limbs)
	if n == 0 {
		return ExtFloat{}
	}
	low := n - 3
	if low < 0 {
		low = 0
	}
	var m float64
	for i := n - 1; i >= low; i-- {
		m = m*4294967296.0 + float64(b.limbs[i])
	}
	if b.sign < 0 {
		m = -m
	}
	return normalize(m, int32(32*low))
}

// Float64 converts b to its nearest float64 approximation. Used only to seed an
// [ExtFloat] or to report a result once BigInt has settled a comparison; not used for
// further exact arithmetic.
func (b BigInt) Float64() float64 {
	var f float64
	for i := len(b.limbs) - 1; i >= 0; i-- {
		f = f*4294967296.0 + float64(b.limbs[i])
	}
	if b.sign < 0 {
		f = -f
	}
	return f
}
