package numeric

import "math"

// ulpKey maps a float64's bit pattern onto a sign-magnitude ordered int64 so that two
// representable values that are N representations apart differ by exactly N when their
// keys are subtracted. IEEE754 bit patterns are already ordered this way for
// nonnegative values; negative values need their magnitude bits flipped and negated to
// restore a consistent total order across zero.
func ulpKey(f float64) int64 {
	bits := int64(math.Float64bits(f))
	if bits < 0 {
		return math.MinInt64 - bits
	}
	return bits
}

// UlpDistance returns the number of ULP steps separating a and b (0 if they are
// bit-identical, 1 for adjacent representable values), as an unsigned count. NaN inputs return
// [math.MaxInt64].
func UlpDistance(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxInt64
	}
	ka, kb := ulpKey(a), ulpKey(b)
	d := ka - kb
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

// AlmostEqualUlps reports whether a and b differ by at most maxUlps representable
// float64 values. This is the fast-path equality test used throughout the predicate
// hierarchy in place of an absolute epsilon, since absolute epsilons do not scale across
// the wide dynamic range the sweepline predicates operate over.
func AlmostEqualUlps(a, b float64, maxUlps uint64) bool {
	if a == b {
		return true
	}
	return UlpDistance(a, b) <= maxUlps
}
