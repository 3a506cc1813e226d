package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bigs(vals ...int64) []BigInt {
	out := make([]BigInt, len(vals))
	for i, v := range vals {
		out[i] = NewBigInt(v)
	}
	return out
}

func TestEvalSqrt1(t *testing.T) {
	got := EvalSqrt1(bigs(3), bigs(16))
	assert.InDelta(t, 12, got.Float64(), 1e-9)

	got = EvalSqrt1(bigs(-3), bigs(16))
	assert.InDelta(t, -12, got.Float64(), 1e-9)
}

func TestEvalSqrt2SameSign(t *testing.T) {
	got := EvalSqrt2(bigs(2, 3), bigs(9, 4))
	assert.InDelta(t, 12, got.Float64(), 1e-9)
}

func TestEvalSqrt2OppositeSignsUseConjugate(t *testing.T) {
	// 5*sqrt(16) - 2*sqrt(25) = 10, resolved via (a^2*x - b^2*y)/(a*sqrt(x) - b*sqrt(y)).
	got := EvalSqrt2(bigs(5, -2), bigs(16, 25))
	assert.InDelta(t, 10, got.Float64(), 1e-9)
}

func TestEvalSqrt3ExactCancellation(t *testing.T) {
	// sqrt(4) + sqrt(9) - sqrt(25) cancels to exactly zero; the conjugate
	// reduction resolves it without the catastrophic rounding a direct sum of
	// three independently rounded roots would risk.
	got := EvalSqrt3(bigs(1, 1, -1), bigs(4, 9, 25))
	assert.Equal(t, 0.0, got.Float64())
}

func TestEvalSqrt4ExactCancellation(t *testing.T) {
	// sqrt(4) + sqrt(9) - sqrt(16) - sqrt(1) = 0.
	got := EvalSqrt4(bigs(1, 1, -1, -1), bigs(4, 9, 16, 1))
	assert.Equal(t, 0.0, got.Float64())
}

func TestEvalSqrt4MixedMagnitudes(t *testing.T) {
	// 7*sqrt(2) + 3*sqrt(3) - 2*sqrt(5) - sqrt(7).
	want := 7*sqrtOf(2) + 3*sqrtOf(3) - 2*sqrtOf(5) - sqrtOf(7)
	got := EvalSqrt4(bigs(7, 3, -2, -1), bigs(2, 3, 5, 7))
	assert.InDelta(t, want, got.Float64(), 1e-9)
}

func TestPSS3(t *testing.T) {
	// A[0]*sqrt(B[0]) + A[1]*sqrt(B[1]) + A[2] + A[3]*sqrt(B[0]*B[1]) with
	// B = [4, 9], so the nested product radicand is 36.
	got := PSS3(bigs(1, 1, 2, 1), bigs(4, 9, 0, 36))
	assert.InDelta(t, 13, got.Float64(), 1e-9)

	// Opposite-signed halves: 2 + 3 - 2 - 6 = -3 via the conjugate reduction.
	got = PSS3(bigs(1, 1, -2, -1), bigs(4, 9, 0, 36))
	assert.InDelta(t, -3, got.Float64(), 1e-9)
}

func TestPSS4(t *testing.T) {
	// Degenerate A[3] = 0 branch:
	// sqrt(4) + sqrt(9) + sqrt(1*(sqrt(4*9) + 2)) = 5 + sqrt(8).
	got := PSS4(bigs(1, 1, 1, 0), bigs(4, 9, 2, 1))
	assert.InDelta(t, 5+sqrtOf(8), got.Float64(), 1e-9)

	// General branch adds the constant term A[3].
	got = PSS4(bigs(1, 1, 1, 2), bigs(4, 9, 2, 1))
	assert.InDelta(t, 7+sqrtOf(8), got.Float64(), 1e-9)
}

func sqrtOf(v float64) float64 {
	return NewExtFloat(v).Sqrt().Float64()
}

func TestBigIntExtFloatWideValues(t *testing.T) {
	// A product of three 2^40 values (2^120) far exceeds int64 but must survive the
	// BigInt -> ExtFloat conversion with its magnitude intact.
	a := NewBigInt(1 << 40)
	sq := a.Mul(a).Mul(a) // 2^120
	got := sq.ExtFloat()
	assert.InDelta(t, 1, got.Float64()/1.3292279957849159e36, 1e-12)

	neg := NewBigInt(-12345)
	assert.InDelta(t, -12345, neg.ExtFloat().Float64(), 0)
	assert.True(t, NewBigInt(0).ExtFloat().IsZero())
}
