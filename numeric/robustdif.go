package numeric

// RobustDif represents a difference `positive - negative` as two non-negative
// [RobustFpt] accumulators, deferring the actual subtraction. This avoids folding a
// same-sign accumulation rule into what is really a cancellation the moment the two
// sides are combined - the subtraction (with its cancellation error) only happens once,
// when the caller asks for the resolved value via [RobustDif.Value].
type RobustDif struct {
	positive RobustFpt
	negative RobustFpt
}

// NewRobustDif returns a RobustDif with the given positive and negative accumulators.
func NewRobustDif(positive, negative RobustFpt) RobustDif {
	return RobustDif{positive: positive, negative: negative}
}

// Value resolves the accumulated difference into a single RobustFpt.
func (d RobustDif) Value() RobustFpt {
	return d.positive.Sub(d.negative)
}

// Neg swaps the positive and negative sides, negating the represented value.
func (d RobustDif) Neg() RobustDif {
	return RobustDif{positive: d.negative, negative: d.positive}
}

// Add returns d + e, combining same-signed sides directly (same-sign RobustFpt.Add, no
// cancellation) and keeping positive/negative separated.
func (d RobustDif) Add(e RobustDif) RobustDif {
	return RobustDif{
		positive: d.positive.Add(e.positive),
		negative: d.negative.Add(e.negative),
	}
}

// Sub returns d - e.
func (d RobustDif) Sub(e RobustDif) RobustDif {
	return RobustDif{
		positive: d.positive.Add(e.negative),
		negative: d.negative.Add(e.positive),
	}
}

// Mul returns d * e, expanding (dp-dn)*(ep-en) = (dp*ep + dn*en) - (dp*en + dn*ep) while
// keeping every term non-negative so each side accumulates with RobustFpt.Add's
// same-sign rule instead of incurring repeated cancellation error.
func (d RobustDif) Mul(e RobustDif) RobustDif {
	return RobustDif{
		positive: d.positive.Mul(e.positive).Add(d.negative.Mul(e.negative)),
		negative: d.positive.Mul(e.negative).Add(d.negative.Mul(e.positive)),
	}
}

// Div returns d / e, requiring e's resolved value to be nonzero.
func (d RobustDif) Div(e RobustDif) RobustDif {
	ev := e.Value()
	if ev.Value() >= 0 {
		return RobustDif{positive: d.positive.Div(ev), negative: d.negative.Div(ev)}
	}
	return RobustDif{positive: d.negative.Div(ev.Neg()), negative: d.positive.Div(ev.Neg())}
}
