// Package numeric provides the four-level adaptive-precision number stack backing the
// predicate package - BigInt, ExtFloat, RobustFpt/RobustDif and the sqrt-expression
// evaluator - plus a small set of scalar helpers shared with the rest of the module.
//
// # Overview
//
// The exact types exist because the sweepline predicates cannot afford to guess: a
// float64 comparison whose tracked error envelope reaches zero is redone over BigInt
// products and ExtFloat radicals rather than resolved by rounding luck. The scalar
// helpers cover the opposite end of the module: epsilon-tolerant comparison
// (FloatEquals, used by point.Eq and the diagram's tolerant vertex lookup), snapping
// of near-integral output coordinates (SnapToEpsilon), and a generic absolute value
// (Abs) over the shared types.SignedNumber constraint.
package numeric
