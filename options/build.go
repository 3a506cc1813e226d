package options

// DegeneracyPolicy controls how the construction driver reacts when a circle event's
// computed sweep coordinate regresses slightly behind the current sweep position - a
// near-degenerate case the adaptive predicates occasionally produce at the boundary of
// their error envelopes.
type DegeneracyPolicy uint8

const (
	// DegeneracyPolicyWarn silently clamps the regressing event to the current sweep
	// position and continues construction. This is the default: the source this module
	// is grounded on tolerates this case via a feature flag, and treating it as fatal
	// would reject inputs that produce a perfectly valid diagram.
	DegeneracyPolicyWarn DegeneracyPolicy = iota

	// DegeneracyPolicyError fails construction with ErrValue when a circle event
	// regresses behind the sweep line beyond tolerance.
	DegeneracyPolicyError
)

// BuildOptionFunc is a functional option accepted by Builder.Build.
type BuildOptionFunc func(*BuildOptions)

// BuildOptions bundles construction-wide tuning knobs. Unlike [GeometryOptions], these
// govern the adaptive-precision predicate hierarchy (C2) rather than a single comparison.
type BuildOptions struct {
	// UlpThresholds holds the ULP envelope at which the circle-formation predicate (C2)
	// abandons its f64 fast-path result and recomputes it exactly through the
	// sqrt-expression evaluator (C1), indexed by the number of radical terms in the
	// recomputed quantity (1..4). The defaults (4, 7, 16, 25) are the values
	// empirically tuned in the source this module is grounded on; callers may tighten
	// them but [ApplyBuildOptions] clamps values looser than the defaults back to them.
	UlpThresholds [4]uint64

	// DisableBigIntFallback stops the circle-formation predicate at its RobustFpt fast
	// path. The orientation and distance predicates are not affected and keep their
	// exact tiers.
	// This exists for benchmarking and for differential testing against the BigInt path;
	// it is not recommended for production use since it can produce an invalid diagram
	// when two candidate events are closer than the f64 error envelope.
	DisableBigIntFallback bool

	// Degeneracy selects the policy applied when a scheduled circle event's lower_x
	// regresses behind the current sweep position (see [DegeneracyPolicy]).
	Degeneracy DegeneracyPolicy
}

// DefaultUlpThresholds are the per-depth ULP fallback thresholds named in §4.1 of the
// specification this module implements: depths 1 through 4 of the sqrt-expression
// evaluator tolerate 4, 7, 16, and 25 ULPs respectively before falling back to BigInt.
var DefaultUlpThresholds = [4]uint64{4, 7, 16, 25}

// DefaultBuildOptions returns the conservative defaults: BigInt fallback enabled, the
// documented ULP thresholds, and the soft (warn) degeneracy policy.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		UlpThresholds: DefaultUlpThresholds,
		Degeneracy:    DegeneracyPolicyWarn,
	}
}

// ApplyBuildOptions folds opts over DefaultBuildOptions, then clamps any UlpThresholds
// entry that was loosened above the documented default back to that default - tightening
// is permitted, relaxing is not (see spec §9's open question on this exact point).
func ApplyBuildOptions(opts ...BuildOptionFunc) BuildOptions {
	o := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for i, def := range DefaultUlpThresholds {
		if o.UlpThresholds[i] > def {
			o.UlpThresholds[i] = def
		}
	}
	return o
}

// WithUlpThreshold tightens the ULP fallback threshold for sqrt-expressions with the
// given number of radical terms (1..4). Values looser than the compiled-in default are
// silently clamped by [ApplyBuildOptions].
func WithUlpThreshold(terms int, ulps uint64) BuildOptionFunc {
	return func(o *BuildOptions) {
		if terms < 1 || terms > 4 {
			return
		}
		o.UlpThresholds[terms-1] = ulps
	}
}

// WithBigIntFallbackDisabled disables the exact fallback tier of the circle-formation
// predicate; the orientation and distance predicates keep theirs.
func WithBigIntFallbackDisabled() BuildOptionFunc {
	return func(o *BuildOptions) {
		o.DisableBigIntFallback = true
	}
}

// WithDegeneracyPolicy selects how a regressing circle event is handled.
func WithDegeneracyPolicy(p DegeneracyPolicy) BuildOptionFunc {
	return func(o *BuildOptions) {
		o.Degeneracy = p
	}
}
