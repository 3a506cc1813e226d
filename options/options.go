// Package options provides configurable settings for the voronoi module.
//
// This package defines two functional-options surfaces:
//
//   - [GeometryOptionsFunc] / [GeometryOptions]: a small epsilon-tolerance knob consumed by
//     the root package's Diagram.FindVertex as the tolerance of its vertex lookup
//     (mirroring the epsilon pattern many computational-geometry libraries expose).
//   - [BuildOptionFunc] / [BuildOptions]: construction-wide settings accepted by
//     the root package's Builder (ULP fallback thresholds, the degenerate-circle-event policy,
//     and whether the circle-formation predicate's exact fallback is enabled).
//
// Both follow the same shape: a struct of defaults, a slice of functions that mutate it, and an
// Apply helper that folds the functions over the defaults.
package options
