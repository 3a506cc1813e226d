package voronoi

import "errors"

// Sentinel errors for the error kinds named in §7. Builder.Build wraps one of these
// with additional context via %w; callers should compare with errors.Is.
var (
	// ErrRadiusLessThanZero reports that the circle-formation predicate computed a
	// negative radius - an input or numerics bug, since a valid circumradius is never
	// negative.
	ErrRadiusLessThanZero = errors.New("voronoi: circle event radius is less than zero")

	// ErrVerticesGoesFirst reports that Builder.WithSegments was called before
	// Builder.WithVertices finished supplying point sites, violating the API
	// precondition that all point inputs precede any segment input.
	ErrVerticesGoesFirst = errors.New("voronoi: vertices must be supplied before segments")

	// ErrSelfIntersecting reports that two input segments intersect at a point other
	// than a shared endpoint.
	ErrSelfIntersecting = errors.New("voronoi: input segments intersect at other than a shared endpoint")

	// ErrValue reports an internal invariant violation that should be unreachable on
	// conforming input.
	ErrValue = errors.New("voronoi: invalid internal value")

	// ErrID reports an internal id-lookup invariant violation that should be
	// unreachable on conforming input.
	ErrID = errors.New("voronoi: invalid internal id")

	// ErrNumberConversion reports that a checked numeric cast failed.
	ErrNumberConversion = errors.New("voronoi: number conversion failed")
)
