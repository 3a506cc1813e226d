// Package voronoi builds a Voronoi diagram over a mixture of point and line-segment
// sites using Fortune's sweepline algorithm, generalized to handle segment sites and
// curved (parabolic) bisectors in addition to the classic point/point case.
//
// # Coordinate system
//
// Input sites use integral coordinates so that the predicate hierarchy (package
// predicate, backed by package numeric) can decide every comparison exactly, falling
// back to arbitrary-precision arithmetic only on inputs that defeat float64. Computed
// diagram geometry (vertex positions, the endpoints of curved edges) is float64, since
// no further exact comparisons are performed on it once the topology is fixed.
//
// # Usage
//
//	diagram, err := voronoi.NewBuilder().
//		WithVertices(voronoi.NewPoint(0, 0), voronoi.NewPoint(10, 10)).
//		WithSegments(voronoi.NewSegment(voronoi.NewPoint(0, 10), voronoi.NewPoint(10, 0))).
//		Build()
//
// # Core types
//
//   - [Point] and [Segment]: the two site kinds accepted by [Builder].
//   - [Diagram]: the constructed result, exposing [Diagram.Cells], [Diagram.Vertices]
//     and [Diagram.Edges] as index-addressed slices (an arena, not a pointer graph).
//   - [Cell], [Vertex], [Edge]: views into a Diagram's arenas.
//
// # Acknowledgments
//
// The adaptive-precision predicate design (package numeric, package predicate) and the
// overall sweepline structure follow the approach of the Boost Polygon Voronoi library.
package voronoi
