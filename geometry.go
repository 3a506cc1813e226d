package voronoi

import (
	"image"

	"github.com/go-geom/voronoi/event"
)

// Point is an input site coordinate. Per §1 and the adaptive-precision requirement that
// predicates operate on exact integer input, site coordinates are integral; Diagram
// vertex and cell-sample coordinates are the float64 results the construction computes
// from them.
type Point struct {
	X, Y int64
}

// NewPoint returns the Point (x, y).
func NewPoint(x, y int64) Point {
	return Point{X: x, Y: y}
}

// NewPointFromImagePoint returns the Point corresponding to an [image.Point], useful
// when seeding a diagram from raster/pixel coordinates.
func NewPointFromImagePoint(p image.Point) Point {
	return Point{X: int64(p.X), Y: int64(p.Y)}
}

func (p Point) toEvent() event.Point {
	return event.Point{X: p.X, Y: p.Y}
}

// Segment is an input site running from Start to End. Per §1's Non-goals, segments may
// share endpoints with other input segments but must not otherwise intersect or
// self-intersect; Builder.Build reports ErrSelfIntersecting if this is violated.
type Segment struct {
	Start, End Point
}

// NewSegment returns the Segment from start to end.
func NewSegment(start, end Point) Segment {
	return Segment{Start: start, End: end}
}
