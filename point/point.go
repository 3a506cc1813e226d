// Package point defines the float64 coordinate pair used throughout the voronoi module
// for diagram geometry: cell sites' float64 projections, vertex coordinates, and the
// endpoints of the half-edges that bound a cell.
//
// Site coordinates themselves are integral (see the root package's Point/Segment types,
// grounded in the adaptive-precision requirement that predicates operate on exact integer
// input); this package's Point is the floating-point result type produced once a vertex
// position has been computed by the predicate/numeric packages.
package point

import (
	"fmt"
	"image"
	"math"

	"github.com/go-geom/voronoi/numeric"
)

// Point represents a point in two-dimensional space with float64 coordinates.
type Point struct {
	x float64
	y float64
}

// Origin is the point (0, 0).
var Origin = New(0, 0)

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// NewFromImagePoint creates a new Point from an [image.Point], useful when seeding a
// diagram from raster/pixel coordinates.
func NewFromImagePoint(q image.Point) Point {
	return Point{x: float64(q.X), y: float64(q.Y)}
}

// X returns the x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the sum of two points as if they were vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Negate returns a new Point with both coordinates negated.
func (p Point) Negate() Point {
	return Point{x: -p.x, y: -p.y}
}

// Translate moves the Point by a given displacement vector.
func (p Point) Translate(delta Point) Point {
	return Point{x: p.x + delta.x, y: p.y + delta.y}
}

// Scale scales the point by a factor k relative to a reference point ref.
func (p Point) Scale(ref Point, k float64) Point {
	return Point{
		x: ref.x + (p.x-ref.x)*k,
		y: ref.y + (p.y-ref.y)*k,
	}
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p and q,
// avoiding the square root when only distance comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	return (q.x-p.x)*(q.x-p.x) + (q.y-p.y)*(q.y-p.y)
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// CrossProduct returns the 2D cross product (determinant) of the vectors p and q:
//
//	p × q = p.x*q.y - p.y*q.x
//
// A positive result indicates q is counterclockwise from p, negative clockwise, zero
// collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct calculates the dot product of the vectors p and q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// Eq reports whether p and q are equal within the given epsilon tolerance.
func (p Point) Eq(q Point, epsilon float64) bool {
	return numeric.FloatEquals(p.x, q.x, epsilon) && numeric.FloatEquals(p.y, q.y, epsilon)
}

// String returns a string representation of the Point in the format "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}
