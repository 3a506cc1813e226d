package voronoi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-geom/voronoi/options"
	"github.com/go-geom/voronoi/point"
)

func TestBuildEmptyInputProducesEmptyDiagram(t *testing.T) {
	d, err := NewBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, 0, d.NumCells())
	assert.Equal(t, 0, d.NumVertices())
	assert.Equal(t, 0, d.NumEdges())
}

func TestBuildSinglePointProducesOneDegenerateCell(t *testing.T) {
	d, err := NewBuilder().WithVertices(NewPoint(0, 0)).Build()
	require.NoError(t, err)
	require.Equal(t, 1, d.NumCells())
	assert.Equal(t, 0, d.NumVertices())
	assert.Equal(t, 0, d.NumEdges())
	_, ok := d.Cells()[0].IncidentEdge()
	assert.False(t, ok)
}

func TestBuildTwoPointsProducesOneUnboundedBisector(t *testing.T) {
	d, err := NewBuilder().WithVertices(NewPoint(0, 0), NewPoint(10, 0)).Build()
	require.NoError(t, err)
	require.Equal(t, 2, d.NumCells())
	assert.Equal(t, 0, d.NumVertices())
	require.Equal(t, 2, d.NumEdges())

	e0 := d.Edges()[0]
	assert.True(t, e0.IsInfinite())
	assert.Equal(t, e0.Twin().ID(), d.Edges()[1].ID())
}

func TestBuildThreePointsFormsOneVertex(t *testing.T) {
	d, err := NewBuilder().
		WithVertices(NewPoint(0, 0), NewPoint(10, 0), NewPoint(5, 10)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumCells())
	require.Equal(t, 1, d.NumVertices())

	v := d.Vertices()[0]
	assert.InDelta(t, 5, v.X(), 1e-6)
	assert.InDelta(t, 3.75, v.Y(), 1e-6)
}

func TestBuildCollinearVerticalPointsSeedChainOfBisectors(t *testing.T) {
	d, err := NewBuilder().
		WithVertices(NewPoint(0, 0), NewPoint(0, 10), NewPoint(0, 20), NewPoint(0, 30)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 4, d.NumCells())
	assert.Equal(t, 0, d.NumVertices())
	assert.Equal(t, 6, d.NumEdges())
}

func TestBuildDuplicatePointsCollapse(t *testing.T) {
	// Coinciding point sites dedupe before the sweep, per the §8 property that the
	// cell count matches the distinct input sites after dedup.
	d, err := NewBuilder().WithVertices(NewPoint(0, 0), NewPoint(0, 0)).Build()
	require.NoError(t, err)
	assert.Equal(t, 1, d.NumCells())
}

func TestBuildSingleSegmentProducesThreeCells(t *testing.T) {
	d, err := NewBuilder().
		WithSegments(NewSegment(NewPoint(0, 0), NewPoint(10, 0))).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumCells())
	assert.Equal(t, 0, d.NumVertices())
	for _, c := range d.Cells() {
		assert.Equal(t, 0, c.SourceIndex())
	}
}

func TestBuilderRejectsCoordinatesBeyond32Bits(t *testing.T) {
	_, err := NewBuilder().WithVertices(NewPoint(1<<33, 0), NewPoint(0, 0)).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNumberConversion))
}

func TestBuilderRejectsVerticesAfterSegments(t *testing.T) {
	_, err := NewBuilder().
		WithSegments(NewSegment(NewPoint(0, 0), NewPoint(10, 0))).
		WithVertices(NewPoint(5, 5)).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVerticesGoesFirst))
}

func TestBuilderRejectsCrossingSegments(t *testing.T) {
	_, err := NewBuilder().
		WithSegments(
			NewSegment(NewPoint(0, 0), NewPoint(10, 10)),
			NewSegment(NewPoint(0, 10), NewPoint(10, 0)),
		).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelfIntersecting))
}

func TestBuilderAllowsSegmentsSharingEndpoint(t *testing.T) {
	_, err := NewBuilder().
		WithSegments(
			NewSegment(NewPoint(0, 0), NewPoint(10, 0)),
			NewSegment(NewPoint(10, 0), NewPoint(10, 10)),
		).
		Build()
	require.NoError(t, err)
}

// TestBuildSegmentPlusOutsidePoint reproduces the reference scenario of one point
// site outside a nearby segment's reach: four cells (the point plus the segment's
// three sub-sites), no Voronoi vertices, three unbounded twin pairs.
func TestBuildSegmentPlusOutsidePoint(t *testing.T) {
	d, err := NewBuilder().
		WithVertices(NewPoint(9, 10)).
		WithSegments(NewSegment(NewPoint(10, 11), NewPoint(12, 13))).
		Build()
	require.NoError(t, err)

	require.Equal(t, 4, d.NumCells())
	assert.Equal(t, 0, d.NumVertices())
	assert.Equal(t, 6, d.NumEdges())

	assert.Equal(t, 0, d.Cells()[0].SourceIndex())
	assert.Equal(t, CellSinglePoint, d.Cells()[0].Category())
	categories := map[CellSourceCategory]int{}
	for _, c := range d.Cells()[1:] {
		assert.Equal(t, 1, c.SourceIndex())
		categories[c.Category()]++
	}
	assert.Equal(t, map[CellSourceCategory]int{
		CellSegmentStart: 1,
		CellSegmentEnd:   1,
		CellSegmentBody:  1,
	}, categories)
}

// TestBuildSegmentPlusEnclosedPoint reproduces the reference scenario of a point
// site inside the segment's upper cell: two Voronoi vertices appear, one of them
// joining the point's parabolic boundary against the segment body.
func TestBuildSegmentPlusEnclosedPoint(t *testing.T) {
	d, err := NewBuilder().
		WithVertices(NewPoint(12, 14)).
		WithSegments(NewSegment(NewPoint(10, 11), NewPoint(12, 13))).
		Build()
	require.NoError(t, err)

	require.Equal(t, 4, d.NumCells())
	require.Equal(t, 2, d.NumVertices())
	assert.Equal(t, 10, d.NumEdges())

	near, ok := d.FindVertex(point.New(11.5, 13.5), options.WithEpsilon(1e-6))
	require.True(t, ok)
	far, ok := d.FindVertex(point.New(3.5, 17.5), options.WithEpsilon(1e-6))
	require.True(t, ok)
	// The far vertex is equidistant to the input point and the segment's start.
	site := point.New(12, 14)
	segStart := point.New(10, 11)
	assert.InDelta(t,
		far.Position().DistanceToPoint(site),
		far.Position().DistanceToPoint(segStart), 1e-6)
	assert.Greater(t, far.Position().DistanceToPoint(site), near.Position().DistanceToPoint(site))

	sawCurved := false
	for _, e := range d.Edges() {
		assert.Equal(t, e.ID(), e.Twin().Twin().ID())
		if e.IsCurved() {
			sawCurved = true
		}
	}
	assert.True(t, sawCurved, "expected a parabolic point/segment edge")
}

func TestBuildMixedPointAndSegmentSites(t *testing.T) {
	d, err := NewBuilder().
		WithVertices(NewPoint(-10, -10), NewPoint(20, 20)).
		WithSegments(NewSegment(NewPoint(0, 10), NewPoint(10, 0))).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 5, d.NumCells())
	assert.Equal(t, 0, d.NumEdges()%2)
	for _, e := range d.Edges() {
		assert.Equal(t, e.ID(), e.Twin().Twin().ID())
		if f := e.Next(); f.id != noEdge {
			assert.Equal(t, e.ID(), f.Prev().ID())
			assert.Equal(t, e.Cell().id, f.Cell().id)
		}
	}
}

func TestBuildDeterministicAcrossRuns(t *testing.T) {
	build := func() *Diagram {
		d, err := NewBuilder().
			WithVertices(NewPoint(1, 7), NewPoint(4, 2), NewPoint(9, 9)).
			WithSegments(NewSegment(NewPoint(12, 1), NewPoint(15, 8))).
			Build()
		require.NoError(t, err)
		return d
	}
	a, b := build(), build()
	require.Equal(t, a.NumCells(), b.NumCells())
	require.Equal(t, a.NumVertices(), b.NumVertices())
	require.Equal(t, a.NumEdges(), b.NumEdges())
	for i := range a.Vertices() {
		assert.Equal(t, a.Vertices()[i].X(), b.Vertices()[i].X())
		assert.Equal(t, a.Vertices()[i].Y(), b.Vertices()[i].Y())
	}
}
