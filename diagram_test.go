package voronoi

import (
	"testing"

	"github.com/go-geom/voronoi/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagramEnsureCellDedupesBySiteAndCategory(t *testing.T) {
	d := newDiagram()
	a := event.NewPointSite(event.Point{X: 0, Y: 0}, 0, 0)
	b := event.NewSegmentEndpointSite(event.Point{X: 5, Y: 5}, 1, 1, event.SegmentStart)
	bBody := event.NewSegmentSite(event.Point{X: 5, Y: 5}, event.Point{X: 10, Y: 10}, 1, 2, false)

	c1 := d.ensureCell(a)
	c2 := d.ensureCell(b)
	c3 := d.ensureCell(bBody)
	c1Again := d.ensureCell(a)

	assert.Equal(t, c1, c1Again)
	assert.NotEqual(t, c1, c2)
	assert.NotEqual(t, c2, c3)
	assert.Equal(t, 3, d.NumCells())
}

func TestDiagramInsertNewEdgeWiresTwinsAndCells(t *testing.T) {
	d := newDiagram()
	a := event.NewPointSite(event.Point{X: 0, Y: 0}, 0, 0)
	b := event.NewPointSite(event.Point{X: 10, Y: 0}, 1, 1)

	e, twin := d.insertNewEdge(a, b)
	require.Equal(t, 2, d.NumEdges())
	assert.Equal(t, twin, d.Edges()[e].Twin().ID())
	assert.Equal(t, e, d.Edges()[twin].Twin().ID())
	assert.True(t, d.Edges()[e].IsInfinite())
}

func TestDiagramInsertNewEdgeWithVertexClosesPriorEdges(t *testing.T) {
	d := newDiagram()
	a := event.NewPointSite(event.Point{X: 0, Y: 0}, 0, 0)
	b := event.NewPointSite(event.Point{X: 10, Y: 0}, 1, 1)
	c := event.NewPointSite(event.Point{X: 5, Y: 10}, 2, 2)

	e1, _ := d.insertNewEdge(a, b)
	e2, _ := d.insertNewEdge(b, c)
	vertexID := d.newVertex(5, 1)

	edgeID, twinID := d.insertNewEdgeWithVertex(a, c, vertexID, e1, e2)

	v, ok := d.Edges()[edgeID].Vertex0()
	require.True(t, ok)
	assert.Equal(t, vertexID, v.id)

	_, ok = d.Edges()[twinID].Vertex0()
	assert.False(t, ok)

	twin1, ok := d.Edges()[e1].Twin().Vertex0()
	require.True(t, ok)
	assert.Equal(t, vertexID, twin1.id)
}

func TestDiagramInsertNewEdgeWithVertexClosesPriorEdgesForSegmentSite(t *testing.T) {
	d := newDiagram()
	a := event.NewPointSite(event.Point{X: 0, Y: 0}, 0, 0)
	b := event.NewPointSite(event.Point{X: 10, Y: 0}, 1, 1)
	seg := event.NewSegmentSite(event.Point{X: 4, Y: 10}, event.Point{X: 6, Y: 10}, 2, 2, false)

	e1, _ := d.insertNewEdge(a, b)
	e2, _ := d.insertNewEdge(b, seg)
	vertexID := d.newVertex(5, 1)

	edgeID, twinID := d.insertNewEdgeWithVertex(a, seg, vertexID, e1, e2)

	v, ok := d.Edges()[edgeID].Vertex0()
	require.True(t, ok)
	assert.Equal(t, vertexID, v.id)

	_, ok = d.Edges()[twinID].Vertex0()
	assert.False(t, ok)

	twin1, ok := d.Edges()[e1].Twin().Vertex0()
	require.True(t, ok)
	assert.Equal(t, vertexID, twin1.id)
}

func TestDiagramFinalizeMarksDuplicatePointCells(t *testing.T) {
	d := newDiagram()
	a := event.NewPointSite(event.Point{X: 0, Y: 0}, 0, 0)
	b := event.NewPointSite(event.Point{X: 0, Y: 0}, 1, 1)
	d.ensureCell(a)
	d.ensureCell(b)
	d.finalize()
	assert.False(t, d.cells[0].IsDegenerate)
	assert.True(t, d.cells[1].IsDegenerate)
}

func TestCellEdgeIteratorWalksCCWLoop(t *testing.T) {
	d := newDiagram()
	a := event.NewPointSite(event.Point{X: 0, Y: 0}, 0, 0)
	b := event.NewPointSite(event.Point{X: 10, Y: 0}, 1, 1)
	e, twin := d.insertNewEdge(a, b)
	d.link(e, e)
	cellA := Cell{d: d, id: d.edges[e].Cell}
	edges := d.CellEdgeIterator(cellA)
	require.Len(t, edges, 1)
	assert.Equal(t, e, edges[0].ID())
	_ = twin
}
