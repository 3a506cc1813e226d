package beachline

import (
	"testing"

	"github.com/go-geom/voronoi/event"
	"github.com/go-geom/voronoi/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func site(x, y int64, sorted int) event.SiteEvent {
	return event.NewPointSite(event.Point{X: x, Y: y}, sorted, sorted).WithSortedIndex(sorted)
}

func TestInsertLowerBoundAndNeighbors(t *testing.T) {
	bl := New()

	low := site(-10, 0, 0)
	mid := site(-10, 10, 1)
	high := site(-10, 20, 2)

	n1 := bl.Insert(NodeKey(low, mid), NodeData{EdgeID: 0, CircleEventID: NoCircleEvent})
	n2 := bl.Insert(NodeKey(mid, high), NodeData{EdgeID: 1, CircleEventID: NoCircleEvent})

	// A new site below the low/mid bisector locates it as its lower bound.
	found, ok := bl.LowerBound(site(5, 3, 3))
	require.True(t, ok)
	assert.Equal(t, n1.Key, found.Key)

	left, ok := bl.LeftNeighbor(n2)
	require.True(t, ok)
	assert.Equal(t, n1.Key, left.Key)

	right, ok := bl.RightNeighbor(n1)
	require.True(t, ok)
	assert.Equal(t, n2.Key, right.Key)

	first, ok := bl.First()
	require.True(t, ok)
	assert.Equal(t, n1.Key, first.Key)
}

// TestNodeOrderFollowsSweepGeometryNotSiteIndex pins the tree order to sweep
// geometry rather than raw SiteIndex: the three sites arrive in ascending y (x is
// shared, so sorted order is by y per predicate.CompareEvents) but carry SiteIndex
// in the opposite order.
func TestNodeOrderFollowsSweepGeometryNotSiteIndex(t *testing.T) {
	unsorted := []event.SiteEvent{
		event.NewPointSite(event.Point{X: -10, Y: 0}, 2, 0),
		event.NewPointSite(event.Point{X: -10, Y: 10}, 1, 1),
		event.NewPointSite(event.Point{X: -10, Y: 20}, 0, 2),
	}
	queue := event.NewSiteEventQueue(unsorted, predicate.Less)
	sorted := queue.All()
	low, mid, high := sorted[0], sorted[1], sorted[2]
	require.Equal(t, 0, low.SortedIndex())
	require.Equal(t, 2, low.SiteIndex())
	require.Equal(t, 0, high.SiteIndex())

	bl := New()
	n1 := bl.Insert(NodeKey(low, mid), NodeData{EdgeID: 0, CircleEventID: NoCircleEvent})
	n2 := bl.Insert(NodeKey(mid, high), NodeData{EdgeID: 1, CircleEventID: NoCircleEvent})

	first, ok := bl.First()
	require.True(t, ok)
	assert.Equal(t, n1.Key, first.Key)

	right, ok := bl.RightNeighbor(n1)
	require.True(t, ok)
	assert.Equal(t, n2.Key, right.Key)

	var order []int
	bl.Ascend(func(k Key, _ NodeData) bool {
		order = append(order, k.Right.SiteIndex())
		return true
	})
	assert.Equal(t, []int{1, 0}, order)
}

func TestLowerBoundForSegmentProbe(t *testing.T) {
	// A segment body probe keys off its lower endpoint, landing in the same
	// position a point probe there would.
	bl := New()
	low := site(-10, 0, 0)
	mid := site(-10, 10, 1)
	bl.Insert(NodeKey(low, mid), NodeData{EdgeID: 0, CircleEventID: NoCircleEvent})

	body := event.NewSegmentSite(event.Point{X: 0, Y: 2}, event.Point{X: 4, Y: 6}, 2, 2, false).WithSortedIndex(2)
	found, ok := bl.LowerBound(body)
	require.True(t, ok)
	assert.Equal(t, NodeKey(low, mid), found.Key)
}

func TestReplaceKeyPreservesData(t *testing.T) {
	bl := New()

	a := site(-10, 0, 0)
	b := site(-10, 10, 1)
	c := site(-10, 20, 2)

	n := bl.Insert(NodeKey(a, b), NodeData{EdgeID: 7, CircleEventID: 3})
	n2 := bl.ReplaceKey(n, NodeKey(a, c))

	data := bl.Data(n2)
	assert.Equal(t, 7, data.EdgeID)
	assert.Equal(t, 3, data.CircleEventID)
	assert.Equal(t, c, bl.KeyOf(n2).Right)
}

func TestEraseRemovesNode(t *testing.T) {
	bl := New()
	a := site(-10, 0, 0)
	b := site(-10, 10, 1)
	n := bl.Insert(NodeKey(a, b), NodeData{CircleEventID: NoCircleEvent})
	require.Equal(t, 1, bl.Len())
	bl.Erase(n)
	assert.Equal(t, 0, bl.Len())
}
