package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xThenY(a, b SiteEvent) bool {
	if a.Point0().X != b.Point0().X {
		return a.Point0().X < b.Point0().X
	}
	if a.Point0().Y != b.Point0().Y {
		return a.Point0().Y < b.Point0().Y
	}
	return a.SiteIndex() < b.SiteIndex()
}

func TestSiteEventQueueSortsAndStampsIndex(t *testing.T) {
	events := []SiteEvent{
		NewPointSite(Point{X: 5, Y: 5}, 0, 0),
		NewPointSite(Point{X: 1, Y: 1}, 1, 1),
		NewPointSite(Point{X: 3, Y: 0}, 2, 2),
	}
	q := NewSiteEventQueue(events, xThenY)
	require.Equal(t, 3, q.Len())

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(1), first.Point0().X)
	assert.Equal(t, 0, first.SortedIndex())

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(3), second.Point0().X)
	assert.Equal(t, 1, second.SortedIndex())

	third, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(5), third.Point0().X)

	_, ok = q.Pop()
	assert.False(t, ok)
	assert.True(t, q.Empty())
}

func TestSiteEventQueueCollapsesCoincidingPoints(t *testing.T) {
	events := []SiteEvent{
		NewPointSite(Point{X: 1, Y: 1}, 0, 0),
		NewSegmentEndpointSite(Point{X: 1, Y: 1}, 1, 1, SegmentStart),
		NewSegmentEndpointSite(Point{X: 4, Y: 4}, 1, 2, SegmentEnd),
	}
	q := NewSiteEventQueue(events, xThenY)
	require.Equal(t, 2, q.Len())

	first, _ := q.Pop()
	assert.Equal(t, SinglePoint, first.Category())
}

func TestSiteEventVerticalAndSortedAccessors(t *testing.T) {
	s := NewSegmentSite(Point{X: 3, Y: 0}, Point{X: 3, Y: 9}, 0, 0, false)
	assert.True(t, s.IsVertical())
	assert.True(t, s.IsSegment())

	inv := s.Inversed()
	assert.Equal(t, Point{X: 3, Y: 9}, inv.Point0())
	assert.Equal(t, Point{X: 3, Y: 0}, inv.SortedPoint0())

	endpoint := NewSegmentEndpointSite(Point{X: 3, Y: 0}, 0, 1, SegmentStart)
	assert.False(t, endpoint.IsSegment())
}

func TestSiteEventInverseIsPerCopy(t *testing.T) {
	s := NewSegmentSite(Point{X: 0, Y: 0}, Point{X: 10, Y: 10}, 0, 0, false)
	assert.Equal(t, Point{X: 0, Y: 0}, s.Point0())
	flipped := s.WithInverse(true)
	assert.Equal(t, Point{X: 10, Y: 10}, flipped.Point0())
	// the original is untouched - segment orientation is value-copied, not shared.
	assert.Equal(t, Point{X: 0, Y: 0}, s.Point0())
}

func TestCircleEventQueueLazyDeactivation(t *testing.T) {
	q := NewCircleEventQueue()
	idA := q.Push(Circle{X: 5, Y: 0, LowerX: 7})
	idB := q.Push(Circle{X: 1, Y: 0, LowerX: 2})
	_ = idA

	q.Deactivate(idB)
	top, id, ok := q.Top()
	require.True(t, ok)
	assert.Equal(t, idA, id)
	assert.Equal(t, 7.0, top.LowerX)

	_, _, ok = q.Pop()
	require.True(t, ok)
	assert.True(t, q.Empty())
}

func TestCircleEventQueueOrdersByLowerX(t *testing.T) {
	q := NewCircleEventQueue()
	q.Push(Circle{LowerX: 3})
	q.Push(Circle{LowerX: 1})
	q.Push(Circle{LowerX: 2})

	var order []float64
	for {
		c, _, ok := q.Pop()
		if !ok {
			break
		}
		order = append(order, c.LowerX)
	}
	assert.Equal(t, []float64{1, 2, 3}, order)
}
