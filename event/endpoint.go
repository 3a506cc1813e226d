package event

import "container/heap"

// EndPointPair records that a temporary beach-line bisector (inserted when a segment
// site's body entered the beach line) must be erased when the sweep reaches the
// segment's far endpoint. Node is an opaque handle the beach line hands back at
// insertion; this package never dereferences it.
type EndPointPair struct {
	Point Point
	Node  any
}

type endPointHeap []EndPointPair

func (h endPointHeap) Len() int { return len(h) }

func (h endPointHeap) Less(i, j int) bool {
	a, b := h[i].Point, h[j].Point
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func (h endPointHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *endPointHeap) Push(x any) { *h = append(*h, x.(EndPointPair)) }

func (h *endPointHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// EndPointQueue is the pending-end-point queue of §4.4: a min-heap of segment far
// endpoints, each paired with the temporary beach-line node that must disappear when
// a site event for that endpoint arrives.
type EndPointQueue struct {
	h endPointHeap
}

// NewEndPointQueue returns an empty queue.
func NewEndPointQueue() *EndPointQueue {
	return &EndPointQueue{}
}

// Push schedules the temporary node held for the given endpoint.
func (q *EndPointQueue) Push(p Point, node any) {
	heap.Push(&q.h, EndPointPair{Point: p, Node: node})
}

// Empty reports whether any endpoint is still pending.
func (q *EndPointQueue) Empty() bool {
	return q.h.Len() == 0
}

// Top returns the pending endpoint with the smallest point without removing it.
func (q *EndPointQueue) Top() (EndPointPair, bool) {
	if q.h.Len() == 0 {
		return EndPointPair{}, false
	}
	return q.h[0], true
}

// Pop removes and returns the pending endpoint with the smallest point.
func (q *EndPointQueue) Pop() (EndPointPair, bool) {
	if q.h.Len() == 0 {
		return EndPointPair{}, false
	}
	return heap.Pop(&q.h).(EndPointPair), true
}
