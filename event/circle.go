package event

import "container/heap"

// Circle is the circle-event geometry computed by the circle-formation predicate
// (§4.2): the center (X, Y) of the converging arcs' circumcircle and LowerX, the sweep
// x (X + radius) at which the event fires.
type Circle struct {
	X, Y, LowerX float64
}

// circleRecord is the arena entry backing one scheduled circle event. Its Active flag
// is the single point of coordination described in §5: a beach-line node that scheduled
// this event deactivates it (rather than removing it from the heap) when the arcs that
// would have produced it change.
type circleRecord struct {
	id      int
	circle  Circle
	active  bool
	heapIdx int
}

// circleHeap is a container/heap min-heap ordered by (LowerX, Y, X) ascending, so its
// root is always the next circle event the sweep line will reach. §4.3 describes the
// queue as "a max-priority queue ordered by decreasing lower_x"; that phrasing
// describes the comparator convention of the std::priority_queue the source is
// grounded on (whose "top" is the comparator's maximum), not the firing order - the
// sweep must still consume events in increasing x, which is what this type provides.
type circleHeap []*circleRecord

func (h circleHeap) Len() int { return len(h) }

func (h circleHeap) Less(i, j int) bool {
	a, b := h[i].circle, h[j].circle
	if a.LowerX != b.LowerX {
		return a.LowerX < b.LowerX
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func (h circleHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx = i
	h[j].heapIdx = j
}

func (h *circleHeap) Push(x any) {
	r := x.(*circleRecord)
	r.heapIdx = len(*h)
	*h = append(*h, r)
}

func (h *circleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// CircleEventQueue is the circle-event priority queue of §4.3: a heap of scheduled
// circle events with lazy deactivation. Obsolete events are never removed eagerly;
// instead the queue drains inactive entries off its top whenever it is queried,
// grounded in the "push new events, skip stale entries at pop time" lazy-decrease-key
// shape used for the circle-event queue's container/heap backing.
type CircleEventQueue struct {
	records []*circleRecord
	h       circleHeap
}

// NewCircleEventQueue returns an empty circle-event queue.
func NewCircleEventQueue() *CircleEventQueue {
	return &CircleEventQueue{}
}

// Push schedules a new circle event and returns its id, which a beach-line node stores
// as its back-reference (§3's "optional scheduled_circle_event_id").
func (q *CircleEventQueue) Push(c Circle) int {
	r := &circleRecord{id: len(q.records), circle: c, active: true}
	q.records = append(q.records, r)
	heap.Push(&q.h, r)
	return r.id
}

// Deactivate marks a previously scheduled circle event as obsolete. It is a no-op for
// an out-of-range or already-popped id.
func (q *CircleEventQueue) Deactivate(id int) {
	if id < 0 || id >= len(q.records) {
		return
	}
	q.records[id].active = false
}

// IsActive reports whether the circle event with the given id is still active.
func (q *CircleEventQueue) IsActive(id int) bool {
	if id < 0 || id >= len(q.records) {
		return false
	}
	return q.records[id].active
}

func (q *CircleEventQueue) drain() {
	for q.h.Len() > 0 && !q.h[0].active {
		heap.Pop(&q.h)
	}
}

// Empty reports whether the queue holds no active circle event, draining any inactive
// ones off the top first.
func (q *CircleEventQueue) Empty() bool {
	q.drain()
	return q.h.Len() == 0
}

// Top returns the next active circle event to fire, its id, and true - or a zero
// Circle, -1, and false if none remain.
func (q *CircleEventQueue) Top() (Circle, int, bool) {
	q.drain()
	if q.h.Len() == 0 {
		return Circle{}, -1, false
	}
	r := q.h[0]
	return r.circle, r.id, true
}

// Pop removes and returns the next active circle event to fire.
func (q *CircleEventQueue) Pop() (Circle, int, bool) {
	q.drain()
	if q.h.Len() == 0 {
		return Circle{}, -1, false
	}
	r := heap.Pop(&q.h).(*circleRecord)
	return r.circle, r.id, true
}
