package event

import "github.com/google/btree"

// SiteEventQueue is the sorted site-event vector described in §4.3: prepared once at
// construction start, then walked by the driver with an integer cursor. Sorting is
// delegated to a [btree.BTreeG] ascended exactly once to assign each event's
// SortedIndex, grounded in the teacher's newEventQueue (sweepline_eventqueue.go), which
// uses the same btree-ascend-once shape to stamp a stable processing order.
type SiteEventQueue struct {
	events []SiteEvent
	cursor int
}

// Less is the strict-weak-order function the queue's backing btree sorts by; it is
// exported so callers can reuse the same order (e.g. in tests) without depending on the
// predicate package, which already depends on event.
type Less func(a, b SiteEvent) bool

// NewSiteEventQueue builds the sorted queue from an unsorted slice of events, using
// less as the event comparison predicate (§4.2). After sorting, geometric duplicates
// collapse: coinciding point-type events keep only their first (lowest-category)
// occurrence, as do identical segment bodies, per §6's "coinciding endpoints are
// allowed and deduplicated". Each surviving event's SortedIndex is stamped in
// ascending order.
func NewSiteEventQueue(events []SiteEvent, less Less) *SiteEventQueue {
	bt := btree.NewG(32, func(a, b SiteEvent) bool { return less(a, b) })
	for _, e := range events {
		if _, dup := bt.Get(e); dup {
			continue
		}
		bt.ReplaceOrInsert(e)
	}
	sorted := make([]SiteEvent, 0, bt.Len())
	bt.Ascend(func(e SiteEvent) bool {
		if n := len(sorted); n > 0 && sameGeometry(sorted[n-1], e) {
			return true
		}
		sorted = append(sorted, e.WithSortedIndex(len(sorted)))
		return true
	})
	return &SiteEventQueue{events: sorted}
}

// sameGeometry reports whether two sorted-adjacent events describe the same input
// geometry: two point-type events at one coordinate, or two identical segment bodies.
func sameGeometry(a, b SiteEvent) bool {
	if a.IsSegment() != b.IsSegment() {
		return false
	}
	return a.SortedPoint0() == b.SortedPoint0() && a.SortedPoint1() == b.SortedPoint1()
}

// Len returns the total number of events in the queue, sorted or not yet visited.
func (q *SiteEventQueue) Len() int {
	return len(q.events)
}

// Empty reports whether every event has been popped.
func (q *SiteEventQueue) Empty() bool {
	return q.cursor >= len(q.events)
}

// Peek returns the next unprocessed event without advancing the cursor.
func (q *SiteEventQueue) Peek() (SiteEvent, bool) {
	if q.Empty() {
		return SiteEvent{}, false
	}
	return q.events[q.cursor], true
}

// Pop returns the next unprocessed event and advances the cursor past it.
func (q *SiteEventQueue) Pop() (SiteEvent, bool) {
	e, ok := q.Peek()
	if ok {
		q.cursor++
	}
	return e, ok
}

// All returns every sorted event, primarily for initial beach-line seeding (§4.4) which
// needs to look ahead at the first few events before the main loop starts consuming
// them.
func (q *SiteEventQueue) All() []SiteEvent {
	return q.events
}
