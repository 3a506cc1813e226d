package event

// SourceCategory tags which part of an input site a SiteEvent represents, per §3's
// {SinglePoint, SegmentStart, SegmentEnd, InitialSegment, ReverseSegment} flag set.
type SourceCategory uint8

const (
	// SinglePoint marks an event for a standalone point site.
	SinglePoint SourceCategory = iota
	// SegmentStart marks the event for a segment's start endpoint, expanded to its own
	// point site per §3 ("every input segment is expanded to three sites").
	SegmentStart
	// SegmentEnd marks the event for a segment's end endpoint.
	SegmentEnd
	// InitialSegment marks the event for a segment body in its canonical orientation
	// (start before end).
	InitialSegment
	// ReverseSegment marks the event for a segment body in reversed orientation (end
	// before start), used when the segment's lower endpoint is its End.
	ReverseSegment
)

// String renders the category name, mostly for debug tracing.
func (c SourceCategory) String() string {
	switch c {
	case SinglePoint:
		return "SinglePoint"
	case SegmentStart:
		return "SegmentStart"
	case SegmentEnd:
		return "SegmentEnd"
	case InitialSegment:
		return "InitialSegment"
	case ReverseSegment:
		return "ReverseSegment"
	default:
		return "Unknown"
	}
}

// SiteEvent is the typed event record described in §3: a point pair, the event's
// position once sorted, its position before sorting, and a flag set encoding whether it
// is a segment, whether that segment is currently flipped ("inverse"), and its source
// category. For point sites point0 == point1 (the SiteEvent invariant named in §3).
//
// SiteEvent is a plain value type deliberately: §3 requires segment sites to be
// value-copied into beach-line keys (not shared) because the inverse flag mutates
// per beach-line occurrence, so SiteEvent carries no pointers or slices.
type SiteEvent struct {
	p0, p1       Point
	siteIndex    int
	initialIndex int
	sortedIndex  int
	category     SourceCategory
	isInverse    bool
}

// NewPointSite returns the SiteEvent for a standalone point site.
func NewPointSite(p Point, siteIndex, initialIndex int) SiteEvent {
	return SiteEvent{p0: p, p1: p, siteIndex: siteIndex, initialIndex: initialIndex, category: SinglePoint}
}

// NewSegmentEndpointSite returns the SiteEvent for one endpoint of a segment, expanded
// to a point site per §3. category must be SegmentStart or SegmentEnd.
func NewSegmentEndpointSite(p Point, siteIndex, initialIndex int, category SourceCategory) SiteEvent {
	return SiteEvent{p0: p, p1: p, siteIndex: siteIndex, initialIndex: initialIndex, category: category}
}

// NewSegmentSite returns the SiteEvent for a segment body, oriented canonically
// (start, end) when reverse is false, or (end, start) when the segment's lower endpoint
// is its end.
func NewSegmentSite(start, end Point, siteIndex, initialIndex int, reverse bool) SiteEvent {
	category := InitialSegment
	p0, p1 := start, end
	if reverse {
		category = ReverseSegment
		p0, p1 = end, start
	}
	return SiteEvent{p0: p0, p1: p1, siteIndex: siteIndex, initialIndex: initialIndex, category: category}
}

// Point0 returns the event's first point, swapped with Point1 when the event's inverse
// flag is set.
func (e SiteEvent) Point0() Point {
	if e.isInverse {
		return e.p1
	}
	return e.p0
}

// Point1 returns the event's second point, swapped with Point0 when the event's inverse
// flag is set.
func (e SiteEvent) Point1() Point {
	if e.isInverse {
		return e.p0
	}
	return e.p1
}

// IsSegment reports whether this event represents a segment's open body - the only
// kind of event whose two points differ. A segment's expanded endpoint events are
// point sites to the beach line, distinguishable from standalone points only by
// their source category.
func (e SiteEvent) IsSegment() bool {
	return e.category == InitialSegment || e.category == ReverseSegment
}

// IsVertical reports whether both of the event's points share an x-coordinate. Point
// sites are trivially vertical.
func (e SiteEvent) IsVertical() bool {
	return e.p0.X == e.p1.X
}

// IsInverse reports whether Point0/Point1 are currently swapped relative to the
// event's construction orientation.
func (e SiteEvent) IsInverse() bool {
	return e.isInverse
}

// SortedPoint0 returns the event's first point in sorted (construction) order,
// ignoring the inverse flag.
func (e SiteEvent) SortedPoint0() Point {
	return e.p0
}

// SortedPoint1 returns the event's second point in sorted (construction) order,
// ignoring the inverse flag.
func (e SiteEvent) SortedPoint1() Point {
	return e.p1
}

// Inversed returns a copy of e with the inverse flag toggled, swapping which endpoint
// Point0/Point1 report first.
func (e SiteEvent) Inversed() SiteEvent {
	e.isInverse = !e.isInverse
	return e
}

// WithInverse returns a copy of e with the inverse flag set to v. Per §3 and §9, the
// beach line stores its own copy of a segment site's orientation independent of the
// event queue's copy, so this returns a new value rather than mutating in place.
func (e SiteEvent) WithInverse(v bool) SiteEvent {
	e.isInverse = v
	return e
}

// Category returns the event's source category.
func (e SiteEvent) Category() SourceCategory {
	return e.category
}

// SiteIndex returns the stable index of the underlying input site (shared by a
// segment's start/end/body sub-events), used as a diagram Cell's source index.
func (e SiteEvent) SiteIndex() int {
	return e.siteIndex
}

// InitialIndex returns the event's position in the unsorted input order, used as a
// final deterministic tiebreak.
func (e SiteEvent) InitialIndex() int {
	return e.initialIndex
}

// SortedIndex returns the event's position after the event queue sorted it (zero until
// WithSortedIndex is called).
func (e SiteEvent) SortedIndex() int {
	return e.sortedIndex
}

// WithSortedIndex returns a copy of e with its sorted_index field set, called once by
// the site event queue after sorting (§3).
func (e SiteEvent) WithSortedIndex(i int) SiteEvent {
	e.sortedIndex = i
	return e
}
