// Package beachline implements the beach line (C4): the ordered map over arc-pair keys
// described in §4.4, backed by github.com/emirpasic/gods/trees/redblacktree for its
// Floor/Ceiling/IteratorAt operations - grounded in the teacher's status-structure
// (linesegment/sweepline_statusstructure_rbt.go), which uses the same tree for the same
// reason: a search structure ordered by sweep-position-dependent comparisons.
package beachline

import "github.com/go-geom/voronoi/event"

// Key is a beach-line node key: the ordered pair (left, right) of arcs meeting at a
// bisector (§3). Each site is a value copy, so a segment arc's orientation flag can
// differ between this key and the event queue's record of the same site. A key whose
// two sites are the same event is either a lower_bound probe for a newly arriving
// site or the temporary self-bisector a segment body holds until its far endpoint is
// swept past.
type Key struct {
	Left, Right event.SiteEvent
}

// NodeKey returns a beach-line key for the bisector between left and right.
func NodeKey(left, right event.SiteEvent) Key {
	return Key{Left: left, Right: right}
}

// NodeData is the value stored alongside a beach-line key (§3): the id of the diagram
// half-edge this arc pair is tracing, and the id of the circle event (if any) currently
// scheduled for the triple this node sits in the middle of. CircleEventID is -1 when no
// circle event is scheduled. A temporary self-bisector node carries no edge; its EdgeID
// is -1.
type NodeData struct {
	EdgeID        int
	CircleEventID int
}

// NoCircleEvent is the CircleEventID sentinel meaning "no circle event scheduled".
const NoCircleEvent = -1

// NoEdge is the EdgeID sentinel carried by temporary self-bisector nodes.
const NoEdge = -1
