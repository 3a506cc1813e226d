package voronoi

import (
	"fmt"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/go-geom/voronoi/beachline"
	"github.com/go-geom/voronoi/event"
	"github.com/go-geom/voronoi/internal/dbg"
	"github.com/go-geom/voronoi/numeric"
	"github.com/go-geom/voronoi/options"
	"github.com/go-geom/voronoi/predicate"
)

// Builder assembles a Diagram from point and segment sites, following the fluent
// with_vertices/with_segments/build shape of §6. Per §6's precondition, every point
// input must be supplied before the first segment input; calling WithVertices after
// WithSegments records ErrVerticesGoesFirst, surfaced when Build is eventually called.
type Builder struct {
	points          []Point
	segments        []Segment
	segmentsStarted bool
	err             error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithVertices adds point sites. It must be called, if at all, before WithSegments.
func (b *Builder) WithVertices(points ...Point) *Builder {
	if b.segmentsStarted {
		if b.err == nil {
			b.err = fmt.Errorf("%w", ErrVerticesGoesFirst)
		}
		return b
	}
	b.points = append(b.points, points...)
	return b
}

// WithSegments adds segment sites.
func (b *Builder) WithSegments(segments ...Segment) *Builder {
	b.segmentsStarted = true
	b.segments = append(b.segments, segments...)
	return b
}

// Build constructs the Voronoi diagram for every site supplied so far, implementing the
// §4.6 driver loop. It returns ErrVerticesGoesFirst if WithVertices was misused, or
// ErrSelfIntersecting if two input segments improperly intersect.
func (b *Builder) Build(opts ...options.BuildOptionFunc) (*Diagram, error) {
	if b.err != nil {
		return nil, b.err
	}
	return build(b.points, b.segments, options.ApplyBuildOptions(opts...))
}

func build(points []Point, segments []Segment, opts options.BuildOptions) (*Diagram, error) {
	if err := validateCoordinates(points, segments); err != nil {
		return nil, err
	}
	segs := make([]predicate.Segment, len(segments))
	for i, s := range segments {
		segs[i] = predicate.Segment{Start: s.Start.toEvent(), End: s.End.toEvent()}
	}
	if i, j, bad := predicate.FindSelfIntersections(segs); bad {
		return nil, fmt.Errorf("%w: segments %d and %d", ErrSelfIntersecting, i, j)
	}

	events := buildSiteEvents(points, segments)
	queue := event.NewSiteEventQueue(events, predicate.Less)
	diagram := newDiagram()

	switch queue.Len() {
	case 0:
		diagram.finalize()
		return diagram, nil
	case 1:
		only, _ := queue.Pop()
		diagram.processSingleSite(only)
		diagram.finalize()
		return diagram, nil
	}

	drv := newDriver(diagram, opts)
	drv.initBeachLine(queue)

	for {
		circ, _, hasCircle := drv.circles.Top()
		site, hasSite := queue.Peek()

		switch {
		case !hasCircle && !hasSite:
			diagram.finalize()
			return diagram, nil
		case !hasCircle || (hasSite && siteBeforeCircle(site, circ)):
			if err := drv.processSiteEvents(queue); err != nil {
				return nil, err
			}
		default:
			if err := drv.processCircleEvent(); err != nil {
				return nil, err
			}
		}
	}
}

// validateCoordinates enforces §6's precondition that every input coordinate is
// representable in 32 bits, the width the extended-precision arithmetic is
// dimensioned for; a coordinate failing the checked narrowing surfaces as
// ErrNumberConversion.
func validateCoordinates(points []Point, segments []Segment) error {
	check := func(v int64) error {
		if int64(int32(v)) != v {
			return fmt.Errorf("%w: coordinate %d does not fit in 32 bits", ErrNumberConversion, v)
		}
		return nil
	}
	for _, p := range points {
		if err := check(p.X); err != nil {
			return err
		}
		if err := check(p.Y); err != nil {
			return err
		}
	}
	for _, s := range segments {
		for _, v := range [4]int64{s.Start.X, s.Start.Y, s.End.X, s.End.Y} {
			if err := check(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildSiteEvents expands the input per §3: every point becomes one SiteEvent, every
// segment becomes three (its two endpoints plus its body, oriented so the body's
// canonical direction runs from its lower endpoint to its upper one), all sharing the
// segment's own site index.
func buildSiteEvents(points []Point, segments []Segment) []event.SiteEvent {
	events := make([]event.SiteEvent, 0, len(points)+3*len(segments))
	idx := 0
	for i, p := range points {
		events = append(events, event.NewPointSite(p.toEvent(), i, idx))
		idx++
	}
	base := len(points)
	for j, s := range segments {
		siteIndex := base + j
		start, end := s.Start.toEvent(), s.End.toEvent()
		events = append(events, event.NewSegmentEndpointSite(start, siteIndex, idx, event.SegmentStart))
		idx++
		events = append(events, event.NewSegmentEndpointSite(end, siteIndex, idx, event.SegmentEnd))
		idx++
		events = append(events, event.NewSegmentSite(start, end, siteIndex, idx, isLowerPoint(end, start)))
		idx++
	}
	return events
}

func isLowerPoint(a, b event.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// siteBeforeCircle orders the two event-queue heads, ULP-tolerant on the sweep
// coordinate so a circle event and the site that spawned it do not flip order over
// one rounding step.
func siteBeforeCircle(s event.SiteEvent, c event.Circle) bool {
	sx := float64(s.Point0().X)
	if !numeric.AlmostEqualUlps(sx, c.LowerX, 64) {
		return sx < c.LowerX
	}
	sy := float64(s.Point0().Y)
	if !numeric.AlmostEqualUlps(sy, c.Y, 64) {
		return sy < c.Y
	}
	return false
}

// driver holds the mutable state the §4.6 event loop threads through: the beach line
// (C4), the circle-event queue (C3) with a back-index from each scheduled event's id to
// the beach-line node that owns it, and the pending-end-point queue holding the
// temporary self-bisector each segment body parks in the beach line until the sweep
// passes its far endpoint (§4.4).
type driver struct {
	beach       *beachline.BeachLine
	circles     *event.CircleEventQueue
	endPoints   *event.EndPointQueue
	circleOwner map[int]*rbt.Node
	diagram     *Diagram
	circleOpts  predicate.CircleOptions
	degeneracy  options.DegeneracyPolicy
	sweepX      float64
}

func newDriver(d *Diagram, opts options.BuildOptions) *driver {
	return &driver{
		beach:       beachline.New(),
		circles:     event.NewCircleEventQueue(),
		endPoints:   event.NewEndPointQueue(),
		circleOwner: make(map[int]*rbt.Node),
		diagram:     d,
		circleOpts: predicate.CircleOptions{
			Thresholds:    opts.UlpThresholds,
			ExactFallback: !opts.DisableBigIntFallback,
		},
		degeneracy: opts.Degeneracy,
	}
}

func (drv *driver) sweepTo(x float64) {
	if x > drv.sweepX {
		drv.sweepX = x
	}
}

// initBeachLine implements §4.4's initial seeding. A leading run of sites that are
// vertically collinear with the first site (points, or vertical segments on the same
// x) seeds the beach line as a chain of consecutive bisectors; otherwise the first
// two sites seed it through the ordinary arc-split path. The first site is always a
// point, since segment bodies order after points at the same sweep position.
func (drv *driver) initBeachLine(queue *event.SiteEventQueue) {
	all := queue.All()
	skip := 0
	for skip < len(all) &&
		all[skip].Point0().X == all[0].Point0().X &&
		all[skip].IsVertical() {
		skip++
	}

	if skip == 1 {
		first, _ := queue.Pop()
		second, _ := queue.Pop()
		drv.sweepTo(float64(second.Point0().X))
		drv.insertNewArc(first, first, second)
		return
	}
	for i := 0; i < skip; i++ {
		queue.Pop()
	}
	drv.sweepTo(float64(all[skip-1].Point0().X))
	for i := 0; i+1 < skip; i++ {
		left, right := all[i], all[i+1]
		edgeID, _ := drv.diagram.insertNewEdge(left, right)
		drv.beach.Insert(
			beachline.NodeKey(left, right),
			beachline.NodeData{EdgeID: edgeID, CircleEventID: beachline.NoCircleEvent},
		)
	}
}

// processSiteEvents handles the next site event and, for a segment body, the whole
// run of bodies sharing its lower endpoint: they split the same arc, so one
// lower_bound locates the insertion position for all of them. A point-type event
// first sweeps away any temporary self-bisectors whose far endpoint it is.
func (drv *driver) processSiteEvents(queue *event.SiteEventQueue) error {
	first, _ := queue.Peek()

	if !first.IsSegment() {
		for {
			top, ok := drv.endPoints.Top()
			if !ok || top.Point != first.Point0() {
				break
			}
			drv.endPoints.Pop()
			node := top.Node.(*rbt.Node)
			if d := drv.beach.Data(node); d.CircleEventID != beachline.NoCircleEvent {
				drv.circles.Deactivate(d.CircleEventID)
			}
			drv.beach.Erase(node)
		}
	}

	batch := make([]event.SiteEvent, 0, 1)
	queue.Pop()
	batch = append(batch, first)
	if first.IsSegment() {
		for {
			next, ok := queue.Peek()
			if !ok || !next.IsSegment() || next.Point0() != first.Point0() {
				break
			}
			queue.Pop()
			batch = append(batch, next)
		}
	}

	rightNode, found := drv.beach.LowerBound(first)
	if !found {
		rightNode = nil
	}

	for _, siteEvent := range batch {
		drv.sweepTo(float64(siteEvent.Point0().X))
		dbg.Printf("site event %d (%s) at %v, sweep=%.4f",
			siteEvent.SiteIndex(), siteEvent.Category(), siteEvent.Point0(), drv.sweepX)

		var err error
		rightNode, err = drv.insertSite(siteEvent, rightNode)
		if err != nil {
			return err
		}
	}
	return nil
}

// insertSite splits the arc above siteEvent around the new site's own arc, wiring the
// half-edge pair the split creates and scheduling up to two circle events for the new
// arc triples. rightNode is the lower_bound position located for this site (nil when
// the site lies past the last arc); the returned node is the position the next site
// of the same batch continues from.
func (drv *driver) insertSite(siteEvent event.SiteEvent, rightNode *rbt.Node) (*rbt.Node, error) {
	switch {
	case rightNode == nil:
		// The new site lies below the last arc.
		last, ok := drv.beach.Last()
		if !ok {
			return nil, fmt.Errorf("%w: beach line unexpectedly empty", ErrValue)
		}
		lastKey := drv.beach.KeyOf(last)
		siteArc := lastKey.Right
		newNode := drv.insertNewArc(siteArc, siteArc, siteEvent)
		if err := drv.activateCircleEvent(lastKey.Left, lastKey.Right, siteEvent, newNode); err != nil {
			return nil, err
		}
		return newNode, nil

	case drv.isFirst(rightNode):
		// The new site lies above the first arc.
		siteArc := drv.beach.KeyOf(rightNode).Left
		newNode := drv.insertNewArc(siteArc, siteArc, siteEvent)
		if siteEvent.IsSegment() {
			siteEvent = siteEvent.Inversed()
		}
		rightKey := drv.beach.KeyOf(rightNode)
		if err := drv.activateCircleEvent(siteEvent, rightKey.Left, rightKey.Right, rightNode); err != nil {
			return nil, err
		}
		return newNode, nil

	default:
		rightKey := drv.beach.KeyOf(rightNode)
		siteArc2, site3 := rightKey.Left, rightKey.Right

		if d := drv.beach.Data(rightNode); d.CircleEventID != beachline.NoCircleEvent {
			drv.circles.Deactivate(d.CircleEventID)
			d.CircleEventID = beachline.NoCircleEvent
			drv.beach.SetData(rightNode, d)
		}

		leftNode, ok := drv.beach.LeftNeighbor(rightNode)
		if !ok {
			return nil, fmt.Errorf("%w: arc split lost its left neighbor", ErrValue)
		}
		leftKey := drv.beach.KeyOf(leftNode)
		site1, siteArc1 := leftKey.Left, leftKey.Right

		newNode := drv.insertNewArc(siteArc1, siteArc2, siteEvent)

		if err := drv.activateCircleEvent(site1, siteArc1, siteEvent, newNode); err != nil {
			return nil, err
		}
		if siteEvent.IsSegment() {
			siteEvent = siteEvent.Inversed()
		}
		if err := drv.activateCircleEvent(siteEvent, siteArc2, site3, rightNode); err != nil {
			return nil, err
		}
		return newNode, nil
	}
}

func (drv *driver) isFirst(n *rbt.Node) bool {
	first, ok := drv.beach.First()
	return ok && first == n
}

// insertNewArc inserts the two bisector nodes a new arc opens around the split arc
// (siteArc1 on its left, siteArc2 on its right - the same site unless a previous
// split already told them apart), creating the twin edge pair in the diagram. A
// segment body additionally parks a temporary self-bisector between its two own arcs
// and records its far endpoint in the pending-end-point queue (§4.4). Returns the new
// left node, the position subsequent same-batch insertions continue from.
func (drv *driver) insertNewArc(siteArc1, siteArc2, siteEvent event.SiteEvent) *rbt.Node {
	newLeftKey := beachline.NodeKey(siteArc1, siteEvent)
	rightSite := siteEvent
	if siteEvent.IsSegment() {
		rightSite = rightSite.Inversed()
	}
	newRightKey := beachline.NodeKey(rightSite, siteArc2)

	edgeID, twinID := drv.diagram.insertNewEdge(siteArc2, siteEvent)

	drv.beach.Insert(newRightKey, beachline.NodeData{EdgeID: twinID, CircleEventID: beachline.NoCircleEvent})

	if siteEvent.IsSegment() {
		tempKey := beachline.NodeKey(siteEvent, siteEvent.Inversed())
		tempNode := drv.beach.Insert(tempKey, beachline.NodeData{EdgeID: beachline.NoEdge, CircleEventID: beachline.NoCircleEvent})
		drv.endPoints.Push(siteEvent.Point1(), tempNode)
	}

	return drv.beach.Insert(newLeftKey, beachline.NodeData{EdgeID: edgeID, CircleEventID: beachline.NoCircleEvent})
}

// activateCircleEvent evaluates the circle-formation predicate for the triple
// (site1, site2, site3) and, on convergence, schedules the event against node, the
// beach-line node keyed (site2, site3) that owns it.
func (drv *driver) activateCircleEvent(site1, site2, site3 event.SiteEvent, node *rbt.Node) error {
	circ, ok, err := predicate.CircleFormation(site1, site2, site3, drv.circleOpts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRadiusLessThanZero, err)
	}
	if !ok {
		return nil
	}
	if circ.LowerX < drv.sweepX && !numeric.AlmostEqualUlps(circ.LowerX, drv.sweepX, 64) {
		if drv.degeneracy == options.DegeneracyPolicyError {
			return fmt.Errorf("%w: circle event regressed behind sweep line", ErrValue)
		}
		circ.LowerX = drv.sweepX
	}

	data := drv.beach.Data(node)
	if data.CircleEventID != beachline.NoCircleEvent {
		drv.circles.Deactivate(data.CircleEventID)
	}
	id := drv.circles.Push(circ)
	data.CircleEventID = id
	drv.beach.SetData(node, data)
	drv.circleOwner[id] = node
	dbg.Printf("circle event %d scheduled at (%.4f, %.4f), lower_x=%.4f", id, circ.X, circ.Y, circ.LowerX)
	return nil
}

// processCircleEvent implements the circle-event half of §4.6: with L=(A,B) and
// R=(B,C) the two nodes whose shared arc B has converged, it creates the Voronoi
// vertex, rewrites L in place to (A,C), erases R, and reconsiders the two triples
// the merge created on either side.
func (drv *driver) processCircleEvent() error {
	circ, id, ok := drv.circles.Pop()
	if !ok {
		return nil
	}
	R, ok := drv.circleOwner[id]
	if !ok {
		return fmt.Errorf("%w: circle event %d has no owning beach-line node", ErrID, id)
	}
	delete(drv.circleOwner, id)
	drv.sweepTo(circ.LowerX)
	dbg.Printf("circle event %d fires at (%.4f, %.4f), sweep=%.4f", id, circ.X, circ.Y, drv.sweepX)

	site3 := drv.beach.KeyOf(R).Right
	bisector2 := drv.beach.Data(R).EdgeID

	L, ok := drv.beach.LeftNeighbor(R)
	if !ok {
		return fmt.Errorf("%w: circle event node has no left neighbor", ErrValue)
	}
	site1 := drv.beach.KeyOf(L).Left
	bisector1 := drv.beach.Data(L).EdgeID

	// A segment arc surviving on the right flips orientation when the vanished arc
	// pinned it to the point site's position.
	if !site1.IsSegment() && site3.IsSegment() && site3.Point1() == site1.Point0() {
		site3 = site3.Inversed()
	}

	L = drv.beach.ReplaceKey(L, beachline.NodeKey(drv.beach.KeyOf(L).Left, site3))

	vertexID := drv.diagram.newVertex(circ.X, circ.Y)
	edgeID, _ := drv.diagram.insertNewEdgeWithVertex(site1, site3, vertexID, bisector1, bisector2)

	data := drv.beach.Data(L)
	data.EdgeID = edgeID
	drv.beach.SetData(L, data)

	drv.beach.Erase(R)

	// Reconsider the triple to the left of the merged node.
	if !drv.isFirst(L) {
		if d := drv.beach.Data(L); d.CircleEventID != beachline.NoCircleEvent {
			drv.circles.Deactivate(d.CircleEventID)
			d.CircleEventID = beachline.NoCircleEvent
			drv.beach.SetData(L, d)
		}
		LL, ok := drv.beach.LeftNeighbor(L)
		if !ok {
			return fmt.Errorf("%w: merged node lost its left neighbor", ErrValue)
		}
		siteL1 := drv.beach.KeyOf(LL).Left
		if err := drv.activateCircleEvent(siteL1, site1, site3, L); err != nil {
			return err
		}
	}

	// Reconsider the triple to the right.
	if RN, ok := drv.beach.RightNeighbor(L); ok {
		if d := drv.beach.Data(RN); d.CircleEventID != beachline.NoCircleEvent {
			drv.circles.Deactivate(d.CircleEventID)
			d.CircleEventID = beachline.NoCircleEvent
			drv.beach.SetData(RN, d)
		}
		siteR1 := drv.beach.KeyOf(RN).Right
		if err := drv.activateCircleEvent(site1, site3, siteR1, RN); err != nil {
			return err
		}
	}
	return nil
}
