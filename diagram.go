package voronoi

import (
	"github.com/go-geom/voronoi/event"
	"github.com/go-geom/voronoi/options"
	"github.com/go-geom/voronoi/point"
)

// CellSourceCategory tags which part of an input site a Cell was generated from,
// collapsing event.SourceCategory's InitialSegment/ReverseSegment distinction (an
// artifact of which orientation a segment body happened to be processed in) into a
// single SegmentBody category, since a cell has no notion of orientation.
type CellSourceCategory uint8

const (
	// CellSinglePoint marks a cell generated by a standalone point site.
	CellSinglePoint CellSourceCategory = iota
	// CellSegmentStart marks a cell generated by a segment's start endpoint.
	CellSegmentStart
	// CellSegmentEnd marks a cell generated by a segment's end endpoint.
	CellSegmentEnd
	// CellSegmentBody marks a cell generated by a segment's open body.
	CellSegmentBody
)

func categoryFromEvent(c event.SourceCategory) CellSourceCategory {
	switch c {
	case event.SinglePoint:
		return CellSinglePoint
	case event.SegmentStart:
		return CellSegmentStart
	case event.SegmentEnd:
		return CellSegmentEnd
	default:
		return CellSegmentBody
	}
}

// noEdge marks an incident-edge slot that has not been assigned yet.
const noEdge = -1

type cellRecord struct {
	SourceIndex   int
	Category      CellSourceCategory
	IncidentEdge  int
	Point         event.Point
	IsDegenerate  bool
}

type vertexRecord struct {
	X, Y         float64
	IncidentEdge int
	Color        uint32
}

type edgeRecord struct {
	Cell      int
	Twin      int
	Vertex0   int
	Next      int
	Prev      int
	Color     uint32
	IsPrimary bool
	IsCurved  bool
}

// Diagram is the half-edge structure of §5: three parallel arenas (cells, vertices,
// edges) referencing each other by index rather than pointer, so the whole structure is
// a handful of slices a caller can walk without lifetime concerns. It is grounded in the
// doubly-connected-edge-list shape §5 specifies directly; the teacher repo has no
// half-edge type of its own; its polytree.go builds a different index-based planar
// structure (parent/children indices into a node slice) that this mirrors the spirit of
// (int-indexed relationships, no pointer graph).
type Diagram struct {
	cells    []cellRecord
	vertices []vertexRecord
	edges    []edgeRecord

	cellIndex map[cellKey]int
}

type cellKey struct {
	siteIndex int
	category  CellSourceCategory
}

func newDiagram() *Diagram {
	return &Diagram{cellIndex: make(map[cellKey]int)}
}

// NumCells returns the number of cells in the diagram.
func (d *Diagram) NumCells() int { return len(d.cells) }

// NumVertices returns the number of vertices in the diagram.
func (d *Diagram) NumVertices() int { return len(d.vertices) }

// NumEdges returns the number of half-edges in the diagram (always even: edges are
// created and stored in twin pairs).
func (d *Diagram) NumEdges() int { return len(d.edges) }

// Cells returns every cell, in creation order.
func (d *Diagram) Cells() []Cell {
	out := make([]Cell, len(d.cells))
	for i := range d.cells {
		out[i] = Cell{d: d, id: i}
	}
	return out
}

// Vertices returns every vertex, in creation order.
func (d *Diagram) Vertices() []Vertex {
	out := make([]Vertex, len(d.vertices))
	for i := range d.vertices {
		out[i] = Vertex{d: d, id: i}
	}
	return out
}

// Edges returns every half-edge, in creation order (twins are adjacent: 2k and 2k+1).
func (d *Diagram) Edges() []Edge {
	out := make([]Edge, len(d.edges))
	for i := range d.edges {
		out[i] = Edge{d: d, id: i}
	}
	return out
}

// FindVertex returns the diagram vertex coinciding with p, or ok=false if none does.
// By default the match is exact; pass options.WithEpsilon to tolerate the rounding a
// caller's own computation of an expected position accumulates.
func (d *Diagram) FindVertex(p point.Point, opts ...options.GeometryOptionsFunc) (Vertex, bool) {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	for i := range d.vertices {
		v := Vertex{d: d, id: i}
		if p.Eq(v.Position(), o.Epsilon) {
			return v, true
		}
	}
	return Vertex{}, false
}

// CellEdgeIterator returns every half-edge bounding the given cell, in CCW order
// starting from its incident edge. It returns nil for a degenerate cell with no
// incident edge.
func (d *Diagram) CellEdgeIterator(c Cell) []Edge {
	if c.d != d || d.cells[c.id].IncidentEdge == noEdge {
		return nil
	}
	start := d.cells[c.id].IncidentEdge
	out := []Edge{{d: d, id: start}}
	for cur := d.edges[start].Next; cur != start && cur != noEdge; cur = d.edges[cur].Next {
		out = append(out, Edge{d: d, id: cur})
	}
	return out
}

func (d *Diagram) ensureCell(site event.SiteEvent) int {
	cat := categoryFromEvent(site.Category())
	key := cellKey{siteIndex: site.SiteIndex(), category: cat}
	if id, ok := d.cellIndex[key]; ok {
		return id
	}
	rec := cellRecord{SourceIndex: site.SiteIndex(), Category: cat, IncidentEdge: noEdge}
	if cat == CellSinglePoint {
		rec.Point = site.Point0()
	}
	id := len(d.cells)
	d.cells = append(d.cells, rec)
	d.cellIndex[key] = id
	return id
}

func (d *Diagram) newVertex(x, y float64) int {
	id := len(d.vertices)
	d.vertices = append(d.vertices, vertexRecord{X: x, Y: y, IncidentEdge: noEdge})
	return id
}

func isSecondaryEdge(a, b event.SiteEvent) bool {
	return a.SiteIndex() == b.SiteIndex() && (a.IsSegment() || b.IsSegment())
}

func exactlyOneSegment(a, b event.SiteEvent) bool {
	return a.IsSegment() != b.IsSegment()
}

// processSingleSite handles the degenerate one-site diagram of §4.5: a single cell, no
// vertices, no edges.
func (d *Diagram) processSingleSite(site event.SiteEvent) {
	d.ensureCell(site)
}

// insertNewEdge creates the twin half-edge pair generated when a new site splits an
// existing beach-line arc (§5): both edges are unbounded (Vertex0 == -1) at creation,
// finalized later by insertNewEdgeWithVertex if and when a circle event closes one end.
func (d *Diagram) insertNewEdge(site1, site2 event.SiteEvent) (edgeID, twinID int) {
	c1 := d.ensureCell(site1)
	c2 := d.ensureCell(site2)

	edgeID = len(d.edges)
	twinID = edgeID + 1
	curved := exactlyOneSegment(site1, site2)
	primary := !isSecondaryEdge(site1, site2)

	d.edges = append(d.edges,
		edgeRecord{Cell: c1, Twin: twinID, Vertex0: noEdge, Next: noEdge, Prev: noEdge, IsPrimary: primary, IsCurved: curved},
		edgeRecord{Cell: c2, Twin: edgeID, Vertex0: noEdge, Next: noEdge, Prev: noEdge, IsPrimary: primary, IsCurved: curved},
	)
	if d.cells[c1].IncidentEdge == noEdge {
		d.cells[c1].IncidentEdge = edgeID
	}
	if d.cells[c2].IncidentEdge == noEdge {
		d.cells[c2].IncidentEdge = twinID
	}
	return edgeID, twinID
}

// insertNewEdgeWithVertex implements the circle-event half of §5's construction: a new
// Voronoi vertex closes the two edges the converging arcs were tracing (prevEdge1,
// prevEdge2) and opens a new twin pair between the surviving arcs' cells, linking all
// four edges into the vertex's CCW edge star.
func (d *Diagram) insertNewEdgeWithVertex(site1, site3 event.SiteEvent, vertexID, prevEdge1, prevEdge2 int) (edgeID, twinID int) {
	c1 := d.ensureCell(site1)
	c3 := d.ensureCell(site3)

	edgeID = len(d.edges)
	twinID = edgeID + 1
	curved := exactlyOneSegment(site1, site3)
	primary := !isSecondaryEdge(site1, site3)

	d.edges = append(d.edges,
		edgeRecord{Cell: c1, Twin: twinID, Vertex0: vertexID, Next: noEdge, Prev: noEdge, IsPrimary: primary, IsCurved: curved},
		edgeRecord{Cell: c3, Twin: edgeID, Vertex0: noEdge, Next: noEdge, Prev: noEdge, IsPrimary: primary, IsCurved: curved},
	)

	twin1 := d.edges[prevEdge1].Twin
	twin2 := d.edges[prevEdge2].Twin
	d.edges[twin1].Vertex0 = vertexID
	d.edges[twin2].Vertex0 = vertexID

	d.link(twin1, twinID)
	d.link(edgeID, twin2)

	if d.vertices[vertexID].IncidentEdge == noEdge {
		d.vertices[vertexID].IncidentEdge = edgeID
	}
	if d.cells[c1].IncidentEdge == noEdge {
		d.cells[c1].IncidentEdge = edgeID
	}
	if d.cells[c3].IncidentEdge == noEdge {
		d.cells[c3].IncidentEdge = twinID
	}
	return edgeID, twinID
}

func (d *Diagram) link(a, b int) {
	d.edges[a].Next = b
	d.edges[b].Prev = a
}

// finalize marks degenerate cells: point cells at an identical coordinate share their
// incident edge with the first such cell seen, per §5's degenerate-cell invariant.
func (d *Diagram) finalize() {
	seen := make(map[event.Point]int)
	for i := range d.cells {
		if d.cells[i].Category != CellSinglePoint {
			continue
		}
		p := d.cells[i].Point
		if prev, ok := seen[p]; ok {
			d.cells[i].IsDegenerate = true
			d.cells[i].IncidentEdge = d.cells[prev].IncidentEdge
			continue
		}
		seen[p] = i
	}
}

// Cell is a view onto one Voronoi cell.
type Cell struct {
	d  *Diagram
	id int
}

// SourceIndex returns the index of the input site (point or segment) this cell was
// generated from. A segment's three sub-cells (start, end, body) share one source index.
func (c Cell) SourceIndex() int { return c.d.cells[c.id].SourceIndex }

// Category returns which part of the input site generated this cell.
func (c Cell) Category() CellSourceCategory { return c.d.cells[c.id].Category }

// IsDegenerate reports whether this cell coincides exactly with an earlier cell (two
// input points at the same coordinate).
func (c Cell) IsDegenerate() bool { return c.d.cells[c.id].IsDegenerate }

// IncidentEdge returns one half-edge bounding this cell, or ok=false if the cell has no
// bounding edge (the single-site diagram).
func (c Cell) IncidentEdge() (Edge, bool) {
	id := c.d.cells[c.id].IncidentEdge
	if id == noEdge {
		return Edge{}, false
	}
	return Edge{d: c.d, id: id}, true
}

// Edges returns every half-edge bounding this cell, in CCW order.
func (c Cell) Edges() []Edge {
	return c.d.CellEdgeIterator(c)
}

// Vertex is a view onto one Voronoi vertex.
type Vertex struct {
	d  *Diagram
	id int
}

// X returns the vertex's x-coordinate.
func (v Vertex) X() float64 { return v.d.vertices[v.id].X }

// Y returns the vertex's y-coordinate.
func (v Vertex) Y() float64 { return v.d.vertices[v.id].Y }

// Position returns the vertex's coordinates as a [point.Point], the float64 vector
// type callers post-process diagram output with (distances to sites, viewport
// transforms).
func (v Vertex) Position() point.Point {
	return point.New(v.d.vertices[v.id].X, v.d.vertices[v.id].Y)
}

// IncidentEdge returns one half-edge originating at this vertex, or ok=false if none is
// assigned.
func (v Vertex) IncidentEdge() (Edge, bool) {
	id := v.d.vertices[v.id].IncidentEdge
	if id == noEdge {
		return Edge{}, false
	}
	return Edge{d: v.d, id: id}, true
}

// Color returns the vertex's caller-assigned color flags, unused by construction itself
// but left available for callers annotating the diagram after the fact (clipping,
// rendering passes), per §5's color-flags field.
func (v Vertex) Color() uint32 { return v.d.vertices[v.id].Color }

// SetColor sets the vertex's color flags.
func (v Vertex) SetColor(c uint32) { v.d.vertices[v.id].Color = c }

// Edge is a view onto one directed half-edge.
type Edge struct {
	d  *Diagram
	id int
}

// ID returns the edge's index into the diagram's edge arena. Twins are always adjacent:
// an edge at an even index e has twin e+1 and vice versa.
func (e Edge) ID() int { return e.id }

// Cell returns the cell this half-edge bounds.
func (e Edge) Cell() Cell { return Cell{d: e.d, id: e.d.edges[e.id].Cell} }

// Twin returns this edge's opposite-direction half-edge.
func (e Edge) Twin() Edge { return Edge{d: e.d, id: e.d.edges[e.id].Twin} }

// Next returns the next half-edge bounding the same cell, in CCW order.
func (e Edge) Next() Edge { return Edge{d: e.d, id: e.d.edges[e.id].Next} }

// Prev returns the previous half-edge bounding the same cell.
func (e Edge) Prev() Edge { return Edge{d: e.d, id: e.d.edges[e.id].Prev} }

// RotNext returns the next half-edge rotating CCW around this edge's start vertex.
func (e Edge) RotNext() Edge { return e.Prev().Twin() }

// RotPrev returns the previous half-edge rotating CW around this edge's start vertex.
func (e Edge) RotPrev() Edge { return e.Twin().Next() }

// Vertex0 returns the half-edge's start vertex, or ok=false if that end is unbounded.
func (e Edge) Vertex0() (Vertex, bool) {
	id := e.d.edges[e.id].Vertex0
	if id == noEdge {
		return Vertex{}, false
	}
	return Vertex{d: e.d, id: id}, true
}

// Vertex1 returns the half-edge's end vertex (its twin's start vertex), or ok=false if
// that end is unbounded.
func (e Edge) Vertex1() (Vertex, bool) {
	return e.Twin().Vertex0()
}

// IsFinite reports whether both ends of this half-edge are bounded vertices.
func (e Edge) IsFinite() bool {
	_, v0 := e.Vertex0()
	_, v1 := e.Vertex1()
	return v0 && v1
}

// IsInfinite reports whether at least one end of this half-edge is unbounded.
func (e Edge) IsInfinite() bool { return !e.IsFinite() }

// IsPrimary reports whether this edge separates cells of two distinct input sites, as
// opposed to a secondary edge coincident with a segment input (§5's classification).
func (e Edge) IsPrimary() bool { return e.d.edges[e.id].IsPrimary }

// IsSecondary reports the converse of IsPrimary.
func (e Edge) IsSecondary() bool { return !e.IsPrimary() }

// IsLinear reports whether this edge is a straight line segment or ray, as opposed to a
// parabolic arc.
func (e Edge) IsLinear() bool { return !e.d.edges[e.id].IsCurved }

// IsCurved reports whether this edge traces a parabolic arc (a point site's bisector
// with a segment site).
func (e Edge) IsCurved() bool { return e.d.edges[e.id].IsCurved }

// Color returns the edge's caller-assigned color flags.
func (e Edge) Color() uint32 { return e.d.edges[e.id].Color }

// SetColor sets the edge's color flags.
func (e Edge) SetColor(c uint32) { e.d.edges[e.id].Color = c }
