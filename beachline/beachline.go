package beachline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/go-geom/voronoi/event"
	"github.com/go-geom/voronoi/predicate"
)

// BeachLine is the position-dependent ordered map of §4.4. Like the teacher's
// statusStructure (linesegment/sweepline_statusstructure_rbt.go), it wraps a gods
// redblacktree whose comparator is not a static key order: predicate.NodeLess reads
// each key's effective sweep position out of its newest site, so a comparison's
// meaning depends on when the keys were inserted. That is sound here for the §9
// reason - every new key arrives at a sweep position at or past every existing
// key's, and no two already-inserted keys ever change relative order.
type BeachLine struct {
	tree *rbt.Tree
}

// New returns an empty beach line.
func New() *BeachLine {
	bl := &BeachLine{}
	bl.tree = rbt.NewWith(bl.compare)
	return bl
}

func (bl *BeachLine) compare(a, b any) int {
	ka, kb := a.(Key), b.(Key)
	if predicate.NodeLess(ka.Left, ka.Right, kb.Left, kb.Right) {
		return -1
	}
	if predicate.NodeLess(kb.Left, kb.Right, ka.Left, ka.Right) {
		return 1
	}
	return 0
}

// Insert adds a new beach-line node and returns its id (a tree node pointer, stable
// until that specific node is erased or its key replaced).
func (bl *BeachLine) Insert(key Key, data NodeData) *rbt.Node {
	bl.tree.Put(key, data)
	return bl.tree.GetNode(key)
}

// Erase removes a beach-line node.
func (bl *BeachLine) Erase(n *rbt.Node) {
	if n == nil {
		return
	}
	bl.tree.Remove(n.Key)
}

// LowerBound returns the first beach-line node whose key is not strictly less than a
// probe key built from the arriving site - i.e. the node whose left arc lies directly
// above that site, per §4.4.
func (bl *BeachLine) LowerBound(site event.SiteEvent) (*rbt.Node, bool) {
	n, found := bl.tree.Ceiling(NodeKey(site, site))
	return n, found
}

// LeftNeighbor returns the node immediately before n in beach-line order, if any.
func (bl *BeachLine) LeftNeighbor(n *rbt.Node) (*rbt.Node, bool) {
	if n == nil {
		return nil, false
	}
	iter := bl.tree.IteratorAt(n)
	if !iter.Prev() {
		return nil, false
	}
	return bl.tree.GetNode(iter.Key()), true
}

// RightNeighbor returns the node immediately after n in beach-line order, if any.
func (bl *BeachLine) RightNeighbor(n *rbt.Node) (*rbt.Node, bool) {
	if n == nil {
		return nil, false
	}
	iter := bl.tree.IteratorAt(n)
	if !iter.Next() {
		return nil, false
	}
	return bl.tree.GetNode(iter.Key()), true
}

// First returns the leftmost beach-line node.
func (bl *BeachLine) First() (*rbt.Node, bool) {
	n := bl.tree.Left()
	return n, n != nil
}

// Last returns the rightmost beach-line node.
func (bl *BeachLine) Last() (*rbt.Node, bool) {
	n := bl.tree.Right()
	return n, n != nil
}

// Len returns the number of beach-line nodes.
func (bl *BeachLine) Len() int {
	return bl.tree.Size()
}

// Data returns the NodeData stored at n.
func (bl *BeachLine) Data(n *rbt.Node) NodeData {
	return n.Value.(NodeData)
}

// SetData overwrites the NodeData stored at n in place - used when a neighboring arc
// changes and this node's scheduled circle event must be updated or cleared, without
// disturbing the node's position in the tree.
func (bl *BeachLine) SetData(n *rbt.Node, data NodeData) {
	n.Value = data
}

// KeyOf returns the Key stored at n.
func (bl *BeachLine) KeyOf(n *rbt.Node) Key {
	return n.Key.(Key)
}

// ReplaceKey implements the "A->C" in-place replacement of §4.4: during circle-event
// processing, node L=(A,B) becomes (A,C) while keeping its data (edge linkage) and,
// critically, its exact position in the tree. The beach-line comparison is only
// defined when one of the compared keys is new, so rather than removing and
// reinserting under the new key - which would force comparisons against keys the
// predicate has no sound answer for, since the triggering event here is a circle
// vertex, not an arriving site - this mutates the node's Key field directly, the same
// way SetData mutates its Value field in place.
func (bl *BeachLine) ReplaceKey(n *rbt.Node, newKey Key) *rbt.Node {
	n.Key = newKey
	return n
}

// Ascend visits every beach-line node left to right, calling fn with its key and data.
// Iteration stops early if fn returns false.
func (bl *BeachLine) Ascend(fn func(Key, NodeData) bool) {
	it := bl.tree.Iterator()
	for it.Next() {
		if !fn(it.Key().(Key), it.Value().(NodeData)) {
			return
		}
	}
}
