// File: node.go
// Role: Read-only views over arena records.
//
// A Node is a (tree, slot) pair. It never extends the lifetime of anything and
// is cheap to copy; iterators and walks hand these out instead of pointers into
// the arena, which may be reallocated by AddChild.
package core

// Node is a non-owning handle to one vertex of a Tree.
// The zero Node is invalid; use Valid to check.
type Node[K comparable, W any] struct {
	t    *Tree[K, W]
	slot int
}

// Branch is the read view of an owning edge: the weight of the edge and
// its destination node.
type Branch[K comparable, W any] struct {
	Weight W
	To     Node[K, W]
}

// Valid reports whether n refers to a node of some tree.
func (n Node[K, W]) Valid() bool { return n.t != nil }

// ID returns the node id.
func (n Node[K, W]) ID() K { return n.rec().id }

// IsRoot reports whether n is the root of its tree.
func (n Node[K, W]) IsRoot() bool { return n.rec().parent == noParent }

// Weight returns the weight of the branch from the parent to n.
// The second result is false for the root, which has no incoming branch.
func (n Node[K, W]) Weight() (W, bool) {
	r := n.rec()
	if r.parent == noParent {
		var zero W
		return zero, false
	}

	return r.weight, true
}

// Parent returns the parent of n, or false for the root.
func (n Node[K, W]) Parent() (Node[K, W], bool) {
	p := n.rec().parent
	if p == noParent {
		return Node[K, W]{}, false
	}

	return Node[K, W]{t: n.t, slot: p}, true
}

// Children returns the outgoing branches of n in insertion order.
// The returned slice is freshly allocated; mutating it does not affect the tree.
//
// Complexity: O(deg(n)).
func (n Node[K, W]) Children() []Branch[K, W] {
	r := n.rec()
	out := make([]Branch[K, W], len(r.children))
	for i, b := range r.children {
		out[i] = Branch[K, W]{Weight: b.weight, To: Node[K, W]{t: n.t, slot: b.dst}}
	}

	return out
}

// NumChildren returns the out-degree of n.
func (n Node[K, W]) NumChildren() int { return len(n.rec().children) }

// IsLeaf reports whether n has no children.
func (n Node[K, W]) IsLeaf() bool { return len(n.rec().children) == 0 }

// Depth returns the number of branches between the root and n.
// Complexity: O(depth).
func (n Node[K, W]) Depth() int {
	d := 0
	for p := n.rec().parent; p != noParent; p = n.t.arena[p].parent {
		d++
	}

	return d
}

// Equal reports whether n and other carry the same id. Nodes are identified
// by id alone, so handles from two trees built from the same edges compare
// equal node for node.
func (n Node[K, W]) Equal(other Node[K, W]) bool {
	if !n.Valid() || !other.Valid() {
		return n.Valid() == other.Valid()
	}

	return n.ID() == other.ID()
}

func (n Node[K, W]) rec() *node[K, W] { return &n.t.arena[n.slot] }
