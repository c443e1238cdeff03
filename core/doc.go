// Package core provides a weighted, rooted tree container with O(1) id lookup
// and lazy breadth-first / depth-first traversal.
//
// Model
//
//   - Node: an identified vertex with a non-owning back-reference to its parent
//     and an ordered sequence of owned outgoing branches.
//   - Branch: a weighted edge owning its destination node.
//   - Tree: owns the root and keeps an id → node index.
//
// Nodes live in an arena addressed by stable slots. A branch holds the slot of
// its destination; the parent field holds a plain slot. The index never owns
// anything: it exists purely for membership and parent checks, and it is kept
// in step with the arena by every mutation.
//
// Invariants (hold after every successful operation):
//
//  1. Node ids are unique.
//  2. Exactly one node (the root) has no parent.
//  3. Every node is reachable from the root by exactly one path.
//  4. The index holds exactly the ids present in the tree.
//
// Type parameters
//
//	K — node id; any comparable type (ints, strings, scalar.Float, ...).
//	W — branch weight; any type. PathWeight additionally needs a Number.
//
// Core Methods:
//
//	New(rootID) / NewDefault()                    // O(1)
//	AddChild(parentID, childID K, weight W) error // O(1) amortized
//	Has(id) / Node(id) / ParentID(id)             // O(1)
//	PathTo(id)                                    // O(depth)
//	Edges() / String()                            // O(V)
//	Iter(mode) / IterBFS() / IterDFS() / All(mode) / IDs(mode)
//
// Traversal
//
//	BFS yields classic level order. DFS yields left-to-right pre-order: children
//	are pushed to the front of the work queue in reverse storage order, so the
//	first stored child is visited first.
//
// Concurrency
//
//	A Tree is single-writer and unsynchronized. Mutating a tree while an
//	Iterator is live is detected: the iterator stops and reports
//	ErrConcurrentMutation.
//
// Bulk construction from an unordered edge list lives in package builder.
package core
