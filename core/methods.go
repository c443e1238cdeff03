// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Tree mutation and lookup queries.
//
// Determinism:
//   - Children keep arrival order; Edges() is emitted in breadth-first order.
//
// Concurrency:
//   - None. A Tree is single-writer; mutations bump the version counter so
//     live iterators fail fast instead of observing a half-updated structure.
package core

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// AddChild attaches a new node childID under parentID through a branch of the
// given weight.
//
// Implementation:
//   - Stage 1: Resolve parentID through the index (ErrUnknownParent if absent).
//   - Stage 2: Reject childID if it is already present anywhere (ErrDuplicateID).
//   - Stage 3: Append the new record to the arena, append the branch to the
//     parent's children, register the id in the index and bump the version.
//
// Behavior highlights:
//   - Arrival order of children is preserved and later observed by traversal.
//   - Exactly one node's children sequence and the index are mutated.
//   - On error the tree is untouched.
//
// Errors:
//   - ErrUnknownParent: parentID is not in the tree.
//   - ErrDuplicateID: childID is already in the tree.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (t *Tree[K, W]) AddChild(parentID, childID K, weight W) error {
	p, ok := t.index[parentID]
	if !ok {
		return errors.Wrapf(ErrUnknownParent, "AddChild(%v, %v)", parentID, childID)
	}
	if _, dup := t.index[childID]; dup {
		return errors.Wrapf(ErrDuplicateID, "AddChild(%v, %v)", parentID, childID)
	}

	slot := len(t.arena)
	t.arena = append(t.arena, node[K, W]{id: childID, parent: p, weight: weight})
	t.arena[p].children = append(t.arena[p].children, branch[W]{weight: weight, dst: slot})
	t.index[childID] = slot
	t.version++

	t.logger.Debug("node attached",
		zap.Any("parent", parentID),
		zap.Any("child", childID),
		zap.Any("weight", weight),
		zap.Int("slot", slot),
	)

	return nil
}

// Root returns the root node.
func (t *Tree[K, W]) Root() Node[K, W] { return Node[K, W]{t: t, slot: 0} }

// RootID returns the id of the root node.
func (t *Tree[K, W]) RootID() K { return t.arena[0].id }

// Len returns the number of nodes, root included.
func (t *Tree[K, W]) Len() int { return len(t.arena) }

// Has reports whether id is present. O(1).
func (t *Tree[K, W]) Has(id K) bool {
	_, ok := t.index[id]
	return ok
}

// Node returns the handle for id, or false if id is absent.
func (t *Tree[K, W]) Node(id K) (Node[K, W], bool) {
	slot, ok := t.index[id]
	if !ok {
		return Node[K, W]{}, false
	}

	return Node[K, W]{t: t, slot: slot}, true
}

// ParentID returns the parent id of id. The boolean is false for the root.
// Returns ErrNodeNotFound if id is absent.
func (t *Tree[K, W]) ParentID(id K) (K, bool, error) {
	var zero K
	slot, ok := t.index[id]
	if !ok {
		return zero, false, errors.Wrapf(ErrNodeNotFound, "ParentID(%v)", id)
	}
	p := t.arena[slot].parent
	if p == noParent {
		return zero, false, nil
	}

	return t.arena[p].id, true, nil
}

// PathTo returns the ids on the path from the root to id, both inclusive.
//
// Complexity: O(depth(id)).
func (t *Tree[K, W]) PathTo(id K) ([]K, error) {
	slot, ok := t.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "PathTo(%v)", id)
	}

	path := []K{}
	for s := slot; s != noParent; s = t.arena[s].parent {
		path = append(path, t.arena[s].id)
	}
	// reverse to get root → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Edges returns every branch of the tree as an Edge, in breadth-first order
// of the source and stored order of children. Feeding the result to
// builder.FromEdgeList rebuilds a tree with the same shape and child order.
//
// Complexity: O(V).
func (t *Tree[K, W]) Edges() []Edge[K, W] {
	out := make([]Edge[K, W], 0, len(t.arena)-1)
	it := t.IterBFS()
	for it.Next() {
		src := it.Node()
		for _, b := range src.rec().children {
			out = append(out, Edge[K, W]{
				Source:      src.ID(),
				Destination: t.arena[b.dst].id,
				Weight:      b.weight,
			})
		}
	}

	return out
}
