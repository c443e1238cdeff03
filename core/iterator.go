// File: iterator.go
// Role: Lazy breadth-first / depth-first traversal.
//
// The work queue is a double-ended list of arena slots seeded with the root.
// Each pull pops the front; BFS pushes children to the back, DFS pushes them to
// the front in reverse storage order so siblings come out left to right
// (true pre-order).
package core

import (
	"iter"

	list "github.com/bahlo/generic-list-go"
	"github.com/cockroachdb/errors"
)

// Mode selects the visitation order of an Iterator.
type Mode int

const (
	// BFS visits nodes level by level, siblings in stored child order.
	BFS Mode = iota
	// DFS visits nodes in pre-order, siblings in stored child order.
	DFS
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return "unknown"
	}
}

// Iterator is a forward-only, non-restartable traversal over a Tree.
//
// Usage:
//
//	it := t.IterBFS()
//	for it.Next() {
//		n := it.Node()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
//
// An Iterator may be abandoned at any point; it holds no resources beyond
// slots into the tree. Mutating the tree while an Iterator is live makes the
// next call to Next return false with Err() == ErrConcurrentMutation.
type Iterator[K comparable, W any] struct {
	t       *Tree[K, W]
	mode    Mode
	queue   *list.List[int]
	version uint64
	cur     int
	err     error
}

// Iter returns a new traversal of t in the given mode.
func (t *Tree[K, W]) Iter(mode Mode) *Iterator[K, W] {
	it := &Iterator[K, W]{
		t:       t,
		mode:    mode,
		queue:   list.New[int](),
		version: t.version,
		cur:     noParent,
	}
	if mode != BFS && mode != DFS {
		it.err = errors.Newf("core: unknown traversal mode %d", int(mode))
		return it
	}
	it.queue.PushBack(0)

	return it
}

// IterBFS is shorthand for Iter(BFS).
func (t *Tree[K, W]) IterBFS() *Iterator[K, W] { return t.Iter(BFS) }

// IterDFS is shorthand for Iter(DFS).
func (t *Tree[K, W]) IterDFS() *Iterator[K, W] { return t.Iter(DFS) }

// Next advances to the next node. It returns false when the traversal is
// exhausted or failed; check Err to tell the two apart.
func (it *Iterator[K, W]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.version != it.t.version {
		it.err = errors.Wrapf(ErrConcurrentMutation, "%s traversal", it.mode)
		it.queue.Init()
		it.cur = noParent
		return false
	}

	front := it.queue.Front()
	if front == nil {
		it.cur = noParent
		return false
	}
	slot := it.queue.Remove(front)

	children := it.t.arena[slot].children
	switch it.mode {
	case BFS:
		for _, b := range children {
			it.queue.PushBack(b.dst)
		}
	case DFS:
		for i := len(children) - 1; i >= 0; i-- {
			it.queue.PushFront(children[i].dst)
		}
	}
	it.cur = slot

	return true
}

// Node returns the node produced by the last successful Next.
// The zero Node is returned before the first Next or after exhaustion.
func (it *Iterator[K, W]) Node() Node[K, W] {
	if it.cur == noParent {
		return Node[K, W]{}
	}

	return Node[K, W]{t: it.t, slot: it.cur}
}

// Err returns the error that stopped the traversal, if any.
func (it *Iterator[K, W]) Err() error { return it.err }

// All returns a range-over-func sequence over t in the given mode.
// The sequence stops early on a concurrent mutation; use Iter when the
// error needs to be observed.
func (t *Tree[K, W]) All(mode Mode) iter.Seq[Node[K, W]] {
	return func(yield func(Node[K, W]) bool) {
		it := t.Iter(mode)
		for it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// IDs collects the ids of a full traversal in the given mode.
func (t *Tree[K, W]) IDs(mode Mode) []K {
	out := make([]K, 0, len(t.arena))
	for n := range t.All(mode) {
		out = append(out, n.ID())
	}

	return out
}
