// Package dfs implements a hooked depth-first walk over a core.Tree.
//
// Key features:
//   - DFS(t, startID, opts...): walk the subtree rooted at startID
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterChild, SkippedChildren diagnostic count
//   - Cancellation via context.Context
//
// Children are explored in stored order, so Result.PreOrder from the root
// equals core.Tree.IDs(core.DFS).
//
// Complexity:
//
//   - Time:   O(V) for the walk, plus the cost of hooks and filters.
//   - Memory: O(V) for result maps and O(depth) recursion.
//
// Errors:
//
//   - ErrTreeNil          if t is nil.
//   - ErrStartNotFound    if startID is missing.
//   - context.Canceled    if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvtree/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[K comparable, W any] struct {
	opts Options[K]
	res  *Result[K]
}

// DFS performs a depth-first walk of t starting at startID.
// On a hook or context error the partial Result is returned with the error.
func DFS[K comparable, W any](t *core.Tree[K, W], startID K, opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input tree
	if t == nil {
		return nil, ErrTreeNil
	}

	// 2. Apply options
	dopts := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Resolve the start node
	start, ok := t.Node(startID)
	if !ok {
		return nil, errors.Wrapf(ErrStartNotFound, "%v", startID)
	}

	// 4. Initialize result with capacity hint
	n := t.Len()
	res := &Result[K]{
		PreOrder:  make([]K, 0, n),
		PostOrder: make([]K, 0, n),
		Depth:     make(map[K]int, n),
		Parent:    make(map[K]K, n),
	}

	w := &dfsWalker[K, W]{opts: dopts, res: res}

	return res, w.traverse(start, 0)
}

// traverse visits n at the given depth and recurses into its children.
func (w *dfsWalker[K, W]) traverse(n core.Node[K, W], depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Record discovery
	id := n.ID()
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit hook for %v", id)
		}
	}

	// 5. Explore children in stored order
	for _, b := range n.Children() {
		cid := b.To.ID()
		if w.opts.FilterChild != nil && !w.opts.FilterChild(cid) {
			w.res.SkippedChildren++
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[cid] = id
		if err := w.traverse(b.To, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return errors.Wrapf(err, "dfs: OnExit hook for %v", id)
		}
	}

	// 7. Record finish order
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
