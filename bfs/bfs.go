// Package bfs provides a hooked breadth-first walk over a core.Tree,
// returning visit order, depths below the start node and parent links.
//
// Unlike core.Iterator, which is a bare pull sequence, BFS runs to completion
// and supports hooks, a depth limit, branch filtering and cancellation. The
// walk may start at any node; only the subtree below it is explored.
package bfs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvtree/core"
)

// queueItem pairs a node with its depth below the start.
type queueItem[K comparable, W any] struct {
	node  core.Node[K, W]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable, W any] struct {
	opts  Options[K]
	ctx   context.Context
	queue []queueItem[K, W]
	res   *Result[K]
}

// BFS walks t breadth-first from startID, applying any number of functional
// Options. Children are visited in stored order.
// Returns ErrTreeNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// On a hook or context error the partial Result is returned with the error.
func BFS[K comparable, W any](t *core.Tree[K, W], startID K, opts ...Option[K]) (*Result[K], error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := t.Node(startID)
	if !ok {
		return nil, errors.Wrapf(ErrStartNotFound, "%v", startID)
	}

	n := t.Len()
	w := &walker[K, W]{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[K, W], 0, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue records depth and parent, calls OnEnqueue and appends to the queue.
// A tree has no cross edges, so every node is enqueued at most once.
func (w *walker[K, W]) enqueue(n core.Node[K, W], d int, parent *K) {
	id := n.ID()
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K, W]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K, W]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[K, W]) dequeue() queueItem[K, W] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node.ID(), item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[K, W]) visit(item queueItem[K, W]) error {
	id := item.node.ID()
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit at %v", id)
	}

	return nil
}

// enqueueChildren applies filtering and MaxDepth, then enqueues each child.
func (w *walker[K, W]) enqueueChildren(item queueItem[K, W]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	id := item.node.ID()
	for _, b := range item.node.Children() {
		if !w.opts.FilterChild(id, b.To.ID()) {
			continue
		}
		w.enqueue(b.To, next, &id)
	}
}
