// Package bfs provides tunable options and error definitions
// for breadth-first walks over a core.Tree.
package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start id is absent from the tree.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("bfs: tree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a node the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth below the start.
	OnEnqueue func(id K, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id K, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the depth limit.
	MaxDepth int

	// FilterChild can skip a branch (and the subtree below it) by returning false.
	FilterChild func(parent, child K) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering
//   - no-op hooks
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:         context.Background(),
		OnEnqueue:   func(K, int) {},
		OnDequeue:   func(K, int) {},
		OnVisit:     func(K, int) error { return nil },
		MaxDepth:    0,
		FilterChild: func(_, _ K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterChild skips the branch parent→child when fn returns false.
func WithFilterChild[K comparable](fn func(parent, child K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}

// Result holds the outcome of a BFS walk:
//   - Order: nodes visited, in visit sequence.
//   - Depth: node id → distance (in branches) from the start.
//   - Parent: node id → predecessor in the walk (absent for the start).
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "to %v", dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
