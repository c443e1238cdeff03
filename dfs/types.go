// Package dfs defines types and options for depth-first walks over a
// core.Tree, including cancellation, pre-/post-order hooks, depth limiting,
// child filtering and basic diagnostics.
package dfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

var (
	// ErrTreeNil is returned when a nil *core.Tree is passed to DFS.
	ErrTreeNil = errors.New("dfs: tree is nil")

	// ErrStartNotFound indicates that the start id does not exist in the tree.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS.
type Option[K comparable] func(*Options[K])

// Options holds configurable parameters for a DFS walk.
// Complexity remains O(V) when filters and hooks are O(1).
type Options[K comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(id K) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order). Returning an error aborts the walk.
	OnExit func(id K) error

	// MaxDepth, if non-negative, limits the walk to the given depth below the
	// start. A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterChild, if non-nil, is called for each child id before descending.
	// Return false to skip that child and its subtree.
	FilterChild func(id K) bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no hooks
//   - no depth limit (MaxDepth = -1)
//   - no filtering
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnExit = fn }
}

// WithMaxDepth limits the walk depth to limit. Negative means no limit.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *Options[K]) { o.MaxDepth = limit }
}

// WithFilterChild skips children for which fn returns false; each skip is
// counted in Result.SkippedChildren.
func WithFilterChild[K comparable](fn func(id K) bool) Option[K] {
	return func(o *Options[K]) { o.FilterChild = fn }
}

// Result captures the outcome of a depth-first walk.
type Result[K comparable] struct {
	// PreOrder records nodes in discovery order.
	PreOrder []K

	// PostOrder records nodes in the order they finished.
	PostOrder []K

	// Depth maps each visited id to its distance (#branches) from the start.
	Depth map[K]int

	// Parent maps each visited id to the id it was discovered from.
	// The start node does not appear.
	Parent map[K]K

	// SkippedChildren counts children skipped by FilterChild.
	SkippedChildren int
}
