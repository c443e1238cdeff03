// SPDX-License-Identifier: MIT
// Package core defines the central Tree, Node, Branch and Edge types and the
// primitives for building, querying and traversing a weighted rooted tree.
//
// This file declares the arena record, the public read views, TreeOption,
// sentinel errors, and the New/NewDefault constructors.
//
// Errors:
//
//	ErrUnknownParent      - AddChild referenced a parent id absent from the tree.
//	ErrDuplicateID        - AddChild attempted to introduce an id already present.
//	ErrNodeNotFound       - a query referenced an id absent from the tree.
//	ErrConcurrentMutation - the tree was mutated while an Iterator was live.
package core

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Sentinel errors for core tree operations.
var (
	// ErrUnknownParent indicates that a mutation referenced a parent id absent from the tree.
	ErrUnknownParent = errors.New("core: unknown parent")

	// ErrDuplicateID indicates an attempt to introduce an id already present in the tree.
	ErrDuplicateID = errors.New("core: duplicate node id")

	// ErrNodeNotFound indicates a query referenced a node id absent from the tree.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrConcurrentMutation indicates the tree changed underneath a live Iterator.
	ErrConcurrentMutation = errors.New("core: tree mutated during traversal")
)

// noParent marks the parent slot of the root.
const noParent = -1

// node is the arena record. A node owns the destinations of its branches;
// parent is a plain slot with no ownership implication.
type node[K comparable, W any] struct {
	id       K
	parent   int
	weight   W // weight of the branch from parent; zero value for the root
	children []branch[W]
}

// branch is an owning, weighted edge to the arena slot dst.
type branch[W any] struct {
	weight W
	dst    int
}

// Edge is a weighted parent→child triple.
//
// It is the input unit of bulk construction (builder.FromEdgeList) and the
// output unit of Tree.Edges.
type Edge[K comparable, W any] struct {
	// Source is the parent id.
	Source K

	// Destination is the child id.
	Destination K

	// Weight is the weight of the branch Source→Destination.
	Weight W
}

// TreeOption configures a Tree before creation.
type TreeOption func(c *treeConfig)

type treeConfig struct {
	logger *zap.Logger
}

// WithLogger attaches a logger used for debug entries on mutation.
// Panics on nil; the default is a no-op logger.
func WithLogger(l *zap.Logger) TreeOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *treeConfig) { c.logger = l }
}

// Tree is a weighted rooted tree stored in an arena.
//
// The arena owns every node; slot 0 is always the root. Children reference
// their destinations by slot, parents are plain back-slots, and index maps
// ids to slots for O(1) membership and parent checks. Slots are never reused.
//
// A Tree is not safe for concurrent mutation. version is bumped by every
// successful mutation so live iterators can detect interleaved writes.
type Tree[K comparable, W any] struct {
	arena   []node[K, W]
	index   map[K]int
	version uint64
	logger  *zap.Logger
}

// New creates a tree containing only the root rootID.
// Complexity: O(1)
func New[K comparable, W any](rootID K, opts ...TreeOption) *Tree[K, W] {
	cfg := treeConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree[K, W]{
		arena:  make([]node[K, W], 1, 16),
		index:  make(map[K]int, 16),
		logger: cfg.logger,
	}
	t.arena[0] = node[K, W]{id: rootID, parent: noParent}
	t.index[rootID] = 0

	return t
}

// NewDefault creates a tree whose root id is the zero value of K.
func NewDefault[K comparable, W any](opts ...TreeOption) *Tree[K, W] {
	var zero K
	return New[K, W](zero, opts...)
}
