// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// api.go — public entry-point for bulk construction.
//
// Design contract:
//   - One entry-point: FromEdgeList(edges, opts...). Passes live in impl_edge_list.go.
//   - Atomic: a fully validated *core.Tree or an error, never a partial tree.
//   - Determinism: the same edge list yields the same tree, the same child
//     order and the same error.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvtree/core"
)

// FromEdgeList builds a tree from an unordered list of parent→child edges.
//
// Implementation:
//   - Stage 1 (materialize): one parent-less, child-less working node per
//     distinct id, in first-seen order.
//   - Stage 2 (wire): edges in input order; a destination that already has a
//     parent fails with ErrMultipleParents. Otherwise the branch is appended
//     to the source's children, so input order becomes child order.
//   - Stage 3 (root detection): exactly one parent-less node becomes the root;
//     none is ErrNoRootFound, several is ErrMultipleRootsFound.
//   - Stage 4 (assemble): breadth-first from the root through core.AddChild.
//     Nodes left unreached form a detached cycle: ErrCycleDetected.
//
// Errors:
//   - ErrMultipleParents, ErrNoRootFound, ErrMultipleRootsFound, ErrCycleDetected,
//     each prefixed with MethodFromEdgeList.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func FromEdgeList[K comparable, W any](edges []core.Edge[K, W], opts ...Option) (*core.Tree[K, W], error) {
	cfg := newBuilderConfig(opts...)

	nodes, order := materialize(edges)
	if err := wire(nodes, edges, cfg); err != nil {
		return nil, errors.Wrap(err, MethodFromEdgeList)
	}
	root, err := detectRoot(nodes, order, cfg)
	if err != nil {
		return nil, errors.Wrap(err, MethodFromEdgeList)
	}
	t, err := assemble(root, nodes, order, cfg)
	if err != nil {
		return nil, errors.Wrap(err, MethodFromEdgeList)
	}

	return t, nil
}

// MustFromEdgeList is like FromEdgeList but panics on error.
// Intended for fixtures and package-level literals built from trusted input.
func MustFromEdgeList[K comparable, W any](edges []core.Edge[K, W], opts ...Option) *core.Tree[K, W] {
	t, err := FromEdgeList(edges, opts...)
	if err != nil {
		panic(err)
	}

	return t
}
