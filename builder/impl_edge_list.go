// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_edge_list.go — the construction passes behind FromEdgeList.
//
// Working nodes are plain map entries; nothing is visible to the caller until
// assemble has produced a tree that satisfies every invariant.

package builder

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
)

// workNode is the materialized, not yet validated form of a node.
type workNode[K comparable, W any] struct {
	parent    K
	hasParent bool
	children  []core.Edge[K, W] // outgoing edges in wire order
}

// materialize creates exactly one working node per distinct id. order keeps
// first-seen order so later passes and error messages are deterministic.
func materialize[K comparable, W any](edges []core.Edge[K, W]) (map[K]*workNode[K, W], []K) {
	nodes := make(map[K]*workNode[K, W], len(edges)+1)
	order := make([]K, 0, len(edges)+1)
	touch := func(id K) {
		if _, ok := nodes[id]; !ok {
			nodes[id] = &workNode[K, W]{}
			order = append(order, id)
		}
	}
	for _, e := range edges {
		touch(e.Source)
		touch(e.Destination)
	}

	return nodes, order
}

// wire assigns parents and appends children in input order.
func wire[K comparable, W any](nodes map[K]*workNode[K, W], edges []core.Edge[K, W], cfg builderConfig) error {
	for i, e := range edges {
		cfg.logger.Debug("edge wired",
			zap.Int("index", i),
			zap.Any("source", e.Source),
			zap.Any("destination", e.Destination),
			zap.Any("weight", e.Weight),
		)

		dst := nodes[e.Destination]
		if dst.hasParent {
			return errors.Wrapf(ErrMultipleParents,
				"edge %d (%v -> %v): %v already has parent %v",
				i, e.Source, e.Destination, e.Destination, dst.parent)
		}
		dst.parent, dst.hasParent = e.Source, true

		src := nodes[e.Source]
		src.children = append(src.children, e)
	}

	return nil
}

// detectRoot returns the single parent-less node.
func detectRoot[K comparable, W any](nodes map[K]*workNode[K, W], order []K, cfg builderConfig) (K, error) {
	var roots []K
	for _, id := range order {
		if !nodes[id].hasParent {
			roots = append(roots, id)
		}
	}

	var zero K
	switch len(roots) {
	case 0:
		return zero, errors.Wrapf(ErrNoRootFound, "%d nodes, all with a parent", len(order))
	case 1:
		cfg.logger.Debug("root detected", zap.Any("root", roots[0]), zap.Int("nodes", len(order)))
		return roots[0], nil
	default:
		return zero, errors.Wrapf(ErrMultipleRootsFound, "%d parent-less nodes: %v",
			len(roots), truncate(roots))
	}
}

// assemble replays the wired structure breadth-first into a fresh core.Tree,
// preserving child order, and verifies that every node was reached.
func assemble[K comparable, W any](
	root K,
	nodes map[K]*workNode[K, W],
	order []K,
	cfg builderConfig,
) (*core.Tree[K, W], error) {
	t := core.New[K, W](root, cfg.treeOpts...)

	queue := []K{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, e := range nodes[id].children {
			if err := t.AddChild(e.Source, e.Destination, e.Weight); err != nil {
				return nil, err
			}
			queue = append(queue, e.Destination)
		}
	}

	if t.Len() != len(order) {
		var unreached []K
		for _, id := range order {
			if !t.Has(id) {
				unreached = append(unreached, id)
			}
		}
		return nil, errors.Wrapf(ErrCycleDetected, "%d nodes unreachable from root %v: %v",
			len(unreached), root, truncate(unreached))
	}

	return t, nil
}

// truncate caps ids at maxReportedIDs for error messages.
func truncate[K any](ids []K) []K {
	if len(ids) > maxReportedIDs {
		return ids[:maxReportedIDs]
	}

	return ids
}
