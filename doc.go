// Package lvtree is a small in-memory weighted tree container: build a rooted
// hierarchy one child at a time or in bulk from an edge list, then walk it
// breadth-first or depth-first.
//
// 🚀 What is in the box?
//
//	• Core primitives: Tree, Node, Branch on a slot arena, AddChild, lookups
//	• Bulk construction: builder.FromEdgeList with typed validation errors
//	• Iteration: lazy BFS / DFS iterators with mutation detection
//	• Walks: hooked bfs and dfs with depth limits, filters and cancellation
//	• Exact numbers: scalar.Float, a comparable arbitrary-precision value
//
// Under the hood, everything is organized under five subpackages:
//
//	core/    — Tree, Node, Branch, Edge, iterators, rendering, path weights
//	builder/ — FromEdgeList: materialize, wire, detect root, assemble
//	bfs/     — breadth-first walk with enqueue/dequeue/visit hooks
//	dfs/     — depth-first walk with pre-order and post-order hooks
//	scalar/  — Float ids and weights with per-value precision
//
// Quick ASCII example:
//
//	    0
//	   / \
//	  1   2
//
// is built from the edge list [(0,1,w) (0,2,w)]; BFS yields 0 1 2.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
