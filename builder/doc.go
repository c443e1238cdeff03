// Package builder constructs a validated core.Tree from an unordered edge list
// in one call.
//
// The input is a slice of core.Edge{Source, Destination, Weight}. Construction
// runs in passes (materialize, wire, root detection, assemble) and is atomic:
// either every tree invariant holds on the returned tree, or an error is
// returned and no tree is exposed.
//
// Errors (branch with errors.Is):
//
//   - ErrMultipleParents    — a destination id has two incoming edges.
//   - ErrNoRootFound        — no parent-less node (empty input, pure cycles).
//   - ErrMultipleRootsFound — several parent-less nodes (a forest).
//   - ErrCycleDetected      — a cycle detached from the single root.
//
// Options:
//
//   - WithLogger(*zap.Logger)     debug entry per wired edge and for the root.
//   - WithTreeOptions(opts...)    forwarded to core.New.
//
// Usage:
//
//	t, err := builder.FromEdgeList([]core.Edge[int, int]{
//		{Source: 0, Destination: 1, Weight: 1},
//		{Source: 0, Destination: 2, Weight: 1},
//	})
//	if err != nil {
//		// handle one of the sentinels above
//	}
//	fmt.Println(t.IDs(core.BFS)) // [0 1 2]
//
// Child order in the resulting tree equals the order in which edges sharing a
// source appear in the input, so Tree.Edges() round-trips through FromEdgeList.
package builder
