package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
)

// ExampleFromEdgeList builds a tree from an unordered edge list and walks it.
func ExampleFromEdgeList() {
	// Edges may arrive in any order; a child's edge may precede its parent's.
	edges := []core.Edge[string, int]{
		{Source: "eu", Destination: "fra", Weight: 12},
		{Source: "root", Destination: "eu", Weight: 80},
		{Source: "root", Destination: "us", Weight: 95},
		{Source: "eu", Destination: "ams", Weight: 9},
		{Source: "us", Destination: "iad", Weight: 7},
	}

	t, err := builder.FromEdgeList(edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("root:", t.RootID())
	fmt.Println("bfs: ", t.IDs(core.BFS))
	fmt.Println("dfs: ", t.IDs(core.DFS))

	// Output:
	// root: root
	// bfs:  [root eu us fra ams iad]
	// dfs:  [root eu fra ams us iad]
}

// ExampleFromEdgeList_validation shows the recoverable validation errors.
func ExampleFromEdgeList_validation() {
	inputs := map[string][]core.Edge[int, int]{
		"a) two parents": {{Source: 0, Destination: 1}, {Source: 2, Destination: 1}},
		"b) cycle":       {{Source: 1, Destination: 2}, {Source: 2, Destination: 1}},
		"c) forest":      {{Source: 0, Destination: 1}, {Source: 2, Destination: 3}},
	}
	for _, name := range []string{"a) two parents", "b) cycle", "c) forest"} {
		_, err := builder.FromEdgeList(inputs[name])
		switch {
		case errors.Is(err, builder.ErrMultipleParents):
			fmt.Println(name, "→ multiple parents")
		case errors.Is(err, builder.ErrNoRootFound):
			fmt.Println(name, "→ no root")
		case errors.Is(err, builder.ErrMultipleRootsFound):
			fmt.Println(name, "→ multiple roots")
		}
	}

	// Output:
	// a) two parents → multiple parents
	// b) cycle → no root
	// c) forest → multiple roots
}
