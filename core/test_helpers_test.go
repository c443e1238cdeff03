// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

// Common ids and weights used across core tests (avoid magic numbers in test bodies).
const (
	RootID    = 0
	ChildID   = 69
	MissingID = 99

	Weight1 = 1
	Weight2 = 2
	Weight5 = 5
)

// buildSample returns the tree
//
//	0
//	├── 1 (w=1)
//	│   ├── 3 (w=2)
//	│   └── 4 (w=5)
//	└── 2 (w=1)
//	    └── 5 (w=2)
func buildSample(t *testing.T) *core.Tree[int, int] {
	t.Helper()
	tr := core.New[int, int](RootID)
	for _, e := range []core.Edge[int, int]{
		{Source: 0, Destination: 1, Weight: Weight1},
		{Source: 0, Destination: 2, Weight: Weight1},
		{Source: 1, Destination: 3, Weight: Weight2},
		{Source: 1, Destination: 4, Weight: Weight5},
		{Source: 2, Destination: 5, Weight: Weight2},
	} {
		require.NoError(t, tr.AddChild(e.Source, e.Destination, e.Weight))
	}

	return tr
}

// buildChain returns 0→1→…→n-1 with unit weights.
func buildChain(n int) *core.Tree[int, int] {
	tr := core.New[int, int](0)
	for i := 1; i < n; i++ {
		_ = tr.AddChild(i-1, i, 1)
	}

	return tr
}

// collect drains it and returns the produced ids.
func collect[K comparable, W any](it *core.Iterator[K, W]) []K {
	var out []K
	for it.Next() {
		out = append(out, it.Node().ID())
	}

	return out
}
