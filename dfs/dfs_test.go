package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/dfs"
)

// sampleTree:
//
//	A ─┬─ B ─┬─ D
//	   │     └─ E
//	   └─ C ─── F ─── G
func sampleTree(t *testing.T) *core.Tree[string, int] {
	t.Helper()
	tr, err := builder.FromEdgeList([]core.Edge[string, int]{
		{Source: "A", Destination: "B", Weight: 1},
		{Source: "A", Destination: "C", Weight: 1},
		{Source: "B", Destination: "D", Weight: 1},
		{Source: "B", Destination: "E", Weight: 1},
		{Source: "C", Destination: "F", Weight: 1},
		{Source: "F", Destination: "G", Weight: 1},
	})
	require.NoError(t, err)

	return tr
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string, int](nil, "A")
	assert.ErrorIs(t, err, dfs.ErrTreeNil)

	_, err = dfs.DFS(sampleTree(t), "missing")
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

func TestDFS_PreAndPostOrder(t *testing.T) {
	res, err := dfs.DFS(sampleTree(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "E", "C", "F", "G"}, res.PreOrder)
	assert.Equal(t, []string{"D", "E", "B", "G", "F", "C", "A"}, res.PostOrder)
	assert.Equal(t, 3, res.Depth["G"])
	assert.Equal(t, "B", res.Parent["E"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent)
}

func TestDFS_MatchesIterator(t *testing.T) {
	tr := sampleTree(t)
	res, err := dfs.DFS(tr, tr.RootID())
	require.NoError(t, err)
	assert.Equal(t, tr.IDs(core.DFS), res.PreOrder)
}

func TestDFS_MaxDepth(t *testing.T) {
	tr := sampleTree(t)

	res, err := dfs.DFS(tr, "A", dfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.PreOrder, "0 visits only the start")

	res, err = dfs.DFS(tr, "A", dfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.PreOrder)
	assert.Equal(t, []string{"B", "C", "A"}, res.PostOrder)

	res, err = dfs.DFS(tr, "A", dfs.WithMaxDepth[string](-1))
	require.NoError(t, err)
	assert.Len(t, res.PreOrder, tr.Len(), "negative means no limit")
}

func TestDFS_FilterChild(t *testing.T) {
	res, err := dfs.DFS(sampleTree(t), "A",
		dfs.WithFilterChild(func(id string) bool { return id != "B" && id != "G" }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "F"}, res.PreOrder)
	assert.Equal(t, 2, res.SkippedChildren)
}

func TestDFS_Hooks(t *testing.T) {
	var events []string
	_, err := dfs.DFS(sampleTree(t), "C",
		dfs.WithOnVisit(func(id string) error { events = append(events, "+"+id); return nil }),
		dfs.WithOnExit(func(id string) error { events = append(events, "-"+id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"+C", "+F", "+G", "-G", "-F", "-C"}, events)
}

func TestDFS_HookErrorsAbort(t *testing.T) {
	stop := errors.New("stop")

	res, err := dfs.DFS(sampleTree(t), "A",
		dfs.WithOnVisit(func(id string) error {
			if id == "E" {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "OnVisit hook for E")
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.PreOrder, "partial result is returned")

	_, err = dfs.DFS(sampleTree(t), "A",
		dfs.WithOnExit(func(id string) error {
			if id == "B" {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "OnExit hook for B")
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(sampleTree(t), "A", dfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_NilContextIgnored(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test
	res, err := dfs.DFS(sampleTree(t), "A", dfs.WithContext[string](nil))
	require.NoError(t, err)
	assert.Len(t, res.PreOrder, 7)
}
