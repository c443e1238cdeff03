package core_test

import (
	"testing"

	"github.com/katalvlaran/lvtree/core"
)

// BenchmarkAddChild measures attaching nodes to a wide tree.
func BenchmarkAddChild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr := core.New[int, int](0)
		for j := 1; j <= 1000; j++ {
			_ = tr.AddChild((j-1)/4, j, j)
		}
	}
}

// BenchmarkIter compares BFS and DFS pulls over the same 4-ary tree.
func BenchmarkIter(b *testing.B) {
	tr := core.New[int, int](0)
	for j := 1; j <= 10000; j++ {
		_ = tr.AddChild((j-1)/4, j, 1)
	}

	for _, mode := range []core.Mode{core.BFS, core.DFS} {
		b.Run(mode.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				it := tr.Iter(mode)
				for it.Next() {
				}
			}
		})
	}
}
