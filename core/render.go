package core

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the tree as an indented diagram, one line per node, with the
// incoming branch weight shown as metadata:
//
//	0
//	├── [1]  1
//	└── [1]  2
//
// Complexity: O(V).
func (t *Tree[K, W]) String() string {
	type frame struct {
		slot int
		out  treeprint.Tree
	}

	root := treeprint.NewWithRoot(fmt.Sprint(t.arena[0].id))
	stack := []frame{{slot: 0, out: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, b := range t.arena[f.slot].children {
			sub := f.out.AddMetaBranch(fmt.Sprint(b.weight), fmt.Sprint(t.arena[b.dst].id))
			stack = append(stack, frame{slot: b.dst, out: sub})
		}
	}

	return root.String()
}
