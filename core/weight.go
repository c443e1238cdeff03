package core

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of built-in numeric weight types that support addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// PathWeight returns the sum of branch weights on the path from the root to
// id. The root has path weight 0. Overflow follows Go arithmetic on W.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity: O(depth(id)).
func PathWeight[K comparable, W Number](t *Tree[K, W], id K) (W, error) {
	slot, ok := t.index[id]
	if !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "PathWeight(%v)", id)
	}

	var sum W
	for s := slot; t.arena[s].parent != noParent; s = t.arena[s].parent {
		sum += t.arena[s].weight
	}

	return sum, nil
}
