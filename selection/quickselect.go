package selection

import (
	"cmp"
	"fmt"
	"math/rand"
)

// QuickSmallest — randomized quickselect.
//
// Description:
//
//	QuickSmallest returns a pointer to the k-th smallest element
//	(0-indexed) of list, partially reordering list in place. Elements
//	smaller than the k-th end up before it and greater-or-equal ones
//	after it, but neither side is sorted.
//
// Algorithm Outline:
//  1. Pick a uniformly random pivot index and partition the slice with a
//     single left-to-right Lomuto scan; the pivot lands at its final
//     sorted rank p.
//  2. k == p: done. k < p: continue in the left part. k > p: continue in
//     the right part with k reduced by the p+1 elements excluded.
//  3. A single-element slice is its own answer.
//
// The randomness source is explicit: pass a seeded *rand.Rand for
// reproducible pivot choices, or nil for a fixed deterministic default.
//
// Panics:
//   - k out of range for list (k < 0 or k >= len(list)).
//
// Complexity:
//
//	Time   = O(n) expected, O(n²) worst case (randomized, not
//	         input-dependent — acceptable by construction)
//	Memory = O(1)
func QuickSmallest[T cmp.Ordered](list []T, k int, rng *rand.Rand) *T {
	if k < 0 || k >= len(list) {
		panic(fmt.Sprintf("selection: k=%d should be smaller than the list length %d", k, len(list)))
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for len(list) != 1 {
		p := partition(list, r.Intn(len(list)))
		switch {
		case k == p:
			return &list[k]
		case k < p:
			list = list[:p]
		default:
			list = list[p+1:]
			k -= p + 1
		}
	}

	return &list[0]
}

// partition reorders list around the value at pivotIdx using a Lomuto
// scan: smaller elements end up on the left, greater-or-equal on the
// right, and the pivot at its final sorted rank, which is returned.
func partition[T cmp.Ordered](list []T, pivotIdx int) int {
	last := len(list) - 1
	list[pivotIdx], list[last] = list[last], list[pivotIdx] // park pivot at the end

	store := 0
	for i := 0; i < last; i++ {
		if list[i] < list[last] {
			list[i], list[store] = list[store], list[i]
			store++
		}
	}
	list[store], list[last] = list[last], list[store] // pivot to its sorted rank

	return store
}
