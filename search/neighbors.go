package search

import "cmp"

// Predecessor returns the index of the greatest element strictly less
// than value, or (-1, false) when no element is smaller. Derived from
// Binary's rank: the predecessor is rank-1 whenever the rank is nonzero,
// whether or not value itself occurs.
//
// Precondition: sequence sorted ascending.
// Complexity: O(log n).
func Predecessor[T cmp.Ordered](sequence []T, value T) (int, bool) {
	res := Binary(sequence, value)
	if res.Rank == 0 {
		return -1, false
	}
	return res.Rank - 1, true
}

// Successor returns the index of the first element greater than value,
// or (-1, false) when no element is greater. On an exact match the
// successor is the slot right after it; otherwise the rank already names
// the first greater element (the insertion point).
//
// Precondition: sequence sorted ascending.
// Complexity: O(log n).
func Successor[T cmp.Ordered](sequence []T, value T) (int, bool) {
	res := Binary(sequence, value)
	succ := res.Rank
	if res.Found {
		succ = res.Index + 1
	}
	if succ >= len(sequence) {
		return -1, false
	}
	return succ, true
}

// NearestNeighbor returns the index of the element closest to value,
// excluding value's own slot when an exact match exists. Distances are
// compared by arithmetic subtraction; on a tie the predecessor wins.
//
// Edge cases:
//   - empty sequence: (-1, false)
//   - single element: index 0
//   - value below the minimum: index 0; value equal to the minimum:
//     index 1, skipping value's own slot
//   - value at or above the maximum: the last-but-one index
//
// Precondition: sequence sorted ascending.
// Complexity: O(log n).
func NearestNeighbor[T Numeric](sequence []T, value T) (int, bool) {
	n := len(sequence)
	if n == 0 {
		return -1, false
	}
	if n == 1 {
		return 0, true
	}
	if value <= sequence[0] {
		if value == sequence[0] {
			return 1, true // skip value's own slot at the minimum
		}
		return 0, true
	}
	if value >= sequence[n-1] {
		return n - 2, true
	}

	res := Binary(sequence, value)
	pred := res.Rank - 1
	succ := res.Rank
	if res.Found {
		succ = res.Index + 1
	}
	// Both neighbors are interior here: sequence[0] < value < sequence[n-1].
	if value-sequence[pred] <= sequence[succ]-value {
		return pred, true
	}
	return succ, true
}
