package search

import "cmp"

// Binary — bisection over a sorted sequence.
//
// Description:
//
//	Binary locates value in a sequence sorted ascending and reports both
//	the match position and the value's rank. The rank is the number of
//	elements strictly less than value, which doubles as the insertion
//	point; it is meaningful whether or not an exact match exists.
//
// Algorithm Outline:
//  1. Maintain [left, right]; midpoint = floor((left+right)/2).
//  2. Narrow on <, > or = against value; on equality keep probing left so
//     the reported match is the leftmost occurrence.
//  3. Terminate when left > right; left is then the rank.
//
// Preconditions:
//   - sequence sorted ascending by the element order; behavior on
//     unsorted input is undefined.
//
// Complexity:
//
//	Time   = O(log n)
//	Memory = O(1)
func Binary[T cmp.Ordered](sequence []T, value T) Result {
	left, right := 0, len(sequence)-1
	index := -1
	for left <= right {
		mid := (left + right) / 2
		switch {
		case sequence[mid] < value:
			left = mid + 1
		case sequence[mid] > value:
			right = mid - 1
		default:
			index = mid
			right = mid - 1 // keep probing for the leftmost occurrence
		}
	}

	return makeResult(index, left)
}

// Rank returns the number of elements of sequence strictly less than
// value — the position at which value could be inserted while keeping the
// sequence sorted. Sugar over Binary.
func Rank[T cmp.Ordered](sequence []T, value T) int {
	return Binary(sequence, value).Rank
}

// Index returns the position of value in sequence and whether it occurs
// at all. Sugar over Binary.
func Index[T cmp.Ordered](sequence []T, value T) (int, bool) {
	res := Binary(sequence, value)
	return res.Index, res.Found
}
