package search

import "cmp"

// Exponential — doubling probe followed by bisection.
//
// Description:
//
//	Exponential locates value in a sorted sequence by probing positions
//	1, 2, 4, 8, … until the probed element is >= value or the bound runs
//	past the sequence, then runs Binary on the sub-range the bound pins
//	down. Useful when the extent of the sequence is not cheaply known in
//	advance or the target is expected near the front.
//
// Algorithm Outline:
//  1. Empty sequence: not found.
//  2. Double bound from 1 while bound < len and sequence[bound] < value.
//  3. Bisect [bound/2, min(bound+1, len)) and translate the sub-range
//     index back to an absolute index.
//
// Precondition: sequence sorted ascending.
//
// Complexity:
//
//	Time   = O(log i) where i is the match position
//	Memory = O(1)
//
// Returns (index, true) on a match, (-1, false) otherwise.
func Exponential[T cmp.Ordered](sequence []T, value T) (int, bool) {
	n := len(sequence)
	if n == 0 {
		return -1, false
	}

	bound := 1
	for bound < n && sequence[bound] < value {
		bound *= 2
	}
	if bound > n {
		bound = n
	}

	low := bound / 2
	high := bound + 1
	if high > n {
		high = n
	}

	res := Binary(sequence[low:high], value)
	if !res.Found {
		return -1, false
	}
	return low + res.Index, true
}
