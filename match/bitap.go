package match

// Bitap — bit-parallel exact matching.
//
// Description:
//
//	Bitap locates the first (leftmost) occurrence of pattern inside
//	sequence and returns its start index. Unlike automaton-based matchers
//	it carries no dependency on an alphabet: elements only need equality,
//	so it works over arbitrary comparable types.
//
// Algorithm Outline:
//  1. Let m = len(pattern), n = len(sequence).
//     Keep a boolean vector r of length m+1; r[k] is true when the first
//     k pattern elements match a suffix of the input scanned so far.
//     r[0] is always true.
//  2. For each sequence position i, update r[m]..r[1] in descending order:
//     r[k] = r[k-1] && sequence[i] == pattern[k-1]
//     The descending order is mandatory: the update is a DP recurrence
//     over the previous scan step, and ascending order would read state
//     already overwritten by the current step.
//  3. If r[m] becomes true, a match ends at i; its start is i-m+1.
//
// Edge cases:
//   - empty pattern matches at index 0 always
//   - a pattern longer than the sequence never matches
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m)
//
// Returns (startIndex, true) on a match, (-1, false) otherwise.
func Bitap[T comparable](sequence, pattern []T) (int, bool) {
	m, n := len(pattern), len(sequence)
	if m == 0 {
		return 0, true // empty pattern matches everything
	}
	if m > n {
		return -1, false // longer pattern matches nothing
	}

	r := make([]bool, m+1)
	r[0] = true
	for i := 0; i < n; i++ {
		for k := m; k >= 1; k-- {
			r[k] = r[k-1] && sequence[i] == pattern[k-1]
		}
		if r[m] {
			return i - m + 1, true // found a match ending at i
		}
	}

	return -1, false
}
