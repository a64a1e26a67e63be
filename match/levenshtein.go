package match

// LevenshteinDistance — minimum edit distance.
//
// Description:
//
//	LevenshteinDistance returns the minimum number of single-element
//	edits (insertions, deletions or substitutions) required to turn
//	source into target. Every operation costs exactly 1, which is what
//	makes the distance symmetric: d(a,b) == d(b,a).
//
// Algorithm Outline (full matrix):
//  1. Allocate a (|source|+1)×(|target|+1) table d.
//  2. Base row/column: d[i][0] = i, d[0][j] = j — the cost of building a
//     prefix from the empty sequence by pure insertion/deletion.
//  3. Recurrence:
//     d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
//     where cost is 0 when source[i-1] == target[j-1], else 1.
//
// Complexity:
//
//	Time   = O(|source|·|target|)
//	Memory = O(|source|·|target|)
//
// There are no early-exit shortcuts; the full table is always computed.
func LevenshteinDistance[T comparable](source, target []T) int {
	n, m := len(source), len(target)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
	}
	for i := 0; i <= n; i++ {
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			d[i][j] = min3(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}

	return d[n][m]
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
