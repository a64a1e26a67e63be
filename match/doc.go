// Package match provides exact and approximate pattern matching over
// generic element sequences.
//
// 🚀 What is match?
//
//	Two classic primitives, generic over any comparable element type:
//	  • Bitap — bit-parallel exact substring-style matching
//	  • LevenshteinDistance — minimum number of unit edits between sequences
//
// ✨ Key features:
//   - alphabet-independent: elements only need ==, so []byte, []rune,
//     []int or any comparable struct slice all work
//   - leftmost semantics: Bitap reports the first occurrence only
//   - unit costs: insert, delete and substitute all cost exactly 1,
//     which makes the distance symmetric
//
// ⚙️ Usage:
//
//	import "github.com/victorhuberta/ult-algo/match"
//
//	idx, ok := match.Bitap([]rune("hello, world"), []rune("wor")) // 7, true
//	d := match.LevenshteinDistance([]rune("sitting"), []rune("kitten")) // 3
//
// Performance:
//
//   - Bitap:               O(n·m) boolean operations, O(m) memory
//   - LevenshteinDistance: O(n·m) time, O(n·m) memory (full DP matrix)
//
// Both functions are pure: inputs are never mutated and no state survives
// the call, so concurrent use on independent data is safe.
package match
