package search

import "math"

// minPrecision is the termination floor for Ternary. Below it the
// convergence test can underflow and loop forever.
const minPrecision = 1e-14

// Ternary — extremum of a unimodal function.
//
// Description:
//
//	Ternary approximates the location of the single minimum or maximum of
//	f over [left, right]. The two bounds are roles, not an ordering
//	requirement: left > right and intervals spanning negative values work
//	the same way.
//
// Algorithm Outline:
//  1. Evaluate f at the points one third and two thirds into the interval.
//  2. Discard the third of the interval that cannot contain the extremum;
//     the comparison direction flips between Minimum and Maximum.
//  3. Stop once the interval width drops below absolutePrecision and
//     return the interval midpoint.
//
// Preconditions:
//   - f unimodal over the interval (single extremum of the requested
//     kind, monotonic on each side).
//
// Panics:
//   - absolutePrecision < 1e-14. The floor guarantees termination; this
//     is a caller precondition violation, not a runtime condition.
//
// Complexity:
//
//	Time   = O(log((right-left)/precision)) evaluations of f
//	Memory = O(1)
func Ternary(kind Target, f func(float64) float64, left, right, absolutePrecision float64) float64 {
	if absolutePrecision < minPrecision {
		panic("search: absolute precision is too small")
	}

	for math.Abs(right-left) >= absolutePrecision {
		// Move each bound one third inward; both converge on the extremum.
		leftThird := left + (right-left)/3
		rightThird := right - (right-left)/3

		var moveLeft bool
		if kind == Maximum {
			moveLeft = f(leftThird) < f(rightThird)
		} else {
			moveLeft = f(leftThird) > f(rightThird)
		}
		if moveLeft {
			left = leftThird
		} else {
			right = rightThird
		}
	}

	return (left + right) / 2
}
