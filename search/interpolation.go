package search

// Interpolation — proportional probing over numeric keys.
//
// Description:
//
//	Interpolation locates value in a sorted numeric sequence by guessing
//	where it should sit proportionally between the window bounds, rather
//	than always splitting in half. On uniformly distributed keys the
//	expected number of probes drops to O(log log n); on skewed data it
//	degenerates toward binary-search behavior.
//
// Algorithm Outline:
//  1. While the window [low, high] holds more than one distinct value and
//     value lies within [sequence[low], sequence[high]]:
//     mid = low + floor((value-sequence[low])·(high-low)/(sequence[high]-sequence[low]))
//     narrow on the comparison at mid.
//  2. On window collapse to a single distinct value, compare that
//     remaining value directly.
//
// The probe arithmetic runs through float64, which is the "conversion
// to/from an index-sized integer" the Numeric constraint exists for.
//
// Precondition: sequence sorted ascending.
//
// Complexity:
//
//	Time   = O(log log n) expected on uniform keys, O(n) worst case
//	Memory = O(1)
//
// Returns (index, true) on a match, (-1, false) otherwise.
func Interpolation[T Numeric](sequence []T, value T) (int, bool) {
	n := len(sequence)
	if n == 0 {
		return -1, false
	}

	low, high := 0, n-1
	for sequence[low] != sequence[high] {
		if value < sequence[low] || value > sequence[high] {
			return -1, false // sorted: value cannot live outside the window
		}

		span := float64(sequence[high] - sequence[low])
		mid := low + int(float64(value-sequence[low])*float64(high-low)/span)
		switch {
		case sequence[mid] < value:
			low = mid + 1
		case sequence[mid] > value:
			high = mid - 1
		default:
			// The probe may land mid-run on duplicates; report the
			// leftmost occurrence, as Binary does.
			for mid > 0 && sequence[mid-1] == value {
				mid--
			}
			return mid, true
		}

		if low > high {
			return -1, false
		}
	}

	// Window collapsed to a single distinct value.
	if sequence[low] == value {
		return low, true
	}
	return -1, false
}
