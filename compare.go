package strictint

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Compare orders a and b by mathematical value across any two integer
// kinds, returning -1, 0, or +1. Mixed signedness needs no common wider
// type: a negative operand orders below any unsigned one, and remaining
// magnitudes fit uint64 exactly.
func Compare[A, B constraints.Integer](a A, b B) int {
	aNeg, bNeg := a < 0, b < 0
	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	case aNeg && bNeg:
		// Both signed and negative; sign extension to int64 is exact.
		return cmp.Compare(int64(a), int64(b))
	default:
		return cmp.Compare(uint64(a), uint64(b))
	}
}

// Equal reports whether a and b have the same mathematical value.
func Equal[A, B constraints.Integer](a A, b B) bool {
	return Compare(a, b) == 0
}
