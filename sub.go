package strictint

import "golang.org/x/exp/constraints"

// Sub returns a - b, panicking with [ErrSubOverflow] if the true
// difference does not fit in T.
func Sub[T constraints.Integer](a, b T) T {
	d, over := OverflowingSub(a, b)
	if over {
		panic(ErrSubOverflow)
	}
	return d
}

// CheckedSub returns a - b and true, or zero and false on overflow.
func CheckedSub[T constraints.Integer](a, b T) (T, bool) {
	d, over := OverflowingSub(a, b)
	if over {
		return 0, false
	}
	return d, true
}

// OverflowingSub returns the modulo-2^N difference and whether truncation
// occurred.
func OverflowingSub[T constraints.Integer](a, b T) (T, bool) {
	d := a - b
	if isSigned[T]() {
		// Overflow iff the operands differ in sign and the result took
		// the sign of b.
		return d, ((a^b)&(a^d)) < 0
	}
	return d, b > a
}

// SaturatingSub returns a - b clamped to [Min, Max].
func SaturatingSub[T constraints.Integer](a, b T) T {
	d, over := OverflowingSub(a, b)
	if !over {
		return d
	}
	if b < 0 {
		return Max[T]()
	}
	return Min[T]()
}

// WrappingSub returns the modulo-2^N difference.
func WrappingSub[T constraints.Integer](a, b T) T {
	return a - b
}

// AbsDiff returns the absolute difference |a - b| for unsigned operands.
// Total: never overflows and never panics.
func AbsDiff[T constraints.Unsigned](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
