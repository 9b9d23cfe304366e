package strictint

import "golang.org/x/exp/constraints"

// Add returns a + b, panicking with [ErrAddOverflow] if the true sum does
// not fit in T.
func Add[T constraints.Integer](a, b T) T {
	s, over := OverflowingAdd(a, b)
	if over {
		panic(ErrAddOverflow)
	}
	return s
}

// CheckedAdd returns a + b and true, or zero and false on overflow.
func CheckedAdd[T constraints.Integer](a, b T) (T, bool) {
	s, over := OverflowingAdd(a, b)
	if over {
		return 0, false
	}
	return s, true
}

// OverflowingAdd returns the modulo-2^N sum and whether truncation occurred.
func OverflowingAdd[T constraints.Integer](a, b T) (T, bool) {
	s := a + b
	if isSigned[T]() {
		// Signed overflow flips the result sign away from both operands.
		return s, ((a^s)&(b^s)) < 0
	}
	return s, s < a
}

// SaturatingAdd returns a + b clamped to [Min, Max].
func SaturatingAdd[T constraints.Integer](a, b T) T {
	s, over := OverflowingAdd(a, b)
	if !over {
		return s
	}
	if a < 0 {
		return Min[T]()
	}
	return Max[T]()
}

// WrappingAdd returns the modulo-2^N sum.
func WrappingAdd[T constraints.Integer](a, b T) T {
	return a + b
}
