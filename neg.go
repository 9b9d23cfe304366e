package strictint

import "golang.org/x/exp/constraints"

// Neg returns -a, panicking with [ErrNegOverflow] when the negation is not
// representable: any nonzero unsigned value, or the signed Min.
func Neg[T constraints.Integer](a T) T {
	n, over := OverflowingNeg(a)
	if over {
		panic(ErrNegOverflow)
	}
	return n
}

// CheckedNeg returns -a and true, or zero and false when the negation is
// not representable.
func CheckedNeg[T constraints.Integer](a T) (T, bool) {
	n, over := OverflowingNeg(a)
	if over {
		return 0, false
	}
	return n, true
}

// OverflowingNeg returns the two's-complement negation and whether it
// differs from the mathematical one.
func OverflowingNeg[T constraints.Integer](a T) (T, bool) {
	if isSigned[T]() {
		return -a, a == Min[T]()
	}
	return -a, a != 0
}

// SaturatingNeg returns -a clamped to [Min, Max]: zero for any nonzero
// unsigned value, Max for the signed Min.
func SaturatingNeg[T constraints.Integer](a T) T {
	n, over := OverflowingNeg(a)
	if !over {
		return n
	}
	if isSigned[T]() {
		return Max[T]()
	}
	return 0
}

// WrappingNeg returns the two's-complement negation.
func WrappingNeg[T constraints.Integer](a T) T {
	return -a
}

// Abs returns the absolute value of a, panicking with [ErrNegOverflow] for
// the signed Min, whose magnitude is not representable.
func Abs[T constraints.Integer](a T) T {
	v, ok := CheckedAbs(a)
	if !ok {
		panic(ErrNegOverflow)
	}
	return v
}

// CheckedAbs returns the absolute value of a and true, or zero and false
// for the signed Min.
func CheckedAbs[T constraints.Integer](a T) (T, bool) {
	if a >= 0 {
		return a, true
	}
	if a == Min[T]() {
		return 0, false
	}
	return -a, true
}
