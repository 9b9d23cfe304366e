package strictint

import "golang.org/x/exp/constraints"

// Shl returns a << k, panicking with [ErrShlOverflow] when k is at least
// the bit width of T.
func Shl[T constraints.Integer](a T, k uint) T {
	if k >= Width[T]() {
		panic(ErrShlOverflow)
	}
	return a << k
}

// CheckedShl returns a << k and true, or zero and false when k is at least
// the bit width of T.
func CheckedShl[T constraints.Integer](a T, k uint) (T, bool) {
	if k >= Width[T]() {
		return 0, false
	}
	return a << k, true
}

// OverflowingShl shifts by k masked to the bit width and reports whether
// the mask applied (k >= width).
func OverflowingShl[T constraints.Integer](a T, k uint) (T, bool) {
	w := Width[T]()
	return a << (k % w), k >= w
}

// WrappingShl shifts by k masked to the bit width.
func WrappingShl[T constraints.Integer](a T, k uint) T {
	return a << (k % Width[T]())
}

// Shr returns a >> k (logical for unsigned, arithmetic for signed),
// panicking with [ErrShrOverflow] when k is at least the bit width of T.
func Shr[T constraints.Integer](a T, k uint) T {
	if k >= Width[T]() {
		panic(ErrShrOverflow)
	}
	return a >> k
}

// CheckedShr returns a >> k and true, or zero and false when k is at least
// the bit width of T.
func CheckedShr[T constraints.Integer](a T, k uint) (T, bool) {
	if k >= Width[T]() {
		return 0, false
	}
	return a >> k, true
}

// OverflowingShr shifts by k masked to the bit width and reports whether
// the mask applied (k >= width).
func OverflowingShr[T constraints.Integer](a T, k uint) (T, bool) {
	w := Width[T]()
	return a >> (k % w), k >= w
}

// WrappingShr shifts by k masked to the bit width.
func WrappingShr[T constraints.Integer](a T, k uint) T {
	return a >> (k % Width[T]())
}
