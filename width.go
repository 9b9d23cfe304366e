package strictint

import "golang.org/x/exp/constraints"

// Width returns the bit width of T (8, 16, 32, or 64; platform-dependent
// for int, uint, and uintptr).
func Width[T constraints.Integer]() uint {
	var w uint
	for v := T(1); v != 0; v <<= 1 {
		w++
	}
	return w
}

// Min returns the smallest value representable in T: zero for unsigned
// types, -2^(N-1) for signed.
func Min[T constraints.Integer]() T {
	if !isSigned[T]() {
		return 0
	}
	return ^T(0) << (Width[T]() - 1)
}

// Max returns the largest value representable in T: 2^N-1 for unsigned
// types, 2^(N-1)-1 for signed.
func Max[T constraints.Integer]() T {
	return ^Min[T]()
}

// isSigned reports whether T is a signed type. In unsigned types zero
// minus one wraps to the maximum, so the comparison settles it.
func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}
