package strictint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPowerOfTwo reports whether exactly one bit of v is set.
func IsPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= v, panicking with
// [ErrAddOverflow] when v exceeds the largest representable power of two.
func NextPowerOfTwo[T constraints.Unsigned](v T) T {
	p, ok := CheckedNextPowerOfTwo(v)
	if !ok {
		panic(ErrAddOverflow)
	}
	return p
}

// CheckedNextPowerOfTwo returns the smallest power of two >= v and true,
// or zero and false when that power does not fit in T.
func CheckedNextPowerOfTwo[T constraints.Unsigned](v T) (T, bool) {
	if v <= 1 {
		return 1, true
	}
	z := uint(bits.Len64(uint64(v - 1)))
	if z == Width[T]() {
		return 0, false
	}
	return T(1) << z, true
}

// WrappingNextPowerOfTwo returns the smallest power of two >= v, wrapping
// to zero when that power does not fit in T.
func WrappingNextPowerOfTwo[T constraints.Unsigned](v T) T {
	p, _ := CheckedNextPowerOfTwo(v)
	return p
}
