package strictint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Log2 returns floor(log2(v)), panicking with [ErrLogZero] when v is zero.
// Computed from the bit length, so the result is exact at every power of
// two boundary.
func Log2[T constraints.Unsigned](v T) uint {
	r, ok := CheckedLog2(v)
	if !ok {
		panic(ErrLogZero)
	}
	return r
}

// CheckedLog2 returns floor(log2(v)) and true, or zero and false when v is
// zero.
func CheckedLog2[T constraints.Unsigned](v T) (uint, bool) {
	if v == 0 {
		return 0, false
	}
	return uint(bits.Len64(uint64(v))) - 1, true
}

// Log10 returns floor(log10(v)), panicking with [ErrLogZero] when v is
// zero. Computed by repeated division; no floating point is involved.
func Log10[T constraints.Unsigned](v T) uint {
	r, ok := CheckedLog10(v)
	if !ok {
		panic(ErrLogZero)
	}
	return r
}

// CheckedLog10 returns floor(log10(v)) and true, or zero and false when v
// is zero.
func CheckedLog10[T constraints.Unsigned](v T) (uint, bool) {
	return CheckedLog(v, T(10))
}

// Log returns floor(log_base(v)), panicking with [ErrLogBase] when base is
// below 2 and [ErrLogZero] when v is zero.
func Log[T constraints.Unsigned](v, base T) uint {
	if base < 2 {
		panic(ErrLogBase)
	}
	if v == 0 {
		panic(ErrLogZero)
	}
	r, _ := CheckedLog(v, base)
	return r
}

// CheckedLog returns floor(log_base(v)) and true, or zero and false when v
// is zero or base is below 2.
func CheckedLog[T constraints.Unsigned](v, base T) (uint, bool) {
	if v == 0 || base < 2 {
		return 0, false
	}
	var r uint
	for v >= base {
		v /= base
		r++
	}
	return r, true
}
