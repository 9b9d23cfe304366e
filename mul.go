package strictint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Mul returns a * b, panicking with [ErrMulOverflow] if the true product
// does not fit in T.
func Mul[T constraints.Integer](a, b T) T {
	p, over := OverflowingMul(a, b)
	if over {
		panic(ErrMulOverflow)
	}
	return p
}

// CheckedMul returns a * b and true, or zero and false on overflow.
func CheckedMul[T constraints.Integer](a, b T) (T, bool) {
	p, over := OverflowingMul(a, b)
	if over {
		return 0, false
	}
	return p, true
}

// OverflowingMul returns the modulo-2^N product and whether truncation
// occurred. Products are formed in a 64-bit or 128-bit domain via
// bits.Mul64 so the check is exact at every width.
func OverflowingMul[T constraints.Integer](a, b T) (T, bool) {
	wrapped := a * b
	if !isSigned[T]() {
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		return wrapped, hi != 0 || uint64(wrapped) != lo
	}
	if Width[T]() < 64 {
		wide := int64(a) * int64(b)
		return wrapped, int64(wrapped) != wide
	}
	// 64-bit signed: multiply magnitudes and compare against the signed
	// range. lo == 2^63 is in range only for a negative product.
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = -ua
	}
	if b < 0 {
		ub = -ub
	}
	hi, lo := bits.Mul64(ua, ub)
	if neg {
		return wrapped, hi != 0 || lo > 1<<63
	}
	return wrapped, hi != 0 || lo >= 1<<63
}

// SaturatingMul returns a * b clamped to [Min, Max].
func SaturatingMul[T constraints.Integer](a, b T) T {
	p, over := OverflowingMul(a, b)
	if !over {
		return p
	}
	if (a < 0) != (b < 0) {
		return Min[T]()
	}
	return Max[T]()
}

// WrappingMul returns the modulo-2^N product.
func WrappingMul[T constraints.Integer](a, b T) T {
	return a * b
}
