package strictint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// CountOnes returns the number of set bits in v.
func CountOnes[T constraints.Unsigned](v T) uint {
	return uint(bits.OnesCount64(uint64(v)))
}

// CountZeros returns the number of clear bits in v.
func CountZeros[T constraints.Unsigned](v T) uint {
	return Width[T]() - CountOnes(v)
}

// LeadingZeros returns the number of clear bits above the highest set bit.
// Returns the full width for zero.
func LeadingZeros[T constraints.Unsigned](v T) uint {
	return uint(bits.LeadingZeros64(uint64(v))) - (64 - Width[T]())
}

// TrailingZeros returns the number of clear bits below the lowest set bit.
// Returns the full width for zero.
func TrailingZeros[T constraints.Unsigned](v T) uint {
	if v == 0 {
		return Width[T]()
	}
	return uint(bits.TrailingZeros64(uint64(v)))
}

// LeadingOnes returns the number of set bits above the highest clear bit.
func LeadingOnes[T constraints.Unsigned](v T) uint {
	return LeadingZeros(^v)
}

// TrailingOnes returns the number of set bits below the lowest clear bit.
func TrailingOnes[T constraints.Unsigned](v T) uint {
	return TrailingZeros(^v)
}

// ReverseBits returns v with its bit order reversed.
func ReverseBits[T constraints.Unsigned](v T) T {
	return T(bits.Reverse64(uint64(v)) >> (64 - Width[T]()))
}

// SwapBytes returns v with its byte order reversed.
func SwapBytes[T constraints.Unsigned](v T) T {
	return T(bits.ReverseBytes64(uint64(v)) >> (64 - Width[T]()))
}

// RotateLeft rotates v left by k bits. The amount is taken modulo the bit
// width, so rotation is total, unlike shifting.
func RotateLeft[T constraints.Unsigned](v T, k uint) T {
	w := Width[T]()
	k %= w
	if k == 0 {
		return v
	}
	return v<<k | v>>(w-k)
}

// RotateRight rotates v right by k bits. The amount is taken modulo the
// bit width.
func RotateRight[T constraints.Unsigned](v T, k uint) T {
	w := Width[T]()
	k %= w
	if k == 0 {
		return v
	}
	return v>>k | v<<(w-k)
}
