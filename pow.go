package strictint

import "golang.org/x/exp/constraints"

// Pow raises base to the power exp by squaring. Every intermediate
// multiplication is checked, so the panic point is the first squaring or
// accumulation whose product does not fit in T; the panic value is
// [ErrMulOverflow].
func Pow[T constraints.Integer](base T, exp uint32) T {
	if exp == 0 {
		return 1
	}
	acc := T(1)
	for {
		if exp&1 == 1 {
			acc = Mul(acc, base)
		}
		exp >>= 1
		if exp == 0 {
			return acc
		}
		base = Mul(base, base)
	}
}

// CheckedPow returns base**exp and true, or zero and false as soon as any
// intermediate multiplication overflows.
func CheckedPow[T constraints.Integer](base T, exp uint32) (T, bool) {
	if exp == 0 {
		return 1, true
	}
	acc := T(1)
	for {
		if exp&1 == 1 {
			var ok bool
			if acc, ok = CheckedMul(acc, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp == 0 {
			return acc, true
		}
		var ok bool
		if base, ok = CheckedMul(base, base); !ok {
			return 0, false
		}
	}
}

// OverflowingPow returns the wrapped power and whether any intermediate
// multiplication overflowed.
func OverflowingPow[T constraints.Integer](base T, exp uint32) (T, bool) {
	if exp == 0 {
		return 1, false
	}
	acc := T(1)
	overflowed := false
	for {
		if exp&1 == 1 {
			var over bool
			acc, over = OverflowingMul(acc, base)
			overflowed = overflowed || over
		}
		exp >>= 1
		if exp == 0 {
			return acc, overflowed
		}
		var over bool
		base, over = OverflowingMul(base, base)
		overflowed = overflowed || over
	}
}

// WrappingPow returns the modulo-2^N power.
func WrappingPow[T constraints.Integer](base T, exp uint32) T {
	p, _ := OverflowingPow(base, exp)
	return p
}
