package strictint

import "golang.org/x/exp/constraints"

// The *AddSigned family adds a signed delta of matching width to an
// unsigned receiver; overflow is judged against the unsigned result
// domain. Passing a delta type of a different width than T is not
// meaningful and gives truncated deltas.

// AddSigned returns a + d, panicking with [ErrAddOverflow] when the true
// sum falls outside T's range in either direction.
func AddSigned[T constraints.Unsigned, S constraints.Signed](a T, d S) T {
	s, over := OverflowingAddSigned(a, d)
	if over {
		panic(ErrAddOverflow)
	}
	return s
}

// CheckedAddSigned returns a + d and true, or zero and false on overflow.
func CheckedAddSigned[T constraints.Unsigned, S constraints.Signed](a T, d S) (T, bool) {
	s, over := OverflowingAddSigned(a, d)
	if over {
		return 0, false
	}
	return s, true
}

// OverflowingAddSigned returns the modulo-2^N sum and whether the true sum
// fell outside T's range. A carry out of the unsigned addition cancels the
// borrow a negative delta represents, so overflow is the two disagreeing.
func OverflowingAddSigned[T constraints.Unsigned, S constraints.Signed](a T, d S) (T, bool) {
	s, carried := OverflowingAdd(a, T(d))
	return s, carried != (d < 0)
}

// SaturatingAddSigned returns a + d clamped to [0, Max].
func SaturatingAddSigned[T constraints.Unsigned, S constraints.Signed](a T, d S) T {
	s, over := OverflowingAddSigned(a, d)
	if !over {
		return s
	}
	if d < 0 {
		return 0
	}
	return Max[T]()
}

// WrappingAddSigned returns the modulo-2^N sum.
func WrappingAddSigned[T constraints.Unsigned, S constraints.Signed](a T, d S) T {
	return a + T(d)
}
