package strictint

import "golang.org/x/exp/constraints"

// divOverflows reports the single overflowing division: Min / -1 on a
// signed type. Go's native division traps on it, so every variant guards
// before dividing.
func divOverflows[T constraints.Integer](a, b T) bool {
	return isSigned[T]() && b == ^T(0) && a == Min[T]()
}

// Div returns a / b (truncating), panicking with [ErrDivByZero] on a zero
// divisor and [ErrDivOverflow] on Min / -1.
func Div[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(ErrDivByZero)
	}
	if divOverflows(a, b) {
		panic(ErrDivOverflow)
	}
	return a / b
}

// CheckedDiv returns a / b and true, or zero and false on a zero divisor
// or overflow.
func CheckedDiv[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return a / b, true
}

// OverflowingDiv returns the wrapped quotient and whether overflow
// occurred. Division has no defined wrapped result for a zero divisor, so
// that still panics with [ErrDivByZero].
func OverflowingDiv[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(ErrDivByZero)
	}
	if divOverflows(a, b) {
		return a, true
	}
	return a / b, false
}

// SaturatingDiv returns a / b clamped to [Min, Max]. A zero divisor panics
// with [ErrDivByZero].
func SaturatingDiv[T constraints.Integer](a, b T) T {
	q, over := OverflowingDiv(a, b)
	if over {
		return Max[T]()
	}
	return q
}

// WrappingDiv returns the modulo-2^N quotient. A zero divisor panics with
// [ErrDivByZero].
func WrappingDiv[T constraints.Integer](a, b T) T {
	q, _ := OverflowingDiv(a, b)
	return q
}

// Rem returns a % b (truncating), panicking with [ErrRemByZero] on a zero
// divisor and [ErrRemOverflow] on Min % -1.
func Rem[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(ErrRemByZero)
	}
	if divOverflows(a, b) {
		panic(ErrRemOverflow)
	}
	return a % b
}

// CheckedRem returns a % b and true, or zero and false on a zero divisor
// or overflow.
func CheckedRem[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return a % b, true
}

// OverflowingRem returns the wrapped remainder and whether overflow
// occurred. A zero divisor panics with [ErrRemByZero].
func OverflowingRem[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(ErrRemByZero)
	}
	if divOverflows(a, b) {
		return 0, true
	}
	return a % b, false
}

// WrappingRem returns the modulo-2^N remainder. A zero divisor panics with
// [ErrRemByZero].
func WrappingRem[T constraints.Integer](a, b T) T {
	r, _ := OverflowingRem(a, b)
	return r
}

// DivEuclid returns the Euclidean quotient, chosen so the remainder is
// non-negative. Identical to Div for unsigned types. Panics with
// [ErrDivByZero] on a zero divisor and [ErrDivOverflow] on Min / -1.
func DivEuclid[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(ErrDivByZero)
	}
	if divOverflows(a, b) {
		panic(ErrDivOverflow)
	}
	return divEuclid(a, b)
}

// CheckedDivEuclid returns the Euclidean quotient and true, or zero and
// false on a zero divisor or overflow.
func CheckedDivEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return divEuclid(a, b), true
}

// OverflowingDivEuclid returns the wrapped Euclidean quotient and whether
// overflow occurred. A zero divisor panics with [ErrDivByZero].
func OverflowingDivEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(ErrDivByZero)
	}
	if divOverflows(a, b) {
		return a, true
	}
	return divEuclid(a, b), false
}

// WrappingDivEuclid returns the modulo-2^N Euclidean quotient. A zero
// divisor panics with [ErrDivByZero].
func WrappingDivEuclid[T constraints.Integer](a, b T) T {
	q, _ := OverflowingDivEuclid(a, b)
	return q
}

// RemEuclid returns the Euclidean remainder, always in [0, |b|). Identical
// to Rem for unsigned types. Panics with [ErrRemByZero] on a zero divisor
// and [ErrRemOverflow] on Min % -1.
func RemEuclid[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(ErrRemByZero)
	}
	if divOverflows(a, b) {
		panic(ErrRemOverflow)
	}
	return remEuclid(a, b)
}

// CheckedRemEuclid returns the Euclidean remainder and true, or zero and
// false on a zero divisor or overflow.
func CheckedRemEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return remEuclid(a, b), true
}

// OverflowingRemEuclid returns the wrapped Euclidean remainder and whether
// overflow occurred. A zero divisor panics with [ErrRemByZero].
func OverflowingRemEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(ErrRemByZero)
	}
	if divOverflows(a, b) {
		return 0, true
	}
	return remEuclid(a, b), false
}

// WrappingRemEuclid returns the modulo-2^N Euclidean remainder. A zero
// divisor panics with [ErrRemByZero].
func WrappingRemEuclid[T constraints.Integer](a, b T) T {
	r, _ := OverflowingRemEuclid(a, b)
	return r
}

func divEuclid[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

func remEuclid[T constraints.Integer](a, b T) T {
	r := a % b
	if r < 0 {
		if b < 0 {
			r -= b
		} else {
			r += b
		}
	}
	return r
}

// DivCeil returns ceil(a / b) for unsigned operands, panicking with
// [ErrDivByZero] on a zero divisor. Never overflows.
func DivCeil[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		panic(ErrDivByZero)
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// NextMultipleOf returns the smallest multiple of m that is >= a, panicking
// with [ErrRemByZero] when m is zero and [ErrAddOverflow] when rounding up
// exceeds Max.
func NextMultipleOf[T constraints.Unsigned](a, m T) T {
	if m == 0 {
		panic(ErrRemByZero)
	}
	r := a % m
	if r == 0 {
		return a
	}
	return Add(a, m-r)
}

// CheckedNextMultipleOf returns the smallest multiple of m that is >= a
// and true, or zero and false when m is zero or rounding up would
// overflow.
func CheckedNextMultipleOf[T constraints.Unsigned](a, m T) (T, bool) {
	if m == 0 {
		return 0, false
	}
	r := a % m
	if r == 0 {
		return a, true
	}
	return CheckedAdd(a, m-r)
}
