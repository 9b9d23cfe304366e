package strictint

import "golang.org/x/exp/constraints"

// Cast converts v to D, panicking with [ErrCastOutOfRange] when the value
// is not representable in D. The destination type is given explicitly:
//
//	n := strictint.Cast[uint16](v)
func Cast[D, S constraints.Integer](v S) D {
	d, ok := CheckedCast[D](v)
	if !ok {
		panic(ErrCastOutOfRange)
	}
	return d
}

// CheckedCast converts v to D and reports whether the value survived
// unchanged. Lossless exactly when converting back recovers v with the
// same sign, which covers every width and signedness pairing.
func CheckedCast[D, S constraints.Integer](v S) (D, bool) {
	d := D(v)
	if S(d) != v || (d < 0) != (v < 0) {
		return 0, false
	}
	return d, true
}

// SaturatingCast converts v to D, clamping to D's Min or Max when the
// value is out of range.
func SaturatingCast[D, S constraints.Integer](v S) D {
	if d, ok := CheckedCast[D](v); ok {
		return d
	}
	if v < 0 {
		return Min[D]()
	}
	return Max[D]()
}

// WrappingCast converts v to D by bit truncation or sign reinterpretation,
// exactly as the built-in conversion does.
func WrappingCast[D, S constraints.Integer](v S) D {
	return D(v)
}
