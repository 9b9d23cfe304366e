package strictint

import "golang.org/x/exp/constraints"

// NoOverflowAssert is the caller's acknowledgment token for the Unchecked*
// family. It carries no data; its only purpose is to make the call site
// state that the caller has already proven the operation cannot overflow:
//
//	sum := strictint.UncheckedAdd(strictint.NoOverflowAssert{}, a, b)
//
// When the assertion is violated the Unchecked* functions return the
// wrapped value. They never panic; the result is simply unspecified with
// respect to the mathematical operation.
type NoOverflowAssert struct{}

// UncheckedAdd returns a + b without overflow checking.
func UncheckedAdd[T constraints.Integer](_ NoOverflowAssert, a, b T) T {
	return a + b
}

// UncheckedSub returns a - b without overflow checking.
func UncheckedSub[T constraints.Integer](_ NoOverflowAssert, a, b T) T {
	return a - b
}

// UncheckedMul returns a * b without overflow checking.
func UncheckedMul[T constraints.Integer](_ NoOverflowAssert, a, b T) T {
	return a * b
}
