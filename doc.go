// Package strictint provides checked arithmetic for Go's fixed-width
// integer types.
//
// Every arithmetic, shift, and negation operation is offered in six
// behavioral variants that differ only in how out-of-range results are
// handled:
//
//   - Add, Sub, Mul, Div, ...            panic with a fixed diagnostic
//   - CheckedAdd, CheckedSub, ...        return (result, ok)
//   - OverflowingAdd, OverflowingSub ... return (wrapped result, overflowed)
//   - SaturatingAdd, SaturatingSub, ...  clamp to the type's Min/Max
//   - WrappingAdd, WrappingSub, ...      return the modulo-2^N result
//   - UncheckedAdd, UncheckedSub, ...    skip checks; caller attests safety
//
// All functions are generic over the built-in integer types via
// [constraints.Integer] and relatives, so the same contract covers every
// bit-width and signedness combination:
//
//	sum, ok := strictint.CheckedAdd(a, b)       // a, b uint32
//	q := strictint.SaturatingMul(x, y)          // x, y int64
//	strictint.Add(math.MaxUint8, uint8(1))      // panics
//
// Division and remainder by zero panic in every variant except the
// Checked* forms, which report absence instead. No operation silently
// produces a mathematically wrong result without an explicit signal,
// except the Unchecked* family, which requires a [NoOverflowAssert]
// token at the call site.
//
// Beyond the policy families the package provides bit-pattern queries
// (CountOnes, LeadingZeros, ReverseBits, rotations, endian and byte
// decomposition), exact integer logarithms (Log2, Log10, Log),
// power-of-two utilities, ceiling division and next-multiple helpers,
// range-checked conversions between all integer kinds (Cast, CheckedCast,
// SaturatingCast, WrappingCast), and mathematical cross-kind comparison
// (Compare).
//
// Panics raised by the panicking variants carry *[ArithmeticError] values
// with stable diagnostic strings; see that type for the message table.
package strictint
