package strictint

import "errors"

// ErrorCode categorizes arithmetic failures.
type ErrorCode string

const (
	// ErrCodeOverflow indicates the true result does not fit the type.
	ErrCodeOverflow ErrorCode = "OVERFLOW"

	// ErrCodeDivideByZero indicates a zero divisor.
	ErrCodeDivideByZero ErrorCode = "DIVIDE_BY_ZERO"

	// ErrCodeDomain indicates an argument outside the operation's domain
	// (zero logarithm receiver, logarithm base below 2).
	ErrCodeDomain ErrorCode = "DOMAIN"

	// ErrCodeOutOfRange indicates a lossy integral conversion.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// ErrCodeByteLength indicates a byte slice whose length does not match
	// the integer width being reassembled.
	ErrCodeByteLength ErrorCode = "BYTE_LENGTH"
)

// ArithmeticError is the panic value raised by the panicking operation
// variants. The Message strings are fixed and part of the package contract:
// conformance vectors assert on them verbatim.
type ArithmeticError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return e.Message
}

// Panic values for the panicking operation variants. Each operation always
// panics with the same value, so recovered panics can be compared directly
// or matched with errors.As.
var (
	ErrAddOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to add with overflow"}
	ErrSubOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to subtract with overflow"}
	ErrMulOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to multiply with overflow"}
	ErrNegOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to negate with overflow"}
	ErrShlOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to shift left with overflow"}
	ErrShrOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to shift right with overflow"}
	ErrDivOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to divide with overflow"}
	ErrRemOverflow = &ArithmeticError{Code: ErrCodeOverflow, Message: "attempt to calculate the remainder with overflow"}

	ErrDivByZero = &ArithmeticError{Code: ErrCodeDivideByZero, Message: "attempt to divide by zero"}
	ErrRemByZero = &ArithmeticError{Code: ErrCodeDivideByZero, Message: "attempt to calculate the remainder with a divisor of zero"}

	ErrLogZero = &ArithmeticError{Code: ErrCodeDomain, Message: "argument of integer logarithm must be positive"}
	ErrLogBase = &ArithmeticError{Code: ErrCodeDomain, Message: "base of integer logarithm must be at least 2"}

	ErrCastOutOfRange = &ArithmeticError{Code: ErrCodeOutOfRange, Message: "out of range integral type conversion attempted"}

	ErrByteLength = &ArithmeticError{Code: ErrCodeByteLength, Message: "byte slice length does not match integer width"}
)

// IsOverflow reports whether err is an overflow failure.
// Uses errors.As to handle wrapped errors.
func IsOverflow(err error) bool {
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeOverflow
	}
	return false
}

// IsDivideByZero reports whether err is a zero-divisor failure.
// Uses errors.As to handle wrapped errors.
func IsDivideByZero(err error) bool {
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeDivideByZero
	}
	return false
}
