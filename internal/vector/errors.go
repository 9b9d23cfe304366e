package vector

import "fmt"

// Error codes for vector loading and validation.
const (
	ErrCodeNotFound   = "VECTOR_NOT_FOUND"
	ErrCodeParse      = "VECTOR_PARSE"
	ErrCodeSchema     = "VECTOR_SCHEMA"
	ErrCodeBadOperand = "VECTOR_BAD_OPERAND"
)

// LoadError is an error raised while loading or validating a vector file.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
