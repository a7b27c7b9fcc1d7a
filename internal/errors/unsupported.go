package errors

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation is matched by every UnsupportedOperationError.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// UnsupportedOperationError is returned when a caller tries to modify a read-only view.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: view is read-only", e.Op)
}

// Is implements errors.Is support
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// NewUnsupportedOperationError creates an UnsupportedOperationError for op.
func NewUnsupportedOperationError(op string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Op: op}
}

// IsUnsupportedOperation reports whether err rejects a mutation (even when wrapped).
func IsUnsupportedOperation(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}
