package errors

import (
	"errors"
	"fmt"
)

// ParseError reports a row field that does not match the shape a book record expects.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError for the named field.
func NewParseError(field, value string, err error) *ParseError {
	return &ParseError{Field: field, Value: value, Err: err}
}

// IsParseError reports whether err is a ParseError (even when wrapped).
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
