package errors

import (
	stdErrors "errors"
	"fmt"
	"strconv"
	"testing"
)

func TestParseError(t *testing.T) {
	_, cause := strconv.ParseInt("x", 10, 64)
	err := NewParseError("id", "x", cause)

	want := `invalid id "x": strconv.ParseInt: parsing "x": invalid syntax`
	if err.Error() != want {
		t.Fatalf("Error message = %q, want %q", err.Error(), want)
	}

	if !IsParseError(err) {
		t.Fatalf("IsParseError returned false for ParseError")
	}

	wrapped := fmt.Errorf("row 3: %w", err)
	if !IsParseError(wrapped) {
		t.Fatalf("IsParseError returned false for wrapped ParseError")
	}

	if !stdErrors.Is(wrapped, strconv.ErrSyntax) {
		t.Fatalf("ParseError does not unwrap to its cause")
	}
}

func TestParseError_NoCause(t *testing.T) {
	err := NewParseError("language", "FRENCH", nil)

	if err.Error() != `invalid language "FRENCH"` {
		t.Fatalf("Error message = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("Unwrap = %v, want nil", err.Unwrap())
	}
}

func TestIsParseError_OtherErrors(t *testing.T) {
	if IsParseError(stdErrors.New("boom")) {
		t.Fatalf("IsParseError returned true for plain error")
	}
	if IsParseError(nil) {
		t.Fatalf("IsParseError returned true for nil")
	}
}

func TestUnsupportedOperationError(t *testing.T) {
	err := NewUnsupportedOperationError("remove")

	if err.Error() != "remove: view is read-only" {
		t.Fatalf("Error message = %q", err.Error())
	}

	if !stdErrors.Is(err, ErrUnsupportedOperation) {
		t.Fatalf("errors.Is did not match ErrUnsupportedOperation")
	}

	wrapped := fmt.Errorf("clearing results: %w", err)
	if !IsUnsupportedOperation(wrapped) {
		t.Fatalf("IsUnsupportedOperation returned false for wrapped error")
	}

	var opErr *UnsupportedOperationError
	if !stdErrors.As(wrapped, &opErr) || opErr.Op != "remove" {
		t.Fatalf("errors.As did not recover the operation, got %+v", opErr)
	}
}

func TestIsUnsupportedOperation_OtherErrors(t *testing.T) {
	if IsUnsupportedOperation(stdErrors.New("unsupported operation")) {
		t.Fatalf("IsUnsupportedOperation matched an unrelated error with the same text")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(99)

	if err.Error() != "book with id 99 not found" {
		t.Fatalf("Error message = %q", err.Error())
	}

	wrapped := stdErrors.Join(err)
	if !IsNotFoundError(wrapped) {
		t.Fatalf("IsNotFoundError returned false for wrapped NotFoundError")
	}

	if IsNotFoundError(NewParseError("id", "x", nil)) {
		t.Fatalf("IsNotFoundError returned true for ParseError")
	}
}
