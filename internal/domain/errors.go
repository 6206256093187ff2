package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all layers. Repositories translate driver errors
// into these; the HTTP layer maps them to status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrInternal marks consistency failures that are not user-correctable,
	// e.g. a write that committed but cannot be read back. Callers map it to
	// a 5xx, never to a conflict.
	ErrInternal = errors.New("internal inconsistency")
)

// FieldError names one invalid field and what is wrong with it.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries all field errors found in one input, so a caller
// can fix everything in a single round trip. It unwraps to ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors wraps collected field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
