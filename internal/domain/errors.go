package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by identifier matches no row and the
// operation cannot proceed without it.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientData is returned by report/forecast computations when the
// input series is too short to produce a meaningful result.
var ErrInsufficientData = errors.New("insufficient data")

// ValidationError reports a missing or invalid field on a write. No
// persistence has happened when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
