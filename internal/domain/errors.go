package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a portal id does not exist in the store.
	ErrNotFound = errors.New("portal not found")

	// ErrConflict is returned when a create collides with an existing id.
	ErrConflict = errors.New("portal id already exists")

	// ErrUnauthorized is returned when a mutating call presents a missing,
	// malformed or incorrect admin credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a candidate or patch field that violates the
// portal data model (missing required field, unknown status, ...).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid portal field %q: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
