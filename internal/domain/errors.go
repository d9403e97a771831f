package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a calendar date is malformed or does
	// not exist (e.g. February 30th).
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidClockTime is returned when a time of day is not in HH:MM form.
	ErrInvalidClockTime = errors.New("invalid time of day")

	// ErrInvalidTimeRange is returned when an entry's end time is before
	// its start time.
	ErrInvalidTimeRange = errors.New("end time cannot be before start time")

	// ErrInvalidVisibility is returned when a calendar visibility is not
	// one of the known values.
	ErrInvalidVisibility = errors.New("invalid visibility")

	// ErrEntryNotFound is returned when an entry is not present in the
	// calendar being operated on.
	ErrEntryNotFound = errors.New("entry not found in calendar")

	// ErrJournalExists is returned when a calendar already holds a journal
	// entry for the requested date.
	ErrJournalExists = errors.New("calendar already has a journal for this date")

	// ErrNotFamilyCalendar is returned when a passcode operation is
	// attempted on a calendar that has no passcode gate.
	ErrNotFamilyCalendar = errors.New("calendar is not passcode-gated")
)

// ValidationError carries the field that failed validation alongside a
// human-readable message. It wraps a sentinel error so callers can still
// use errors.Is for classification.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
