package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/service"
	"github.com/phrazzld/almanac-api/internal/store"
)

// validationSentinels are the domain errors that indicate bad input
// rather than a broken server. They all map to HTTP 400.
var validationSentinels = []error{
	domain.ErrValidation,
	domain.ErrInvalidDate,
	domain.ErrInvalidClockTime,
	domain.ErrInvalidTimeRange,
	domain.ErrInvalidVisibility,
	domain.ErrInvalidEntryType,
	domain.ErrInvalidPriority,
	domain.ErrInvalidTaskStatus,
	domain.ErrEmptyUsername,
	domain.ErrEmptyPassword,
	domain.ErrEmptyTitle,
	domain.ErrEmptyDescription,
	domain.ErrEmptyVenue,
	domain.ErrEmptyOrganizer,
	domain.ErrEmptyModality,
	domain.ErrEmptyCreatedBy,
	domain.ErrEmptyCalendarName,
	domain.ErrNotFamilyCalendar,
	service.ErrOutOfRange,
}

// isValidationError reports whether the error is any bad-input error.
func isValidationError(err error) bool {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return true
	}
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrCalendarNotOwned),
		errors.Is(err, service.ErrPasscodeRequired),
		errors.Is(err, service.ErrPasscodeMismatch):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err),
		errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err),
		errors.Is(err, domain.ErrJournalExists),
		errors.Is(err, domain.ErrTaskAlreadyDone),
		errors.Is(err, service.ErrNoCalendarSelected):
		return http.StatusConflict

	// Bad request errors
	case isValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, service.ErrNotAuthenticated):
		return "No account is signed in"

	case errors.Is(err, service.ErrCalendarNotOwned):
		return "You do not own this calendar"

	case errors.Is(err, service.ErrPasscodeRequired):
		return "This calendar requires a passcode"

	case errors.Is(err, service.ErrPasscodeMismatch):
		return "Incorrect passcode"

	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, store.ErrCalendarNotFound):
		return "Calendar not found"

	case errors.Is(err, domain.ErrEntryNotFound):
		return "Entry not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already taken"

	case errors.Is(err, store.ErrCalendarExists):
		return "A calendar with this name and visibility already exists"

	case errors.Is(err, domain.ErrJournalExists):
		return "The calendar already has a journal for this date"

	case errors.Is(err, domain.ErrTaskAlreadyDone):
		return "Task is already done"

	case errors.Is(err, service.ErrNoCalendarSelected):
		return "No calendar is selected"

	case errors.Is(err, service.ErrOutOfRange):
		return "Selection out of range"

	case isValidationError(err):
		return "Invalid input: " + err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for an error coming out of the
// controller: status from MapErrorToStatusCode, body from
// GetSafeErrorMessage (or the override, when non-empty), and the raw
// error redacted into the log.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, messageOverride string) {
	message := messageOverride
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	respondError(w, r, MapErrorToStatusCode(err), message, err)
}
