package service

import "errors"

// Common service errors - sentinel errors used across controller operations.
// Callers check for specific conditions with errors.Is(); the API layer
// maps them to HTTP status codes.
var (
	// ErrNotAuthenticated indicates an operation that needs a signed-in
	// account was called with no active session account.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrNotAuthenticated = errors.New("no account is signed in")

	// ErrNoCalendarSelected indicates an entry operation was called with
	// no calendar selected in the session.
	// API layer should map this to HTTP 409 Conflict.
	ErrNoCalendarSelected = errors.New("no calendar is selected")

	// ErrCalendarNotOwned indicates an attempt to open a private calendar
	// the session account does not own.
	// API layer should map this to HTTP 403 Forbidden.
	ErrCalendarNotOwned = errors.New("calendar is owned by another account")

	// ErrPasscodeRequired indicates a family calendar was opened without
	// a passcode. API layer should map this to HTTP 403 Forbidden.
	ErrPasscodeRequired = errors.New("calendar requires a passcode")

	// ErrPasscodeMismatch indicates a wrong family-calendar passcode.
	// API layer should map this to HTTP 403 Forbidden.
	ErrPasscodeMismatch = errors.New("incorrect passcode")

	// ErrOutOfRange indicates a date-selection value outside its valid
	// range. The prior selection is kept unchanged.
	// API layer should map this to HTTP 400 Bad Request.
	ErrOutOfRange = errors.New("selection out of range")
)
