package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrAccountNotFound, ErrCalendarNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an account with a taken username).
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific "not found" errors

	// ErrAccountNotFound indicates that the requested account does not exist in the store.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrCalendarNotFound indicates that the requested calendar does not exist in the store.
	ErrCalendarNotFound = fmt.Errorf("%w: calendar", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUsernameExists indicates that an account with the given username
	// already exists. Usernames are unique among ALL accounts, active or
	// deactivated, so a deactivated account reserves its username forever.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrCalendarExists indicates that a calendar with the same (name,
	// visibility) pair already exists. The namespace is system-wide: a
	// public and a private calendar may share a name, but two private
	// calendars may not, even when owned by different accounts.
	ErrCalendarExists = fmt.Errorf("%w: calendar name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
