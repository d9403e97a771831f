package domain

import (
	"errors"
	"time"
)

// Account-specific validation errors
var (
	// ErrEmptyUsername is returned when an account's username is blank.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword is returned when an account's password is blank.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrInvalidCredentials is returned when authentication fails, either
	// because the credentials do not match or the account is inactive.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account represents a registered user of the calendar system.
//
// The password is held in plaintext. That is a preserved behavioral
// boundary of the system this kernel models, not a recommendation;
// credential hardening is owned by any deployment that needs it.
type Account struct {
	Username string    `json:"username"`
	Password string    `json:"-"` // Never expose the credential in JSON
	Active   bool      `json:"active"`
	// OwnedCalendars is the set of calendar names this account owns.
	// Ownership is tracked by name string, not by calendar identity.
	OwnedCalendars []string  `json:"owned_calendars"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewAccount creates an active Account with the given credentials.
// Returns an error if validation fails.
func NewAccount(username, password string) (*Account, error) {
	account := &Account{
		Username:  username,
		Password:  password,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.Username == "" {
		return ErrEmptyUsername
	}

	if a.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// Authenticate reports whether the given credentials match this account.
// Both strings must match exactly and the account must still be active;
// a deactivated account never authenticates.
func (a *Account) Authenticate(username, password string) bool {
	return a.Active && a.Username == username && a.Password == password
}

// Deactivate soft-deletes the account. The username stays reserved and
// the owned-calendar set is kept so calendars the account shared remain
// resolvable.
func (a *Account) Deactivate() {
	a.Active = false
}

// AddOwnedCalendar records ownership of the named calendar.
// Adding a name that is already owned is a no-op.
func (a *Account) AddOwnedCalendar(name string) {
	if a.OwnsCalendar(name) {
		return
	}
	a.OwnedCalendars = append(a.OwnedCalendars, name)
}

// RemoveOwnedCalendar drops ownership of the named calendar.
// Removing a name that is not owned is a no-op.
func (a *Account) RemoveOwnedCalendar(name string) {
	for i, owned := range a.OwnedCalendars {
		if owned == name {
			a.OwnedCalendars = append(a.OwnedCalendars[:i], a.OwnedCalendars[i+1:]...)
			return
		}
	}
}

// Snapshot returns a deep copy of the account under the same identity.
// Callers that hand accounts to code running outside the owning lock
// pass snapshots, never the live entity.
func (a *Account) Snapshot() *Account {
	snapshot := *a
	snapshot.OwnedCalendars = append([]string(nil), a.OwnedCalendars...)
	return &snapshot
}

// OwnsCalendar reports whether the account owns the named calendar.
func (a *Account) OwnsCalendar(name string) bool {
	for _, owned := range a.OwnedCalendars {
		if owned == name {
			return true
		}
	}
	return false
}
