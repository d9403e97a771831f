// Package memory provides the in-memory implementation of the store
// interfaces: a single Registry holding the flat account and calendar
// collections behind a mutex, shared by every session's controller.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/store"
)

// Registry implements store.AccountStore and store.CalendarStore with
// slice-backed collections. Slices rather than maps because insertion
// order is meaningful: first-match lookups and listing order both
// follow registration/creation order.
//
// The mutex makes registry-level operations safe for concurrent
// sessions. Mutation of the entries inside a calendar is serialized by
// the controller owning the session, not here.
type Registry struct {
	mu        sync.RWMutex
	accounts  []*domain.Account
	calendars []*domain.Calendar
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Compile-time interface checks.
var (
	_ store.AccountStore  = (*Registry)(nil)
	_ store.CalendarStore = (*Registry)(nil)
)

// CreateAccount saves a new account to the registry.
// Returns store.ErrUsernameExists if the username is already taken by
// any account, active or deactivated.
func (r *Registry) CreateAccount(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return store.ErrUsernameExists
		}
	}

	r.accounts = append(r.accounts, account)
	return nil
}

// GetAccount retrieves an account by username, active or not.
// Returns store.ErrAccountNotFound if no account has that username.
func (r *Registry) GetAccount(ctx context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// UsernameExists reports whether any account, active or deactivated,
// holds the given username.
func (r *Registry) UsernameExists(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// FindByCredentials returns the first account, in registration order,
// that authenticates with the given credentials.
// Returns store.ErrAccountNotFound when no active account matches.
func (r *Registry) FindByCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Authenticate(username, password) {
			return account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// ListAccounts returns all accounts in registration order.
func (r *Registry) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, len(r.accounts))
	copy(accounts, r.accounts)
	return accounts, nil
}

// CreateCalendar saves a new calendar to the registry.
// Returns store.ErrCalendarExists if a calendar with the same (name,
// visibility) pair already exists anywhere in the system.
func (r *Registry) CreateCalendar(ctx context.Context, calendar *domain.Calendar) error {
	if err := calendar.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.calendars {
		if existing.Name == calendar.Name && existing.Visibility == calendar.Visibility {
			return store.ErrCalendarExists
		}
	}

	r.calendars = append(r.calendars, calendar)
	return nil
}

// GetCalendar retrieves a calendar by its unique ID.
// Returns store.ErrCalendarNotFound if the calendar does not exist.
func (r *Registry) GetCalendar(ctx context.Context, id uuid.UUID) (*domain.Calendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, calendar := range r.calendars {
		if calendar.ID == id {
			return calendar, nil
		}
	}
	return nil, store.ErrCalendarNotFound
}

// GetCalendarByName returns the first calendar, in creation order, with
// the given name and visibility.
// Returns store.ErrCalendarNotFound if no calendar matches.
func (r *Registry) GetCalendarByName(
	ctx context.Context,
	name string,
	visibility domain.Visibility,
) (*domain.Calendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, calendar := range r.calendars {
		if calendar.Name == name && calendar.Visibility == visibility {
			return calendar, nil
		}
	}
	return nil, store.ErrCalendarNotFound
}

// CalendarExists reports whether a calendar with the given name and
// visibility already exists.
func (r *Registry) CalendarExists(
	ctx context.Context,
	name string,
	visibility domain.Visibility,
) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, calendar := range r.calendars {
		if calendar.Name == name && calendar.Visibility == visibility {
			return true, nil
		}
	}
	return false, nil
}

// DeleteCalendar removes a calendar from the registry by its ID.
// Returns store.ErrCalendarNotFound if the calendar does not exist.
func (r *Registry) DeleteCalendar(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, calendar := range r.calendars {
		if calendar.ID == id {
			r.calendars = append(r.calendars[:i], r.calendars[i+1:]...)
			return nil
		}
	}
	return store.ErrCalendarNotFound
}

// ListCalendars returns all calendars with the given visibility, in
// creation order.
func (r *Registry) ListCalendars(
	ctx context.Context,
	visibility domain.Visibility,
) ([]*domain.Calendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var calendars []*domain.Calendar
	for _, calendar := range r.calendars {
		if calendar.Visibility == visibility {
			calendars = append(calendars, calendar)
		}
	}
	return calendars, nil
}
