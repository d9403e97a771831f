package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/store"
)

// Valid bounds for the session's selected date components.
const (
	minSelectableYear = 1970
	maxSelectableYear = 2998
)

// Controller orchestrates all account, calendar, and entry operations
// for exactly one session. The controller's mutex guards the session
// state and serializes every read and write of the live account and
// calendar objects; callers only ever receive snapshots, so concurrent
// requests never touch a live aggregate.
type Controller struct {
	accounts  store.AccountStore
	calendars store.CalendarStore
	logger    *slog.Logger

	mu              sync.Mutex
	currentAccount  *domain.Account
	currentCalendar *domain.Calendar
	selectedYear    int
	selectedMonth   time.Month
	selectedDay     int
}

// NewController creates a Controller with no signed-in account and the
// selected date initialized to today.
func NewController(
	accounts store.AccountStore,
	calendars store.CalendarStore,
	logger *slog.Logger,
) *Controller {
	year, month, day := time.Now().Date()
	return &Controller{
		accounts:      accounts,
		calendars:     calendars,
		logger:        logger.With("component", "controller"),
		selectedYear:  year,
		selectedMonth: month,
		selectedDay:   day,
	}
}

// SignUp registers a new account. Unlike the registries' raw insert,
// signup is guarded: a taken username (even one held by a deactivated
// account) is rejected with store.ErrUsernameExists.
func (c *Controller) SignUp(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := domain.NewAccount(username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := c.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			c.logger.Debug("attempted signup with existing username",
				"username", username)
		} else {
			c.logger.Error("failed to save account",
				"error", err,
				"username", username)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	c.logger.Info("account created", "username", username)
	return account.Snapshot(), nil
}

// Authenticate signs the first matching active account into the
// session. Wrong password, unknown username, and deactivated account
// are deliberately indistinguishable: all surface as
// domain.ErrInvalidCredentials.
func (c *Controller) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	// The credential check reads Active, which Deactivate writes under
	// this mutex, so the lookup runs under it too.
	c.mu.Lock()
	defer c.mu.Unlock()

	account, err := c.accounts.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			c.logger.Debug("authentication failed", "username", username)
			return nil, domain.ErrInvalidCredentials
		}
		c.logger.Error("failed to look up credentials",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	c.currentAccount = account
	c.logger.Info("account signed in", "username", username)
	return account.Snapshot(), nil
}

// Logout clears both the session account and the selected calendar.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.currentAccount = nil
	c.currentCalendar = nil
	c.mu.Unlock()

	c.logger.Debug("session cleared")
}

// Deactivate soft-deletes the session account. The username stays
// reserved and owned calendars are kept. The calendar selection is NOT
// cleared; call Logout for a full session reset.
func (c *Controller) Deactivate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentAccount == nil {
		return ErrNotAuthenticated
	}

	c.currentAccount.Deactivate()
	c.logger.Info("account deactivated", "username", c.currentAccount.Username)
	return nil
}

// UsernameExists reports whether any account, active or deactivated,
// holds the given username. Deactivated usernames stay reserved.
func (c *Controller) UsernameExists(ctx context.Context, username string) (bool, error) {
	return c.accounts.UsernameExists(ctx, username)
}

// AccountByUsername retrieves an account by exact username match.
// Returns store.ErrAccountNotFound if no account has that username.
func (c *Controller) AccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := c.accounts.GetAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	// Account mutations happen under the controller mutex, so the
	// snapshot must be taken under it too.
	c.mu.Lock()
	defer c.mu.Unlock()
	return account.Snapshot(), nil
}

// CurrentAccount returns a snapshot of the session's signed-in
// account, or nil.
func (c *Controller) CurrentAccount() *domain.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentAccount == nil {
		return nil
	}
	return c.currentAccount.Snapshot()
}

// CurrentCalendar returns a snapshot of the session's selected
// calendar, or nil.
func (c *Controller) CurrentCalendar() *domain.Calendar {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentCalendar == nil {
		return nil
	}
	return c.currentCalendar.Snapshot()
}

// SetSelectedYear updates the session's selected year.
// Out-of-range values return ErrOutOfRange and keep the prior value.
func (c *Controller) SetSelectedYear(year int) error {
	if year < minSelectableYear || year > maxSelectableYear {
		return fmt.Errorf("%w: year %d not in [%d, %d]",
			ErrOutOfRange, year, minSelectableYear, maxSelectableYear)
	}

	c.mu.Lock()
	c.selectedYear = year
	c.mu.Unlock()
	return nil
}

// SetSelectedMonth updates the session's selected month (1-12).
// Out-of-range values return ErrOutOfRange and keep the prior value.
func (c *Controller) SetSelectedMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d not in [1, 12]", ErrOutOfRange, month)
	}

	c.mu.Lock()
	c.selectedMonth = time.Month(month)
	c.mu.Unlock()
	return nil
}

// SetSelectedDay updates the session's selected day (1-31).
// Out-of-range values return ErrOutOfRange and keep the prior value.
func (c *Controller) SetSelectedDay(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: day %d not in [1, 31]", ErrOutOfRange, day)
	}

	c.mu.Lock()
	c.selectedDay = day
	c.mu.Unlock()
	return nil
}

// SelectedDate returns the session's selected date. The three
// components are range-checked individually when set, so a combination
// like February 31st can still be invalid as a whole.
func (c *Controller) SelectedDate() (domain.Date, error) {
	c.mu.Lock()
	year, month, day := c.selectedYear, c.selectedMonth, c.selectedDay
	c.mu.Unlock()

	return domain.NewDate(year, month, day)
}
