package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/store"
)

// CreateCalendar creates a calendar owned by the named account. The
// account is resolved before anything is created, so a bad username
// fails the whole operation instead of leaving an ownerless calendar
// behind. Duplicate (name, visibility) pairs are rejected system-wide.
func (c *Controller) CreateCalendar(
	ctx context.Context,
	username, name string,
	visibility domain.Visibility,
) (*domain.Calendar, error) {
	calendar, err := domain.NewCalendar(name, visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}
	return c.registerCalendar(ctx, username, calendar)
}

// CreateFamilyCalendar creates a passcode-gated calendar owned by the
// named account. Family calendars go through the same duplicate check
// as every other calendar.
func (c *Controller) CreateFamilyCalendar(
	ctx context.Context,
	username, name string,
	passcode int,
) (*domain.Calendar, error) {
	calendar, err := domain.NewFamilyCalendar(name, passcode)
	if err != nil {
		return nil, fmt.Errorf("failed to create family calendar: %w", err)
	}
	return c.registerCalendar(ctx, username, calendar)
}

// registerCalendar is the shared insert path: resolve the owner, store
// the calendar, then record ownership by name on the account.
func (c *Controller) registerCalendar(
	ctx context.Context,
	username string,
	calendar *domain.Calendar,
) (*domain.Calendar, error) {
	account, err := c.accounts.GetAccount(ctx, username)
	if err != nil {
		c.logger.Debug("calendar creation for unknown account",
			"username", username,
			"calendar", calendar.Name)
		return nil, fmt.Errorf("failed to resolve calendar owner: %w", err)
	}

	if err := c.calendars.CreateCalendar(ctx, calendar); err != nil {
		if errors.Is(err, store.ErrCalendarExists) {
			c.logger.Debug("attempted to create duplicate calendar",
				"calendar", calendar.Name,
				"visibility", calendar.Visibility)
		} else {
			c.logger.Error("failed to save calendar",
				"error", err,
				"calendar", calendar.Name)
		}
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}

	// Once stored, the calendar and account are reachable by other
	// requests; mutate and snapshot under the session mutex.
	c.mu.Lock()
	account.AddOwnedCalendar(calendar.Name)
	snapshot := calendar.Snapshot()
	c.mu.Unlock()

	c.logger.Info("calendar created",
		"calendar", calendar.Name,
		"visibility", calendar.Visibility,
		"family", calendar.Family,
		"owner", username)
	return snapshot, nil
}

// CalendarExists reports whether a calendar with the given name and
// visibility already exists anywhere in the system.
func (c *Controller) CalendarExists(
	ctx context.Context,
	name string,
	visibility domain.Visibility,
) (bool, error) {
	return c.calendars.CalendarExists(ctx, name, visibility)
}

// CalendarByName returns a snapshot of the first calendar with the
// given name and visibility. Returns store.ErrCalendarNotFound if none
// matches.
func (c *Controller) CalendarByName(
	ctx context.Context,
	name string,
	visibility domain.Visibility,
) (*domain.Calendar, error) {
	calendar, err := c.calendars.GetCalendarByName(ctx, name, visibility)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return calendar.Snapshot(), nil
}

// SelectCalendar makes the calendar with the given ID the session's
// current calendar. Private calendars may only be opened by their
// owner; family calendars need SelectFamilyCalendar with a passcode.
func (c *Controller) SelectCalendar(ctx context.Context, id uuid.UUID) (*domain.Calendar, error) {
	calendar, err := c.calendars.GetCalendar(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select calendar: %w", err)
	}

	if calendar.Family {
		return nil, ErrPasscodeRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if calendar.Visibility == domain.VisibilityPrivate {
		if c.currentAccount == nil {
			return nil, ErrNotAuthenticated
		}
		if !c.currentAccount.OwnsCalendar(calendar.Name) {
			c.logger.Debug("attempted to open unowned private calendar",
				"calendar", calendar.Name,
				"username", c.currentAccount.Username)
			return nil, ErrCalendarNotOwned
		}
	}

	c.currentCalendar = calendar
	return calendar.Snapshot(), nil
}

// SelectFamilyCalendar opens a passcode-gated calendar. A wrong
// passcode returns ErrPasscodeMismatch and leaves the selection
// unchanged.
func (c *Controller) SelectFamilyCalendar(
	ctx context.Context,
	id uuid.UUID,
	passcode int,
) (*domain.Calendar, error) {
	calendar, err := c.calendars.GetCalendar(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select calendar: %w", err)
	}

	ok, err := calendar.CheckPasscode(passcode)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.logger.Debug("family calendar passcode rejected", "calendar", calendar.Name)
		return nil, ErrPasscodeMismatch
	}

	c.mu.Lock()
	c.currentCalendar = calendar
	snapshot := calendar.Snapshot()
	c.mu.Unlock()

	return snapshot, nil
}

// RemoveCurrentCalendar deletes the session's selected calendar from
// the registry, drops its name from the session account's owned set if
// an account is signed in, and clears the selection.
func (c *Controller) RemoveCurrentCalendar(ctx context.Context) error {
	c.mu.Lock()
	calendar := c.currentCalendar
	account := c.currentAccount
	c.mu.Unlock()

	if calendar == nil {
		return ErrNoCalendarSelected
	}

	if err := c.calendars.DeleteCalendar(ctx, calendar.ID); err != nil {
		c.logger.Error("failed to delete calendar",
			"error", err,
			"calendar", calendar.Name)
		return fmt.Errorf("failed to remove calendar: %w", err)
	}

	c.mu.Lock()
	if account != nil {
		account.RemoveOwnedCalendar(calendar.Name)
	}
	c.currentCalendar = nil
	c.mu.Unlock()

	c.logger.Info("calendar removed", "calendar", calendar.Name)
	return nil
}

// CopyCalendar duplicates a public calendar into a private copy owned
// by the session account, deep-cloning every entry. The copy gets its
// own name and is subject to the usual private-name duplicate rule.
func (c *Controller) CopyCalendar(
	ctx context.Context,
	sourceName, copyName string,
) (*domain.Calendar, error) {
	c.mu.Lock()
	account := c.currentAccount
	c.mu.Unlock()

	if account == nil {
		return nil, ErrNotAuthenticated
	}

	source, err := c.calendars.GetCalendarByName(ctx, sourceName, domain.VisibilityPublic)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source calendar: %w", err)
	}

	// Cloning reads the live source entries, so the whole copy runs
	// under the session mutex.
	c.mu.Lock()
	defer c.mu.Unlock()

	clone, err := source.Clone(copyName, domain.VisibilityPrivate)
	if err != nil {
		return nil, fmt.Errorf("failed to copy calendar: %w", err)
	}

	if err := c.calendars.CreateCalendar(ctx, clone); err != nil {
		return nil, fmt.Errorf("failed to copy calendar: %w", err)
	}

	account.AddOwnedCalendar(clone.Name)

	c.logger.Info("calendar copied",
		"source", sourceName,
		"copy", copyName,
		"owner", account.Username)
	return clone.Snapshot(), nil
}

// PublicCalendars returns snapshots of every public calendar, family
// ones included.
func (c *Controller) PublicCalendars(ctx context.Context) ([]*domain.Calendar, error) {
	calendars, err := c.calendars.ListCalendars(ctx, domain.VisibilityPublic)
	if err != nil {
		return nil, err
	}
	return c.snapshotCalendars(calendars), nil
}

// snapshotCalendars deep-copies a list of live calendars under the
// session mutex, which serializes against entry mutation.
func (c *Controller) snapshotCalendars(calendars []*domain.Calendar) []*domain.Calendar {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshots := make([]*domain.Calendar, 0, len(calendars))
	for _, calendar := range calendars {
		snapshots = append(snapshots, calendar.Snapshot())
	}
	return snapshots
}

// PrivateCalendars returns snapshots of the private calendars owned by
// the session account. Ownership is resolved by name string against
// the account's owned-name set, not by calendar identity.
func (c *Controller) PrivateCalendars(ctx context.Context) ([]*domain.Calendar, error) {
	all, err := c.calendars.ListCalendars(ctx, domain.VisibilityPrivate)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentAccount == nil {
		return nil, ErrNotAuthenticated
	}

	var owned []*domain.Calendar
	for _, calendar := range all {
		if c.currentAccount.OwnsCalendar(calendar.Name) {
			owned = append(owned, calendar.Snapshot())
		}
	}
	return owned, nil
}
