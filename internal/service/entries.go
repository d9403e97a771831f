package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/almanac-api/internal/domain"
)

// EntryInput carries the fields for adding or editing an entry in the
// session's current calendar. Type selects which fields are required;
// irrelevant fields are ignored.
type EntryInput struct {
	Type        domain.EntryType
	Title       string
	Description string
	Date        domain.Date

	// Event and meeting
	Venue     string
	Organizer string
	StartTime domain.ClockTime
	EndTime   domain.ClockTime

	// Meeting
	Modality string
	Link     string

	// Task
	Priority domain.TaskPriority
}

// AddEntry validates and appends an entry to the session's current
// calendar. Every rejected input surfaces as an error; there are no
// silent no-ops. A journal is refused when the calendar already has one
// on the same exact date.
func (c *Controller) AddEntry(ctx context.Context, input EntryInput) (*domain.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentAccount == nil {
		return nil, ErrNotAuthenticated
	}
	if c.currentCalendar == nil {
		return nil, ErrNoCalendarSelected
	}

	entry, err := buildEntry(input, c.currentAccount.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid entry: %w", err)
	}

	if err := c.currentCalendar.AddEntry(entry); err != nil {
		if errors.Is(err, domain.ErrJournalExists) {
			c.logger.Debug("journal already exists for date",
				"calendar", c.currentCalendar.Name,
				"date", entry.Date.String())
		}
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	c.logger.Info("entry added",
		"calendar", c.currentCalendar.Name,
		"type", entry.Type,
		"title", entry.Title)
	return entry.Clone(), nil
}

// EditEntry replaces the identified entry in the current calendar. The
// replacement keeps the old entry's position in display order and its
// ID.
func (c *Controller) EditEntry(
	ctx context.Context,
	id uuid.UUID,
	input EntryInput,
) (*domain.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentAccount == nil {
		return nil, ErrNotAuthenticated
	}
	if c.currentCalendar == nil {
		return nil, ErrNoCalendarSelected
	}

	replacement, err := buildEntry(input, c.currentAccount.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid entry: %w", err)
	}

	if err := c.currentCalendar.EditEntry(id, replacement); err != nil {
		return nil, fmt.Errorf("failed to edit entry: %w", err)
	}

	c.logger.Info("entry edited",
		"calendar", c.currentCalendar.Name,
		"entry_id", id)
	return replacement.Clone(), nil
}

// RemoveEntry removes the entry with the given ID from the current
// calendar.
func (c *Controller) RemoveEntry(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentCalendar == nil {
		return ErrNoCalendarSelected
	}

	if err := c.currentCalendar.RemoveEntry(id); err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}

	c.logger.Info("entry removed",
		"calendar", c.currentCalendar.Name,
		"entry_id", id)
	return nil
}

// RemoveEntryByTitle removes the first entry, in display order, whose
// title matches exactly. Later entries with the same title are kept.
func (c *Controller) RemoveEntryByTitle(ctx context.Context, title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentCalendar == nil {
		return ErrNoCalendarSelected
	}

	if err := c.currentCalendar.RemoveFirstByTitle(title); err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}

	c.logger.Info("entry removed by title",
		"calendar", c.currentCalendar.Name,
		"title", title)
	return nil
}

// CompleteTask marks a task entry in the current calendar as done,
// recording the session account as the finisher.
func (c *Controller) CompleteTask(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentAccount == nil {
		return nil, ErrNotAuthenticated
	}
	if c.currentCalendar == nil {
		return nil, ErrNoCalendarSelected
	}

	entry := c.currentCalendar.FindEntry(id)
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}

	if err := entry.MarkDone(c.currentAccount.Username); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	c.logger.Info("task completed",
		"calendar", c.currentCalendar.Name,
		"entry_id", id,
		"finished_by", c.currentAccount.Username)
	return entry.Clone(), nil
}

// EntriesOn returns copies of the current calendar's entries whose
// date equals d exactly, in display order.
func (c *Controller) EntriesOn(ctx context.Context, d domain.Date) ([]*domain.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentCalendar == nil {
		return nil, ErrNoCalendarSelected
	}

	matches := c.currentCalendar.EntriesOn(d)
	copies := make([]*domain.Entry, 0, len(matches))
	for _, entry := range matches {
		copies = append(copies, entry.Clone())
	}
	return copies, nil
}

// EntriesOnSelectedDate returns the current calendar's entries for the
// session's selected date.
func (c *Controller) EntriesOnSelectedDate(ctx context.Context) ([]*domain.Entry, error) {
	date, err := c.SelectedDate()
	if err != nil {
		return nil, fmt.Errorf("invalid selected date: %w", err)
	}
	return c.EntriesOn(ctx, date)
}

// buildEntry constructs a validated entry from the input. The event
// organizer defaults to the creating account, and a task's creator is
// always the creating account.
func buildEntry(input EntryInput, creator string) (*domain.Entry, error) {
	switch input.Type {
	case domain.EntryTypeEvent:
		organizer := input.Organizer
		if organizer == "" {
			organizer = creator
		}
		return domain.NewEvent(
			input.Title, input.Description, input.Date,
			input.Venue, organizer,
			input.StartTime, input.EndTime,
		)

	case domain.EntryTypeJournal:
		return domain.NewJournal(input.Title, input.Description, input.Date)

	case domain.EntryTypeMeeting:
		return domain.NewMeeting(
			input.Title, input.Description, input.Date,
			input.Modality, input.Venue, input.Link,
			input.StartTime, input.EndTime,
		)

	case domain.EntryTypeTask:
		return domain.NewTask(
			input.Title, input.Description, input.Date,
			input.Priority, creator,
		)

	default:
		return nil, domain.ErrInvalidEntryType
	}
}
