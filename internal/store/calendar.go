package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/almanac-api/internal/domain"
)

// CalendarStore defines the interface for calendar registry operations.
type CalendarStore interface {
	// CreateCalendar saves a new calendar to the registry.
	// Returns ErrCalendarExists if a calendar with the same (name,
	// visibility) pair already exists anywhere in the system.
	// Returns validation errors from the domain Calendar if data is invalid.
	CreateCalendar(ctx context.Context, calendar *domain.Calendar) error

	// GetCalendar retrieves a calendar by its unique ID.
	// Returns ErrCalendarNotFound if the calendar does not exist.
	GetCalendar(ctx context.Context, id uuid.UUID) (*domain.Calendar, error)

	// GetCalendarByName returns the first calendar, in creation order,
	// with the given name and visibility.
	// Returns ErrCalendarNotFound if no calendar matches.
	GetCalendarByName(ctx context.Context, name string, visibility domain.Visibility) (*domain.Calendar, error)

	// CalendarExists reports whether a calendar with the given name and
	// visibility already exists.
	CalendarExists(ctx context.Context, name string, visibility domain.Visibility) (bool, error)

	// DeleteCalendar removes a calendar from the registry by its ID.
	// Returns ErrCalendarNotFound if the calendar does not exist.
	DeleteCalendar(ctx context.Context, id uuid.UUID) error

	// ListCalendars returns all calendars with the given visibility, in
	// creation order.
	ListCalendars(ctx context.Context, visibility domain.Visibility) ([]*domain.Calendar, error)
}
