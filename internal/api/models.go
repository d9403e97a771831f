package api

import (
	"github.com/google/uuid"

	"github.com/phrazzld/almanac-api/internal/domain"
)

// Common request/response structures

// SignUpRequest defines the payload for the account signup endpoint.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=1,max=128"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse defines the account representation returned by the
// API. The credential is never echoed back.
type AccountResponse struct {
	Username       string   `json:"username"`
	Active         bool     `json:"active"`
	OwnedCalendars []string `json:"owned_calendars"`
}

// NewAccountResponse builds an AccountResponse from a domain account.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		Username:       account.Username,
		Active:         account.Active,
		OwnedCalendars: account.OwnedCalendars,
	}
}

// CreateCalendarRequest defines the payload for calendar creation.
// A family calendar is public and passcode-gated; Passcode is required
// exactly when Family is set.
type CreateCalendarRequest struct {
	Name       string `json:"name"       validate:"required,min=1,max=128"`
	Visibility string `json:"visibility" validate:"required_without=Family,omitempty,oneof=private public"`
	Family     bool   `json:"family"`
	Passcode   *int   `json:"passcode"   validate:"required_if=Family true"`
}

// SelectCalendarRequest defines the payload for opening a calendar.
// Passcode is required for family calendars.
type SelectCalendarRequest struct {
	Passcode *int `json:"passcode"`
}

// CopyCalendarRequest defines the payload for duplicating a public
// calendar into a private copy.
type CopyCalendarRequest struct {
	SourceName string `json:"source_name" validate:"required"`
	CopyName   string `json:"copy_name"   validate:"required"`
}

// CalendarResponse defines the calendar representation returned by the
// API. Entries are included; the passcode never is.
type CalendarResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Visibility string          `json:"visibility"`
	Family     bool            `json:"family"`
	Entries    []EntryResponse `json:"entries"`
}

// NewCalendarResponse builds a CalendarResponse from a domain calendar.
func NewCalendarResponse(calendar *domain.Calendar) CalendarResponse {
	entries := make([]EntryResponse, 0, len(calendar.Entries))
	for _, entry := range calendar.Entries {
		entries = append(entries, NewEntryResponse(entry))
	}
	return CalendarResponse{
		ID:         calendar.ID,
		Name:       calendar.Name,
		Visibility: string(calendar.Visibility),
		Family:     calendar.Family,
		Entries:    entries,
	}
}

// EntryRequest defines the payload for adding or editing an entry.
// Type selects which optional fields are required; the controller and
// domain validation enforce the per-type rules.
type EntryRequest struct {
	Type        string `json:"type"        validate:"required,oneof=event journal meeting task"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"        validate:"required"`

	Venue     string `json:"venue"`
	Organizer string `json:"organizer"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Modality string `json:"modality"`
	Link     string `json:"link"`

	Priority string `json:"priority" validate:"omitempty,oneof=high medium low"`
}

// EntryResponse defines the entry representation returned by the API.
type EntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`

	Venue     string `json:"venue,omitempty"`
	Organizer string `json:"organizer,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	Modality string `json:"modality,omitempty"`
	Link     string `json:"link,omitempty"`

	Priority   string `json:"priority,omitempty"`
	Status     string `json:"status,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	FinishedBy string `json:"finished_by,omitempty"`

	Display string `json:"display"`
}

// NewEntryResponse builds an EntryResponse from a domain entry.
func NewEntryResponse(entry *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:          entry.ID,
		Type:        string(entry.Type),
		Title:       entry.Title,
		Description: entry.Description,
		Date:        entry.Date.String(),
		Venue:       entry.Venue,
		Organizer:   entry.Organizer,
		StartTime:   string(entry.StartTime),
		EndTime:     string(entry.EndTime),
		Modality:    entry.Modality,
		Link:        entry.Link,
		Priority:    string(entry.Priority),
		Status:      string(entry.Status),
		CreatedBy:   entry.CreatedBy,
		FinishedBy:  entry.FinishedBy,
		Display:     entry.DisplayString(),
	}
}

// SelectionRequest defines the payload for the date selection endpoint.
// Each present component is range-checked independently.
type SelectionRequest struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}
