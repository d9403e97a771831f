package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EntryType discriminates the four schedulable entry variants.
type EntryType string

// Possible entry type values
const (
	EntryTypeEvent   EntryType = "event"
	EntryTypeJournal EntryType = "journal"
	EntryTypeMeeting EntryType = "meeting"
	EntryTypeTask    EntryType = "task"
)

// TaskPriority represents the urgency of a task entry.
type TaskPriority string

// Possible task priority values
const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// TaskStatus represents the completion state of a task entry.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Entry-specific validation errors
var (
	ErrEmptyEntryID      = errors.New("entry ID cannot be empty")
	ErrEmptyTitle        = errors.New("entry title cannot be empty")
	ErrEmptyDescription  = errors.New("journal description cannot be empty")
	ErrEmptyVenue        = errors.New("event venue cannot be empty")
	ErrEmptyOrganizer    = errors.New("event organizer cannot be empty")
	ErrEmptyModality     = errors.New("meeting modality cannot be empty")
	ErrEmptyCreatedBy    = errors.New("task creator cannot be empty")
	ErrInvalidEntryType  = errors.New("invalid entry type")
	ErrInvalidPriority   = errors.New("invalid task priority")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrTaskAlreadyDone   = errors.New("task is already done")
)

// Entry is a single schedulable record in a calendar. It is a tagged
// union over the four variants: Type selects which of the optional
// fields are meaningful, and Validate enforces the per-variant rules.
//
// Variant field usage:
//   - event:   Venue, Organizer, StartTime, EndTime
//   - journal: Description is required, no extra fields
//   - meeting: Modality required; Venue, Link optional; StartTime, EndTime
//   - task:    Priority, Status, CreatedBy, FinishedBy; no time range
type Entry struct {
	ID          uuid.UUID `json:"id"`
	Type        EntryType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        Date      `json:"date"`

	Venue     string    `json:"venue,omitempty"`
	Organizer string    `json:"organizer,omitempty"`
	StartTime ClockTime `json:"start_time,omitempty"`
	EndTime   ClockTime `json:"end_time,omitempty"`

	Modality string `json:"modality,omitempty"`
	Link     string `json:"link,omitempty"`

	Priority   TaskPriority `json:"priority,omitempty"`
	Status     TaskStatus   `json:"status,omitempty"`
	CreatedBy  string       `json:"created_by,omitempty"`
	FinishedBy string       `json:"finished_by,omitempty"`
}

// NewEvent creates an event entry. The organizer is conventionally the
// creating account's username. Returns an error if validation fails.
func NewEvent(
	title, description string,
	date Date,
	venue, organizer string,
	start, end ClockTime,
) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.New(),
		Type:        EntryTypeEvent,
		Title:       title,
		Description: description,
		Date:        date,
		Venue:       venue,
		Organizer:   organizer,
		StartTime:   start,
		EndTime:     end,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// NewJournal creates a journal entry. Unlike the other variants the
// description is required. The one-journal-per-date rule is enforced by
// the calendar holding the entry, not here.
func NewJournal(title, description string, date Date) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.New(),
		Type:        EntryTypeJournal,
		Title:       title,
		Description: description,
		Date:        date,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// NewMeeting creates a meeting entry. Modality is required; venue and
// link are optional so both on-site and remote meetings fit.
func NewMeeting(
	title, description string,
	date Date,
	modality, venue, link string,
	start, end ClockTime,
) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.New(),
		Type:        EntryTypeMeeting,
		Title:       title,
		Description: description,
		Date:        date,
		Modality:    modality,
		Venue:       venue,
		Link:        link,
		StartTime:   start,
		EndTime:     end,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// NewTask creates a task entry in the pending state.
// Returns an error if validation fails.
func NewTask(
	title, description string,
	date Date,
	priority TaskPriority,
	createdBy string,
) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.New(),
		Type:        EntryTypeTask,
		Title:       title,
		Description: description,
		Date:        date,
		Priority:    priority,
		Status:      TaskStatusPending,
		CreatedBy:   createdBy,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks the shared fields and the per-variant required fields.
// Returns the first violation found.
func (e *Entry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEmptyEntryID
	}

	if e.Title == "" {
		return ErrEmptyTitle
	}

	if err := e.Date.Validate(); err != nil {
		return err
	}

	switch e.Type {
	case EntryTypeEvent:
		if e.Venue == "" {
			return ErrEmptyVenue
		}
		if e.Organizer == "" {
			return ErrEmptyOrganizer
		}
		return e.validateTimeRange()

	case EntryTypeJournal:
		if e.Description == "" {
			return ErrEmptyDescription
		}
		return nil

	case EntryTypeMeeting:
		if e.Modality == "" {
			return ErrEmptyModality
		}
		return e.validateTimeRange()

	case EntryTypeTask:
		if !isValidTaskPriority(e.Priority) {
			return ErrInvalidPriority
		}
		if !isValidTaskStatus(e.Status) {
			return ErrInvalidTaskStatus
		}
		if e.CreatedBy == "" {
			return ErrEmptyCreatedBy
		}
		return nil

	default:
		return ErrInvalidEntryType
	}
}

// validateTimeRange checks the start/end pair shared by the timed
// variants: both must be present, well-formed, and in order.
func (e *Entry) validateTimeRange() error {
	if err := e.StartTime.Validate(); err != nil {
		return err
	}
	if err := e.EndTime.Validate(); err != nil {
		return err
	}
	if e.EndTime.Before(e.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

// MarkDone completes a task, recording who finished it.
// Returns an error for non-task entries or tasks already done.
func (e *Entry) MarkDone(finishedBy string) error {
	if e.Type != EntryTypeTask {
		return ErrInvalidEntryType
	}
	if e.Status == TaskStatusDone {
		return ErrTaskAlreadyDone
	}

	e.Status = TaskStatusDone
	e.FinishedBy = finishedBy
	return nil
}

// Clone returns a value-equal, reference-distinct copy of the entry.
// Used when a public calendar is duplicated into a private copy.
func (e *Entry) Clone() *Entry {
	clone := *e
	return &clone
}

// DisplayString renders the entry for presentation layers. Every
// variant leads with its type tag, title, and date; variant fields
// follow in a fixed order.
func (e *Entry) DisplayString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s (%s)", strings.ToUpper(string(e.Type)), e.Title, e.Date)

	switch e.Type {
	case EntryTypeEvent:
		fmt.Fprintf(&b, " %s-%s at %s, organized by %s", e.StartTime, e.EndTime, e.Venue, e.Organizer)
	case EntryTypeMeeting:
		fmt.Fprintf(&b, " %s-%s via %s", e.StartTime, e.EndTime, e.Modality)
		if e.Venue != "" {
			fmt.Fprintf(&b, " at %s", e.Venue)
		}
		if e.Link != "" {
			fmt.Fprintf(&b, " <%s>", e.Link)
		}
	case EntryTypeTask:
		fmt.Fprintf(&b, " priority=%s status=%s created by %s", e.Priority, e.Status, e.CreatedBy)
		if e.FinishedBy != "" {
			fmt.Fprintf(&b, ", finished by %s", e.FinishedBy)
		}
	}

	if e.Description != "" {
		fmt.Fprintf(&b, ": %s", e.Description)
	}

	return b.String()
}

// isValidTaskPriority checks if the given priority is a valid TaskPriority.
func isValidTaskPriority(priority TaskPriority) bool {
	switch priority {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	default:
		return false
	}
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusDone:
		return true
	default:
		return false
	}
}
