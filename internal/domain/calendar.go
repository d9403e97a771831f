package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Visibility is a calendar's access mode.
type Visibility string

// Possible visibility values
const (
	// VisibilityPrivate restricts the calendar to its owner.
	VisibilityPrivate Visibility = "private"

	// VisibilityPublic lets any account view or copy the calendar.
	VisibilityPublic Visibility = "public"
)

// isValidVisibility checks if the given visibility is a known value.
func isValidVisibility(v Visibility) bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}

// Calendar-specific validation errors
var (
	// ErrEmptyCalendarID is returned when a calendar ID is empty or nil.
	ErrEmptyCalendarID = errors.New("calendar ID cannot be empty")

	// ErrEmptyCalendarName is returned when a calendar's name is blank.
	ErrEmptyCalendarName = errors.New("calendar name cannot be empty")
)

// Calendar is a named, visibility-tagged container of entries. Entry
// insertion order is display order and is preserved by every operation.
//
// A family calendar is a Calendar with Family set: it is publicly
// listed but gated behind a numeric passcode fixed at construction.
type Calendar struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
	Family     bool       `json:"family"`
	Entries    []*Entry   `json:"entries"`
	CreatedAt  time.Time  `json:"created_at"`

	// passcode is unexported so it is immutable after construction and
	// never serialized.
	passcode int
}

// NewCalendar creates an empty calendar with the given name and visibility.
// Returns an error if validation fails.
func NewCalendar(name string, visibility Visibility) (*Calendar, error) {
	calendar := &Calendar{
		ID:         uuid.New(),
		Name:       name,
		Visibility: visibility,
		CreatedAt:  time.Now().UTC(),
	}

	if err := calendar.Validate(); err != nil {
		return nil, err
	}

	return calendar, nil
}

// NewFamilyCalendar creates an empty passcode-gated calendar. Family
// calendars are publicly listed, so their visibility is always public;
// the passcode is the actual access gate.
func NewFamilyCalendar(name string, passcode int) (*Calendar, error) {
	calendar, err := NewCalendar(name, VisibilityPublic)
	if err != nil {
		return nil, err
	}

	calendar.Family = true
	calendar.passcode = passcode
	return calendar, nil
}

// Validate checks if the Calendar has valid data.
// Returns an error if any field fails validation.
func (c *Calendar) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCalendarID
	}

	if c.Name == "" {
		return ErrEmptyCalendarName
	}

	if !isValidVisibility(c.Visibility) {
		return ErrInvalidVisibility
	}

	return nil
}

// CheckPasscode reports whether the candidate matches this family
// calendar's passcode. Returns an error for non-family calendars.
func (c *Calendar) CheckPasscode(candidate int) (bool, error) {
	if !c.Family {
		return false, ErrNotFamilyCalendar
	}
	return candidate == c.passcode, nil
}

// SetVisibility changes the calendar's access mode.
// Returns an error if the visibility is not a known value.
func (c *Calendar) SetVisibility(v Visibility) error {
	if !isValidVisibility(v) {
		return ErrInvalidVisibility
	}
	c.Visibility = v
	return nil
}

// AddEntry validates the entry and appends it to the calendar. A
// journal entry is rejected with ErrJournalExists when the calendar
// already holds a journal for the same date.
func (c *Calendar) AddEntry(entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.Type == EntryTypeJournal && c.HasJournalOn(entry.Date) {
		return ErrJournalExists
	}

	c.Entries = append(c.Entries, entry)
	return nil
}

// RemoveEntry removes the entry with the given ID.
// Returns ErrEntryNotFound if no entry has that ID.
func (c *Calendar) RemoveEntry(id uuid.UUID) error {
	for i, entry := range c.Entries {
		if entry.ID == id {
			c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// RemoveFirstByTitle removes the first entry, in display order, whose
// title matches exactly. Later entries with the same title are kept;
// this is a stop-at-first-match contract, not remove-all.
// Returns ErrEntryNotFound if no title matches.
func (c *Calendar) RemoveFirstByTitle(title string) error {
	for i, entry := range c.Entries {
		if entry.Title == title {
			c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// EditEntry replaces the entry with the given ID in place, so the
// replacement keeps the old entry's position in display order. The
// replacement also inherits the old entry's ID, keeping the entry's
// identity stable across edits. Returns ErrEntryNotFound if no entry
// has that ID, or a validation error if the replacement is invalid.
func (c *Calendar) EditEntry(id uuid.UUID, replacement *Entry) error {
	for i, entry := range c.Entries {
		if entry.ID == id {
			replacement.ID = id
			if err := replacement.Validate(); err != nil {
				return err
			}
			if replacement.Type == EntryTypeJournal &&
				c.hasOtherJournalOn(replacement.Date, id) {
				return ErrJournalExists
			}
			c.Entries[i] = replacement
			return nil
		}
	}
	return ErrEntryNotFound
}

// FindEntry returns the entry with the given ID, or nil if absent.
func (c *Calendar) FindEntry(id uuid.UUID) *Entry {
	for _, entry := range c.Entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// EntriesOn returns the entries whose date equals d exactly, in
// display order. There is no range matching or zone normalization.
func (c *Calendar) EntriesOn(d Date) []*Entry {
	var matched []*Entry
	for _, entry := range c.Entries {
		if entry.Date == d {
			matched = append(matched, entry)
		}
	}
	return matched
}

// HasJournalOn reports whether the calendar holds a journal entry for
// the exact date.
func (c *Calendar) HasJournalOn(d Date) bool {
	return c.hasOtherJournalOn(d, uuid.Nil)
}

// hasOtherJournalOn reports whether a journal exists on the date with
// an ID other than exclude. The exclusion lets an edit keep a journal
// on its own date.
func (c *Calendar) hasOtherJournalOn(d Date, exclude uuid.UUID) bool {
	for _, entry := range c.Entries {
		if entry.Type == EntryTypeJournal && entry.Date == d && entry.ID != exclude {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the calendar under a new identity, name,
// and visibility. Every entry is cloned, so mutating the copy never
// touches the original. Used to duplicate a public calendar into a
// private copy.
func (c *Calendar) Clone(name string, visibility Visibility) (*Calendar, error) {
	clone, err := NewCalendar(name, visibility)
	if err != nil {
		return nil, err
	}

	clone.Entries = make([]*Entry, 0, len(c.Entries))
	for _, entry := range c.Entries {
		clone.Entries = append(clone.Entries, entry.Clone())
	}

	return clone, nil
}

// Snapshot returns a deep copy of the calendar under the same identity.
// Callers that hand calendars to code running outside the owning lock
// pass snapshots, never the live aggregate.
func (c *Calendar) Snapshot() *Calendar {
	snapshot := *c
	snapshot.Entries = make([]*Entry, 0, len(c.Entries))
	for _, entry := range c.Entries {
		snapshot.Entries = append(snapshot.Entries, entry.Clone())
	}
	return &snapshot
}
