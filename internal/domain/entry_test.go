package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testDate(t *testing.T) Date {
	t.Helper()
	d, err := NewDate(2025, time.June, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return d
}

func TestNewEvent(t *testing.T) {
	date := testDate(t)

	event, err := NewEvent("Launch", "v1 release", date, "HQ", "alice", "09:00", "10:30")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if event.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if event.Type != EntryTypeEvent {
		t.Errorf("Expected type %s, got %s", EntryTypeEvent, event.Type)
	}

	// Required fields per variant
	if _, err = NewEvent("Launch", "", date, "", "alice", "09:00", "10:30"); err != ErrEmptyVenue {
		t.Errorf("Expected error %v, got %v", ErrEmptyVenue, err)
	}

	if _, err = NewEvent("Launch", "", date, "HQ", "", "09:00", "10:30"); err != ErrEmptyOrganizer {
		t.Errorf("Expected error %v, got %v", ErrEmptyOrganizer, err)
	}

	if _, err = NewEvent("", "", date, "HQ", "alice", "09:00", "10:30"); err != ErrEmptyTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTitle, err)
	}

	// End before start is rejected
	if _, err = NewEvent("Launch", "", date, "HQ", "alice", "10:30", "09:00"); err != ErrInvalidTimeRange {
		t.Errorf("Expected error %v, got %v", ErrInvalidTimeRange, err)
	}
}

func TestNewJournal(t *testing.T) {
	date := testDate(t)

	journal, err := NewJournal("Today", "Shipped the release", date)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if journal.Type != EntryTypeJournal {
		t.Errorf("Expected type %s, got %s", EntryTypeJournal, journal.Type)
	}

	// Description is required for journals only
	_, err = NewJournal("Today", "", date)
	if err != ErrEmptyDescription {
		t.Errorf("Expected error %v, got %v", ErrEmptyDescription, err)
	}
}

func TestNewMeeting(t *testing.T) {
	date := testDate(t)

	meeting, err := NewMeeting("Standup", "", date, "online", "", "https://meet.example.com/standup", "09:15", "09:30")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if meeting.Type != EntryTypeMeeting {
		t.Errorf("Expected type %s, got %s", EntryTypeMeeting, meeting.Type)
	}

	// Modality is required; venue and link are optional
	_, err = NewMeeting("Standup", "", date, "", "", "", "09:15", "09:30")
	if err != ErrEmptyModality {
		t.Errorf("Expected error %v, got %v", ErrEmptyModality, err)
	}

	_, err = NewMeeting("Standup", "", date, "onsite", "Room 4", "", "09:15", "09:30")
	if err != nil {
		t.Errorf("Expected no error with empty link, got %v", err)
	}

	// Malformed clock time is rejected
	_, err = NewMeeting("Standup", "", date, "online", "", "", "9am", "10am")
	if err == nil || !strings.Contains(err.Error(), "invalid time of day") {
		t.Errorf("Expected invalid clock time error, got %v", err)
	}
}

func TestNewTask(t *testing.T) {
	date := testDate(t)

	task, err := NewTask("File taxes", "before deadline", date, TaskPriorityHigh, "alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected new task to be pending, got %s", task.Status)
	}

	if _, err = NewTask("File taxes", "", date, "urgent", "alice"); err != ErrInvalidPriority {
		t.Errorf("Expected error %v, got %v", ErrInvalidPriority, err)
	}

	if _, err = NewTask("File taxes", "", date, TaskPriorityLow, ""); err != ErrEmptyCreatedBy {
		t.Errorf("Expected error %v, got %v", ErrEmptyCreatedBy, err)
	}
}

func TestTaskMarkDone(t *testing.T) {
	date := testDate(t)

	task, _ := NewTask("File taxes", "", date, TaskPriorityMedium, "alice")

	if err := task.MarkDone("bob"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != TaskStatusDone {
		t.Errorf("Expected status %s, got %s", TaskStatusDone, task.Status)
	}

	if task.FinishedBy != "bob" {
		t.Errorf("Expected finisher bob, got %s", task.FinishedBy)
	}

	if err := task.MarkDone("carol"); err != ErrTaskAlreadyDone {
		t.Errorf("Expected error %v, got %v", ErrTaskAlreadyDone, err)
	}

	journal, _ := NewJournal("Today", "text", date)
	if err := journal.MarkDone("bob"); err != ErrInvalidEntryType {
		t.Errorf("Expected error %v, got %v", ErrInvalidEntryType, err)
	}
}

func TestEntryClone(t *testing.T) {
	date := testDate(t)

	original, _ := NewEvent("Launch", "v1 release", date, "HQ", "alice", "09:00", "10:30")
	clone := original.Clone()

	if clone == original {
		t.Fatal("Expected clone to be a distinct instance")
	}

	if *clone != *original {
		t.Error("Expected clone to be value-equal to the original")
	}

	// Mutating the clone must not touch the original
	clone.Title = "Postponed launch"
	if original.Title != "Launch" {
		t.Error("Expected original title to be unchanged after mutating clone")
	}
}

func TestEntryDisplayString(t *testing.T) {
	date := testDate(t)

	event, _ := NewEvent("Launch", "v1", date, "HQ", "alice", "09:00", "10:30")
	s := event.DisplayString()
	for _, want := range []string{"EVENT", "Launch", "2025-06-01", "HQ", "alice", "09:00", "10:30"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected display string to contain %q, got %q", want, s)
		}
	}

	task, _ := NewTask("File taxes", "", date, TaskPriorityHigh, "alice")
	s = task.DisplayString()
	for _, want := range []string{"TASK", "priority=high", "status=pending"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected display string to contain %q, got %q", want, s)
		}
	}
}
