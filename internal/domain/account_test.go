package domain

import (
	"testing"
)

func TestNewAccount(t *testing.T) {
	account, err := NewAccount("alice", "pw1")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.Username != "alice" {
		t.Errorf("Expected username alice, got %s", account.Username)
	}

	if !account.Active {
		t.Error("Expected new account to be active")
	}

	if account.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test empty username
	_, err = NewAccount("", "pw1")
	if err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test empty password
	_, err = NewAccount("alice", "")
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestAccountAuthenticate(t *testing.T) {
	account, err := NewAccount("alice", "pw1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !account.Authenticate("alice", "pw1") {
		t.Error("Expected exact credentials to authenticate")
	}

	if account.Authenticate("alice", "pw2") {
		t.Error("Expected wrong password to fail")
	}

	if account.Authenticate("Alice", "pw1") {
		t.Error("Expected username match to be case-sensitive")
	}

	// Deactivated accounts never authenticate, even with exact credentials
	account.Deactivate()
	if account.Authenticate("alice", "pw1") {
		t.Error("Expected deactivated account to fail authentication")
	}
}

func TestAccountDeactivatePreservesData(t *testing.T) {
	account, _ := NewAccount("bob", "secret")
	account.AddOwnedCalendar("Work")
	account.AddOwnedCalendar("Home")

	account.Deactivate()

	if account.Active {
		t.Error("Expected account to be inactive after Deactivate")
	}

	// Soft delete keeps the owned-calendar names
	if len(account.OwnedCalendars) != 2 {
		t.Errorf("Expected 2 owned calendars after deactivation, got %d", len(account.OwnedCalendars))
	}

	if account.Username != "bob" {
		t.Error("Expected username to survive deactivation")
	}
}

func TestAccountOwnedCalendars(t *testing.T) {
	account, _ := NewAccount("carol", "pw")

	account.AddOwnedCalendar("Work")
	account.AddOwnedCalendar("Work") // idempotent

	if len(account.OwnedCalendars) != 1 {
		t.Errorf("Expected idempotent add, got %d names", len(account.OwnedCalendars))
	}

	if !account.OwnsCalendar("Work") {
		t.Error("Expected account to own Work")
	}

	if account.OwnsCalendar("work") {
		t.Error("Expected ownership lookup to be case-sensitive")
	}

	// Removing an absent name is a no-op
	account.RemoveOwnedCalendar("Home")
	if len(account.OwnedCalendars) != 1 {
		t.Errorf("Expected no-op removal, got %d names", len(account.OwnedCalendars))
	}

	account.RemoveOwnedCalendar("Work")
	if account.OwnsCalendar("Work") {
		t.Error("Expected Work to be removed")
	}
}
