package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewDate(t *testing.T) {
	d, err := NewDate(2025, time.June, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if d.String() != "2025-06-01" {
		t.Errorf("Expected 2025-06-01, got %s", d)
	}

	// Days that do not exist are rejected rather than normalized
	if _, err = NewDate(2025, time.February, 30); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}

	if _, err = NewDate(2025, time.Month(13), 1); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}

	// Leap day is valid only in leap years
	if _, err = NewDate(2024, time.February, 29); err != nil {
		t.Errorf("Expected leap day to be valid in 2024, got %v", err)
	}
	if _, err = NewDate(2025, time.February, 29); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate for 2025-02-29, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := Date{Year: 2025, Month: time.June, Day: 1}
	if d != want {
		t.Errorf("Expected %v, got %v", want, d)
	}

	if _, err = ParseDate("06/01/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}
}

func TestDateEquality(t *testing.T) {
	a, _ := NewDate(2025, time.June, 1)
	b := DateOf(time.Date(2025, time.June, 1, 23, 59, 0, 0, time.UTC))

	// Exact field equality is the only comparison; time of day is ignored
	if a != b {
		t.Errorf("Expected %v to equal %v", a, b)
	}
}

func TestClockTime(t *testing.T) {
	valid := []ClockTime{"00:00", "09:30", "23:59"}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Errorf("Expected %q to be valid, got %v", c, err)
		}
	}

	invalid := []ClockTime{"", "24:00", "9:3", "noon", "09:60"}
	for _, c := range invalid {
		if err := c.Validate(); !errors.Is(err, ErrInvalidClockTime) {
			t.Errorf("Expected %q to be invalid, got %v", c, err)
		}
	}

	if !ClockTime("09:00").Before("10:30") {
		t.Error("Expected 09:00 to be before 10:30")
	}
	if ClockTime("10:30").Before("10:30") {
		t.Error("Expected Before to be strict")
	}
}
