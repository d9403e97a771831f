package domain

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no time-of-day or zone component.
// Two dates are equal exactly when all three fields are equal, which is
// the only comparison the scheduling rules need.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewDate creates a Date from its components.
// Returns an error if the components do not name a real calendar day.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// DateOf extracts the civil date from a time.Time in its own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in ISO 8601 form (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// Validate checks that the date names a real calendar day.
// It round-trips the components through time.Date, which normalizes
// overflow (February 30th becomes March 1st or 2nd), and rejects the
// date if normalization changed anything.
func (d Date) Validate() error {
	if d.Year == 0 {
		return fmt.Errorf("%w: year is required", ErrInvalidDate)
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	year, month, day := t.Date()
	if year != d.Year || month != d.Month || day != d.Day {
		return fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}
	return nil
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the date in ISO 8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ClockTime is a time of day in 24-hour HH:MM form, e.g. "09:30".
type ClockTime string

// Validate checks that the clock time is in zero-padded 24-hour HH:MM
// form. The padding requirement is what makes lexicographic ordering of
// validated values correct.
func (c ClockTime) Validate() error {
	if len(c) != 5 {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	if _, err := time.Parse("15:04", string(c)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	return nil
}

// Before reports whether c is strictly earlier in the day than other.
// Both values must already be validated; zero-padded HH:MM strings
// order lexicographically.
func (c ClockTime) Before(other ClockTime) bool {
	return string(c) < string(other)
}
