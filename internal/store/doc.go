// Package store defines the interfaces the calendar service persists
// accounts and calendars through, keeping the session controller
// independent of the backing registry implementation.
package store
