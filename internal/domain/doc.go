// Package domain contains the core calendar entities and rules:
// accounts, calendars (including passcode-gated family calendars), the
// four entry kinds, and the civil date and clock time value types. It
// is independent of storage and transport.
package domain
