// Package service provides the Controller, the orchestrator that the
// presentation layer talks to. It owns one session's state (signed-in
// account, selected calendar, selected date) on top of the shared
// account and calendar registries, and enforces the identity,
// ownership, and visibility rules on every operation.
package service
