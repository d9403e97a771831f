// Package logger provides structured logging for the application.
//
// It uses log/slog to emit structured JSON with a configurable level.
package logger
