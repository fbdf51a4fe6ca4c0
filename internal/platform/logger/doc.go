// Package logger provides structured logging functionality for the application.
//
// It uses Go's standard library log/slog package to implement structured JSON
// logging with a configurable level, and carries request-scoped loggers through
// context.Context so that every log line of a request shares its trace ID.
package logger
