// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define what the application needs from the outside world; adapters
// in cmd/ implement them.
package port

import (
	"context"
)

// Logger defines the interface for structured logging.
//
// Example usage:
//
//	logger.Info("Shapes compared", "first", "Rectangle", "second", "Circle")
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., run ID).
	WithContext(ctx context.Context) Logger
}
