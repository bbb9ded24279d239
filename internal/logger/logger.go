// Package logger provides logging utilities for api-surface-check using the bullets library.
//
// It wraps [bullets.Logger] with convenience constructors for creating loggers
// at various levels and a silent logger for use in tests or when no output is desired.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Checking capabilities")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"os"

	"github.com/sgaunet/bullets"
)

// ParseLevel maps a textual level to a bullets level.
// Unknown values fall back to info.
func ParseLevel(logLevel string) bullets.Level {
	switch logLevel {
	case "debug":
		return bullets.DebugLevel
	case "warn":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}

// NewLogger creates a new logger that writes to stdout at the specified level.
//
// Parameters:
//   - logLevel: one of "debug", "info", "warn", "error" (defaults to "info" for unknown values)
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerWithWriter(logLevel, os.Stdout)
}

// NewLoggerWithWriter is like [NewLogger] but writes to w.
func NewLoggerWithWriter(logLevel string, w io.Writer) *bullets.Logger {
	logger := bullets.New(w)
	logger.SetLevel(ParseLevel(logLevel))
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
// Useful for tests and silent operation.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}
