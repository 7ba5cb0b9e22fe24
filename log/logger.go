// Package log defines the logging contract used across the module and a
// kataras/golog backed implementation.
package log // import "github.com/smallnest/docqa/log"

import (
	"github.com/kataras/golog"
)

// Logger is the minimal leveled logging interface components depend on.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// GologLogger implements Logger on top of kataras/golog.
type GologLogger struct {
	logger *golog.Logger
}

var _ Logger = (*GologLogger)(nil)

// New creates a golog-backed logger at the given level ("debug", "info",
// "warn", "error" or "disable").
func New(level string) *GologLogger {
	logger := golog.New()
	logger.SetLevel(level)
	return &GologLogger{logger: logger}
}

// Wrap adapts an existing golog.Logger.
func Wrap(logger *golog.Logger) *GologLogger {
	return &GologLogger{logger: logger}
}

// Debug logs a debug message.
func (l *GologLogger) Debug(format string, v ...any) { l.logger.Debugf(format, v...) }

// Info logs an informational message.
func (l *GologLogger) Info(format string, v ...any) { l.logger.Infof(format, v...) }

// Warn logs a warning message.
func (l *GologLogger) Warn(format string, v ...any) { l.logger.Warnf(format, v...) }

// Error logs an error message.
func (l *GologLogger) Error(format string, v ...any) { l.logger.Errorf(format, v...) }

// NopLogger discards everything. It is the default in library
// constructors so logging stays opt-in.
type NopLogger struct{}

var _ Logger = NopLogger{}

// Debug does nothing.
func (NopLogger) Debug(format string, v ...any) {}

// Info does nothing.
func (NopLogger) Info(format string, v ...any) {}

// Warn does nothing.
func (NopLogger) Warn(format string, v ...any) {}

// Error does nothing.
func (NopLogger) Error(format string, v ...any) {}
