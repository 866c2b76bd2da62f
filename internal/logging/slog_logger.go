// file: internal/logging/slog_logger.go
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log level names accepted by InitLogging and SetupDefaultLogger.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// slogLogger implements the Logger interface using the standard
// library's structured logger with a JSON handler.
type slogLogger struct {
	logger *slog.Logger
}

// Debug logs a debug-level message.
func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info-level message.
func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning-level message.
func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error-level message.
func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// WithContext returns the logger itself; slog handlers receive the
// context per call, so there is nothing to capture here.
func (l *slogLogger) WithContext(_ context.Context) Logger {
	return l
}

// WithField returns a logger with an additional field attached to every record.
func (l *slogLogger) WithField(key string, value any) Logger {
	return &slogLogger{logger: l.logger.With(key, value)}
}

// parseLevel maps a level name to a slog.Level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogging installs a JSON logger writing to w as the application
// default. Tests use this to capture and inspect log output.
func InitLogging(level string, w io.Writer) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	SetDefaultLogger(&slogLogger{logger: slog.New(handler)})
}

// SetupDefaultLogger configures the default application logger to write
// JSON records to stderr at the given level.
func SetupDefaultLogger(level string) {
	InitLogging(level, os.Stderr)
}
