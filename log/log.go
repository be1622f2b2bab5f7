// Package log provides this node's structured logging: a thin wrapper
// around github.com/ethereum/go-ethereum/log so every subsystem logs
// through the same handler and level configuration.
package log

import (
	"log/slog"

	gethlog "github.com/ethereum/go-ethereum/log"
)

// Logger wraps a gethlog.Logger, adding the module-tagging convenience
// subsystems use to identify their log lines.
type Logger struct {
	inner gethlog.Logger
}

var defaultLogger = &Logger{inner: gethlog.Root()}

// NewLogger wraps an existing gethlog.Logger.
func NewLogger(l gethlog.Logger) *Logger {
	return &Logger{inner: l}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
		gethlog.SetDefault(l.inner)
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger tagged with a "module" attribute, the
// primary way subsystems (vm, executor, chain, ...) get their own
// contextual logger.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

func (l *Logger) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// Package-level convenience functions delegate to defaultLogger.

func Trace(msg string, args ...any) { defaultLogger.Trace(msg, args...) }
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { defaultLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// Module returns a child of the default logger tagged with "module".
func Module(name string) *Logger { return defaultLogger.Module(name) }

// LevelFromString maps a --log-level CLI value onto a slog.Level, the same
// mapping cmd/eth2030-geth/main.go uses for its --verbosity flag.
func LevelFromString(s string) slog.Level {
	switch s {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "trace":
		return gethlog.LevelTrace
	default:
		return slog.LevelInfo
	}
}
