// Structured logging.
//
// Writers and plugins log sparingly: a debug line when auto detection
// switches the active codepage, and one line per encoded or written plugin.
// A nil *Logger is valid everywhere and drops everything.
package tes3

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the slog.Logger used by Writer and Plugin.
type Logger struct {
	*slog.Logger
}

// NewLogger builds a Logger on handler. A nil handler logs text to stderr
// at info level, which hides codepage switches.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON lines to stderr, for tools that batch-convert
// plugins and collect their output.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value text to stderr. Use slog.LevelDebug to see
// every codepage switch.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything. Writers start with it.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithCodepage tags every line with the codepage name, e.g.
// codepage=windows-1250.
func (l *Logger) WithCodepage(cp Codepage) *Logger {
	return &Logger{Logger: l.Logger.With("codepage", cp.Name())}
}

// orNoop lets call sites log through a nil *Logger.
func (l *Logger) orNoop() *Logger {
	if l == nil {
		return noop
	}
	return l
}

var noop = NoopLogger()
