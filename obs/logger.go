// SPDX-License-Identifier: MIT
// File: logger.go
// Role: thin, nil-safe wrapper over charmbracelet/log used for
// debug-level tracing of container state transitions (sync, batch,
// mark, compress).

package obs

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// Logger wraps a charmbracelet logger. The zero value is unusable; a nil
// *Logger is the supported no-op form.
type Logger struct {
	l *charmlog.Logger
}

// NewLogger returns a Logger writing timestamped debug-level records
// to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{l: charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.DebugLevel,
	})}
}

// Wrap adapts an existing charmbracelet logger.
func Wrap(l *charmlog.Logger) *Logger {
	if l == nil {
		return nil
	}

	return &Logger{l: l}
}

// With returns a Logger carrying the given key/value pairs on every
// subsequent record. Safe on nil receivers.
func (x *Logger) With(kv ...any) *Logger {
	if x == nil {
		return nil
	}

	return &Logger{l: x.l.With(kv...)}
}

// Debug emits a debug record with the given message and key/value
// pairs. Safe on nil receivers.
func (x *Logger) Debug(msg string, kv ...any) {
	if x == nil {
		return
	}
	x.l.Debug(msg, kv...)
}
