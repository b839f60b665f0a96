// Package logger wraps zerolog.Logger for pwvault.
//
// The vault is an interactive terminal program, so log lines go to a file
// next to the vault data instead of stdout where they would interleave with
// prompts. Secrets, master passwords and derived keys must never be passed
// to a logger.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New builds a JSON logger tagged with role that writes to w.
func New(w io.Writer, role string, debug bool) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewFileLogger opens (or creates) the log file at path in append mode and
// returns a logger writing to it together with a close function. If the file
// cannot be opened the logger falls back to stderr.
func NewFileLogger(path, role string, debug bool) (*Logger, func() error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err == nil {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err == nil {
			return New(f, role, debug), f.Close
		}
	}

	return New(os.Stderr, role, debug), func() error { return nil }
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a logger carrying an extra string field.
func (l *Logger) Child(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}
