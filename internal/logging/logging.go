// Package logging builds the structured logger used for diagnostics.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
)

// EnvDebug enables debug logging when set to a true value.
const EnvDebug = "TEMPS_DEBUG"

// DebugEnabled reports whether $TEMPS_DEBUG is set to a true value.
func DebugEnabled() bool {
	v, err := strconv.ParseBool(os.Getenv(EnvDebug))
	return err == nil && v
}

// New returns a text logger writing to w. Without verbose only warnings and
// errors are emitted.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
