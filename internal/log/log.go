// Package log configures structured logging for eventcheck using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool) {
	SetupWriter(os.Stderr, verbose, quiet)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, verbose, quiet bool) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level(verbose, quiet),
	})
	slog.SetDefault(slog.New(handler))
}

func level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ForRun returns the default logger tagged with a fresh run_id, and the id.
func ForRun() (*slog.Logger, string) {
	id := uuid.NewString()
	return slog.Default().With("run_id", id), id
}
