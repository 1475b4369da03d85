package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Every service
// constructor requires a logger; tests that don't assert on log output
// pass this one.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
