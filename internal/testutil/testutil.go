// Package testutil holds small helpers shared by tests.
package testutil

import (
	"io"
	"log/slog"
	"time"
)

func Ptr[T any](v T) *T {
	return &v
}

// Logger discards everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Time parses an RFC 3339 timestamp and panics on error.
func Time(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}
