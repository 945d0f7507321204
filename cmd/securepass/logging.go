package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w.  Passwords, salts and keys are never
// passed to it.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
