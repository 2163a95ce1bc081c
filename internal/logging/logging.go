// Package logging configures the process-wide slog logger. The TUI owns
// stdout, so diagnostics go to a file (or nowhere when unconfigured).
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewFileLogger returns a text-handler logger appending to path, creating
// parent directories as needed. The returned close func flushes the file.
func NewFileLogger(path string) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, f.Close, nil
}

// FromPath builds a logger for the configured path; an empty path means
// logging is disabled and everything is discarded.
func FromPath(path string) (*slog.Logger, func() error) {
	if path == "" {
		return Discard(), func() error { return nil }
	}
	log, closeFn, err := NewFileLogger(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file unavailable:", err)
		return Discard(), func() error { return nil }
	}
	return log, closeFn
}
