package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Text output on stdout keeps local runs
// readable; the level can be raised via VERISTUB_LOG_LEVEL=debug.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("VERISTUB_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
