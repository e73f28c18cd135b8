// Package logger builds the application's *slog.Logger.
//
// Both binaries (the HTTP server and employeectl) share it so their log
// lines look the same.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Environments recognised by New. Anything else is treated as EnvDev.
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// New returns a *slog.Logger configured for the given environment,
// writing to stdout.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter is New with an explicit destination. employeectl logs to
// stderr so its table output on stdout stays clean.
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case EnvProd:
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo, // INFO and above in production
			}),
		)
	case EnvStaging:
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug, // more verbose in staging
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
