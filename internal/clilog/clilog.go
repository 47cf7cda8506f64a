// Package clilog builds the ambient operational logger shared by the
// command-line entry points. It is strictly separate from the diagnostic
// line and cache trace written to stdout.
package clilog

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New returns a logger writing to stderr at Info level, or Debug level when
// verbose is set. The fanout wrapping is a single handler today but makes
// adding a second sink (a log file, a metrics sink) a one-line change.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slogmulti.Fanout(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
	return slog.New(handler)
}
