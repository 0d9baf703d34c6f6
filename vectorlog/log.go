// Package vectorlog provides the structured logger CLI and service callers
// use. The proof and tree packages never import it: the engine is pure and
// has nothing to log.
package vectorlog

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a text-handler slog.Logger at the given level ("DEBUG",
// "INFO", "WARN", "ERROR"), tagged with service. Unrecognised levels fall
// back to INFO.
func New(level, service string) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(h).With("service", service)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
