// Package logging configures the default slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger installs a text handler, or a JSON handler in production,
// as the default logger.
func SetupLogger(appEnv, logLevel string, out io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(logLevel),
		AddSource: appEnv != "production" && strings.EqualFold(logLevel, "debug"),
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With("app", "legacyprocs")
	slog.SetDefault(logger)
}

// ParseLevel maps a level name to a slog.Level, falling back to Info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
