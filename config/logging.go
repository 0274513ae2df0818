package config

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogging installs a text slog handler writing to w as the default
// logger, at the level named by cfg.LogLevel (info when empty or unknown).
func SetupLogging(cfg *Config, w io.Writer) {
	level := ParseLevel(cfg.LogLevel)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	slog.Debug("Logging initialized", "level", level.String())
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
