// Package config loads service settings from an optional TOML file, a .env file
// and the process environment, in increasing order of precedence.
package config

import (
	"io"
	"log/slog"
	"strings"
)

// InitLogger installs a JSON slog handler at the given level as the default logger.
func InitLogger(w io.Writer, level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	slog.SetDefault(slog.New(h))
}
