package slogobs

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts a level name to a slog.Level. Unknown names map to
// Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a format name to a Format. Unknown names map to
// FormatConsole.
func ParseFormat(name string) Format {
	if strings.EqualFold(strings.TrimSpace(name), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatConsole
}

// LevelFromEnv reads the minimum log level from RESCUE_LOG_LEVEL.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("RESCUE_LOG_LEVEL"))
}

// FormatFromEnv reads the log format from RESCUE_LOG_FORMAT.
func FormatFromEnv() Format {
	return ParseFormat(os.Getenv("RESCUE_LOG_FORMAT"))
}
