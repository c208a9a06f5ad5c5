package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Format names for LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	// Level is the minimum level emitted: "debug", "info", "warn" or
	// "error". Defaults to info.
	Level string
	// Format selects the handler: "json" for machine consumption, "text"
	// for terminals. Defaults to json.
	Format string
}

// NewLogger creates a slog.Logger writing to w with the configured level and
// format. Invalid or empty config fields fall back to their defaults; the
// constructor never fails.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
