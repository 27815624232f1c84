package util

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger creates a zerolog.Logger writing to w at the named level
// ("debug", "info", "warn" or "error"; anything else means "warn").
// The format is "json" or "text".
func NewLogger(levelStr, formatStr string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if formatStr != "json" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}
