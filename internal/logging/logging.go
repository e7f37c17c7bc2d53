// Package logging builds the structured slog logger used by the CLI and
// offered to library consumers.
//
//	logger := logging.New("info", "json", os.Stderr)
//
// The handler redacts credentials before they reach the output, so
// passing request diagnostics through the logger is safe even when a
// body or header carries the account password or a bearer token.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level. Valid values are
// "debug", "info", "warn", and "error"; unrecognized values default to
// info. The format parameter selects the handler: "text" uses
// slog.NewTextHandler, everything else (including "json") uses
// slog.NewJSONHandler.
//
// When level is "debug", source code location is included.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a level string to slog.Level. Unrecognized values
// default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
