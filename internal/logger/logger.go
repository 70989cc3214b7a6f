package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes the global zerolog level and returns a logger writing
// to w.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic, disabled)
//   - format: "json" for machine-readable output, "pretty" for a console format
//
// The TUI owns the terminal, so callers pass a file or io.Discard rather
// than stdout while it runs.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}

	writer := w
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).
		With().
		Timestamp().
		Str("app", "smartassess").
		Logger()
}
