// Package logging provides zerolog-based structured logging helpers.
//
// Loggers travel on the context so that command, engine, and store code can
// emit correlated log lines without threading a logger through every call.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string

	// Format selects "console" (human-readable, default) or "json".
	Format string

	// File is an optional log file path. When set, log output goes to the
	// file instead of stderr so terminal output stays clean.
	File string
}

// formatJSON is the machine-readable output format.
const formatJSON = "json"

// New creates a zerolog.Logger from the given config.
//
// When cfg.File is set and the file can be opened, logs are written there and
// the returned closer must be closed by the caller. On any file error the
// logger falls back to stderr and the closer is nil.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	var closer io.Closer

	if cfg.File != "" {
		file, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr == nil {
			out = file
			closer = file
		}
	}

	if cfg.Format == formatJSON {
		if closer == nil {
			out = os.Stderr
		}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return logger, closer
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext attaches the logger to the context.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached. Callers never need to nil-check the result.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
