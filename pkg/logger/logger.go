// Package logger builds the process-wide zerolog logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger with the given level and format. Unknown levels fall
// back to info; format "pretty" selects human-readable console output,
// anything else emits JSON.
func New(level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	ctx := zerolog.New(os.Stdout)
	if format == "pretty" {
		ctx = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return ctx.
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "timesheet-report-api").
		Logger()
}
