package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the process logger. Console output by default,
// plain JSON when LOG_JSON is set (for log shippers).
func New() zerolog.Logger {
	if os.Getenv("LOG_JSON") != "" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger()
}
