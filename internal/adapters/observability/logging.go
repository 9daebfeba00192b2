package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the service-wide zerolog Logger: JSON to stdout, or a
// human-friendly console writer when APP_ENV=dev.
func NewLogger(env, service string) zerolog.Logger {
	l := zerolog.New(os.Stdout)
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return l.With().Timestamp().Str("service", service).Logger()
}
