package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger that writes diagnostics to stderr with the given
// component field. Report output belongs on stdout, so the logger never
// writes there. APP_ENV=dev switches to the human-readable console format.
func New(component string) zerolog.Logger {
	env := strings.ToLower(os.Getenv("APP_ENV"))
	if env == "dev" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", component).Logger()
}
