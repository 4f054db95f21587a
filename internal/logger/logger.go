package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the root zerolog logger. format "pretty" gets a console
// writer for dev; anything else emits raw JSON. Unknown level strings
// fall back to info.
func Setup(level, format string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if format == "pretty" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return zerolog.New(out).With().Timestamp().Caller().Logger()
}
