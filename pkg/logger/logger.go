package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how the process logger is built.
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // console or json
	Output io.Writer // defaults to stderr, keeping stdout free for transport framing
}

// New constructs the process logger. The returned handle is passed
// explicitly into every component; there is no package-level logger state.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
