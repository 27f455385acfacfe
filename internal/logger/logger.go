package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func New() zerolog.Logger {
	return SetLevel(zerolog.DebugLevel)
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

// WithLevel narrows an existing logger to the named level. Unknown names
// leave the logger untouched.
func WithLevel(logger zerolog.Logger, name string) zerolog.Logger {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		logger.Warn().Err(err).Str("level", name).Msg("ignoring unknown log level")
		return logger
	}
	return logger.Level(level)
}
