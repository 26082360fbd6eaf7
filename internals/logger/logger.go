package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. Level comes from LOG_LEVEL (debug|info|warn|error).
var Log zerolog.Logger

func Init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	Log = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	// pretty output for local runs
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" && os.Getenv("LOG_JSON") == "" {
		Log = Log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
