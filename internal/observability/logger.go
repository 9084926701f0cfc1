// Package observability sets up process-wide structured logging.
package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel selects the log level (trace, debug, info, warn, error, off).
const EnvLogLevel = "MUDRA_LOG_LEVEL"

// InitLogger installs a console logger tagged with app as the global
// zerolog logger and returns it.
func InitLogger(app string) zerolog.Logger {
	_, noColor := os.LookupEnv("NO_COLOR")
	return initLogger(app, os.Stderr, os.Getenv(EnvLogLevel), noColor)
}

func initLogger(app string, out io.Writer, rawLevel string, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	level, _ := ParseLevel(rawLevel)
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// yield InfoLevel and false.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
