package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the shared application logger.
var Logger = log.Logger //nolint:gochecknoglobals // mirrors zerolog's own global instance

// Config controls log level and output format.
type Config struct {
	Level        string `json:"level"`
	Format       string `json:"format"`
	TimeFormat   string `json:"time_format"`
	ReportCaller bool   `json:"report_caller"`
}

// Init configures the global logger. Format "console" gives human-readable
// output; anything else gives one JSON object per line.
func Init(config Config) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if config.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: config.TimeFormat,
		}
	}

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	contextLogger := zerolog.New(output).
		Level(level).
		With().
		Timestamp()

	if config.ReportCaller {
		contextLogger = contextLogger.Caller()
	}

	Logger = contextLogger.Logger()
	log.Logger = Logger
}

// Debug starts a debug-level log event.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level log event.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level log event.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level log event.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a fatal-level log event; the program exits after logging.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}
