package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levelFor maps the -v count to a log level
func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger. Console output always goes to
// stderr; with withFile the same events are appended to paths.LogFile().
func SetupLogger(verbosity int, withFile bool) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}

	logPath := paths.LogFile()
	var fileErr error
	if withFile {
		var f *os.File
		if f, fileErr = openLogFile(logPath); fileErr == nil {
			out = zerolog.MultiLevelWriter(out, f)
		}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Cannot open log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Bool("fileLogging", withFile && fileErr == nil).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// LogOperationStart logs the start of an operation at debug level and
// returns a func that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
