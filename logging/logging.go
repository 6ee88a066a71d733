package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	logger.Store(&l)
}

// SetupLogging configures logging.
// If filename is empty, logging is disabled.
// If filename is set, logs go to that file at the given level ("debug",
// "info", "warn", "error"; empty means "info") and Bubble Tea logs are enabled too.
func SetupLogging(filename, level string) (cleanup func(), err error) {
	if filename == "" {
		l := zerolog.Nop()
		logger.Store(&l)
		return func() {}, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	l := New(f, lvl)
	logger.Store(&l)

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}

	// cleanup closes both files
	cleanup = func() {
		tf.Close()
		f.Close()
		d := zerolog.Nop()
		logger.Store(&d)
	}
	return cleanup, nil
}

// New builds a logger writing human-readable lines to w.
func New(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.DateTime}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

// ParseLevel accepts the level names used by the --log-level flag.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// SetLogger replaces the package logger, mainly for tests.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Logger returns the package logger for structured fields.
func Logger() *zerolog.Logger {
	return logger.Load()
}

// IsDebugMode reports whether debug messages are written.
func IsDebugMode() bool {
	return logger.Load().GetLevel() <= zerolog.DebugLevel
}

func Debugf(format string, args ...any) { logger.Load().Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { logger.Load().Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { logger.Load().Warn().Msgf(format, args...) }
func Errorf(format string, args ...any) { logger.Load().Error().Msgf(format, args...) }
