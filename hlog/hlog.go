// Package hlog provides the structured logger shared by every component in this
// module. It wraps zerolog the way internal/logger wraps it in the Protei
// monitoring service this was adapted from: a global default logger, per-component
// child loggers carrying a "component" field, and thin level-named methods so call
// sites never import zerolog directly.
package hlog

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a component-scoped structured logger.
type Logger struct {
	z zerolog.Logger
}

var (
	global     *Logger
	globalOnce sync.Once
)

// Config controls the global logger's output.
type Config struct {
	// Level is one of zerolog's level names (debug, info, warn, error...).
	Level string
	// Console renders human-readable output instead of JSON, useful for interactive use.
	Console bool
}

// Init installs the global logger. Safe to call once at process startup; later
// calls are no-ops, mirroring the once.Do guard used for the monitoring logger.
func Init(cfg Config) {
	globalOnce.Do(func() {
		global = newLogger(cfg)
	})
}

func newLogger(cfg Config) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out zerolog.Logger
	if cfg.Console {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	} else {
		out = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	out = out.Level(level)

	return &Logger{z: out}
}

// Get returns the global logger, defaulting to an info-level stderr logger if Init
// was never called.
func Get() *Logger {
	if global == nil {
		global = newLogger(Config{Level: "info"})
	}
	return global
}

// Component returns a child logger tagged with a "component" field, the way
// WithComponent scopes the monitoring service's logger per subsystem.
func Component(name string) *Logger {
	return Get().Component(name)
}

// Component returns a child logger of l tagged with an additional "component" field.
func (l *Logger) Component(name string) *Logger {
	return &Logger{z: l.z.With().Str("component", name).Logger()}
}

// With returns a child logger carrying one additional string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{z: l.z.With().Str(key, value).Logger()}
}

func (l *Logger) Debug(msg string) { l.z.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.z.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.z.Warn().Msg(msg) }

func (l *Logger) Error(msg string, err error) {
	l.z.Error().Err(err).Msg(msg)
}

// Errorf logs an error with a formatted message and one error field.
func (l *Logger) Errorf(err error, format string, args ...interface{}) {
	l.z.Error().Err(err).Msgf(format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.z.Debug().Msgf(format, args...)
}
