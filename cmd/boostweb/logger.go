package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// initLogger builds the process logger. Console output; errors only when
// quiet is set.
func initLogger(app string, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.ErrorLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}

// logAdapter exposes a zerolog.Logger through the boostweb.Logger interface.
// The args are alternating key-value pairs.
type logAdapter struct {
	l zerolog.Logger
}

func (a logAdapter) Debug(msg string, args ...any) { a.l.Debug().Fields(args).Msg(msg) }
func (a logAdapter) Info(msg string, args ...any)  { a.l.Info().Fields(args).Msg(msg) }
func (a logAdapter) Warn(msg string, args ...any)  { a.l.Warn().Fields(args).Msg(msg) }
func (a logAdapter) Error(msg string, args ...any) { a.l.Error().Fields(args).Msg(msg) }
