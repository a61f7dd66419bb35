// Package clog provides global conditional logging for application
// components, backed by github.com/rs/zerolog. A Logger carries a
// fixed prefix (identifying the component and, for operator services,
// the owned operation) the way the teacher's package did with the
// standard library's *log.Logger, but structures output as zerolog
// fields instead of a formatted prefix string.
package clog

import (
	"os"

	"github.com/rs/zerolog"
)

var enabled = false

// Enable turns on conditional log output (the -l command line flag in
// every cmd/* binary).
func Enable() {
	enabled = true
}

// base is the process-wide zerolog sink; every Logger derives from it
// via With().
var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).With().Timestamp().Logger()

// A Logger logs output in the manner of zerolog but can be
// conditionally silenced for Printf-level output. By default
// conditional logging is disabled; Errorf always logs.
type Logger struct {
	z zerolog.Logger
}

// New creates a Logger tagged with component and id, mirroring the
// teacher's New(prefixFormat, prefixArgs...) call sites
// (clog.New("%v %s ", role, id)) but carrying the fields structured
// instead of pre-formatted into a string prefix.
func New(component string, id string) *Logger {
	return &Logger{z: base.With().Str("component", component).Str("id", id).Logger()}
}

// Printf logs output conditionally (if enabled with -l) at info level.
func (l *Logger) Printf(format string, a ...any) {
	if !enabled {
		return
	}
	l.z.Info().Msgf(format, a...)
}

// Errorf logs output unconditionally at error level.
func (l *Logger) Errorf(format string, a ...any) {
	l.z.Error().Msgf(format, a...)
}

// Zerolog exposes the underlying zerolog.Logger so callers can wire it
// into third-party interceptors (e.g. go-grpc-middleware's logging
// provider) that expect a zerolog.Logger rather than this package's
// narrower Printf/Errorf surface.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.z
}
