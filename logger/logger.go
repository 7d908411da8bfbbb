// Package logger configures the zerolog console logger shared by the binaries
package logger

import (
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout of console output
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

var (
	once sync.Once
	log  zerolog.Logger
)

// New creates a console logger writing to w at level
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// NewFile creates a plain JSON logger writing to w, for output that must not
// interleave with a full-screen terminal UI
func NewFile(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel resolves a level name, empty is info
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// Configure sets up the process logger on w; later calls return the same
// logger and ignore their arguments
func Configure(w io.Writer, level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = TimeFormat
		log = New(w, level)
	})
	return &log
}
