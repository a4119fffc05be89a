// Package util provides logger construction shared by the job binary.
package util

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console-only logger. Used for bootstrap errors that
// happen before the job's log file can be opened.
func NewLogger(level string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(console).With().Timestamp().Logger().Level(parseLevel(level))
}

// NewJobLogger returns a logger that duplicates every line to the console and
// to an append-only log file, plus a close func for the file handle. The file
// is appended to, not truncated, so successive runs share one log trail.
func NewJobLogger(path, level string) (zerolog.Logger, func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	sink := zerolog.MultiLevelWriter(console, file)
	logger := zerolog.New(sink).With().Timestamp().Logger().Level(parseLevel(level))
	return logger, file.Close, nil
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return lvl
}
