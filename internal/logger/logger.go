/*
Package logger builds the zerolog logger used across histpick. The picker
owns the terminal, so logs go to a file, never to stdout or stderr.
*/
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/rs/zerolog"
)

const (
	logFilename   = "histpick.log"
	levelDisabled = "disabled"
)

// Config represents logger configuration
type Config struct {
	// Level is a zerolog level name; "disabled" turns logging off.
	Level string
	// Output is the log file path; empty means $HOME/.histpick/histpick.log.
	Output string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{Level: levelDisabled}
}

// New returns a logger writing to the configured file and the closer for that
// file. A disabled level yields a no-op logger and opens nothing.
func New(config Config) (zerolog.Logger, io.Closer, error) {
	if config.Level == "" {
		config.Level = levelDisabled
	}
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}
	if level == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	path := config.Output
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, file, nil
}

// DefaultPath returns $HOME/.histpick/histpick.log.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, settings.DataDirName, logFilename), nil
}

// WithComponent adds a component field for structured logging
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
