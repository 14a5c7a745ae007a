package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "captcha-rush.log"
)

// setupLogging routes the global logger to a file; the screen owns the terminal
// With no file configured and debug off, logging is disabled and nil is returned
func setupLogging(path string, debug bool, level zerolog.Level) (*os.File, error) {
	if path == "" && !debug {
		log.Logger = zerolog.Nop()
		return nil, nil
	}
	if path == "" {
		path = filepath.Join(logDir, logFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return f, nil
}
