package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
}

// TestSetupLoggingDisabledByDefault verifies logging is off without debug or a file
func TestSetupLoggingDisabledByDefault(t *testing.T) {
	restoreLogger(t)

	f, err := setupLogging("", false, zerolog.InfoLevel)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, zerolog.Disabled, log.Logger.GetLevel())
}

// TestSetupLoggingDebugDefaultPath verifies -debug writes to logs/captcha-rush.log
func TestSetupLoggingDebugDefaultPath(t *testing.T) {
	restoreLogger(t)
	t.Chdir(t.TempDir())

	f, err := setupLogging("", true, zerolog.InfoLevel)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
	log.Debug().Str("round", "test").Msg("debug line")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
	assert.Contains(t, string(data), "round=test")
}

// TestSetupLoggingConfiguredFile verifies a configured file honors the level
func TestSetupLoggingConfiguredFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "nested", "rush.log")

	f, err := setupLogging(path, false, zerolog.WarnLevel)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}
