package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvPrefix       = "CAPTCHA_RUSH_"
	EnvVariant      = EnvPrefix + "VARIANT"
	EnvSeed         = EnvPrefix + "SEED"
	EnvTimeBudget   = EnvPrefix + "TIME_BUDGET"
	EnvAudioEnabled = EnvPrefix + "AUDIO_ENABLED"
	EnvAudioVolume  = EnvPrefix + "AUDIO_VOLUME"
	EnvLogFile      = EnvPrefix + "LOG_FILE"
	EnvLogLevel     = EnvPrefix + "LOG_LEVEL"
)

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvVariant); v != "" {
		c.Variant = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvTimeBudget); v != "" {
		budget, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeBudget, err)
		}
		c.Rules.TimeBudget = budget
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = enabled
	}
	if v := os.Getenv(EnvAudioVolume); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAudioVolume, err)
		}
		c.Audio.Volume = vol
	}
	return nil
}
