package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/captcha-rush/audio"
	"github.com/lixenwraith/captcha-rush/game"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Sentinel errors
var (
	ErrInvalidVariant    = errors.New("invalid variant")
	ErrInvalidRules      = errors.New("invalid rules")
	ErrInvalidAudio      = errors.New("invalid audio settings")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config is the full runtime configuration
type Config struct {
	Variant string            `toml:"variant" yaml:"variant"`
	Seed    uint64            `toml:"seed" yaml:"seed"` // 0 seeds from the clock
	Rules   RulesConfig       `toml:"rules" yaml:"rules"`
	Audio   AudioSettings     `toml:"audio" yaml:"audio"`
	Log     LogSettings       `toml:"log" yaml:"log"`
	Keys    map[string]string `toml:"keys" yaml:"keys"` // action name → key
}

// RulesConfig overrides round tunables, zero keeps the variant default
type RulesConfig struct {
	TimeBudget        int           `toml:"time_budget" yaml:"time_budget"`
	TargetReward      int           `toml:"target_reward" yaml:"target_reward"`
	MissPenalty       int           `toml:"miss_penalty" yaml:"miss_penalty"`
	IntrusionPenalty  int           `toml:"intrusion_penalty" yaml:"intrusion_penalty"`
	CycleInterval     time.Duration `toml:"cycle_interval" yaml:"cycle_interval"`
	IntrusionInterval time.Duration `toml:"intrusion_interval" yaml:"intrusion_interval"`
	IntrusionDuration time.Duration `toml:"intrusion_duration" yaml:"intrusion_duration"`
}

// AudioSettings configures sound output
type AudioSettings struct {
	Enabled bool               `toml:"enabled" yaml:"enabled"`
	Volume  float64            `toml:"volume" yaml:"volume"`
	Effects map[string]float64 `toml:"effects" yaml:"effects"` // sound key → gain
}

// LogSettings configures the file logger
type LogSettings struct {
	File  string `toml:"file" yaml:"file"` // empty disables logging unless -debug
	Level string `toml:"level" yaml:"level"`
}

// Default returns the stock configuration: grid variant, audio on, logging off
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Variant: game.VariantGrid.String(),
		Audio: AudioSettings{
			Enabled: ac.Enabled,
			Volume:  ac.MasterVolume,
		},
		Log: LogSettings{
			Level: zerolog.InfoLevel.String(),
		},
	}
}

// Load reads DefaultEnvFile if present, then the optional config file at path
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, DefaultEnvFile)
}

// LoadWithEnv builds a config from defaults, an env file, a TOML or YAML file and
// CAPTCHA_RUSH_* environment variables, in that order, then validates it
// Empty path or envFile skips that source; a missing envFile is not an error
func LoadWithEnv(path, envFile string) (*Config, error) {
	cfg := Default()

	if envFile != "" {
		// Existing environment wins over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Validate checks every field and the resolved rules
func (c *Config) Validate() error {
	if _, ok := game.ParseVariant(c.Variant); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidVariant, c.Variant)
	}

	r := c.Rules
	switch {
	case r.TimeBudget < 0:
		return fmt.Errorf("%w: time_budget %d is negative", ErrInvalidRules, r.TimeBudget)
	case r.TargetReward < 0, r.MissPenalty < 0, r.IntrusionPenalty < 0:
		return fmt.Errorf("%w: rewards and penalties must not be negative", ErrInvalidRules)
	case r.CycleInterval < 0, r.IntrusionInterval < 0, r.IntrusionDuration < 0:
		return fmt.Errorf("%w: intervals must not be negative", ErrInvalidRules)
	}

	rules := c.GameRules()
	if rules.HasIntrusion() && rules.IntrusionDuration >= rules.IntrusionInterval {
		return fmt.Errorf("%w: intrusion_duration %s must be shorter than intrusion_interval %s",
			ErrInvalidRules, rules.IntrusionDuration, rules.IntrusionInterval)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside 0.0-1.0", ErrInvalidAudio, c.Audio.Volume)
	}
	for key, vol := range c.Audio.Effects {
		if _, ok := audio.ParseSoundType(key); !ok {
			return fmt.Errorf("%w: unknown effect %q", ErrInvalidAudio, key)
		}
		if vol < 0 || vol > 1 {
			return fmt.Errorf("%w: effect %q volume %.2f outside 0.0-1.0", ErrInvalidAudio, key, vol)
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// GameVariant returns the parsed variant, grid if unparseable
func (c *Config) GameVariant() game.Variant {
	v, _ := game.ParseVariant(c.Variant)
	return v
}

// GameRules resolves the variant defaults with configured overrides
func (c *Config) GameRules() game.Rules {
	rules := game.DefaultRules(c.GameVariant())
	r := c.Rules

	if r.TimeBudget > 0 {
		rules.TimeBudget = r.TimeBudget
	}
	if r.TargetReward > 0 {
		rules.TargetReward = r.TargetReward
	}
	if r.MissPenalty > 0 {
		rules.MissPenalty = r.MissPenalty
	}
	if r.IntrusionPenalty > 0 {
		rules.IntrusionPenalty = r.IntrusionPenalty
	}
	if r.CycleInterval > 0 {
		rules.CycleInterval = r.CycleInterval
	}
	// Popup variant never shows the ad overlay
	if rules.HasIntrusion() {
		if r.IntrusionInterval > 0 {
			rules.IntrusionInterval = r.IntrusionInterval
		}
		if r.IntrusionDuration > 0 {
			rules.IntrusionDuration = r.IntrusionDuration
		}
	}
	return rules
}

// AudioConfig converts the settings for the sound manager
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	for key, vol := range c.Audio.Effects {
		ac.SetEffectVolume(key, vol)
	}
	return ac
}

// LogLevel returns the parsed level, info if unparseable
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
