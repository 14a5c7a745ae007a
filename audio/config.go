package audio

import (
	"github.com/lixenwraith/captcha-rush/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at default volume with unity effect gains
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Wrong-click buzz is harsh, keep it under the bell
	cfg.EffectVolumes[SoundWrong] = 0.6
	return cfg
}

// SetEffectVolume sets a per-sound gain by config key, clamped to 0.0-1.0
// Returns false for unknown keys
func (c *AudioConfig) SetEffectVolume(key string, vol float64) bool {
	st, ok := ParseSoundType(key)
	if !ok {
		return false
	}
	c.EffectVolumes[st] = clamp01(vol)
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
