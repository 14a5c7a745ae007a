package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSoundManagerGracefulDegradation verifies operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	assert.NotPanics(t, func() {
		for st := SoundType(0); st < soundTypeCount; st++ {
			assert.False(t, sm.Play(st), "play before init should queue nothing")
		}
		sm.Cleanup()
	})
	assert.Equal(t, uint64(0), sm.Played())
	assert.False(t, sm.IsInitialized())
}

// TestSoundManagerDisabledConfig verifies disabled audio refuses to open the speaker
func TestSoundManagerDisabledConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	err := sm.Initialize()
	assert.ErrorIs(t, err, ErrAudioUnavailable)
	assert.True(t, sm.IsMuted(), "disabled config should start muted")
	assert.False(t, sm.IsInitialized())
}

// TestSoundManagerToggleMute verifies mute flips both ways
func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())
	assert.False(t, sm.IsMuted())

	assert.False(t, sm.ToggleMute(), "first toggle mutes")
	assert.True(t, sm.IsMuted())

	assert.True(t, sm.ToggleMute(), "second toggle unmutes")
	assert.False(t, sm.IsMuted())
}

// TestSoundManagerInitialization verifies init and cleanup where a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	// Speaker init may fail in CI without audio devices; the game runs silent then
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		assert.ErrorIs(t, err, ErrAudioUnavailable)
		return
	}
	defer sm.Cleanup()

	assert.NoError(t, sm.Initialize(), "double init should be a no-op")
	assert.True(t, sm.Play(SoundCorrect))
	assert.Equal(t, uint64(1), sm.Played())
}
