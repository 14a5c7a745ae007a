package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the linear master volume (0.0-1.0)
	DefaultMasterVolume = 0.6
)

// Buzz Sound Timing (wrong click)
const (
	BuzzSoundDuration = 120 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 40 * time.Millisecond
)

// Bell Sound Timing (correct click)
const (
	BellSoundDuration           = 400 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 350 * time.Millisecond
	BellSoundOvertoneRelease    = 150 * time.Millisecond
)

// Whoosh Sound Timing (ad appears)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Chime Sound Timing (game over)
const (
	ChimeSoundNote1Duration = 120 * time.Millisecond
	ChimeSoundNote2Duration = 400 * time.Millisecond
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeSoundNote1Release  = 60 * time.Millisecond
	ChimeSoundNote2Release  = 300 * time.Millisecond
)
