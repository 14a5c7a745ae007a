package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCorrect   SoundType = iota // Traffic light clicked
	SoundWrong                      // Distractor or ad clicked
	SoundIntrusion                  // Ad overlay appears
	SoundGameOver                   // Countdown expired
	soundTypeCount
)

// String returns the config key for the sound type
func (st SoundType) String() string {
	switch st {
	case SoundCorrect:
		return "correct"
	case SoundWrong:
		return "wrong"
	case SoundIntrusion:
		return "intrusion"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(s string) (SoundType, bool) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
)
