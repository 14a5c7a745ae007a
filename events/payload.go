package events

import (
	"github.com/lixenwraith/captcha-rush/audio"
)

// TileClickPayload identifies the clicked tile
type TileClickPayload struct {
	TileID int
}

// GameOverPayload carries the final round result
type GameOverPayload struct {
	FinalScore int
	Hits       int
	Misses     int
	AdClicks   int
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType audio.SoundType
}
