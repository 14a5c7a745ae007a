package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/captcha-rush/audio"
	"github.com/lixenwraith/captcha-rush/events"
)

func soundOf(t *testing.T, ev events.GameEvent) audio.SoundType {
	t.Helper()
	p, ok := ev.Payload.(*events.SoundRequestPayload)
	require.True(t, ok, "payload %T", ev.Payload)
	return p.SoundType
}

// TestClickHandlerSounds verifies click outcomes request matching sounds
func TestClickHandlerSounds(t *testing.T) {
	s, _ := newTestSession(VariantGrid)
	emit := &recordingEmitter{}
	h := NewClickHandler(emit)

	target := tileIDByCategory(s, CategoryTarget)
	distractor := tileIDByCategory(s, CategoryDistractor)

	h.HandleEvent(s, events.GameEvent{Type: events.EventTileClick, Payload: &events.TileClickPayload{TileID: target}})
	h.HandleEvent(s, events.GameEvent{Type: events.EventTileClick, Payload: &events.TileClickPayload{TileID: distractor}})
	h.HandleEvent(s, events.GameEvent{Type: events.EventIntrusionClick}) // overlay hidden, ignored
	h.HandleEvent(s, events.GameEvent{Type: events.EventTileClick})      // missing payload, ignored

	require.Len(t, emit.pushed, 2)
	assert.Equal(t, audio.SoundCorrect, soundOf(t, emit.pushed[0]))
	assert.Equal(t, audio.SoundWrong, soundOf(t, emit.pushed[1]))
	assert.Equal(t, 5, s.Score())
}

// TestClockHandlerGameOver verifies the last tick emits the round result
func TestClockHandlerGameOver(t *testing.T) {
	s, _ := newTestSession(VariantGrid)
	emit := &recordingEmitter{}
	h := NewClockHandler(emit)

	s.OnTileClick(true)
	for i := 0; i < 29; i++ {
		h.HandleEvent(s, events.GameEvent{Type: events.EventTick})
	}
	assert.Empty(t, emit.pushed)

	h.HandleEvent(s, events.GameEvent{Type: events.EventTick})
	require.Equal(t, []events.EventType{events.EventGameOver, events.EventSoundRequest}, emit.types())

	result := emit.pushed[0].Payload.(*events.GameOverPayload)
	assert.Equal(t, 10, result.FinalScore)
	assert.Equal(t, 1, result.Hits)
	assert.Equal(t, audio.SoundGameOver, soundOf(t, emit.pushed[1]))

	h.HandleEvent(s, events.GameEvent{Type: events.EventTick})
	assert.Len(t, emit.pushed, 2, "ticks after game over emit nothing")
}

// TestCycleHandler verifies reshuffle, show and hide routing
func TestCycleHandler(t *testing.T) {
	s, _ := newTestSession(VariantGrid)
	emit := &recordingEmitter{}
	h := NewCycleHandler(emit)

	h.HandleEvent(s, events.GameEvent{Type: events.EventReshuffle})
	assert.Equal(t, 1, s.Stats().Reshuffles)

	h.HandleEvent(s, events.GameEvent{Type: events.EventIntrusionShow})
	assert.True(t, s.IntrusionVisible())
	require.Len(t, emit.pushed, 1)
	assert.Equal(t, audio.SoundIntrusion, soundOf(t, emit.pushed[0]))

	h.HandleEvent(s, events.GameEvent{Type: events.EventIntrusionHide})
	assert.False(t, s.IntrusionVisible())
}

// TestRoundHandler verifies restart only takes effect after game over
func TestRoundHandler(t *testing.T) {
	s, _ := newTestSession(VariantGrid)
	h := NewRoundHandler()

	s.OnTileClick(true)
	h.HandleEvent(s, events.GameEvent{Type: events.EventRestart})
	assert.Equal(t, 10, s.Score(), "restart ignored mid-round")

	s.EndGame()
	h.HandleEvent(s, events.GameEvent{Type: events.EventRestart})
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.GameOver())
}
