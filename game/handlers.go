package game

import (
	"github.com/lixenwraith/captcha-rush/audio"
	"github.com/lixenwraith/captcha-rush/events"
)

// Emitter pushes follow-up events produced while handling an event
type Emitter interface {
	Push(et events.EventType, payload any)
}

func emitClickSound(emit Emitter, result ClickResult) {
	switch result {
	case ClickCorrect:
		emit.Push(events.EventSoundRequest, &events.SoundRequestPayload{SoundType: audio.SoundCorrect})
	case ClickWrong:
		emit.Push(events.EventSoundRequest, &events.SoundRequestPayload{SoundType: audio.SoundWrong})
	}
}

// ClockHandler advances the countdown
type ClockHandler struct {
	emit Emitter
}

// NewClockHandler creates a countdown handler
func NewClockHandler(emit Emitter) *ClockHandler {
	return &ClockHandler{emit: emit}
}

func (h *ClockHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventTick}
}

func (h *ClockHandler) HandleEvent(s *Session, _ events.GameEvent) {
	if !s.OnTick() {
		return
	}
	stats := s.Stats()
	h.emit.Push(events.EventGameOver, &events.GameOverPayload{
		FinalScore: s.Score(),
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		AdClicks:   stats.AdClicks,
	})
	h.emit.Push(events.EventSoundRequest, &events.SoundRequestPayload{SoundType: audio.SoundGameOver})
}

// ClickHandler resolves tile and ad clicks
type ClickHandler struct {
	emit Emitter
}

// NewClickHandler creates a click resolution handler
func NewClickHandler(emit Emitter) *ClickHandler {
	return &ClickHandler{emit: emit}
}

func (h *ClickHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventTileClick, events.EventIntrusionClick}
}

func (h *ClickHandler) HandleEvent(s *Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventTileClick:
		p, ok := ev.Payload.(*events.TileClickPayload)
		if !ok {
			return
		}
		emitClickSound(h.emit, s.ClickTile(p.TileID))
	case events.EventIntrusionClick:
		emitClickSound(h.emit, s.OnIntrusionClick())
	}
}

// CycleHandler drives the periodic board changes
type CycleHandler struct {
	emit Emitter
}

// NewCycleHandler creates the reshuffle and ad overlay handler
func NewCycleHandler(emit Emitter) *CycleHandler {
	return &CycleHandler{emit: emit}
}

func (h *CycleHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventReshuffle, events.EventIntrusionShow, events.EventIntrusionHide}
}

func (h *CycleHandler) HandleEvent(s *Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventReshuffle:
		s.ReshuffleOrToggle()
	case events.EventIntrusionShow:
		if s.ShowIntrusion() {
			h.emit.Push(events.EventSoundRequest, &events.SoundRequestPayload{SoundType: audio.SoundIntrusion})
		}
	case events.EventIntrusionHide:
		s.HideIntrusion()
	}
}

// RoundHandler starts a new round on request
type RoundHandler struct{}

// NewRoundHandler creates the restart handler
func NewRoundHandler() *RoundHandler {
	return &RoundHandler{}
}

func (h *RoundHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventRestart}
}

func (h *RoundHandler) HandleEvent(s *Session, _ events.GameEvent) {
	s.Restart()
}
