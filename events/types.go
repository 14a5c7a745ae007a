package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTick signals one second of countdown elapsed
	// Trigger: Scheduler (repeating, TickInterval)
	// Consumer: ClockHandler | Payload: nil
	EventTick EventType = iota

	// EventTileClick signals a pointer press on a visible tile
	// Trigger: Main loop after hit-testing
	// Consumer: ClickHandler | Payload: *TileClickPayload
	EventTileClick

	// EventIntrusionClick signals a pointer press on the visible ad overlay
	// Trigger: Main loop after hit-testing
	// Consumer: ClickHandler | Payload: nil
	EventIntrusionClick

	// EventReshuffle signals the periodic tile cycle (grid swap or popup toggle)
	// Trigger: Scheduler (repeating, variant cadence)
	// Consumer: CycleHandler | Payload: nil
	EventReshuffle

	// EventIntrusionShow signals the ad overlay should appear
	// Trigger: Scheduler (repeating, IntrusionInterval)
	// Consumer: CycleHandler | Payload: nil
	EventIntrusionShow

	// EventIntrusionHide signals the ad overlay should disappear
	// Trigger: Scheduler (once, IntrusionDuration after show)
	// Consumer: CycleHandler | Payload: nil
	EventIntrusionHide

	// EventRestart signals the player asked for a new round
	// Trigger: Restart button click or 'r' key after game over
	// Consumer: RoundHandler | Payload: nil
	EventRestart

	// EventGameOver signals the countdown expired
	// Trigger: Session end of game | Payload: *GameOverPayload
	EventGameOver

	// EventSoundRequest signals a feedback sound should play
	// Trigger: Click resolution, ad shown, game over
	// Consumer: SoundHandler | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	// Round is the scheduler round a timer event was armed in, 0 for unstamped events
	Round     uint64
	Timestamp time.Time
}
