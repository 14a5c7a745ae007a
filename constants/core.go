package constants

import "time"

// Main Loop Timing
const (
	// FrameUpdateInterval is the rendering frame interval (~30 FPS, plenty for a click game)
	FrameUpdateInterval = 33 * time.Millisecond

	// InputBufferSize is the capacity of the terminal event channel
	InputBufferSize = 256
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
