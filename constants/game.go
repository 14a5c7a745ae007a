package constants

import "time"

// Round Defaults
const (
	// DefaultTimeBudget is the countdown in seconds at round start
	DefaultTimeBudget = 30

	// TickInterval is the countdown decrement period
	TickInterval = 1 * time.Second
)

// Scoring
const (
	// TargetReward is added for a click on a traffic light tile
	TargetReward = 10

	// MissPenalty is subtracted for a click on a distractor tile
	MissPenalty = 5

	// IntrusionPenalty is subtracted for each click on the ad overlay
	IntrusionPenalty = 5
)

// Grid variant cadence
const (
	// ReshuffleInterval is how often the grid tiles swap positions
	ReshuffleInterval = 4 * time.Second

	// IntrusionInterval is how often the ad overlay appears
	IntrusionInterval = 5 * time.Second

	// IntrusionDuration is how long the ad overlay stays visible
	IntrusionDuration = 2 * time.Second
)

// Popup variant cadence
const (
	// ToggleInterval is how often a new target/distractor pair pops up
	ToggleInterval = 1 * time.Second
)

// GridSlots is the number of positions in the 3x3 tile grid
const GridSlots = 9
