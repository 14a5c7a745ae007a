package game

import (
	"strings"
	"time"

	"github.com/lixenwraith/captcha-rush/constants"
)

// Variant selects the tile layout and cycle behavior
type Variant int

const (
	// VariantGrid shows nine tiles in a 3x3 grid, reshuffled periodically, with an ad overlay
	VariantGrid Variant = iota
	// VariantPopup pops up one target and one distractor at random slots every cycle
	VariantPopup
)

func (v Variant) String() string {
	switch v {
	case VariantGrid:
		return "grid"
	case VariantPopup:
		return "popup"
	default:
		return "unknown"
	}
}

// ParseVariant accepts "grid"/"a" and "popup"/"b", case-insensitive
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "a":
		return VariantGrid, true
	case "popup", "b":
		return VariantPopup, true
	default:
		return 0, false
	}
}

// Rules holds the per-round tunables
type Rules struct {
	Variant          Variant
	TimeBudget       int // seconds
	TargetReward     int
	MissPenalty      int
	IntrusionPenalty int

	TickInterval      time.Duration
	CycleInterval     time.Duration // grid reshuffle or popup toggle
	IntrusionInterval time.Duration // 0 disables the ad overlay
	IntrusionDuration time.Duration
}

// DefaultRules returns the stock rules for a variant
func DefaultRules(v Variant) Rules {
	r := Rules{
		Variant:          v,
		TimeBudget:       constants.DefaultTimeBudget,
		TargetReward:     constants.TargetReward,
		MissPenalty:      constants.MissPenalty,
		IntrusionPenalty: constants.IntrusionPenalty,
		TickInterval:     constants.TickInterval,
	}
	switch v {
	case VariantPopup:
		r.CycleInterval = constants.ToggleInterval
	default:
		r.CycleInterval = constants.ReshuffleInterval
		r.IntrusionInterval = constants.IntrusionInterval
		r.IntrusionDuration = constants.IntrusionDuration
	}
	return r
}

// HasIntrusion reports whether the ad overlay is scheduled
func (r Rules) HasIntrusion() bool {
	return r.IntrusionInterval > 0 && r.IntrusionDuration > 0
}
