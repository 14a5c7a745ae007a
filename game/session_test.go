package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/captcha-rush/constants"
	"github.com/lixenwraith/captcha-rush/events"
)

// TestSessionStartState verifies a fresh round's counters, texts and timers
func TestSessionStartState(t *testing.T) {
	s, sched := newTestSession(VariantGrid)

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 30, s.TimeRemaining())
	assert.False(t, s.GameOver())
	assert.Equal(t, InstructionDefault, s.Instruction())

	v := s.View()
	assert.Equal(t, "Score: 0", v.ScoreText)
	assert.Equal(t, "Time Left: 30", v.TimerText)
	assert.False(t, v.Restartable)

	assert.True(t, sched.has(events.EventTick, constants.TickInterval, true))
	assert.True(t, sched.has(events.EventReshuffle, constants.ReshuffleInterval, true))
	assert.True(t, sched.has(events.EventIntrusionShow, constants.IntrusionInterval, true))
	assert.Len(t, sched.armed, 3)
}

// TestSessionClickScoring verifies +10 for targets and -5 for distractors
func TestSessionClickScoring(t *testing.T) {
	s, _ := newTestSession(VariantGrid)

	assert.Equal(t, ClickCorrect, s.OnTileClick(true))
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, InstructionCorrect, s.Instruction())
	assert.Equal(t, "Score: 10", s.View().ScoreText)

	assert.Equal(t, ClickWrong, s.OnTileClick(false))
	assert.Equal(t, 5, s.Score())
	assert.Equal(t, InstructionWrong, s.Instruction())
	assert.Equal(t, "Score: 5", s.View().ScoreText)

	// Score is unbounded below
	for i := 0; i < 3; i++ {
		s.OnTileClick(false)
	}
	assert.Equal(t, -10, s.Score())
	assert.Equal(t, Stats{Hits: 1, Misses: 4}, s.Stats())
}

// TestSessionClickTileByID verifies tile lookup honors category and visibility
func TestSessionClickTileByID(t *testing.T) {
	s, _ := newTestSession(VariantGrid)

	target := tileIDByCategory(s, CategoryTarget)
	distractor := tileIDByCategory(s, CategoryDistractor)
	require.NotEqual(t, -1, target)
	require.NotEqual(t, -1, distractor)

	assert.Equal(t, ClickCorrect, s.ClickTile(target))
	assert.Equal(t, ClickWrong, s.ClickTile(distractor))
	assert.Equal(t, 5, s.Score())

	assert.Equal(t, ClickIgnored, s.ClickTile(-1))
	assert.Equal(t, ClickIgnored, s.ClickTile(99))
	assert.Equal(t, 5, s.Score())
}

// TestSessionCountdownEndsGame verifies one decrement per tick and the terminal transition
func TestSessionCountdownEndsGame(t *testing.T) {
	s, sched := newTestSession(VariantGrid)

	for i := 1; i < 30; i++ {
		assert.False(t, s.OnTick())
		assert.Equal(t, 30-i, s.TimeRemaining())
	}
	assert.False(t, s.GameOver())

	assert.True(t, s.OnTick(), "30th tick should end the game")
	assert.True(t, s.GameOver())
	assert.Equal(t, 0, s.TimeRemaining())
	assert.Equal(t, "Time Left: 0", s.View().TimerText)
	assert.Empty(t, sched.armed, "game over cancels all timers")

	// Idempotent terminal state
	assert.False(t, s.OnTick())
	assert.Equal(t, 0, s.TimeRemaining())
	assert.True(t, s.GameOver())
}

// TestSessionFrozenAfterGameOver verifies no operation mutates state after game over
func TestSessionFrozenAfterGameOver(t *testing.T) {
	s, sched := newTestSession(VariantGrid)
	s.OnTileClick(true)
	s.EndGame()

	before := s.View()
	cancels := sched.cancels

	assert.Equal(t, ClickIgnored, s.OnTileClick(true))
	assert.Equal(t, ClickIgnored, s.OnTileClick(false))
	assert.Equal(t, ClickIgnored, s.OnIntrusionClick())
	assert.False(t, s.OnTick())
	assert.False(t, s.ShowIntrusion())
	s.HideIntrusion()
	s.ReshuffleOrToggle()
	s.EndGame()

	after := s.View()
	assert.Equal(t, before, after)
	assert.Equal(t, cancels, sched.cancels, "second EndGame is a no-op")

	for _, tile := range after.Tiles {
		assert.False(t, tile.Interactive, "tile %d still interactive", tile.ID)
	}
	assert.True(t, after.Restartable)
}

// TestSessionScenario runs the reference round: target, distractor, full countdown
func TestSessionScenario(t *testing.T) {
	s, _ := newTestSession(VariantGrid)

	s.OnTileClick(true)
	assert.Equal(t, 10, s.Score())
	s.OnTileClick(false)
	assert.Equal(t, 5, s.Score())

	for i := 0; i < 30; i++ {
		s.OnTick()
	}

	v := s.View()
	assert.True(t, v.GameOver)
	assert.Equal(t, "Final Score: 5", v.FinalScoreText())
}

// TestSessionIntrusionLifecycle verifies show, penalty per click and auto-hide scheduling
func TestSessionIntrusionLifecycle(t *testing.T) {
	s, sched := newTestSession(VariantGrid)

	assert.Equal(t, ClickIgnored, s.OnIntrusionClick(), "hidden overlay is not clickable")
	assert.Equal(t, 0, s.Score())

	require.True(t, s.ShowIntrusion())
	assert.True(t, s.IntrusionVisible())
	assert.Equal(t, InstructionIntrusion, s.Instruction())
	assert.True(t, sched.has(events.EventIntrusionHide, constants.IntrusionDuration, false))

	// Multiple clicks in one visible window each penalize
	assert.Equal(t, ClickWrong, s.OnIntrusionClick())
	assert.Equal(t, ClickWrong, s.OnIntrusionClick())
	assert.Equal(t, -10, s.Score())
	assert.Equal(t, InstructionAdClicked, s.Instruction())
	assert.Equal(t, 2, s.Stats().AdClicks)

	s.HideIntrusion()
	assert.False(t, s.IntrusionVisible())
	assert.Equal(t, InstructionDefault, s.Instruction())
}

// TestSessionEndGameHidesIntrusion verifies the overlay does not outlive the round
func TestSessionEndGameHidesIntrusion(t *testing.T) {
	s, _ := newTestSession(VariantGrid)
	require.True(t, s.ShowIntrusion())

	s.EndGame()
	assert.False(t, s.IntrusionVisible())
	assert.Equal(t, ClickIgnored, s.OnIntrusionClick())
}

// TestSessionGridReshuffle verifies reshuffle is a permutation of all nine slots
func TestSessionGridReshuffle(t *testing.T) {
	s, _ := newTestSession(VariantGrid)

	for round := 0; round < 20; round++ {
		s.ReshuffleOrToggle()

		seen := make(map[int]bool)
		for _, tile := range s.Tiles() {
			assert.True(t, tile.Visible)
			assert.True(t, tile.Interactive)
			assert.GreaterOrEqual(t, tile.Slot, 0)
			assert.Less(t, tile.Slot, constants.GridSlots)
			seen[tile.Slot] = true
		}
		assert.Len(t, seen, constants.GridSlots, "slots must not collide")
	}
	assert.Equal(t, 20, s.Stats().Reshuffles)
}

// TestSessionGridTileSet verifies three targets and six distractors
func TestSessionGridTileSet(t *testing.T) {
	s, _ := newTestSession(VariantGrid)

	targets := 0
	for _, tile := range s.Tiles() {
		if tile.IsTarget() {
			targets++
		}
	}
	assert.Equal(t, 3, targets)
	assert.Len(t, s.Tiles(), 9)
}

// TestSessionRestart verifies a restart only works after game over and resets the round
func TestSessionRestart(t *testing.T) {
	s, sched := newTestSession(VariantGrid)
	firstRound := s.RoundID()

	assert.False(t, s.Restart(), "restart while playing is refused")

	s.OnTileClick(false)
	for i := 0; i < 30; i++ {
		s.OnTick()
	}
	require.True(t, s.GameOver())

	assert.True(t, s.Restart())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 30, s.TimeRemaining())
	assert.False(t, s.GameOver())
	assert.Equal(t, Stats{}, s.Stats())
	assert.NotEqual(t, firstRound, s.RoundID())
	assert.Len(t, sched.armed, 3, "timers re-armed")
}

// TestRulesAndVariants verifies variant parsing and per-variant defaults
func TestRulesAndVariants(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		ok   bool
	}{
		{"grid", VariantGrid, true},
		{"A", VariantGrid, true},
		{" Popup ", VariantPopup, true},
		{"b", VariantPopup, true},
		{"maze", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseVariant(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.True(t, DefaultRules(VariantGrid).HasIntrusion())
	assert.False(t, DefaultRules(VariantPopup).HasIntrusion())
	assert.Equal(t, constants.ToggleInterval, DefaultRules(VariantPopup).CycleInterval)
	assert.Equal(t, "popup", VariantPopup.String())
}
