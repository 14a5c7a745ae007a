package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/captcha-rush/constants"
	"github.com/lixenwraith/captcha-rush/events"
)

// Instruction texts
const (
	InstructionDefault   = "Select the traffic lights!"
	InstructionIntrusion = "Select the traffic lights! Ignore the ad."
	InstructionCorrect   = "Good job! You clicked a traffic light."
	InstructionWrong     = "Oops! That's not a traffic light."
	InstructionAdClicked = "Don't click the ad! -5 points."
	GameOverText         = "Game Over!"
)

// Scheduler arms timers that come back to the session as events
// Implementations deliver on the session's goroutine; CancelAll drops everything pending
type Scheduler interface {
	ScheduleRepeating(period time.Duration, et events.EventType)
	ScheduleOnce(delay time.Duration, et events.EventType)
	CancelAll()
}

// ClickResult is the outcome of a pointer press
type ClickResult int

const (
	ClickIgnored ClickResult = iota // Game over, hidden or non-interactive target
	ClickCorrect
	ClickWrong
)

// Stats counts what happened in the current round
type Stats struct {
	Hits       int
	Misses     int
	AdClicks   int
	Reshuffles int
	Intrusions int
}

// Session owns one player's round state: score, countdown, tiles and the ad overlay
// Not safe for concurrent use; the main loop is the only caller
type Session struct {
	rules Rules
	sched Scheduler
	rng   *rand.Rand
	log   zerolog.Logger

	roundID  uuid.UUID
	rounds   int
	score    int
	timeLeft int
	gameOver bool

	tiles     []Tile
	slots     []int // grid permutation, slots[i] is tile i's slot
	intrusion bool

	instruction string
	scoreText   string
	timerText   string

	stats Stats
}

// NewSession creates an idle session, call Start to begin the first round
func NewSession(rules Rules, sched Scheduler, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Session{
		rules:    rules,
		sched:    sched,
		rng:      rng,
		log:      log.Logger,
		gameOver: true,
	}
}

// Start resets all round state and arms the periodic timers
func (s *Session) Start() {
	s.sched.CancelAll()

	s.roundID = uuid.New()
	s.rounds++
	s.log = log.With().
		Str("round", s.roundID.String()).
		Stringer("variant", s.rules.Variant).
		Logger()

	s.score = 0
	s.timeLeft = s.rules.TimeBudget
	s.gameOver = false
	s.intrusion = false
	s.stats = Stats{}
	s.instruction = InstructionDefault
	s.refreshScore()
	s.refreshTimer()

	switch s.rules.Variant {
	case VariantPopup:
		s.tiles = newPopupTiles()
		s.slots = nil
	default:
		s.tiles = newGridTiles()
		s.slots = make([]int, len(s.tiles))
		for i := range s.slots {
			s.slots[i] = i
		}
	}

	s.sched.ScheduleRepeating(s.rules.TickInterval, events.EventTick)
	s.sched.ScheduleRepeating(s.rules.CycleInterval, events.EventReshuffle)
	if s.rules.HasIntrusion() {
		s.sched.ScheduleRepeating(s.rules.IntrusionInterval, events.EventIntrusionShow)
	}

	s.log.Info().Int("time_budget", s.rules.TimeBudget).Int("round_number", s.rounds).Msg("round started")
}

// OnTick decrements the countdown and ends the game at zero
// Returns true when this tick ended the game
func (s *Session) OnTick() bool {
	if s.gameOver {
		return false
	}

	s.timeLeft--
	s.refreshTimer()

	if s.timeLeft <= 0 {
		s.EndGame()
		return true
	}
	return false
}

// OnTileClick scores a click on a tile of the given category
func (s *Session) OnTileClick(isTarget bool) ClickResult {
	if s.gameOver {
		return ClickIgnored
	}

	var result ClickResult
	if isTarget {
		s.score += s.rules.TargetReward
		s.stats.Hits++
		s.instruction = InstructionCorrect
		result = ClickCorrect
	} else {
		s.score -= s.rules.MissPenalty
		s.stats.Misses++
		s.instruction = InstructionWrong
		result = ClickWrong
	}
	s.refreshScore()
	return result
}

// ClickTile resolves a click by tile id; hidden or disabled tiles ignore it
func (s *Session) ClickTile(id int) ClickResult {
	if id < 0 || id >= len(s.tiles) || !s.tiles[id].Clickable() {
		return ClickIgnored
	}
	return s.OnTileClick(s.tiles[id].IsTarget())
}

// OnIntrusionClick penalizes a click on the visible ad overlay
// Every click inside one visible window penalizes again
func (s *Session) OnIntrusionClick() ClickResult {
	if s.gameOver || !s.intrusion {
		return ClickIgnored
	}

	s.score -= s.rules.IntrusionPenalty
	s.stats.AdClicks++
	s.instruction = InstructionAdClicked
	s.refreshScore()
	return ClickWrong
}

// ReshuffleOrToggle permutes grid slots or pops up a new target/distractor pair
func (s *Session) ReshuffleOrToggle() {
	if s.gameOver {
		return
	}

	switch s.rules.Variant {
	case VariantPopup:
		s.togglePopup()
	default:
		s.reshuffleGrid()
	}
	s.stats.Reshuffles++
}

func (s *Session) reshuffleGrid() {
	s.rng.Shuffle(len(s.slots), func(i, j int) {
		s.slots[i], s.slots[j] = s.slots[j], s.slots[i]
	})
	for i := range s.tiles {
		s.tiles[i].Slot = s.slots[i]
	}
}

func (s *Session) togglePopup() {
	for i := range s.tiles {
		s.tiles[i].Visible = false
	}

	target := s.rng.IntN(len(popupTargets))
	distractor := len(popupTargets) + s.rng.IntN(len(popupDistractors))
	slots := s.rng.Perm(constants.GridSlots)

	s.tiles[target].Slot = slots[0]
	s.tiles[target].Visible = true
	s.tiles[distractor].Slot = slots[1]
	s.tiles[distractor].Visible = true
}

// ShowIntrusion makes the ad overlay visible and schedules its auto-hide
// Returns true if the overlay was shown
func (s *Session) ShowIntrusion() bool {
	if s.gameOver || !s.rules.HasIntrusion() {
		return false
	}

	s.intrusion = true
	s.instruction = InstructionIntrusion
	s.stats.Intrusions++
	s.sched.ScheduleOnce(s.rules.IntrusionDuration, events.EventIntrusionHide)
	return true
}

// HideIntrusion hides the ad overlay and restores the default instruction
func (s *Session) HideIntrusion() {
	if s.gameOver {
		return
	}
	s.intrusion = false
	s.instruction = InstructionDefault
}

// EndGame freezes the round: timers cancelled, all tiles and the overlay disabled
// Idempotent
func (s *Session) EndGame() {
	if s.gameOver {
		return
	}

	s.gameOver = true
	s.sched.CancelAll()

	for i := range s.tiles {
		s.tiles[i].Interactive = false
	}
	s.intrusion = false

	s.log.Info().
		Int("final_score", s.score).
		Int("hits", s.stats.Hits).
		Int("misses", s.stats.Misses).
		Int("ad_clicks", s.stats.AdClicks).
		Msg("round over")
}

// Restart begins a new round, only allowed after game over
func (s *Session) Restart() bool {
	if !s.gameOver {
		return false
	}
	s.Start()
	return true
}

func (s *Session) refreshScore() {
	s.scoreText = fmt.Sprintf("Score: %d", s.score)
}

func (s *Session) refreshTimer() {
	s.timerText = fmt.Sprintf("Time Left: %d", s.timeLeft)
}

// Score returns the current score
func (s *Session) Score() int { return s.score }

// TimeRemaining returns the countdown in seconds
func (s *Session) TimeRemaining() int { return s.timeLeft }

// GameOver reports the terminal flag
func (s *Session) GameOver() bool { return s.gameOver }

// IntrusionVisible reports whether the ad overlay is showing
func (s *Session) IntrusionVisible() bool { return s.intrusion }

// Instruction returns the current instruction line
func (s *Session) Instruction() string { return s.instruction }

// Stats returns the current round counters
func (s *Session) Stats() Stats { return s.stats }

// RoundID identifies the current round in logs
func (s *Session) RoundID() uuid.UUID { return s.roundID }

// Rules returns the rules the session was built with
func (s *Session) Rules() Rules { return s.rules }

// Tiles returns a copy of the tile set
func (s *Session) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}
