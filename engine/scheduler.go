package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/captcha-rush/events"
	"github.com/lixenwraith/captcha-rush/status"
)

// timer is one armed schedule entry
type timer struct {
	seq    uint64 // Arm order, breaks deadline ties
	event  events.EventType
	due    time.Time
	period time.Duration // 0 for one-shot
	round  uint64
}

// byDeadline orders timers by due time then arm order
func byDeadline(a, b any) int {
	ta, tb := a.(*timer), b.(*timer)
	switch {
	case ta.due.Before(tb.due):
		return -1
	case tb.due.Before(ta.due):
		return 1
	case ta.seq < tb.seq:
		return -1
	case ta.seq > tb.seq:
		return 1
	default:
		return 0
	}
}

// Scheduler is a deadline-ordered timer wheel polled from the main loop
// Due timers become events on the queue instead of callbacks, so all game state
// changes happen on the consumer goroutine
//
// Each CancelAll starts a new round; events carry the round they were armed in
// so the dispatcher can drop anything that belongs to a cancelled round
type Scheduler struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	queue   *events.EventQueue
	pending *priorityqueue.Queue
	seq     uint64
	round   uint64

	// Cached metric pointers
	statFired   *atomic.Int64
	statPending *atomic.Int64
	statRound   *atomic.Int64
}

// NewScheduler creates a scheduler reading time from clock and pushing into queue
func NewScheduler(clock clockwork.Clock, queue *events.EventQueue, reg *status.Registry) *Scheduler {
	s := &Scheduler{
		clock:       clock,
		queue:       queue,
		pending:     priorityqueue.NewWith(byDeadline),
		round:       1,
		statFired:   reg.Ints.Get("scheduler.fired"),
		statPending: reg.Ints.Get("scheduler.pending"),
		statRound:   reg.Ints.Get("scheduler.round"),
	}
	s.statRound.Store(1)
	return s
}

// ScheduleRepeating arms a timer firing every period, first fire one period from now
func (s *Scheduler) ScheduleRepeating(period time.Duration, et events.EventType) {
	if period <= 0 {
		log.Warn().Stringer("event", et).Dur("period", period).Msg("ignoring non-positive repeating period")
		return
	}
	s.arm(period, period, et)
}

// ScheduleOnce arms a one-shot timer, negative delays fire on the next poll
func (s *Scheduler) ScheduleOnce(delay time.Duration, et events.EventType) {
	if delay < 0 {
		delay = 0
	}
	s.arm(delay, 0, et)
}

func (s *Scheduler) arm(delay, period time.Duration, et events.EventType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.pending.Enqueue(&timer{
		seq:    s.seq,
		event:  et,
		due:    s.clock.Now().Add(delay),
		period: period,
		round:  s.round,
	})
	s.statPending.Store(int64(s.pending.Size()))
}

// CancelAll drops every pending timer and starts a new round
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := s.pending.Size(); n > 0 {
		log.Debug().Int("cancelled", n).Uint64("round", s.round).Msg("cancelled pending timers")
	}
	s.pending.Clear()
	s.round++
	s.statPending.Store(0)
	s.statRound.Store(int64(s.round))
}

// Poll pushes an event for every timer due at the current clock time
// A repeating timer that fell behind fires once per elapsed period
// Returns the number of events pushed
func (s *Scheduler) Poll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	fired := 0

	for {
		v, ok := s.pending.Peek()
		if !ok {
			break
		}
		t := v.(*timer)
		if t.due.After(now) {
			break
		}
		s.pending.Dequeue()

		s.queue.Push(events.GameEvent{
			Type:      t.event,
			Round:     t.round,
			Timestamp: t.due,
		})
		fired++

		if t.period > 0 {
			t.due = t.due.Add(t.period)
			s.pending.Enqueue(t)
		}
	}

	if fired > 0 {
		s.statFired.Add(int64(fired))
		s.statPending.Store(int64(s.pending.Size()))
	}
	return fired
}

// Round returns the current round number
func (s *Scheduler) Round() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// Pending returns the number of armed timers
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Size()
}

// NextDeadline returns the earliest armed deadline
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.pending.Peek()
	if !ok {
		return time.Time{}, false
	}
	return v.(*timer).due, true
}

// IsCurrent reports whether an event should still be delivered
// Unstamped events (Round 0) are always current
func (s *Scheduler) IsCurrent(ev events.GameEvent) bool {
	return ev.Round == 0 || ev.Round == s.Round()
}
