package game

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/captcha-rush/events"
)

type scheduled struct {
	period time.Duration
	et     events.EventType
	repeat bool
}

// fakeScheduler records timer requests without firing them
type fakeScheduler struct {
	armed   []scheduled
	cancels int
}

func (f *fakeScheduler) ScheduleRepeating(period time.Duration, et events.EventType) {
	f.armed = append(f.armed, scheduled{period: period, et: et, repeat: true})
}

func (f *fakeScheduler) ScheduleOnce(delay time.Duration, et events.EventType) {
	f.armed = append(f.armed, scheduled{period: delay, et: et})
}

func (f *fakeScheduler) CancelAll() {
	f.armed = nil
	f.cancels++
}

func (f *fakeScheduler) has(et events.EventType, period time.Duration, repeat bool) bool {
	for _, s := range f.armed {
		if s.et == et && s.period == period && s.repeat == repeat {
			return true
		}
	}
	return false
}

// recordingEmitter collects follow-up events
type recordingEmitter struct {
	pushed []events.GameEvent
}

func (r *recordingEmitter) Push(et events.EventType, payload any) {
	r.pushed = append(r.pushed, events.GameEvent{Type: et, Payload: payload})
}

func (r *recordingEmitter) types() []events.EventType {
	out := make([]events.EventType, len(r.pushed))
	for i, ev := range r.pushed {
		out[i] = ev.Type
	}
	return out
}

func newTestSession(v Variant) (*Session, *fakeScheduler) {
	sched := &fakeScheduler{}
	s := NewSession(DefaultRules(v), sched, rand.New(rand.NewPCG(1, 2)))
	s.Start()
	return s, sched
}

func tileIDByCategory(s *Session, c Category) int {
	for _, t := range s.Tiles() {
		if t.Category == c && t.Clickable() {
			return t.ID
		}
	}
	return -1
}
