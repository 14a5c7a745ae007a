package engine

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/captcha-rush/audio"
	"github.com/lixenwraith/captcha-rush/events"
	"github.com/lixenwraith/captcha-rush/game"
	"github.com/lixenwraith/captcha-rush/status"
)

// maxDispatchPasses bounds follow-up event chains handled within one Update
const maxDispatchPasses = 4

// SoundPlayer plays feedback sounds, implemented by audio.SoundManager
type SoundPlayer interface {
	Play(st audio.SoundType) bool
}

type silentPlayer struct{}

func (silentPlayer) Play(audio.SoundType) bool { return false }

// Game wires the session to its event queue, router, scheduler and sound output
// All methods except Push must be called from the main loop goroutine
type Game struct {
	Session   *game.Session
	Queue     *events.EventQueue
	Router    *events.Router[*game.Session]
	Scheduler *Scheduler
	Status    *status.Registry

	clock clockwork.Clock

	lastResult *events.GameOverPayload

	// Cached metric pointers
	statDispatched *atomic.Int64
	statStale      *atomic.Int64
	statScore      *atomic.Int64
	statTimeLeft   *atomic.Int64
	statRounds     *atomic.Int64
	statGameOver   *atomic.Bool
	statRoundID    *status.AtomicString
}

// NewGame builds the full event pipeline around a new session
// nil sound plays nothing; nil rng seeds from the clock
func NewGame(rules game.Rules, clock clockwork.Clock, sound SoundPlayer, rng *rand.Rand) *Game {
	events.InitRegistry()

	if sound == nil {
		sound = silentPlayer{}
	}
	if rng == nil {
		seed := uint64(clock.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	reg := status.NewRegistry()
	queue := events.NewEventQueue()
	sched := NewScheduler(clock, queue, reg)

	g := &Game{
		Queue:          queue,
		Router:         events.NewRouter[*game.Session](queue),
		Scheduler:      sched,
		Status:         reg,
		clock:          clock,
		statDispatched: reg.Ints.Get("engine.dispatched"),
		statStale:      reg.Ints.Get("engine.stale"),
		statScore:      reg.Ints.Get("round.score"),
		statTimeLeft:   reg.Ints.Get("round.time_left"),
		statRounds:     reg.Ints.Get("round.completed"),
		statGameOver:   reg.Bools.Get("round.game_over"),
		statRoundID:    reg.Strings.Get("round.id"),
	}
	g.Session = game.NewSession(rules, sched, rng)

	g.Router.SetFilter(sched.IsCurrent)
	g.Router.Register(game.NewClockHandler(g))
	g.Router.Register(game.NewClickHandler(g))
	g.Router.Register(game.NewCycleHandler(g))
	g.Router.Register(game.NewRoundHandler())
	g.Router.Register(&soundHandler{player: sound})
	g.Router.Register(&resultHandler{g: g})

	return g
}

// Start begins the first round
func (g *Game) Start() {
	g.Session.Start()
	g.syncStatus()
}

// Push enqueues an unstamped event; safe from any goroutine
func (g *Game) Push(et events.EventType, payload any) {
	g.Queue.Push(events.GameEvent{
		Type:      et,
		Payload:   payload,
		Timestamp: g.clock.Now(),
	})
}

// Update fires due timers and dispatches pending events, including follow-ups
// Returns the number of events delivered
func (g *Game) Update() int {
	g.Scheduler.Poll()

	total := 0
	for pass := 0; pass < maxDispatchPasses && g.Queue.Len() > 0; pass++ {
		delivered, stale := g.Router.DispatchAll(g.Session)
		total += delivered
		if stale > 0 {
			g.statStale.Add(int64(stale))
		}
	}
	g.statDispatched.Add(int64(total))
	g.syncStatus()
	return total
}

// View snapshots the session for rendering
func (g *Game) View() game.View {
	return g.Session.View()
}

// LastResult returns the most recent finished round
func (g *Game) LastResult() (events.GameOverPayload, bool) {
	if g.lastResult == nil {
		return events.GameOverPayload{}, false
	}
	return *g.lastResult, true
}

// Stop cancels all timers; pending events are dropped as stale
func (g *Game) Stop() {
	g.Scheduler.CancelAll()
}

func (g *Game) syncStatus() {
	g.statScore.Store(int64(g.Session.Score()))
	g.statTimeLeft.Store(int64(g.Session.TimeRemaining()))
	g.statGameOver.Store(g.Session.GameOver())
	g.statRoundID.Store(g.Session.RoundID().String())
}

// soundHandler forwards sound requests to the player
type soundHandler struct {
	player SoundPlayer
}

func (h *soundHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventSoundRequest}
}

func (h *soundHandler) HandleEvent(_ *game.Session, ev events.GameEvent) {
	if p, ok := ev.Payload.(*events.SoundRequestPayload); ok {
		h.player.Play(p.SoundType)
	}
}

// resultHandler records finished rounds
type resultHandler struct {
	g *Game
}

func (h *resultHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameOver}
}

func (h *resultHandler) HandleEvent(s *game.Session, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.GameOverPayload)
	if !ok {
		return
	}
	result := *p
	h.g.lastResult = &result
	h.g.statRounds.Add(1)
	log.Debug().Str("round", s.RoundID().String()).Int("final_score", p.FinalScore).Msg("result recorded")
}
