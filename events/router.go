package events

// Handler processes specific event types within a context T
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Filter decides whether a consumed event is delivered; false drops it
type Filter func(event GameEvent) bool

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
	filter   Filter
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// SetFilter installs a delivery filter, nil delivers everything
func (r *Router[T]) SetFilter(f Filter) {
	r.filter = f
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Events pushed by handlers during dispatch are left for the next call
// Returns delivered and filtered counts
func (r *Router[T]) DispatchAll(ctx T) (delivered, dropped int) {
	for _, ev := range r.queue.Consume() {
		if r.filter != nil && !r.filter(ev) {
			dropped++
			continue
		}
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
		delivered++
	}
	return delivered, dropped
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
