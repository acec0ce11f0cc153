package core

// EventKind distinguishes the discrete events the input boundary produces.
type EventKind int

const (
	EventNone    EventKind = iota
	EventQuit              // Window closed, Ctrl+C or the quit key
	EventKeyDown           // A key was pressed; Key carries its identifier
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "None"
	}
}

// Event is a single input event. Key identifiers follow the platform's key
// naming ("w", "up", "space", ...), which is also what bindings store.
type Event struct {
	Kind EventKind
	Key  string
}

// KeyDown builds a key-down event.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// InputSource yields all events that arrived since the previous poll.
// Poll never blocks waiting for input.
type InputSource interface {
	Poll() []Event
}

// EventQueue buffers events between polls. The platform pushes events as
// they arrive and the game loop drains them once per tick.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Poll returns buffered events in arrival order and empties the queue.
func (q *EventQueue) Poll() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

var _ InputSource = (*EventQueue)(nil)
