package mandel

// EventQueue is a bounded FIFO of events. Producers may run on any
// goroutine; the cycle drains it through PollEvent.
type EventQueue struct {
	events chan Event
}

func NewEventQueue(size int) *EventQueue {
	if size <= 0 {
		size = 1024
	}
	return &EventQueue{events: make(chan Event, size)}
}

// Push enqueues ev, dropping it when the queue is full so the producer
// never blocks. It reports whether ev was queued.
func (q *EventQueue) Push(ev Event) bool {
	if ev == nil {
		return false
	}
	select {
	case q.events <- ev:
		return true
	default:
		return false
	}
}

// PollEvent implements EventSource.
func (q *EventQueue) PollEvent() (Event, bool) {
	select {
	case ev := <-q.events:
		return ev, true
	default:
		return nil, false
	}
}

// Len is the number of events waiting.
func (q *EventQueue) Len() int { return len(q.events) }

var _ EventSource = (*EventQueue)(nil)
