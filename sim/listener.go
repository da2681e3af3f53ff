package sim

import "sync"

// Listener receives the worker's notifications. OnRedraw fires once per
// committed generation and OnDone fires exactly once after the worker has
// stopped. Both are called from the worker goroutine with no grid hold taken.
type Listener interface {
	OnRedraw()
	OnDone()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Redraw func()
	Done   func()
}

func (l ListenerFuncs) OnRedraw() {
	if l.Redraw != nil {
		l.Redraw()
	}
}

func (l ListenerFuncs) OnDone() {
	if l.Done != nil {
		l.Done()
	}
}

// Multi fans notifications out to several listeners in order.
type Multi []Listener

func (m Multi) OnRedraw() {
	for _, l := range m {
		l.OnRedraw()
	}
}

func (m Multi) OnDone() {
	for _, l := range m {
		l.OnDone()
	}
}

// EventQueue hands notifications to another goroutine over channels so the
// worker never blocks on the renderer. Redraws that arrive while one is still
// pending are coalesced, since the reader always re-reads the latest grid.
type EventQueue struct {
	redraw chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewEventQueue returns an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{
		redraw: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// OnRedraw queues a redraw unless one is already pending.
func (q *EventQueue) OnRedraw() {
	select {
	case q.redraw <- struct{}{}:
	default:
	}
}

// OnDone closes the done channel. Later calls are ignored.
func (q *EventQueue) OnDone() {
	q.once.Do(func() { close(q.done) })
}

// Redraw delivers pending redraw requests.
func (q *EventQueue) Redraw() <-chan struct{} { return q.redraw }

// Done is closed once the worker has stopped.
func (q *EventQueue) Done() <-chan struct{} { return q.done }
