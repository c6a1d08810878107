package event

import "sync/atomic"

// DefaultQueueSize matches the terminal reader's channel depth
const DefaultQueueSize = 256

// Queue is the bounded hand-off between input producers and the tick loop.
// Push never blocks; when full the event is dropped and counted.
// Poll and Drain never block either, so draining cannot stall a tick.
type Queue struct {
	ch      chan Event
	dropped atomic.Uint64
}

// NewQueue creates a queue holding up to size events
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues ev, reporting false if the queue was full
func (q *Queue) Push(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Poll is a zero-timeout receive
func (q *Queue) Poll() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

// Drain appends up to limit pending events to dst; limit <= 0 means all pending
func (q *Queue) Drain(dst []Event, limit int) []Event {
	if limit <= 0 {
		limit = cap(q.ch)
	}
	for i := 0; i < limit; i++ {
		ev, ok := q.Poll()
		if !ok {
			break
		}
		dst = append(dst, ev)
	}
	return dst
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.ch)
}

// Dropped returns the count of events rejected because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Wait returns a channel for blocking consumers such as tests and headless runners
func (q *Queue) Wait() <-chan Event {
	return q.ch
}
