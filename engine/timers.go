package engine

import (
	"time"

	"github.com/lixenwraith/cellgrid/event"
)

// timer fires a Timer event every interval, checked once per tick
type timer struct {
	id       string
	interval time.Duration
	next     time.Time
}

// AddTimer schedules a repeating Timer event named id. Re-adding an id reschedules it.
// Timers fire at tick granularity; intervals shorter than the tick fire once per tick
func (c *Compositor) AddTimer(id string, interval time.Duration) {
	if interval <= 0 {
		return
	}
	next := c.clock.Now().Add(interval)
	for _, t := range c.timers {
		if t.id == id {
			t.interval, t.next = interval, next
			return
		}
	}
	c.timers = append(c.timers, &timer{id: id, interval: interval, next: next})
}

// RemoveTimer cancels the timer named id
func (c *Compositor) RemoveTimer(id string) bool {
	for i, t := range c.timers {
		if t.id == id {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

// dueTimers returns Timer events for every timer whose deadline has passed
func (c *Compositor) dueTimers(now time.Time) []event.Event {
	var due []event.Event
	for _, t := range c.timers {
		if now.Before(t.next) {
			continue
		}
		due = append(due, event.NewTimer(t.id))
		t.next = t.next.Add(t.interval)

		// Skip missed periods rather than firing a burst
		if now.Sub(t.next) > t.interval {
			t.next = now.Add(t.interval)
		}
	}
	return due
}
