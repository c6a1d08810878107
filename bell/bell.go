// Package bell gives audible feedback when a widget refuses input
package bell

import (
	"io"
	"sync"
	"time"
)

// Bell rings once per call
type Bell interface {
	Ring() error
}

// Func adapts a function, such as a tcell screen's Beep, to Bell
type Func func() error

func (f Func) Ring() error { return f() }

// None never makes a sound
type None struct{}

func (None) Ring() error { return nil }

// Terminal writes BEL to the terminal output
type Terminal struct {
	W io.Writer
}

var bel = []byte{'\a'}

func (t Terminal) Ring() error {
	_, err := t.W.Write(bel)
	return err
}

// Limiter drops rings arriving within Interval of the last one, so a held key
// against a full input doesn't queue a stream of beeps
type Limiter struct {
	bell     Bell
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
	rung bool
}

// Limit wraps b; an interval of 0 passes every ring through
func Limit(b Bell, interval time.Duration) *Limiter {
	return &Limiter{bell: b, interval: interval, now: time.Now}
}

func (l *Limiter) Ring() error {
	l.mu.Lock()
	now := l.now()
	if l.rung && now.Sub(l.last) < l.interval {
		l.mu.Unlock()
		return nil
	}
	l.last, l.rung = now, true
	l.mu.Unlock()
	return l.bell.Ring()
}
