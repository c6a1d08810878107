package engine

import (
	"testing"
	"time"
)

func TestSystemClock(t *testing.T) {
	var c SystemClock
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	if d := c.Now().Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms elapsed, got %v", d)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, c.Now())
	}

	c.Advance(30 * time.Minute)
	c.Advance(15 * time.Minute)
	if want := start.Add(45 * time.Minute); !c.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, c.Now())
	}

	next := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	c.Set(next)
	if !c.Now().Equal(next) {
		t.Errorf("Expected %v after Set, got %v", next, c.Now())
	}
}

func TestManualClockConcurrency(t *testing.T) {
	c := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = c.Now()
			}
			done <- struct{}{}
		}()
	}
	go func() {
		for j := 0; j < 100; j++ {
			c.Advance(time.Millisecond)
		}
		done <- struct{}{}
	}()

	for i := 0; i < 5; i++ {
		<-done
	}
	if got := c.Now().Sub(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms advanced, got %v", got)
	}
}
