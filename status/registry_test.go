package status

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetReturnsSamePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("frames")
	a.Add(3)
	if b := r.Ints.Get("frames"); b != a || b.Load() != 3 {
		t.Errorf("Expected cached pointer with value 3, got %p %d", b, b.Load())
	}
	if _, ok := r.Ints.Lookup("missing"); ok {
		t.Error("Lookup must not create")
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Len())
	}
}

func TestValues(t *testing.T) {
	var f Float
	if f.Load() != 0 {
		t.Errorf("Expected zero value 0, got %f", f.Load())
	}
	f.Store(1.5)
	if f.Load() != 1.5 {
		t.Errorf("Expected 1.5, got %f", f.Load())
	}

	var s String
	if s.Load() != "" {
		t.Errorf("Expected empty zero value, got %q", s.Load())
	}
	s.Store("80x24")
	if s.Load() != "80x24" {
		t.Errorf("Expected 80x24, got %q", s.Load())
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(7)
	r.Floats.Get("a.ms").Store(2.345)
	r.Strings.Get("c.size").Store("10x5")
	want := []string{"a.ms=2.35", "b.count=7", "c.size=10x5"}
	if diff := cmp.Diff(want, r.Snapshot()); diff != "" {
		t.Errorf("Snapshot (-want +got):\n%s", diff)
	}
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get("hits").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("hits").Load(); got != 1600 {
		t.Errorf("Expected 1600, got %d", got)
	}
}
