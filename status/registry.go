// Package status holds runtime counters. The compositor publishes into a
// Registry from its own goroutine; anything else may read them concurrently
package status

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
)

// Metrics is a named set of values of one kind. Lookups allocate on first use
// and return the same pointer afterwards, so writers cache it
type Metrics[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetrics[T any]() *Metrics[T] {
	return &Metrics[T]{items: make(map[string]*T)}
}

// Get returns the value for name, creating it if absent
func (m *Metrics[T]) Get(name string) *T {
	m.mu.RLock()
	v, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.items[name]; ok {
		return v
	}
	v = new(T)
	m.items[name] = v
	return v
}

// Lookup returns the value for name without creating it
func (m *Metrics[T]) Lookup(name string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[name]
	return v, ok
}

// Range calls fn for each value in name order
func (m *Metrics[T]) Range(fn func(name string, v *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.items)) {
		fn(k, m.items[k])
	}
}

func (m *Metrics[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Registry groups counters, gauges and labels
type Registry struct {
	Ints    *Metrics[atomic.Int64]
	Floats  *Metrics[Float]
	Strings *Metrics[String]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    newMetrics[atomic.Int64](),
		Floats:  newMetrics[Float](),
		Strings: newMetrics[String](),
	}
}

// Len counts metrics of every kind
func (r *Registry) Len() int {
	return r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Snapshot formats every metric as name=value, sorted by name
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.Len())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *Float) {
		out = append(out, fmt.Sprintf("%s=%.2f", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *String) {
		out = append(out, k+"="+v.Load())
	})
	slices.Sort(out)
	return out
}
