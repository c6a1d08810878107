// Package engine drives the component tree: each tick it drains input, routes
// events, lays out, updates, renders and presents the frame.
package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/dispatch"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/layout"
	"github.com/lixenwraith/cellgrid/status"
)

var (
	ErrUpdate        = errors.New("component update failed")
	ErrRender        = errors.New("component render failed")
	ErrTooManyErrors = errors.New("too many consecutive tick errors")
)

// DefaultTickInterval paces the loop at roughly 60 frames per second
const DefaultTickInterval = 16 * time.Millisecond

// Options configures a Compositor; zero values select defaults
type Options struct {
	TickInterval time.Duration
	QueueSize    int

	// Events handled per tick; 0 drains everything pending
	MaxEventsPerTick int

	// Run stops after this many failing ticks in a row; 0 never stops
	MaxConsecutiveErrors int

	// Key presses turned into Quit before routing
	QuitKeys []event.Binding

	// Tab and Shift+Tab move focus when no component takes them
	FocusTraversal bool

	Clock Clock

	// Metrics receives frame and input counters; nil keeps a private registry
	Metrics *status.Registry
}

// Compositor owns the frame buffer and runs the tick pipeline over one root
type Compositor struct {
	root   component.Component
	sink   frame.Sink
	buf    *frame.Buffer
	queue  *event.Queue
	router *dispatch.Router
	clock  Clock
	opts   Options
	stats  metrics

	timers  []*timer
	pending []event.Event

	quit      bool
	frames    uint64
	errStreak int
	dropped   uint64
}

// New creates a compositor presenting root to sink
func New(root component.Component, sink frame.Sink, opts Options) *Compositor {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	w, h := sink.Size()
	c := &Compositor{
		root:   root,
		sink:   sink,
		buf:    frame.New(w, h),
		queue:  event.NewQueue(opts.QueueSize),
		router: dispatch.NewRouter(),
		clock:  opts.Clock,
		opts:   opts,
		stats:  newMetrics(opts.Metrics),
	}
	c.stats.resized(w, h)
	return c
}

// Queue is the input hand-off; producers push into it from any goroutine
func (c *Compositor) Queue() *event.Queue { return c.queue }

// Router exposes the router for filters and hover state
func (c *Compositor) Router() *dispatch.Router { return c.router }

// Buffer returns the back buffer
func (c *Compositor) Buffer() *frame.Buffer { return c.buf }

// Metrics returns the registry the compositor publishes to
func (c *Compositor) Metrics() *status.Registry { return c.stats.reg }

// Frames returns the number of frames presented
func (c *Compositor) Frames() uint64 { return c.frames }

// Post enqueues an application event for the next tick
func (c *Compositor) Post(ev event.Event) bool {
	return c.queue.Push(ev)
}

// Quit queues a Quit event; it may be called from any goroutine.
// It reports false when the queue is full and the request was dropped
func (c *Compositor) Quit() bool {
	return c.Post(event.New(event.Quit))
}

// Done reports whether a Quit event has been processed
func (c *Compositor) Done() bool { return c.quit }

// Dispatch routes one event immediately, applying quit keys, resize and focus traversal
func (c *Compositor) Dispatch(ev event.Event) bool {
	if ev.Type == event.KeyPress {
		for _, b := range c.opts.QuitKeys {
			if b.Matches(ev) {
				ev = event.New(event.Quit)
				break
			}
		}
	}

	if ev.Type == event.Resize {
		c.resize(ev.Width, ev.Height)
	}

	handled := c.router.Dispatch(c.root, ev)

	if !handled && c.opts.FocusTraversal && ev.Type == event.KeyPress {
		switch ev.Key {
		case event.KeyTab:
			handled = dispatch.FocusNext(c.root) != nil
		case event.KeyBacktab:
			handled = dispatch.FocusPrev(c.root) != nil
		}
	}

	if ev.Type == event.Quit {
		c.quit = true
	}
	return handled
}

func (c *Compositor) resize(w, h int) {
	if w == c.buf.Width() && h == c.buf.Height() {
		return
	}
	log.Printf("resize %dx%d -> %dx%d", c.buf.Width(), c.buf.Height(), w, h)
	c.buf.Resize(w, h)
	c.stats.resized(w, h)
	c.buf.Invalidate()
}

// Tick lays out, updates, renders and presents one frame. Any update or render
// error aborts the frame before present
func (c *Compositor) Tick() error {
	start := c.clock.Now()
	w, h := c.sink.Size()
	c.resize(w, h)

	layout.ResolveTree(c.root, layout.NewRect(0, 0, c.buf.Width(), c.buf.Height()))

	if err := update(c.root); err != nil {
		return err
	}

	c.buf.Clear()
	if err := render(c.root, c.buf); err != nil {
		return err
	}

	if err := c.buf.Present(c.sink); err != nil {
		return err
	}
	c.frames++
	c.stats.presented(c.buf.Stats(), c.clock.Now().Sub(start))
	return nil
}

// update runs update hooks in layout order, parents before children
func update(c component.Component) error {
	if err := c.Update(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUpdate, c.ID(), err)
	}
	if p, ok := c.(component.Parent); ok {
		for _, child := range p.Children() {
			if err := update(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// render paints visible components depth-first, each container before its children
func render(c component.Component, buf *frame.Buffer) error {
	if !c.Visible() {
		return nil
	}
	if err := c.Render(buf); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRender, c.ID(), err)
	}
	if p, ok := c.(component.Parent); ok {
		for _, child := range p.Children() {
			if err := render(child, buf); err != nil {
				return err
			}
		}
	}
	return nil
}

// Step drains pending input, fires due timers and runs one Tick.
// It reports whether a Quit was processed
func (c *Compositor) Step() (bool, error) {
	c.pending = c.queue.Drain(c.pending[:0], c.opts.MaxEventsPerTick)
	if d := c.queue.Dropped(); d != c.dropped {
		log.Printf("input queue full, dropped %d events", d-c.dropped)
		c.dropped = d
		c.stats.dropped.Store(int64(d))
	}

	for _, ev := range c.pending {
		c.Dispatch(ev)
		if c.quit {
			return true, nil
		}
	}
	for _, ev := range c.dueTimers(c.clock.Now()) {
		c.Dispatch(ev)
	}
	if c.quit {
		return true, nil
	}

	return false, c.Tick()
}
