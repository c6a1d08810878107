package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/cellgrid/event"
)

// fakeBackend replays scripted input and records output
type fakeBackend struct {
	mu     sync.Mutex
	out    bytes.Buffer
	w, h   int
	chunks chan []byte

	inits, finis int
	initErr      error

	resize func(w, h int)
	ready  chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{w: 80, h: 24, chunks: make(chan []byte, 16), ready: make(chan struct{})}
}

func (f *fakeBackend) Init() error {
	f.inits++
	return f.initErr
}

func (f *fakeBackend) Fini() { f.finis++ }

func (f *fakeBackend) Size() (int, int) { return f.w, f.h }

func (f *fakeBackend) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Write(p)
}

func (f *fakeBackend) Read(stop <-chan struct{}) ([]byte, error) {
	select {
	case <-stop:
		return nil, nil
	case c, ok := <-f.chunks:
		if !ok {
			return nil, io.EOF
		}
		return c, nil
	}
}

func (f *fakeBackend) SetResizeHandler(h func(w, h int)) {
	f.resize = h
	close(f.ready)
}

// output returns and clears what was written so far
func (f *fakeBackend) output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.out.String()
	f.out.Reset()
	return s
}

func TestSessionOpenClose(t *testing.T) {
	fb := newFakeBackend()
	s, err := open(fb, Options{AltScreen: true, Mouse: MouseModeClick, Color: "256"})
	if err != nil {
		t.Fatal(err)
	}
	if fb.inits != 1 {
		t.Errorf("Expected raw mode entered once, got %d", fb.inits)
	}
	want := "\x1b[?1049h\x1b[?25l\x1b[?7l" + "\x1b[0m\x1b[2J\x1b[H" + "\x1b[?1006h\x1b[?1000h"
	if got := fb.output(); got != want {
		t.Errorf("Open: expected %q, got %q", want, got)
	}
	if s.ColorMode() != ColorMode256 {
		t.Errorf("Expected 256 colors, got %s", s.ColorMode())
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	want = "\x1b[?1000l\x1b[?1006l" + "\x1b[0m\x1b[?25h\x1b[?1049l\x1b[?7h"
	if got := fb.output(); got != want {
		t.Errorf("Close: expected %q, got %q", want, got)
	}

	if err := s.Close(); err != nil || fb.output() != "" || fb.finis != 1 {
		t.Error("Second Close must be a no-op")
	}
	if err := s.SetMouseMode(MouseModeAll); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestSessionMouseModeDiff(t *testing.T) {
	fb := newFakeBackend()
	s, err := open(fb, Options{Mouse: MouseModeClick, Color: "none"})
	if err != nil {
		t.Fatal(err)
	}
	fb.output()

	s.SetMouseMode(MouseModeClick | MouseModeMotion)
	if got := fb.output(); got != "\x1b[?1003h" {
		t.Errorf("Expected only motion enabled, got %q", got)
	}
	s.SetMouseMode(MouseModeClick | MouseModeMotion)
	if got := fb.output(); got != "" {
		t.Errorf("Expected nothing for an unchanged mode, got %q", got)
	}
	s.SetMouseMode(MouseModeNone)
	if got := fb.output(); got != "\x1b[?1003l\x1b[?1000l\x1b[?1006l" {
		t.Errorf("Expected all reporting disabled, got %q", got)
	}
	if s.MouseMode() != MouseModeNone {
		t.Errorf("Expected none, got %s", s.MouseMode())
	}

	s.Close()
	if got := fb.output(); got != "\x1b[0m\x1b[?25h\x1b[?7h" {
		t.Errorf("Close without mouse or alt screen: got %q", got)
	}
}

func TestSessionOpenFailure(t *testing.T) {
	fb := newFakeBackend()
	fb.initErr = ErrNotTerminal
	if _, err := open(fb, Options{}); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("Expected ErrNotTerminal, got %v", err)
	}
	if fb.output() != "" {
		t.Error("Nothing should be written when raw mode fails")
	}
}

func TestEmergencyReset(t *testing.T) {
	var out bytes.Buffer
	EmergencyReset(&out)
	for _, seq := range [][]byte{csiMouseSGROff, csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn} {
		if !bytes.Contains(out.Bytes(), seq) {
			t.Errorf("Expected %q in reset stream", seq)
		}
	}
}

func TestReaderPumpsEvents(t *testing.T) {
	fb := newFakeBackend()
	q := event.NewQueue(16)
	r := newReader(fb, q)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	fb.chunks <- []byte("a\x1b")
	fb.chunks <- []byte{} // idle poll resolves the ESC
	fb.chunks <- []byte("\x1b[<0;2;2M\x1b[<0;2;2m")

	<-fb.ready
	fb.resize(100, 40)

	want := []event.Event{
		event.NewRune('a', event.ModNone),
		event.NewKey(event.KeyEscape, event.ModNone),
		event.NewMouse(event.MousePress, event.ButtonLeft, 1, 1, event.ModNone),
		event.NewMouse(event.MouseRelease, event.ButtonLeft, 1, 1, event.ModNone),
		event.NewMouse(event.MouseClick, event.ButtonLeft, 1, 1, event.ModNone),
	}
	var got []event.Event
	var resized bool
	timeout := time.After(2 * time.Second)
	for len(got) < len(want) || !resized {
		select {
		case ev := <-q.Wait():
			if ev.Type == event.Resize {
				resized = ev.Width == 100 && ev.Height == 40
				continue
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatalf("Timed out; got %v resized=%v", got, resized)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pumped events (-want +got):\n%s", diff)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Reader did not stop on cancel")
	}
}

func TestReaderInputClosed(t *testing.T) {
	fb := newFakeBackend()
	close(fb.chunks)
	err := newReader(fb, event.NewQueue(4)).Run(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected wrapped EOF, got %v", err)
	}
}
