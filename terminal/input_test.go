package terminal

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/cellgrid/event"
)

func decodeAll(d *Decoder, chunks ...string) []event.Event {
	var got []event.Event
	emit := func(ev event.Event) { got = append(got, ev) }
	for _, c := range chunks {
		d.Decode([]byte(c), emit)
	}
	return got
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want event.Event
	}{
		{"printable", "a", event.NewRune('a', event.ModNone)},
		{"space", " ", event.NewKey(event.KeySpace, event.ModNone)},
		{"ctrl+c", "\x03", event.NewKey(event.KeyCtrlC, event.ModNone)},
		{"enter", "\r", event.NewKey(event.KeyEnter, event.ModNone)},
		{"tab", "\t", event.NewKey(event.KeyTab, event.ModNone)},
		{"del", "\x7f", event.NewKey(event.KeyBackspace, event.ModNone)},
		{"ctrl+space", "\x00", event.NewKey(event.KeyCtrlSpace, event.ModNone)},
		{"up", "\x1b[A", event.NewKey(event.KeyUp, event.ModNone)},
		{"ctrl+right", "\x1b[1;5C", event.NewKey(event.KeyRight, event.ModCtrl)},
		{"shift+alt+up", "\x1b[1;4A", event.NewKey(event.KeyUp, event.ModShift|event.ModAlt)},
		{"delete", "\x1b[3~", event.NewKey(event.KeyDelete, event.ModNone)},
		{"shift+f5", "\x1b[15;2~", event.NewKey(event.KeyF5, event.ModShift)},
		{"f12", "\x1b[24~", event.NewKey(event.KeyF12, event.ModNone)},
		{"ss3 f1", "\x1bOP", event.NewKey(event.KeyF1, event.ModNone)},
		{"ss3 home", "\x1bOH", event.NewKey(event.KeyHome, event.ModNone)},
		{"console f3", "\x1b[[C", event.NewKey(event.KeyF3, event.ModNone)},
		{"backtab", "\x1b[Z", event.NewKey(event.KeyBacktab, event.ModNone)},
		{"alt+x", "\x1bx", event.NewRune('x', event.ModAlt)},
		{"alt+ctrl+d", "\x1b\x04", event.NewKey(event.KeyCtrlD, event.ModAlt)},
		{"alt+esc", "\x1b\x1b", event.NewKey(event.KeyEscape, event.ModAlt)},
		{"utf8", "é", event.NewRune('é', event.ModNone)},
		{"wide", "世", event.NewRune('世', event.ModNone)},
		{"focus in", "\x1b[I", event.New(event.FocusGained)},
		{"focus out", "\x1b[O", event.New(event.FocusLost)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder()
			got := decodeAll(d, tc.in)
			if diff := cmp.Diff([]event.Event{tc.want}, got); diff != "" {
				t.Errorf("Decode(%q) (-want +got):\n%s", tc.in, diff)
			}
			if d.Pending() != 0 {
				t.Errorf("Expected empty buffer, %d bytes pending", d.Pending())
			}
		})
	}
}

func TestDecodeBindingsRoundTrip(t *testing.T) {
	// Decoded keys must match the bindings users write in config
	tests := []struct {
		in      string
		binding string
	}{
		{"\x03", "ctrl+c"},
		{"\x11", "ctrl+q"},
		{"\x1b[Z", "shift+tab"},
		{"\x1b[15~", "f5"},
		{"\x1bx", "alt+x"},
		{"q", "q"},
	}
	for _, tc := range tests {
		got := decodeAll(NewDecoder(), tc.in)
		if len(got) != 1 || !event.MustBinding(tc.binding).Matches(got[0]) {
			t.Errorf("Expected %q to match %s, got %v", tc.in, tc.binding, got)
		}
	}
}

func TestDecodeUnknownSwallowed(t *testing.T) {
	d := NewDecoder()
	got := decodeAll(d, "\x1b[99zq")
	want := []event.Event{event.NewRune('q', event.ModNone)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unknown CSI should be dropped (-want +got):\n%s", diff)
	}
}

func TestDecodeSplitSequences(t *testing.T) {
	d := NewDecoder()

	if got := decodeAll(d, "\x1b["); len(got) != 0 {
		t.Fatalf("Expected no events for partial CSI, got %v", got)
	}
	if d.Pending() != 2 {
		t.Errorf("Expected 2 pending bytes, got %d", d.Pending())
	}
	got := decodeAll(d, "1;5", "A")
	if diff := cmp.Diff([]event.Event{event.NewKey(event.KeyUp, event.ModCtrl)}, got); diff != "" {
		t.Errorf("Split CSI (-want +got):\n%s", diff)
	}

	// UTF-8 split across reads
	got = decodeAll(d, "\xc3", "\xa9")
	if diff := cmp.Diff([]event.Event{event.NewRune('é', event.ModNone)}, got); diff != "" {
		t.Errorf("Split UTF-8 (-want +got):\n%s", diff)
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	d := NewDecoder()
	if got := decodeAll(d, "\x1b"); len(got) != 0 {
		t.Fatalf("ESC must wait for the idle timeout, got %v", got)
	}

	var got []event.Event
	d.Flush(func(ev event.Event) { got = append(got, ev) })
	if diff := cmp.Diff([]event.Event{event.NewKey(event.KeyEscape, event.ModNone)}, got); diff != "" {
		t.Errorf("Flush (-want +got):\n%s", diff)
	}
	if d.Pending() != 0 {
		t.Error("Flush should empty the buffer")
	}

	// ESC [ with nothing after it is Alt+[
	got = got[:0]
	decodeAll(d, "\x1b[")
	d.Flush(func(ev event.Event) { got = append(got, ev) })
	if diff := cmp.Diff([]event.Event{event.NewRune('[', event.ModAlt)}, got); diff != "" {
		t.Errorf("Flush ESC [ (-want +got):\n%s", diff)
	}
}

func TestDecodeMouse(t *testing.T) {
	d := NewDecoder()
	got := decodeAll(d, "\x1b[<0;5;3M", "\x1b[<0;5;3m")
	want := []event.Event{
		event.NewMouse(event.MousePress, event.ButtonLeft, 4, 2, event.ModNone),
		event.NewMouse(event.MouseRelease, event.ButtonLeft, 4, 2, event.ModNone),
		event.NewMouse(event.MouseClick, event.ButtonLeft, 4, 2, event.ModNone),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Press/release (-want +got):\n%s", diff)
	}

	// Drag away: no click
	got = decodeAll(d, "\x1b[<2;1;1M", "\x1b[<34;4;1M", "\x1b[<2;4;1m")
	want = []event.Event{
		event.NewMouse(event.MousePress, event.ButtonRight, 0, 0, event.ModNone),
		event.NewMouse(event.MouseMove, event.ButtonRight, 3, 0, event.ModNone),
		event.NewMouse(event.MouseRelease, event.ButtonRight, 3, 0, event.ModNone),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Drag (-want +got):\n%s", diff)
	}

	got = decodeAll(d, "\x1b[<65;1;2M", "\x1b[<35;10;10M", "\x1b[<16;1;1M")
	scroll := event.NewScroll(event.ScrollDown, 0, 1)
	want = []event.Event{
		scroll,
		event.NewMouse(event.MouseMove, event.ButtonNone, 9, 9, event.ModNone),
		event.NewMouse(event.MousePress, event.ButtonLeft, 0, 0, event.ModCtrl),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scroll/motion/mods (-want +got):\n%s", diff)
	}
}

func TestDecodeMouseMalformed(t *testing.T) {
	d := NewDecoder()
	got := decodeAll(d, "\x1b[<0;;3Mz")
	if diff := cmp.Diff([]event.Event{event.NewRune('z', event.ModNone)}, got); diff != "" {
		t.Errorf("Malformed mouse report should be dropped (-want +got):\n%s", diff)
	}
}

func TestParseSGRParams(t *testing.T) {
	btn, x, y, ok := parseSGRParams([]byte("64;120;40"))
	if !ok || btn != 64 || x != 120 || y != 40 {
		t.Errorf("Expected 64,120,40, got %d,%d,%d ok=%v", btn, x, y, ok)
	}
	for _, bad := range []string{"", "1;2", "1;2;3;4", "a;1;1", "1;2;"} {
		if _, _, _, ok := parseSGRParams([]byte(bad)); ok {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
}
