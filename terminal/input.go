package terminal

import (
	"unicode/utf8"

	"github.com/lixenwraith/cellgrid/event"
)

// Decoder turns raw terminal input into events. Bytes of an incomplete
// sequence are kept until the next Decode; a lone ESC is only reported by
// Flush, which the reader calls when input has been idle for a poll period.
// A left/middle/right release at the cell of its press also yields a MouseClick
type Decoder struct {
	buf []byte

	pressed  event.MouseButton
	pressX   int
	pressY   int
	hasPress bool
}

// NewDecoder creates an empty decoder
func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, 256)}
}

// Pending returns the number of buffered bytes awaiting completion
func (d *Decoder) Pending() int { return len(d.buf) }

// Decode appends data and emits every complete event in it
func (d *Decoder) Decode(data []byte, emit func(event.Event)) {
	d.buf = append(d.buf, data...)
	consumed := d.parse(d.buf, emit)
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	n := copy(d.buf, d.buf[consumed:])
	d.buf = d.buf[:n]
}

// Flush resolves what an idle timeout disambiguates: ESC alone is Escape and
// ESC followed by one byte is that key with Alt. Anything else left over is dropped
func (d *Decoder) Flush(emit func(event.Event)) {
	switch {
	case len(d.buf) == 0:
		return
	case len(d.buf) == 1 && d.buf[0] == 0x1b:
		emit(event.NewKey(event.KeyEscape, event.ModNone))
	case len(d.buf) == 2 && d.buf[0] == 0x1b && d.buf[1] >= 0x20 && d.buf[1] < 0x7f:
		emit(event.NewRune(rune(d.buf[1]), event.ModAlt))
	}
	d.buf = d.buf[:0]
}

// parse returns the bytes consumed, stopping at an incomplete sequence
func (d *Decoder) parse(data []byte, emit func(event.Event)) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b == ' ':
			emit(event.NewKey(event.KeySpace, event.ModNone))
			i++

		case b > 0x20 && b < 0x7f:
			emit(event.NewRune(rune(b), event.ModNone))
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i
			}
			consumed, ev, ok := d.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ok {
				emit(ev)
				if ev.Type == event.MouseRelease {
					d.synthesizeClick(ev, emit)
				}
			}
			i += consumed

		case b < 0x20:
			emit(controlEvent(b, event.ModNone))
			i++

		case b == 0x7f:
			emit(event.NewKey(event.KeyBackspace, event.ModNone))
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				emit(event.NewRune(r, event.ModNone))
			}
			i += size
		}
	}
	return i
}

func controlEvent(b byte, mod event.Modifier) event.Event {
	return event.NewKey(controlKeys[b], mod)
}

// parseEscape decodes one sequence starting at ESC; consumed is 0 when more bytes are needed.
// ok is false for syntactically complete but unknown sequences, which are swallowed
func (d *Decoder) parseEscape(data []byte) (consumed int, ev event.Event, ok bool) {
	switch c := data[1]; {
	case c == 0x1b:
		return 2, event.NewKey(event.KeyEscape, event.ModAlt), true
	case c == '[':
		return d.parseCSI(data)
	case c == 'O':
		return parseSS3(data)
	case c == ' ':
		return 2, event.NewKey(event.KeySpace, event.ModAlt), true
	case c < 0x20:
		return 2, controlEvent(c, event.ModAlt), true
	case c < 0x7f:
		return 2, event.NewRune(rune(c), event.ModAlt), true
	case c == 0x7f:
		return 2, event.NewKey(event.KeyBackspace, event.ModAlt), true
	}
	// ESC before a UTF-8 lead byte: Alt plus the decoded rune
	if !utf8.FullRune(data[1:]) {
		return 0, event.Event{}, false
	}
	r, size := utf8.DecodeRune(data[1:])
	return 1 + size, event.NewRune(r, event.ModAlt), r != utf8.RuneError
}

// csiFinal reports whether b ends a CSI sequence
func csiFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

func (d *Decoder) parseCSI(data []byte) (int, event.Event, bool) {
	if len(data) < 3 {
		return 0, event.Event{}, false
	}
	if data[2] == '<' {
		return d.parseSGRMouse(data)
	}

	// Linux console F1-F5: ESC [ [ A..E
	if data[2] == '[' {
		if len(data) < 4 {
			return 0, event.Event{}, false
		}
		key, mod, ok := lookupCSI(data[2:4])
		return 4, event.NewKey(key, mod), ok
	}

	const maxScan = 32
	end := 2
	for ; end < len(data); end++ {
		b := data[end]
		if csiFinal(b) {
			break
		}
		if b < 0x20 || b > 0x7e || end >= maxScan {
			// Not a CSI sequence after all: report ESC [ as Alt+[
			return 2, event.NewRune('[', event.ModAlt), true
		}
	}
	if end >= len(data) {
		return 0, event.Event{}, false
	}
	end++

	seq := data[2:end]
	switch string(seq) {
	case "I":
		return end, event.New(event.FocusGained), true
	case "O":
		return end, event.New(event.FocusLost), true
	}
	if key, mod, ok := lookupCSI(seq); ok {
		return end, event.NewKey(key, mod), true
	}
	return end, event.Event{}, false
}

func parseSS3(data []byte) (int, event.Event, bool) {
	if len(data) < 3 {
		return 0, event.Event{}, false
	}
	key, mod, ok := lookupSS3(data[2:3])
	return 3, event.NewKey(key, mod), ok
}

// parseSGRMouse decodes ESC [ < Btn ; X ; Y (M|m)
func (d *Decoder) parseSGRMouse(data []byte) (int, event.Event, bool) {
	end := 3
	for end < len(data) && data[end] != 'M' && data[end] != 'm' {
		if end >= 32 {
			// Runaway parameters; drop the introducer
			return 3, event.Event{}, false
		}
		end++
	}
	if end >= len(data) {
		return 0, event.Event{}, false
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, event.Event{}, false
	}
	x, y = x-1, y-1
	release := data[end] == 'm'

	// Bits 0-1 button, 2 shift, 3 alt, 4 ctrl, 5 motion, 6 wheel
	var mods event.Modifier
	if btn&4 != 0 {
		mods |= event.ModShift
	}
	if btn&8 != 0 {
		mods |= event.ModAlt
	}
	if btn&16 != 0 {
		mods |= event.ModCtrl
	}
	id := btn & 0x03

	if btn&64 != 0 {
		ev := event.NewScroll(event.ScrollDirection(id), x, y)
		ev.Mods = mods
		return end + 1, ev, true
	}

	button := event.ButtonNone
	switch id {
	case 0:
		button = event.ButtonLeft
	case 1:
		button = event.ButtonMiddle
	case 2:
		button = event.ButtonRight
	}

	switch {
	case btn&32 != 0:
		return end + 1, event.NewMouse(event.MouseMove, button, x, y, mods), true
	case release:
		return end + 1, event.NewMouse(event.MouseRelease, button, x, y, mods), true
	default:
		d.pressed, d.pressX, d.pressY, d.hasPress = button, x, y, true
		return end + 1, event.NewMouse(event.MousePress, button, x, y, mods), true
	}
}

// synthesizeClick emits MouseClick when a release lands where its press did
func (d *Decoder) synthesizeClick(rel event.Event, emit func(event.Event)) {
	if !d.hasPress {
		return
	}
	d.hasPress = false
	if rel.X != d.pressX || rel.Y != d.pressY {
		return
	}
	if rel.Button != event.ButtonNone && rel.Button != d.pressed {
		return
	}
	emit(event.NewMouse(event.MouseClick, d.pressed, rel.X, rel.Y, rel.Mods))
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y"
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0
	val := 0
	digits := 0

	for _, b := range data {
		switch {
		case b == ';':
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val, digits = 0, 0
			if state > 2 {
				return 0, 0, 0, false
			}
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return btn, x, val, true
}
