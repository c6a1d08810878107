package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellgrid/style"
)

// writerBufferSize holds a full-screen repaint of a large terminal without intermediate syscalls
const writerBufferSize = 128 * 1024

// sgrAttrs maps attribute bits to their SGR parameter
var sgrAttrs = [...]struct {
	attr style.Attr
	code byte
}{
	{style.AttrBold, '1'},
	{style.AttrDim, '2'},
	{style.AttrItalic, '3'},
	{style.AttrUnderline, '4'},
	{style.AttrBlink, '5'},
	{style.AttrReverse, '7'},
	{style.AttrHidden, '8'},
	{style.AttrStrikethrough, '9'},
}

// Writer is an ANSI frame.Sink. It tracks the terminal cursor and the active
// SGR state so redundant moves and style changes are never written
type Writer struct {
	out  *bufio.Writer
	mode ColorMode
	size func() (int, int)

	cursorX     int
	cursorY     int
	cursorValid bool

	last      style.Style
	lastValid bool
}

// NewWriter wraps w; size reports the terminal dimensions
func NewWriter(w io.Writer, mode ColorMode, size func() (int, int)) *Writer {
	return &Writer{
		out:  bufio.NewWriterSize(w, writerBufferSize),
		mode: mode,
		size: size,
	}
}

// ColorMode returns the color capability output is encoded for
func (w *Writer) ColorMode() ColorMode { return w.mode }

func (w *Writer) Size() (int, int) {
	return w.size()
}

// MoveTo positions the cursor, using CUF for short forward hops on the same row
func (w *Writer) MoveTo(x, y int) error {
	if w.cursorValid && x == w.cursorX && y == w.cursorY {
		return nil
	}
	if w.cursorValid && y == w.cursorY && x > w.cursorX {
		writeCursorForward(w.out, x-w.cursorX)
	} else {
		writeCursorPos(w.out, x, y)
	}
	w.cursorX, w.cursorY = x, y
	w.cursorValid = true
	return w.err()
}

// SetStyle emits one combined SGR sequence. An attribute change needs a reset
// first; a color-only change sends just the colors that differ
func (w *Writer) SetStyle(st style.Style) error {
	st = w.resolve(st)
	if w.lastValid && st == w.last {
		return nil
	}

	out := w.out
	attrChanged := !w.lastValid || st.Attrs != w.last.Attrs
	fgChanged := !w.lastValid || st.Fg != w.last.Fg
	bgChanged := !w.lastValid || st.Bg != w.last.Bg

	out.Write(csi)
	if attrChanged {
		out.WriteByte('0')
		for _, a := range sgrAttrs {
			if st.Has(a.attr) {
				out.WriteByte(';')
				out.WriteByte(a.code)
			}
		}
		if !st.Fg.IsDefault() {
			out.WriteByte(';')
			w.writeColor(st.Fg, false)
		}
		if !st.Bg.IsDefault() {
			out.WriteByte(';')
			w.writeColor(st.Bg, true)
		}
	} else {
		if fgChanged {
			w.writeColor(st.Fg, false)
		}
		if bgChanged {
			if fgChanged {
				out.WriteByte(';')
			}
			w.writeColor(st.Bg, true)
		}
	}
	out.WriteByte('m')

	w.last = st
	w.lastValid = true
	return w.err()
}

// resolve drops what the color mode cannot show
func (w *Writer) resolve(st style.Style) style.Style {
	if w.mode == ColorModeNone {
		st.Fg, st.Bg = style.ColorDefault, style.ColorDefault
	}
	return st
}

// writeColor writes the SGR parameters for c, without CSI prefix or 'm' suffix
func (w *Writer) writeColor(c style.Color, bg bool) {
	out := w.out
	if c.IsDefault() {
		if bg {
			out.WriteString("49")
		} else {
			out.WriteString("39")
		}
		return
	}

	switch {
	case w.mode == ColorMode16:
		n := int(to16(c))
		base := 30
		if n >= 8 {
			base, n = 90, n-8
		}
		if bg {
			base += 10
		}
		writeInt(out, base+n)

	case c.IsRGB() && w.mode == ColorModeTrueColor:
		r, g, b, _ := c.Components()
		if bg {
			out.Write(sgrBgRGB)
		} else {
			out.Write(sgrFgRGB)
		}
		writeInt(out, int(r))
		out.WriteByte(';')
		writeInt(out, int(g))
		out.WriteByte(';')
		writeInt(out, int(b))

	default:
		if bg {
			out.Write(sgrBg256)
		} else {
			out.Write(sgrFg256)
		}
		writeInt(out, int(c.To256()))
	}
}

// WriteRune writes r and advances the tracked cursor by its cell width
func (w *Writer) WriteRune(r rune) error {
	if r < 0x80 {
		w.out.WriteByte(byte(r))
	} else {
		w.out.WriteRune(r)
	}
	w.cursorX += max(runewidth.RuneWidth(r), 1)
	return w.err()
}

func (w *Writer) Flush() error {
	return w.out.Flush()
}

// Clear resets attributes, erases the screen and forgets cursor and style state
func (w *Writer) Clear() error {
	w.out.Write(csiSGR0)
	w.out.Write(csiClear)
	w.Invalidate()
	return w.out.Flush()
}

// Invalidate forgets cursor and style state, forcing the next writes to be explicit
func (w *Writer) Invalidate() {
	w.cursorValid = false
	w.lastValid = false
}

// writeRaw bypasses state tracking for mode switches
func (w *Writer) writeRaw(seqs ...[]byte) error {
	for _, s := range seqs {
		w.out.Write(s)
	}
	return w.out.Flush()
}

// err returns the writer's sticky error, if any
func (w *Writer) err() error {
	// bufio.Writer reports a previous failure on any further write
	_, err := w.out.Write(nil)
	return err
}
