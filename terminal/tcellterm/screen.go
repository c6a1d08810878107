// Package tcellterm runs the frame pipeline on a tcell.Screen instead of the
// raw ANSI terminal, for platforms and terminals terminfo handles better.
package tcellterm

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellgrid/style"
)

// Screen adapts a tcell.Screen to frame.Sink and converts its events
type Screen struct {
	screen tcell.Screen

	x, y   int
	style  tcell.Style
	hidden bool

	mouse mouseState
	once  sync.Once
}

// Options configures Open
type Options struct {
	Mouse bool
	Focus bool
}

// Open creates and initializes the platform tcell screen
func Open(opts Options) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := ts.Init(); err != nil {
		return nil, err
	}
	if opts.Mouse {
		ts.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	}
	if opts.Focus {
		ts.EnableFocus()
	}
	return New(ts), nil
}

// New wraps an initialized screen
func New(ts tcell.Screen) *Screen {
	ts.HideCursor()
	ts.Clear()
	return &Screen{screen: ts, style: tcell.StyleDefault}
}

// Tcell returns the wrapped screen
func (s *Screen) Tcell() tcell.Screen { return s.screen }

// Close restores the terminal; safe to call more than once
func (s *Screen) Close() {
	s.once.Do(s.screen.Fini)
}

// Beep rings the terminal bell
func (s *Screen) Beep() error {
	return s.screen.Beep()
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) MoveTo(x, y int) error {
	s.x, s.y = x, y
	return nil
}

func (s *Screen) SetStyle(st style.Style) error {
	s.style = ToTcell(st)
	s.hidden = st.Has(style.AttrHidden)
	return nil
}

// WriteRune stores r in tcell's back buffer; Flush makes it visible
func (s *Screen) WriteRune(r rune) error {
	if s.hidden {
		r = ' '
	}
	s.screen.SetContent(s.x, s.y, r, nil, s.style)
	s.x += max(runewidth.RuneWidth(r), 1)
	return nil
}

func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

var attrMap = [...]struct {
	attr style.Attr
	mask tcell.AttrMask
}{
	{style.AttrBold, tcell.AttrBold},
	{style.AttrDim, tcell.AttrDim},
	{style.AttrItalic, tcell.AttrItalic},
	{style.AttrUnderline, tcell.AttrUnderline},
	{style.AttrBlink, tcell.AttrBlink},
	{style.AttrReverse, tcell.AttrReverse},
	{style.AttrStrikethrough, tcell.AttrStrikeThrough},
}

// ToTcell converts a style; Hidden has no tcell attribute and is applied by the sink
func ToTcell(st style.Style) tcell.Style {
	var mask tcell.AttrMask
	for _, a := range attrMap {
		if st.Has(a.attr) {
			mask |= a.mask
		}
	}
	return tcell.StyleDefault.
		Foreground(toTcellColor(st.Fg)).
		Background(toTcellColor(st.Bg)).
		Attributes(mask)
}

func toTcellColor(c style.Color) tcell.Color {
	if n, ok := c.Index(); ok {
		return tcell.PaletteColor(int(n))
	}
	if r, g, b, ok := c.Components(); ok {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
