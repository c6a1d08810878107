package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
)

// PasswordMask replaces each character of a password input
const PasswordMask = '•'

// TextInput is a single-line editor. It takes focus when clicked and, while
// focused, receives every key event from the router. Esc releases focus
type TextInput struct {
	component.Base
	Theme       Theme
	Placeholder string
	Password    bool

	OnChange func(*TextInput)
	OnSubmit func(*TextInput)
	// OnReject runs when a character is refused because the input is full
	OnReject func(*TextInput)

	field   field
	focused bool
}

// NewTextInput creates an empty input with the default placeholder
func NewTextInput(id string) *TextInput {
	return &TextInput{
		Base:        component.NewBase(id),
		Theme:       DefaultTheme(),
		Placeholder: "Enter text...",
	}
}

// Text returns the current value
func (t *TextInput) Text() string { return t.field.value() }

// SetText replaces the value, truncated to the max length
func (t *TextInput) SetText(s string) { t.field.set(s) }

// Cursor returns the rune index the cursor sits before
func (t *TextInput) Cursor() int { return t.field.cursor }

// MaxLength returns the rune limit, 0 when unlimited
func (t *TextInput) MaxLength() int { return t.field.limit }

// SetMaxLength limits the value to n runes; existing text is truncated
func (t *TextInput) SetMaxLength(n int) {
	t.field.limit = max(n, 0)
	t.field.set(t.field.value())
}

func (t *TextInput) Focused() bool { return t.focused }

func (t *TextInput) SetFocused(f bool) { t.focused = f }

func (t *TextInput) HandleEvent(ev event.Event) bool {
	if ev.Type == event.MouseClick {
		inside := t.Contains(ev.X, ev.Y)
		switch {
		case inside && !t.focused:
			t.focused = true
			return true
		case inside:
			t.moveCursorTo(ev.X)
			return true
		case t.focused:
			t.focused = false
			return true
		}
		return false
	}
	if !t.focused || ev.Type != event.KeyPress {
		return false
	}
	return t.handleKey(ev)
}

func (t *TextInput) handleKey(ev event.Event) bool {
	f := &t.field
	changed := false

	switch ev.Key {
	case event.KeyRune, event.KeySpace:
		if ev.Mods.Has(event.ModAlt) || ev.Mods.Has(event.ModCtrl) {
			return false
		}
		r := ev.Rune
		if ev.Key == event.KeySpace {
			r = ' '
		}
		if !f.insert(r) {
			if t.OnReject != nil {
				t.OnReject(t)
			}
			return true
		}
		changed = true
	case event.KeyBackspace:
		changed = f.deleteBackward()
	case event.KeyDelete:
		changed = f.deleteForward()
	case event.KeyCtrlW:
		changed = f.deleteWordBackward()
	case event.KeyCtrlU:
		changed = f.deleteToStart()
	case event.KeyCtrlK:
		changed = f.deleteToEnd()
	case event.KeyLeft:
		f.left()
	case event.KeyRight:
		f.right()
	case event.KeyHome, event.KeyCtrlA:
		f.home()
	case event.KeyEnd, event.KeyCtrlE:
		f.end()
	case event.KeyEscape:
		t.focused = false
	case event.KeyEnter:
		if t.OnSubmit != nil {
			t.OnSubmit(t)
		}
	default:
		return false
	}

	if changed && t.OnChange != nil {
		t.OnChange(t)
	}
	return true
}

// display returns the runes shown for the value
func (t *TextInput) display() []rune {
	if t.Password {
		return []rune(strings.Repeat(string(PasswordMask), len(t.field.text)))
	}
	return t.field.text
}

// textArea returns the column offset and width available for text
func (t *TextInput) textArea() (off, width int) {
	w := t.Bounds().W
	if w < 3 {
		return 0, w
	}
	return 1, w - 2
}

func runesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// keepCursorVisible scrolls so the cursor cell fits in width columns
func (t *TextInput) keepCursorVisible(shown []rune, width int) {
	f := &t.field
	if f.cursor < f.scroll {
		f.scroll = f.cursor
	}
	for f.scroll < f.cursor && runesWidth(shown[f.scroll:f.cursor]) > width-1 {
		f.scroll++
	}
}

func (t *TextInput) moveCursorTo(x int) {
	off, _ := t.textArea()
	col := x - t.Bounds().X - off
	shown := t.display()
	i := t.field.scroll
	for i < len(shown) && col > 0 {
		col -= runewidth.RuneWidth(shown[i])
		i++
	}
	t.field.cursor = i
}

func (t *TextInput) Render(buf *frame.Buffer) error {
	r := t.Bounds()
	if r.Empty() {
		return nil
	}
	st := t.Theme.Input
	if t.focused {
		st = t.Theme.InputFocus
	}
	buf.DrawRect(r.X, r.Y, r.W, r.H, st)

	off, width := t.textArea()
	x := r.X + off
	if width <= 0 {
		return nil
	}

	shown := t.display()
	if len(shown) == 0 {
		if t.Placeholder != "" {
			buf.DrawTextTruncated(x, r.Y, width, t.Placeholder, t.Theme.Placeholder)
		}
		if t.focused {
			buf.DrawChar(x, r.Y, ' ', t.Theme.Cursor)
		}
		return nil
	}

	t.keepCursorVisible(shown, width)
	f := &t.field

	cx := x
	for i := f.scroll; i < len(shown); i++ {
		w := runewidth.RuneWidth(shown[i])
		if cx+w > x+width {
			break
		}
		buf.DrawChar(cx, r.Y, shown[i], st)
		cx += w
	}

	if t.focused {
		cur := x + runesWidth(shown[f.scroll:f.cursor])
		ch := ' '
		if f.cursor < len(shown) {
			ch = shown[f.cursor]
		}
		buf.DrawChar(cur, r.Y, ch, t.Theme.Cursor)
	}
	return nil
}
