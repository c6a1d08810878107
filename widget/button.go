package widget

import (
	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
)

// Button is a clickable label. It shows hover and pressed states and
// runs OnClick when clicked inside its bounds
type Button struct {
	component.Base
	Text    string
	Theme   Theme
	OnClick func(*Button)

	hovered bool
	active  bool
}

// NewButton creates a button with a click handler, which may be nil
func NewButton(id, text string, onClick func(*Button)) *Button {
	return &Button{
		Base:    component.NewBase(id),
		Text:    text,
		Theme:   DefaultTheme(),
		OnClick: onClick,
	}
}

// Hovered reports whether the pointer is over the button
func (b *Button) Hovered() bool { return b.hovered }

// Active reports whether the button is held down
func (b *Button) Active() bool { return b.active }

// SetHovered is called by the router as the pointer enters and leaves
func (b *Button) SetHovered(h bool) { b.hovered = h }

func (b *Button) HandleEvent(ev event.Event) bool {
	switch ev.Type {
	case event.MousePress:
		if ev.Button == event.ButtonLeft && b.Contains(ev.X, ev.Y) {
			b.active = true
			return true
		}
	case event.MouseRelease:
		if b.active {
			b.active = false
			return true
		}
	case event.MouseClick:
		if b.Contains(ev.X, ev.Y) {
			b.active = false
			if b.OnClick != nil {
				b.OnClick(b)
			}
			return true
		}
	}
	return false
}

func (b *Button) Render(buf *frame.Buffer) error {
	r := b.Bounds()
	if r.Empty() {
		return nil
	}
	st := b.Theme.Button
	switch {
	case b.active:
		st = b.Theme.ButtonActive
	case b.hovered:
		st = b.Theme.ButtonHover
	}
	buf.DrawRect(r.X, r.Y, r.W, r.H, st)
	buf.DrawTextCentered(r.X, r.Y+r.H/2, r.W, b.Text, st)
	return nil
}
