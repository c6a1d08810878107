package widget

import (
	"strings"

	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/style"
)

// Align controls horizontal text placement inside a widget's bounds
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label draws static text, one row per line, truncated with an ellipsis
type Label struct {
	component.Base
	Text  string
	Theme Theme
	Align Align
}

// NewLabel creates a left-aligned label
func NewLabel(id, text string) *Label {
	return &Label{Base: component.NewBase(id), Text: text, Theme: DefaultTheme()}
}

// SetText replaces the label text
func (l *Label) SetText(s string) { l.Text = s }

func (l *Label) Render(buf *frame.Buffer) error {
	r := l.Bounds()
	if r.Empty() {
		return nil
	}
	for i, line := range strings.Split(l.Text, "\n") {
		if i >= r.H {
			break
		}
		drawAligned(buf, r.X, r.Y+i, r.W, line, l.Align, l.Theme.Text)
	}
	return nil
}

func drawAligned(buf *frame.Buffer, x, y, w int, s string, a Align, st style.Style) {
	switch a {
	case AlignCenter:
		buf.DrawTextCentered(x, y, w, s, st)
	case AlignRight:
		s = frame.Truncate(s, w)
		buf.DrawText(x+w-frame.TextWidth(s), y, s, st)
	default:
		buf.DrawTextTruncated(x, y, w, s, st)
	}
}
