package widget

import (
	"strings"
	"testing"

	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/dispatch"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/layout"
)

func row(buf *frame.Buffer, y int) string {
	var sb strings.Builder
	for x := 0; x < buf.Width(); x++ {
		c, _ := buf.Cell(x, y)
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

func typeText(t *TextInput, s string) {
	for _, r := range s {
		t.HandleEvent(event.NewRune(r, event.ModNone))
	}
}

func TestLabelAlignAndTruncate(t *testing.T) {
	tests := []struct {
		align Align
		text  string
		want  string
	}{
		{AlignLeft, "hi", "hi        "},
		{AlignCenter, "hi", "    hi    "},
		{AlignRight, "hi", "        hi"},
		{AlignLeft, "hello, world!", "hello, ..."},
	}
	for _, tc := range tests {
		l := NewLabel("l", tc.text)
		l.Align = tc.align
		l.SetBounds(layout.NewRect(0, 0, 10, 1))
		buf := frame.New(10, 1)
		if err := l.Render(buf); err != nil {
			t.Fatal(err)
		}
		if got := row(buf, 0); got != tc.want {
			t.Errorf("align %d %q: expected %q, got %q", tc.align, tc.text, tc.want, got)
		}
	}
}

func TestLabelMultiline(t *testing.T) {
	l := NewLabel("l", "one\ntwo\nthree")
	l.SetBounds(layout.NewRect(0, 0, 5, 2))
	buf := frame.New(5, 3)
	l.Render(buf)
	if row(buf, 0) != "one  " || row(buf, 1) != "two  " || row(buf, 2) != "     " {
		t.Errorf("Unexpected rows %q %q %q", row(buf, 0), row(buf, 1), row(buf, 2))
	}
}

func TestButtonClickAndStates(t *testing.T) {
	clicks := 0
	b := NewButton("ok", "OK", func(*Button) { clicks++ })
	b.SetBounds(layout.NewRect(2, 2, 6, 1))

	if !b.HandleEvent(event.NewMouse(event.MousePress, event.ButtonLeft, 3, 2, event.ModNone)) || !b.Active() {
		t.Fatal("Expected press to activate")
	}
	if !b.HandleEvent(event.NewMouse(event.MouseRelease, event.ButtonLeft, 3, 2, event.ModNone)) || b.Active() {
		t.Error("Expected release to deactivate")
	}
	if !b.HandleEvent(event.NewClick(3, 2)) || clicks != 1 {
		t.Errorf("Expected 1 click, got %d", clicks)
	}
	if b.HandleEvent(event.NewClick(0, 0)) || clicks != 1 {
		t.Error("Click outside must not fire")
	}

	buf := frame.New(10, 4)
	b.SetHovered(true)
	b.Render(buf)
	c, _ := buf.Cell(2, 2)
	if c.Style != b.Theme.ButtonHover {
		t.Errorf("Expected hover style, got %v", c.Style)
	}
	if got := row(buf, 2); got != "    OK    " {
		t.Errorf("Expected centered label, got %q", got)
	}
}

func TestButtonHoverThroughRouter(t *testing.T) {
	b := NewButton("b", "Go", nil)
	root := component.NewContainer("root", layout.Absolute)
	root.Add(b)
	layout.ResolveTree(root, layout.NewRect(0, 0, 20, 5))

	r := dispatch.NewRouter()
	bb := b.Bounds()
	r.Dispatch(root, event.NewMouse(event.MouseMove, event.ButtonNone, bb.X, bb.Y, event.ModNone))
	if !b.Hovered() {
		t.Fatal("Expected hover on enter")
	}
	r.Dispatch(root, event.NewMouse(event.MouseMove, event.ButtonNone, 19, 4, event.ModNone))
	if b.Hovered() {
		t.Error("Expected hover cleared on leave")
	}
}

func TestTextInputEditing(t *testing.T) {
	in := NewTextInput("name")
	in.SetBounds(layout.NewRect(0, 0, 12, 1))

	typeText(in, "x")
	if in.Text() != "" {
		t.Fatal("Unfocused input must ignore keys")
	}

	if !in.HandleEvent(event.NewClick(3, 0)) || !in.Focused() {
		t.Fatal("Expected click to focus")
	}
	typeText(in, "helo")
	in.HandleEvent(event.NewKey(event.KeyLeft, event.ModNone))
	typeText(in, "l")
	if in.Text() != "hello" || in.Cursor() != 4 {
		t.Errorf("Expected hello cursor 4, got %q %d", in.Text(), in.Cursor())
	}

	in.HandleEvent(event.NewKey(event.KeyEnd, event.ModNone))
	in.HandleEvent(event.NewKey(event.KeySpace, event.ModNone))
	typeText(in, "you")
	in.HandleEvent(event.NewKey(event.KeyCtrlW, event.ModNone))
	if in.Text() != "hello " {
		t.Errorf("Expected word deleted, got %q", in.Text())
	}

	in.HandleEvent(event.NewKey(event.KeyHome, event.ModNone))
	in.HandleEvent(event.NewKey(event.KeyDelete, event.ModNone))
	in.HandleEvent(event.NewKey(event.KeyBackspace, event.ModNone))
	if in.Text() != "ello " || in.Cursor() != 0 {
		t.Errorf("Expected ello cursor 0, got %q %d", in.Text(), in.Cursor())
	}

	if in.HandleEvent(event.NewKey(event.KeyTab, event.ModNone)) {
		t.Error("Tab is left for focus traversal")
	}

	in.HandleEvent(event.NewKey(event.KeyEscape, event.ModNone))
	if in.Focused() {
		t.Error("Expected Esc to release focus")
	}
}

func TestTextInputMaxLength(t *testing.T) {
	in := NewTextInput("code")
	in.SetFocused(true)
	in.SetMaxLength(3)
	rejected := 0
	in.OnReject = func(*TextInput) { rejected++ }

	typeText(in, "abcd")
	if in.Text() != "abc" || rejected != 1 {
		t.Errorf("Expected abc with 1 reject, got %q %d", in.Text(), rejected)
	}

	in.SetText("toolong")
	if in.Text() != "too" {
		t.Errorf("SetText should truncate, got %q", in.Text())
	}
}

func TestTextInputRender(t *testing.T) {
	in := NewTextInput("pw")
	in.Password = true
	in.SetBounds(layout.NewRect(0, 0, 8, 1))
	buf := frame.New(8, 1)

	in.Render(buf)
	if got := row(buf, 0); got != " Ent... " {
		t.Errorf("Expected placeholder, got %q", got)
	}

	in.SetFocused(true)
	typeText(in, "secret")
	buf.Clear()
	in.Render(buf)
	if got := row(buf, 0); got != " •••••  " {
		t.Errorf("Expected masked scrolled text, got %q", got)
	}
	c, _ := buf.Cell(6, 0)
	if c.Style != in.Theme.Cursor {
		t.Errorf("Expected cursor cell at column 6, got %v", c.Style)
	}
}

func TestTextInputOnChangeAndSubmit(t *testing.T) {
	in := NewTextInput("q")
	in.SetFocused(true)
	changes, submits := 0, 0
	in.OnChange = func(*TextInput) { changes++ }
	in.OnSubmit = func(*TextInput) { submits++ }

	typeText(in, "ab")
	in.HandleEvent(event.NewKey(event.KeyLeft, event.ModNone))
	in.HandleEvent(event.NewKey(event.KeyEnter, event.ModNone))
	if changes != 2 || submits != 1 {
		t.Errorf("Expected 2 changes 1 submit, got %d %d", changes, submits)
	}
}
