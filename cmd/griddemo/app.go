package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/cellgrid/bell"
	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/layout"
	"github.com/lixenwraith/cellgrid/style"
	"github.com/lixenwraith/cellgrid/widget"
)

// clockTimer refreshes the status line clock
const clockTimer = "clock"

var keypadRows = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", "C", "=", "+"},
}

func keyColor(key string) style.Color {
	switch key {
	case "C":
		return style.Red
	case "=":
		return style.Green
	case "+", "-", "*", "/":
		return style.Yellow
	}
	return style.White
}

// demo is the calculator screen
type demo struct {
	root    *component.Container
	display *widget.Label
	status  *statusLine
	memo    *widget.TextInput
	calc    *calculator
	bell    bell.Bell
}

func newDemo(title string, border frame.LineType, theme widget.Theme, b bell.Bell) *demo {
	d := &demo{calc: newCalculator(), bell: b}

	d.root = component.NewContainer("main", layout.Vertical)
	d.root.SetBorder(border, title)
	d.root.SetBackground(theme.Text)

	heading := widget.NewLabel("title", "Calculator")
	heading.Theme = theme
	heading.Theme.Text = theme.Text.Foreground(style.Cyan).Bold(true)
	heading.Align = widget.AlignCenter
	d.root.Add(heading)

	d.display = widget.NewLabel("display", d.calc.display)
	d.display.Theme = theme
	d.display.Theme.Text = theme.Text.Bold(true)
	d.display.Align = widget.AlignRight
	d.root.Add(d.display)

	pad := &keypad{Container: component.NewContainer("grid", layout.Vertical), demo: d}
	pad.SetPadding(layout.Symmetric(0, 1))
	for i, row := range keypadRows {
		r := component.NewContainer(fmt.Sprintf("row%d", i+1), layout.Horizontal)
		r.SetPadding(layout.Insets{})
		for _, key := range row {
			btn := widget.NewButton("btn"+key, key, d.onKey)
			btn.Theme = theme
			btn.Theme.Button = style.New(keyColor(key), style.Blue).Bold(true)
			r.Add(btn)
		}
		pad.Add(r)
	}
	d.root.Add(pad)

	d.memo = widget.NewTextInput("memo")
	d.memo.Theme = theme
	d.memo.Placeholder = "Note (Enter to save)"
	d.memo.SetMaxLength(16)
	d.memo.OnReject = func(*widget.TextInput) { d.ring() }
	d.memo.OnSubmit = func(t *widget.TextInput) {
		d.status.message = fmt.Sprintf("Saved %q", t.Text())
		t.SetText("")
	}
	d.root.Add(d.memo)

	d.status = &statusLine{Label: widget.NewLabel("status", ""), message: "Ready to calculate!"}
	d.status.Theme = theme
	d.status.Theme.Text = theme.Text.Foreground(style.Green)
	d.root.Add(d.status)

	return d
}

func (d *demo) onKey(b *widget.Button) {
	d.press(b.Text)
}

func (d *demo) press(key string) bool {
	if !d.calc.press(key) {
		return false
	}
	d.display.SetText(d.calc.display)
	d.status.message = "Pressed " + key
	return true
}

func (d *demo) ring() {
	if err := d.bell.Ring(); err != nil {
		log.Printf("bell: %v", err)
	}
}

// keypad takes calculator keys typed while nothing has focus
type keypad struct {
	*component.Container
	demo *demo
}

func (k *keypad) HandleEvent(ev event.Event) bool {
	if ev.Type != event.KeyPress || ev.Mods != event.ModNone {
		return false
	}
	switch ev.Key {
	case event.KeyRune:
		return k.demo.press(string(ev.Rune))
	case event.KeyEnter:
		return k.demo.press("=")
	case event.KeyBackspace, event.KeyDelete:
		return k.demo.press("C")
	}
	return false
}

// statusLine shows the last action and the time of day
type statusLine struct {
	*widget.Label
	message string
	now     time.Time
}

func (s *statusLine) HandleEvent(ev event.Event) bool {
	if ev.Type == event.Timer && ev.Name == clockTimer {
		s.now = time.Now()
		return true
	}
	return false
}

func (s *statusLine) Update() error {
	if s.now.IsZero() {
		s.SetText(s.message)
		return nil
	}
	s.SetText(s.message + "  " + s.now.Format("15:04:05"))
	return nil
}
