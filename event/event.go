// Package event defines the normalized input event model shared by input sources,
// the router and the tick loop, plus the bounded queue that connects them.
package event

import (
	"fmt"
	"strings"
)

// Type distinguishes event variants
type Type uint8

const (
	None Type = iota
	KeyPress
	KeyRelease
	MousePress
	MouseRelease
	MouseClick
	MouseMove
	MouseScroll
	Resize
	FocusGained
	FocusLost
	Quit
	Timer
	Custom
)

var typeNames = [...]string{
	None:         "none",
	KeyPress:     "key_press",
	KeyRelease:   "key_release",
	MousePress:   "mouse_press",
	MouseRelease: "mouse_release",
	MouseClick:   "mouse_click",
	MouseMove:    "mouse_move",
	MouseScroll:  "mouse_scroll",
	Resize:       "resize",
	FocusGained:  "focus_gained",
	FocusLost:    "focus_lost",
	Quit:         "quit",
	Timer:        "timer",
	Custom:       "custom",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// ParseType maps a type name to a Type
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range typeNames {
		if n == s {
			return Type(i), nil
		}
	}
	return None, fmt.Errorf("unknown event type %q", s)
}

// Event is a tagged union; fields are meaningful only for the variants noted
type Event struct {
	Type Type

	// KeyPress, KeyRelease
	Key  Key
	Rune rune

	// Key and mouse variants
	Mods Modifier

	// Mouse variants (0-indexed cell coordinates)
	X, Y   int
	Button MouseButton

	// MouseScroll
	Scroll ScrollDirection
	Delta  int

	// Resize
	Width, Height int

	// Timer id or Custom type name
	Name string
	// Custom payload
	Data string
}

// New returns a bare event of type t, used for Quit, FocusGained and FocusLost
func New(t Type) Event {
	return Event{Type: t}
}

// NewKey returns a KeyPress for a non-rune key
func NewKey(k Key, mods Modifier) Event {
	return Event{Type: KeyPress, Key: k, Mods: mods}
}

// NewRune returns a KeyPress for a printable character
func NewRune(r rune, mods Modifier) Event {
	return Event{Type: KeyPress, Key: KeyRune, Rune: r, Mods: mods}
}

// NewMouse returns a press, release, click or move event at (x, y)
func NewMouse(t Type, btn MouseButton, x, y int, mods Modifier) Event {
	return Event{Type: t, Button: btn, X: x, Y: y, Mods: mods}
}

// NewClick returns a left-button click at (x, y)
func NewClick(x, y int) Event {
	return NewMouse(MouseClick, ButtonLeft, x, y, ModNone)
}

// NewScroll returns a one-step scroll at (x, y)
func NewScroll(dir ScrollDirection, x, y int) Event {
	return Event{Type: MouseScroll, Scroll: dir, Delta: 1, X: x, Y: y}
}

// NewResize returns a terminal resize event
func NewResize(w, h int) Event {
	return Event{Type: Resize, Width: w, Height: h}
}

// NewTimer returns a timer tick for id
func NewTimer(id string) Event {
	return Event{Type: Timer, Name: id}
}

// NewCustom returns an application-defined event
func NewCustom(name, data string) Event {
	return Event{Type: Custom, Name: name, Data: data}
}

// IsKey reports key press/release events
func (e Event) IsKey() bool {
	return e.Type == KeyPress || e.Type == KeyRelease
}

// IsPointer reports events carrying a pointer position, which are routed by hit test
func (e Event) IsPointer() bool {
	return e.Type >= MousePress && e.Type <= MouseScroll
}

// IsBroadcast reports events delivered to every component without short-circuit
func (e Event) IsBroadcast() bool {
	return e.Type >= Resize && e.Type <= Custom
}

func (e Event) String() string {
	switch {
	case e.IsKey():
		b := Binding{Key: e.Key, Rune: e.Rune, Mods: e.Mods}
		return fmt.Sprintf("%s{%s}", e.Type, b)
	case e.Type == MouseScroll:
		return fmt.Sprintf("%s{%s x%d @%d,%d}", e.Type, e.Scroll, e.Delta, e.X, e.Y)
	case e.IsPointer():
		return fmt.Sprintf("%s{%s @%d,%d}", e.Type, e.Button, e.X, e.Y)
	case e.Type == Resize:
		return fmt.Sprintf("%s{%dx%d}", e.Type, e.Width, e.Height)
	case e.Type == Timer:
		return fmt.Sprintf("%s{%s}", e.Type, e.Name)
	case e.Type == Custom:
		return fmt.Sprintf("%s{%s:%s}", e.Type, e.Name, e.Data)
	}
	return e.Type.String()
}
