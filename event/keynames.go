package event

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// keyToName maps Key constants to canonical config names
var keyToName = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pgup",
	KeyPageDown: "pgdn",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlSpace:        "ctrl+space",
	KeyCtrlBackslash:    "ctrl+backslash",
	KeyCtrlBracketRight: "ctrl+bracket_right",
	KeyCtrlCaret:        "ctrl+caret",
	KeyCtrlUnderscore:   "ctrl+underscore",
}

// nameToKey is the reverse lookup plus aliases
var nameToKey map[string]Key

var modNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModMeta, "meta"},
	{ModShift, "shift"},
}

var modAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"opt":     ModAlt,
	"option":  ModAlt,
	"a":       ModAlt,
	"meta":    ModMeta,
	"super":   ModMeta,
	"cmd":     ModMeta,
	"m":       ModMeta,
	"shift":   ModShift,
	"s":       ModShift,
}

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+16)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	for alias, k := range map[string]Key{
		"escape":    KeyEscape,
		"return":    KeyEnter,
		"shift+tab": KeyBacktab,
		"del":       KeyDelete,
		"ins":       KeyInsert,
		"pageup":    KeyPageUp,
		"page_up":   KeyPageUp,
		"pagedown":  KeyPageDown,
		"page_down": KeyPageDown,
		"pgdown":    KeyPageDown,
		"bs":        KeyBackspace,
	} {
		nameToKey[alias] = k
	}
}

// KeyName returns the canonical name of a Key; empty for KeyNone and KeyRune
func KeyName(k Key) string {
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(k-KeyCtrlA)))
	}
	return keyToName[k]
}

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	}
	if n := KeyName(k); n != "" {
		return n
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Binding is a parsed key description such as "ctrl+c", "alt+x" or "f5"
type Binding struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// ParseBinding reads a '+'-separated key description, case-insensitive for names.
// Ctrl with a letter resolves to the KeyCtrl* key terminals report; "plus" names '+'
func ParseBinding(s string) (Binding, error) {
	if s == "" {
		return Binding{}, fmt.Errorf("empty key binding")
	}
	if k, ok := nameToKey[strings.ToLower(s)]; ok {
		return Binding{Key: k}, nil
	}

	parts := strings.Split(s, "+")
	last := parts[len(parts)-1]
	if last == "" {
		// Trailing '+' names the plus key itself
		if s != "+" && len(parts) < 3 {
			return Binding{}, fmt.Errorf("key binding %q: missing key", s)
		}
		last = "+"
		parts = parts[:len(parts)-2]
	} else {
		parts = parts[:len(parts)-1]
	}

	var b Binding
	for _, p := range parts {
		m, ok := modAliases[strings.ToLower(p)]
		if !ok {
			return Binding{}, fmt.Errorf("key binding %q: unknown modifier %q", s, p)
		}
		b.Mods |= m
	}

	lower := strings.ToLower(last)
	if lower == "plus" {
		last, lower = "+", "+"
	}

	if k, ok := nameToKey[lower]; ok {
		b.Key = k
		if k == KeyTab && b.Mods.Has(ModShift) {
			b.Key = KeyBacktab
			b.Mods &^= ModShift
		}
		if b.Mods.Has(ModCtrl) && lower == "space" {
			b.Key = KeyCtrlSpace
			b.Mods &^= ModCtrl
		}
		return b, nil
	}

	r, size := utf8.DecodeRuneInString(last)
	if r == utf8.RuneError || size != len(last) {
		return Binding{}, fmt.Errorf("key binding %q: unknown key %q", s, last)
	}

	if b.Mods.Has(ModCtrl) {
		if k, ok := CtrlLetter(r); ok {
			b.Key = k
			b.Mods &^= ModCtrl
			return b, nil
		}
	}
	b.Key = KeyRune
	b.Rune = r
	return b, nil
}

// MustBinding is ParseBinding for static tables; it panics on error
func MustBinding(s string) Binding {
	b, err := ParseBinding(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Matches reports whether ev is a key press for this binding
func (b Binding) Matches(ev Event) bool {
	if ev.Type != KeyPress || ev.Key != b.Key || ev.Mods != b.Mods {
		return false
	}
	return b.Key != KeyRune || ev.Rune == b.Rune
}

// String formats the binding in the form ParseBinding reads
func (b Binding) String() string {
	var sb strings.Builder
	for _, mn := range modNames {
		if b.Mods&mn.mod != 0 {
			sb.WriteString(mn.name)
			sb.WriteByte('+')
		}
	}
	if b.Key == KeyRune {
		if b.Rune == '+' {
			sb.WriteString("plus")
		} else {
			sb.WriteRune(b.Rune)
		}
		return sb.String()
	}
	sb.WriteString(b.Key.String())
	return sb.String()
}
