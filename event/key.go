package event

// Key represents a decoded key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// CtrlLetter returns the KeyCtrlA..KeyCtrlZ key for a letter, case-insensitive
func CtrlLetter(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyCtrlA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyCtrlA + Key(r-'A'), true
	}
	return KeyNone, false
}

// FunctionKey returns KeyF1..KeyF12 for n in 1..12
func FunctionKey(n int) (Key, bool) {
	if n < 1 || n > 12 {
		return KeyNone, false
	}
	return KeyF1 + Key(n-1), true
}

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
	ModMeta  Modifier = 1 << 3
)

// Has reports whether every flag in m2 is set
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

func (m Modifier) String() string {
	s := ""
	for _, mn := range modNames {
		if m&mn.mod != 0 {
			s += mn.name + "+"
		}
	}
	if s == "" {
		return "none"
	}
	return s[:len(s)-1]
}
