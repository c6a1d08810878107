package terminal

import (
	"strconv"

	"github.com/lixenwraith/cellgrid/event"
)

// escapeSequence maps the bytes after ESC [ or ESC O to a key
type escapeSequence struct {
	seq string
	key event.Key
	mod event.Modifier
}

// Unmodified CSI sequences (ESC [ ...)
var csiSequences = []escapeSequence{
	{"A", event.KeyUp, event.ModNone},
	{"B", event.KeyDown, event.ModNone},
	{"C", event.KeyRight, event.ModNone},
	{"D", event.KeyLeft, event.ModNone},
	{"Z", event.KeyBacktab, event.ModNone},

	{"H", event.KeyHome, event.ModNone},
	{"F", event.KeyEnd, event.ModNone},

	// Function keys (linux console)
	{"[A", event.KeyF1, event.ModNone},
	{"[B", event.KeyF2, event.ModNone},
	{"[C", event.KeyF3, event.ModNone},
	{"[D", event.KeyF4, event.ModNone},
	{"[E", event.KeyF5, event.ModNone},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"A", event.KeyUp, event.ModNone},
	{"B", event.KeyDown, event.ModNone},
	{"C", event.KeyRight, event.ModNone},
	{"D", event.KeyLeft, event.ModNone},
	{"H", event.KeyHome, event.ModNone},
	{"F", event.KeyEnd, event.ModNone},
	{"P", event.KeyF1, event.ModNone},
	{"Q", event.KeyF2, event.ModNone},
	{"R", event.KeyF3, event.ModNone},
	{"S", event.KeyF4, event.ModNone},
}

// Final letters that take an xterm "1;<mod>" prefix
var letterKeys = map[byte]event.Key{
	'A': event.KeyUp,
	'B': event.KeyDown,
	'C': event.KeyRight,
	'D': event.KeyLeft,
	'H': event.KeyHome,
	'F': event.KeyEnd,
	'P': event.KeyF1,
	'Q': event.KeyF2,
	'R': event.KeyF3,
	'S': event.KeyF4,
}

// Numeric "<n>~" keys (vt220 / xterm)
var tildeKeys = map[int]event.Key{
	1:  event.KeyHome,
	2:  event.KeyInsert,
	3:  event.KeyDelete,
	4:  event.KeyEnd,
	5:  event.KeyPageUp,
	6:  event.KeyPageDown,
	7:  event.KeyHome,
	8:  event.KeyEnd,
	11: event.KeyF1,
	12: event.KeyF2,
	13: event.KeyF3,
	14: event.KeyF4,
	15: event.KeyF5,
	17: event.KeyF6,
	18: event.KeyF7,
	19: event.KeyF8,
	20: event.KeyF9,
	21: event.KeyF10,
	23: event.KeyF11,
	24: event.KeyF12,
}

var csiMap = buildCSIMap()
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]escapeSequence {
	m := make(map[string]escapeSequence, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s
	}
	return m
}

// buildCSIMap expands the fixed table with every xterm modifier parameter (2..16)
func buildCSIMap() map[string]escapeSequence {
	m := buildSequenceMap(csiSequences)
	for n, k := range tildeKeys {
		ns := strconv.Itoa(n)
		m[ns+"~"] = escapeSequence{ns + "~", k, event.ModNone}
	}
	for p := 2; p <= 16; p++ {
		mod := xtermModifier(p)
		ps := strconv.Itoa(p)
		for c, k := range letterKeys {
			seq := "1;" + ps + string(c)
			m[seq] = escapeSequence{seq, k, mod}
		}
		for n, k := range tildeKeys {
			seq := strconv.Itoa(n) + ";" + ps + "~"
			m[seq] = escapeSequence{seq, k, mod}
		}
	}
	return m
}

// xtermModifier decodes the CSI modifier parameter: value-1 is a shift/alt/ctrl/meta bitmask
func xtermModifier(p int) event.Modifier {
	bits := p - 1
	var mod event.Modifier
	if bits&1 != 0 {
		mod |= event.ModShift
	}
	if bits&2 != 0 {
		mod |= event.ModAlt
	}
	if bits&4 != 0 {
		mod |= event.ModCtrl
	}
	if bits&8 != 0 {
		mod |= event.ModMeta
	}
	return mod
}

// lookupCSI relies on the compiler eliding the string conversion in map index expressions
func lookupCSI(seq []byte) (event.Key, event.Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return event.KeyNone, event.ModNone, false
}

func lookupSS3(seq []byte) (event.Key, event.Modifier, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return event.KeyNone, event.ModNone, false
}

// controlKeys maps C0 control bytes; Ctrl+H, I, J and M arrive as Backspace, Tab and Enter
var controlKeys = [0x20]event.Key{
	0x00: event.KeyCtrlSpace,
	0x08: event.KeyBackspace,
	0x09: event.KeyTab,
	0x0a: event.KeyEnter,
	0x0d: event.KeyEnter,
	0x1b: event.KeyEscape,
	0x1c: event.KeyCtrlBackslash,
	0x1d: event.KeyCtrlBracketRight,
	0x1e: event.KeyCtrlCaret,
	0x1f: event.KeyCtrlUnderscore,
}

func init() {
	for b := byte(0x01); b <= 0x1a; b++ {
		if controlKeys[b] == event.KeyNone {
			controlKeys[b] = event.KeyCtrlA + event.Key(b-1)
		}
	}
}
