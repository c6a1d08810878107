package widget

import "unicode"

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// field is the editable rune buffer behind TextInput
type field struct {
	text   []rune
	cursor int // index the cursor sits before
	scroll int // first visible rune
	limit  int // max runes, 0 for unlimited
}

func (f *field) value() string { return string(f.text) }

// set replaces the text, truncating to the limit, and clamps the cursor
func (f *field) set(s string) {
	f.text = []rune(s)
	if f.limit > 0 && len(f.text) > f.limit {
		f.text = f.text[:f.limit]
	}
	f.cursor = min(f.cursor, len(f.text))
	f.scroll = min(f.scroll, f.cursor)
}

func (f *field) full() bool {
	return f.limit > 0 && len(f.text) >= f.limit
}

// insert adds r at the cursor; false when the limit is reached
func (f *field) insert(r rune) bool {
	if f.full() {
		return false
	}
	f.text = append(f.text[:f.cursor], append([]rune{r}, f.text[f.cursor:]...)...)
	f.cursor++
	return true
}

func (f *field) deleteBackward() bool {
	if f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

func (f *field) deleteForward() bool {
	if f.cursor >= len(f.text) {
		return false
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
	return true
}

// deleteWordBackward removes the word before the cursor plus trailing separators
func (f *field) deleteWordBackward() bool {
	if f.cursor == 0 {
		return false
	}
	end := f.cursor
	for end > 0 && !isWordChar(f.text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(f.text[start-1]) {
		start--
	}
	f.text = append(f.text[:start], f.text[f.cursor:]...)
	f.cursor = start
	return true
}

func (f *field) deleteToStart() bool {
	if f.cursor == 0 {
		return false
	}
	f.text = f.text[f.cursor:]
	f.cursor = 0
	f.scroll = 0
	return true
}

func (f *field) deleteToEnd() bool {
	if f.cursor >= len(f.text) {
		return false
	}
	f.text = f.text[:f.cursor]
	return true
}

func (f *field) left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *field) right() {
	if f.cursor < len(f.text) {
		f.cursor++
	}
}

func (f *field) home() { f.cursor = 0 }

func (f *field) end() { f.cursor = len(f.text) }
