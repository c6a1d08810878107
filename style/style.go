// Package style holds the fully resolved cell style model: colors plus text attributes.
package style

import (
	"fmt"
	"strings"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrDim           Attr = 1 << 1
	AttrItalic        Attr = 1 << 2
	AttrUnderline     Attr = 1 << 3
	AttrBlink         Attr = 1 << 4
	AttrReverse       Attr = 1 << 5
	AttrHidden        Attr = 1 << 6
	AttrStrikethrough Attr = 1 << 7
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrHidden, "hidden"},
	{AttrStrikethrough, "strikethrough"},
}

// Style is the complete visual state of a cell
// Comparable; the zero value is the terminal default
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Default is the terminal default style
var Default = Style{}

// New returns a style with the given colors and no attributes
func New(fg, bg Color) Style {
	return Style{Fg: fg, Bg: bg}
}

// Foreground returns s with foreground c
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns s with background c
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns s with attributes a added
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Without returns s with attributes a removed
func (s Style) Without(a Attr) Style {
	s.Attrs &^= a
	return s
}

func (s Style) set(a Attr, on bool) Style {
	if on {
		return s.With(a)
	}
	return s.Without(a)
}

func (s Style) Bold(on bool) Style          { return s.set(AttrBold, on) }
func (s Style) Dim(on bool) Style           { return s.set(AttrDim, on) }
func (s Style) Italic(on bool) Style        { return s.set(AttrItalic, on) }
func (s Style) Underline(on bool) Style     { return s.set(AttrUnderline, on) }
func (s Style) Blink(on bool) Style         { return s.set(AttrBlink, on) }
func (s Style) Reverse(on bool) Style       { return s.set(AttrReverse, on) }
func (s Style) Hidden(on bool) Style        { return s.set(AttrHidden, on) }
func (s Style) Strikethrough(on bool) Style { return s.set(AttrStrikethrough, on) }

// Has reports whether every attribute in a is set
func (s Style) Has(a Attr) bool {
	return s.Attrs&a == a
}

// Merge layers over on top of s: non-default colors replace, attributes accumulate
func (s Style) Merge(over Style) Style {
	if !over.Fg.IsDefault() {
		s.Fg = over.Fg
	}
	if !over.Bg.IsDefault() {
		s.Bg = over.Bg
	}
	s.Attrs |= over.Attrs
	return s
}

// Inverted swaps foreground and background
func (s Style) Inverted() Style {
	s.Fg, s.Bg = s.Bg, s.Fg
	return s
}

// String returns a form accepted by Parse
func (s Style) String() string {
	var parts []string
	for _, an := range attrNames {
		if s.Attrs&an.attr != 0 {
			parts = append(parts, an.name)
		}
	}
	if !s.Fg.IsDefault() {
		parts = append(parts, "fg="+s.Fg.String())
	}
	if !s.Bg.IsDefault() {
		parts = append(parts, "bg="+s.Bg.String())
	}
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, " ")
}

// Parse reads a space or comma separated style description such as
// "bold underline fg=yellow bg=#202030"
func Parse(s string) (Style, error) {
	var st Style
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	for _, f := range fields {
		key, val, hasVal := strings.Cut(f, "=")
		key = strings.ToLower(key)

		if hasVal {
			c, err := ParseColor(val)
			if err != nil {
				return Style{}, fmt.Errorf("style %q: %w", s, err)
			}
			switch key {
			case "fg", "foreground":
				st.Fg = c
			case "bg", "background":
				st.Bg = c
			default:
				return Style{}, fmt.Errorf("style %q: unknown key %q", s, key)
			}
			continue
		}

		if key == "default" || key == "none" || key == "reset" {
			continue
		}
		if key == "strike" {
			key = "strikethrough"
		}
		found := false
		for _, an := range attrNames {
			if an.name == key {
				st.Attrs |= an.attr
				found = true
				break
			}
		}
		if !found {
			return Style{}, fmt.Errorf("style %q: unknown attribute %q", s, key)
		}
	}
	return st, nil
}

// MustParse is Parse for package-level style tables; it panics on error
func MustParse(s string) Style {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}
