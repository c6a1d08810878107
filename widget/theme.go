// Package widget holds the reference widgets: Label, Button and TextInput.
// They implement component.Component and the optional focus and hover capabilities.
package widget

import "github.com/lixenwraith/cellgrid/style"

// Theme is the set of styles widgets draw with
type Theme struct {
	Text         style.Style
	Button       style.Style
	ButtonHover  style.Style
	ButtonActive style.Style
	Input        style.Style
	InputFocus   style.Style
	Cursor       style.Style
	Placeholder  style.Style
}

// DefaultTheme returns the built-in palette: white on black inputs, blue buttons
func DefaultTheme() Theme {
	return ThemeFrom(style.White, style.Black)
}

// ThemeFrom derives a theme from a foreground and background pair
func ThemeFrom(fg, bg style.Color) Theme {
	base := style.New(fg, bg)
	return Theme{
		Text:         base,
		Button:       style.New(style.White, style.Blue),
		ButtonHover:  style.New(style.White, style.BrightBlue),
		ButtonActive: style.New(style.Black, style.Cyan).Bold(true),
		Input:        base,
		InputFocus:   base.Underline(true),
		Cursor:       base.Inverted(),
		Placeholder:  style.New(style.Gray, bg).Italic(true),
	}
}
