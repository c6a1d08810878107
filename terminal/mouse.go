package terminal

import "strings"

// MouseMode controls which mouse events are reported (bitmask)
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // Press/release events
	MouseModeDrag   MouseMode = 1 << 1 // Motion while a button is held
	MouseModeMotion MouseMode = 1 << 2 // All motion, needed for hover
)

// MouseModeAll reports everything the router consumes
const MouseModeAll = MouseModeClick | MouseModeDrag | MouseModeMotion

func (m MouseMode) String() string {
	if m == MouseModeNone {
		return "none"
	}
	var parts []string
	if m&MouseModeClick != 0 {
		parts = append(parts, "click")
	}
	if m&MouseModeDrag != 0 {
		parts = append(parts, "drag")
	}
	if m&MouseModeMotion != 0 {
		parts = append(parts, "motion")
	}
	return strings.Join(parts, "|")
}
