package dispatch

import "github.com/lixenwraith/cellgrid/component"

// Focused returns the first visible focused component in tree order, nil if none
func Focused(root component.Component) component.Focusable {
	var found component.Focusable
	component.WalkVisible(root, func(c component.Component) bool {
		if found != nil {
			return false
		}
		if f, ok := c.(component.Focusable); ok && f.Focused() {
			found = f
			return false
		}
		return true
	})
	return found
}

// Focus moves focus to the component with id; false if it is missing or not focusable
func Focus(root component.Component, id string) bool {
	c, ok := component.Find(root, id)
	if !ok {
		return false
	}
	f, ok := c.(component.Focusable)
	if !ok {
		return false
	}
	Blur(root)
	f.SetFocused(true)
	return true
}

// Blur clears focus everywhere in the tree
func Blur(root component.Component) {
	component.Walk(root, func(c component.Component) bool {
		if f, ok := c.(component.Focusable); ok && f.Focused() {
			f.SetFocused(false)
		}
		return true
	})
}

// FocusNext moves focus to the next visible focusable in tree order, wrapping
func FocusNext(root component.Component) component.Focusable {
	return cycle(root, 1)
}

// FocusPrev moves focus to the previous visible focusable in tree order, wrapping
func FocusPrev(root component.Component) component.Focusable {
	return cycle(root, -1)
}

func cycle(root component.Component, step int) component.Focusable {
	items := component.Focusables(root)
	if len(items) == 0 {
		return nil
	}

	cur := -1
	for i, f := range items {
		if f.Focused() {
			cur = i
			break
		}
	}

	var next int
	switch {
	case cur < 0 && step > 0:
		next = 0
	case cur < 0:
		next = len(items) - 1
	default:
		next = (cur + step + len(items)) % len(items)
	}

	Blur(root)
	items[next].SetFocused(true)
	return items[next]
}
