package component

// Walk visits root and its descendants depth-first in insertion order.
// Returning false from fn skips that component's children
func Walk(root Component, fn func(Component) bool) {
	if !fn(root) {
		return
	}
	if p, ok := root.(Parent); ok {
		for _, c := range p.Children() {
			Walk(c, fn)
		}
	}
}

// WalkVisible is Walk restricted to visible subtrees
func WalkVisible(root Component, fn func(Component) bool) {
	Walk(root, func(c Component) bool {
		return c.Visible() && fn(c)
	})
}

// Find returns the first component with id in the tree
func Find(root Component, id string) (Component, bool) {
	var found Component
	Walk(root, func(c Component) bool {
		if found != nil {
			return false
		}
		if c.ID() == id {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// Focusables collects visible focusable components in tree order
func Focusables(root Component) []Focusable {
	var out []Focusable
	WalkVisible(root, func(c Component) bool {
		if f, ok := c.(Focusable); ok {
			out = append(out, f)
		}
		return true
	})
	return out
}
