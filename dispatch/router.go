// Package dispatch routes events through the component tree.
//
// Children are offered events in reverse insertion order, so the most recently
// added (topmost) sibling wins; the first handler to return true stops the walk.
// Pointer events are hit-tested against last-assigned bounds, key events go to
// the focused component when there is one, and broadcast events reach everyone.
package dispatch

import (
	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/event"
)

// Router delivers events to a tree. It holds the little state routing needs
// across events: the hovered component and an outside-click gesture in progress
type Router struct {
	filters []event.Filter
	hovered component.Hoverable

	// Set when a press outside the focused component ended focus; the release
	// and click of the same gesture are absorbed
	absorbing bool
}

// NewRouter creates a router with optional filters
func NewRouter(filters ...event.Filter) *Router {
	return &Router{filters: filters}
}

// AddFilter appends a filter; events any filter rejects are dropped unhandled
func (r *Router) AddFilter(f event.Filter) {
	r.filters = append(r.filters, f)
}

// Hovered returns the component under the pointer, nil if none
func (r *Router) Hovered() component.Hoverable {
	return r.hovered
}

// Dispatch routes ev into the tree rooted at root and reports whether it was handled
func (r *Router) Dispatch(root component.Component, ev event.Event) bool {
	for _, f := range r.filters {
		if !f(ev) {
			return false
		}
	}

	switch {
	case ev.IsBroadcast():
		return broadcast(root, ev)

	case ev.IsKey():
		if f := Focused(root); f != nil {
			return f.HandleEvent(ev)
		}
		return propagate(root, ev)

	case ev.IsPointer():
		return r.dispatchPointer(root, ev)
	}
	return false
}

func (r *Router) dispatchPointer(root component.Component, ev event.Event) bool {
	r.trackHover(root, ev.X, ev.Y)

	switch ev.Type {
	case event.MouseRelease:
		if r.absorbing {
			return true
		}
	case event.MouseClick:
		if r.absorbing {
			r.absorbing = false
			return true
		}
	case event.MousePress:
		r.absorbing = false
	}

	if ev.Type == event.MousePress || ev.Type == event.MouseClick {
		if f := Focused(root); f != nil && !f.Bounds().Contains(ev.X, ev.Y) {
			f.SetFocused(false)
			r.absorbing = ev.Type == event.MousePress
			return true
		}
	}

	return hitTest(root, ev)
}

// trackHover updates hover state to the deepest hoverable under the topmost hit
func (r *Router) trackHover(root component.Component, x, y int) {
	var next component.Hoverable
	for _, c := range hitPath(root, x, y) {
		if h, ok := c.(component.Hoverable); ok {
			next = h
		}
	}
	if next == r.hovered {
		return
	}
	if r.hovered != nil {
		r.hovered.SetHovered(false)
	}
	if next != nil {
		next.SetHovered(true)
	}
	r.hovered = next
}

// hitTest offers ev to visible components containing the point, topmost child
// first, then the container itself
func hitTest(c component.Component, ev event.Event) bool {
	if !c.Visible() || !c.Bounds().Contains(ev.X, ev.Y) {
		return false
	}
	if p, ok := c.(component.Parent); ok {
		children := p.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if hitTest(children[i], ev) {
				return true
			}
		}
	}
	return c.HandleEvent(ev)
}

// hitPath returns root-to-leaf components under (x, y) following the topmost child at each level
func hitPath(c component.Component, x, y int) []component.Component {
	if !c.Visible() || !c.Bounds().Contains(x, y) {
		return nil
	}
	path := []component.Component{c}
	if p, ok := c.(component.Parent); ok {
		children := p.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if sub := hitPath(children[i], x, y); sub != nil {
				return append(path, sub...)
			}
		}
	}
	return path
}

// propagate offers a key event depth-first, topmost child first, without hit testing
func propagate(c component.Component, ev event.Event) bool {
	if !c.Visible() {
		return false
	}
	if p, ok := c.(component.Parent); ok {
		children := p.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if propagate(children[i], ev) {
				return true
			}
		}
	}
	return c.HandleEvent(ev)
}

// broadcast delivers ev to every component in the tree, hidden ones included
func broadcast(c component.Component, ev event.Event) bool {
	handled := false
	if p, ok := c.(component.Parent); ok {
		for _, child := range p.Children() {
			if broadcast(child, ev) {
				handled = true
			}
		}
	}
	if c.HandleEvent(ev) {
		handled = true
	}
	return handled
}
