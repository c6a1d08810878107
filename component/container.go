package component

import (
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/layout"
	"github.com/lixenwraith/cellgrid/style"
)

// Handle is a stable slot index inside one container; it survives removal of siblings
type Handle int

// InvalidHandle is returned for lookups that miss
const InvalidHandle Handle = -1

// Container owns its children in an arena of slots. Removal leaves a tombstone so
// handles of the remaining children stay valid; a name index maps ids to slots
type Container struct {
	Base

	slots []Component
	index map[string]Handle
	live  int

	mode    layout.Mode
	padding layout.Insets

	background style.Style
	filled     bool

	border   frame.LineType
	bordered bool
	title    string
}

// NewContainer creates an empty container with one cell of padding on every side
func NewContainer(id string, mode layout.Mode) *Container {
	return &Container{
		Base:    NewBase(id),
		index:   make(map[string]Handle),
		mode:    mode,
		padding: layout.Uniform(1),
	}
}

// Add appends c, or replaces the child with the same id in its existing slot
func (c *Container) Add(child Component) Handle {
	if h, ok := c.index[child.ID()]; ok {
		c.slots[h] = child
		return h
	}
	h := Handle(len(c.slots))
	c.slots = append(c.slots, child)
	c.index[child.ID()] = h
	c.live++
	return h
}

// Remove tombstones the child with id; false if absent
func (c *Container) Remove(id string) bool {
	h, ok := c.index[id]
	if !ok {
		return false
	}
	c.slots[h] = nil
	delete(c.index, id)
	c.live--
	return true
}

// Get looks a child up by id
func (c *Container) Get(id string) (Component, bool) {
	h, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.slots[h], true
}

// Handle returns the slot of the child with id
func (c *Container) Handle(id string) Handle {
	if h, ok := c.index[id]; ok {
		return h
	}
	return InvalidHandle
}

// At returns the child in slot h, false for tombstones and out-of-range handles
func (c *Container) At(h Handle) (Component, bool) {
	if h < 0 || int(h) >= len(c.slots) || c.slots[h] == nil {
		return nil, false
	}
	return c.slots[h], true
}

// Len returns the number of live children
func (c *Container) Len() int { return c.live }

// Children returns live children in insertion order
func (c *Container) Children() []Component {
	out := make([]Component, 0, c.live)
	for _, s := range c.slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// LayoutChildren adapts Children for the layout resolver
func (c *Container) LayoutChildren() []layout.Node {
	out := make([]layout.Node, 0, c.live)
	for _, s := range c.slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (c *Container) LayoutMode() layout.Mode { return c.mode }

func (c *Container) SetMode(m layout.Mode) { c.mode = m }

func (c *Container) Padding() layout.Insets { return c.padding }

func (c *Container) SetPadding(p layout.Insets) { c.padding = p }

// SetBackground fills the container's bounds with st before children render
func (c *Container) SetBackground(st style.Style) {
	c.background = st
	c.filled = true
}

// SetBorder draws a box of the given line type around the bounds, with an optional title
func (c *Container) SetBorder(line frame.LineType, title string) {
	c.border = line
	c.title = title
	c.bordered = true
}

// ClearBorder removes the border
func (c *Container) ClearBorder() { c.bordered = false }

// Render draws the container's own decoration; children are drawn by the compositor
func (c *Container) Render(buf *frame.Buffer) error {
	r := c.Bounds()
	if r.Empty() {
		return nil
	}
	if c.filled {
		buf.DrawRect(r.X, r.Y, r.W, r.H, c.background)
	}
	if c.bordered {
		st := c.background
		if !c.filled {
			st = style.Default
		}
		buf.DrawTitledBorder(r.X, r.Y, r.W, r.H, c.border, c.title, st)
	}
	return nil
}
