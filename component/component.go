// Package component defines the capability interface every node of the UI tree implements,
// a Base to embed for the defaults, and Container, the arena-backed parent node.
package component

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/layout"
)

// Component is the capability set the compositor and router drive
type Component interface {
	layout.Node
	ID() string
	Visible() bool
	SetVisible(bool)
	Update() error
	Render(*frame.Buffer) error
	HandleEvent(event.Event) bool
}

// Parent is a component with ordered children, rendered and routed recursively
type Parent interface {
	Component
	Children() []Component
}

// Focusable components take key events directly while focused
type Focusable interface {
	Component
	Focused() bool
	SetFocused(bool)
}

// Hoverable components are told when the pointer enters or leaves them
type Hoverable interface {
	Component
	SetHovered(bool)
}

// DefaultPlacement is the absolute-mode rect of a component that was never placed
var DefaultPlacement = layout.Rect{W: 10, H: 1}

// Base holds identity, bounds and visibility; embed it and override the hooks you need
type Base struct {
	id     string
	bounds layout.Rect
	place  layout.Rect
	hidden bool
}

// NewBase returns a visible Base with the default placement
func NewBase(id string) Base {
	return Base{id: id, place: DefaultPlacement}
}

func (b *Base) ID() string { return b.id }

func (b *Base) Bounds() layout.Rect { return b.bounds }

func (b *Base) SetBounds(r layout.Rect) { b.bounds = r }

func (b *Base) Visible() bool { return !b.hidden }

func (b *Base) SetVisible(v bool) { b.hidden = !v }

// Placement is the rect used when the parent lays out in Absolute mode
func (b *Base) Placement() layout.Rect { return b.place }

// SetPlacement sets the content-relative rect for Absolute layout
func (b *Base) SetPlacement(r layout.Rect) { b.place = r }

// Contains hit-tests against the last assigned bounds
func (b *Base) Contains(x, y int) bool { return b.bounds.Contains(x, y) }

func (b *Base) Update() error { return nil }

func (b *Base) Render(*frame.Buffer) error { return nil }

func (b *Base) HandleEvent(event.Event) bool { return false }
