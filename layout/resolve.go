package layout

import (
	"fmt"
	"strings"
)

// Mode selects how a container arranges its children
type Mode uint8

const (
	Vertical   Mode = iota // equal-height rows, top to bottom
	Horizontal             // equal-width columns, left to right
	Absolute               // explicit placement, clamped to the content area
	Grid                   // arranged as Vertical
)

var modeNames = [...]string{
	Vertical:   "vertical",
	Horizontal: "horizontal",
	Absolute:   "absolute",
	Grid:       "grid",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode maps a config name to a Mode
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return Vertical, fmt.Errorf("unknown layout mode %q", s)
}

// Node is anything that receives a bounding box from its parent
type Node interface {
	Bounds() Rect
	SetBounds(Rect)
}

// Parent is a Node that arranges ordered children inside its content area
type Parent interface {
	Node
	LayoutMode() Mode
	Padding() Insets
	LayoutChildren() []Node
}

// Placed nodes carry an explicit rect relative to the parent's content origin,
// used by Absolute mode. Nodes without one are placed at the origin with their current size
type Placed interface {
	Placement() Rect
}

// Content returns box minus padding, saturating at zero
func Content(box Rect, pad Insets) Rect {
	return box.Inset(pad)
}

// Resolve assigns each child's bounding box within box; zero children is a no-op
func Resolve(box Rect, mode Mode, pad Insets, children []Node) {
	n := len(children)
	if n == 0 {
		return
	}
	content := Content(box, pad)

	switch mode {
	case Horizontal:
		w := content.W / n
		for i, c := range children {
			c.SetBounds(Rect{X: content.X + i*w, Y: content.Y, W: w, H: content.H})
		}

	case Absolute:
		for _, c := range children {
			c.SetBounds(clampPlacement(content, placement(c)))
		}

	default:
		// Grid has no real implementation and stacks vertically
		h := content.H / n
		for i, c := range children {
			c.SetBounds(Rect{X: content.X, Y: content.Y + i*h, W: content.W, H: h})
		}
	}
}

func placement(n Node) Rect {
	if p, ok := n.(Placed); ok {
		return p.Placement()
	}
	b := n.Bounds()
	return Rect{W: b.W, H: b.H}
}

// clampPlacement converts a content-relative rect to absolute, clamped to content
func clampPlacement(content, p Rect) Rect {
	x := min(max(p.X, 0), content.W)
	y := min(max(p.Y, 0), content.H)
	return Rect{
		X: content.X + x,
		Y: content.Y + y,
		W: min(max(p.W, 0), content.W-x),
		H: min(max(p.H, 0), content.H-y),
	}
}

// ResolveTree sets root's box and resolves every Parent below it, top-down
func ResolveTree(root Node, box Rect) {
	root.SetBounds(box)
	resolveChildren(root)
}

func resolveChildren(n Node) {
	p, ok := n.(Parent)
	if !ok {
		return
	}
	children := p.LayoutChildren()
	Resolve(p.Bounds(), p.LayoutMode(), p.Padding(), children)
	for _, c := range children {
		resolveChildren(c)
	}
}
