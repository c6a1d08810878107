// Package layout turns container configuration into absolute bounding boxes.
//
// Sizes are allocated strictly top-down: a parent decides each child's box and
// children never negotiate. All arithmetic saturates at zero, so degenerate
// configurations (oversized padding, zero-size containers) produce empty boxes
// rather than errors.
package layout

import "fmt"

// Rect is a bounding box in cells; W and H are never negative
type Rect struct {
	X, Y, W, H int
}

// Size is a width/height pair
type Size struct {
	W, H int
}

// Insets are per-edge padding, ordered top, right, bottom, left
type Insets struct {
	Top, Right, Bottom, Left int
}

// Uniform returns equal insets on all edges
func Uniform(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// Symmetric returns vertical/horizontal insets
func Symmetric(v, h int) Insets {
	return Insets{Top: v, Right: h, Bottom: v, Left: h}
}

// sub is saturating subtraction
func sub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// NewRect builds a Rect, clamping negative sizes to zero
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Right returns the exclusive right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r covers no cells
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains is the pointer hit test: x in [X, X+W) and y in [Y, Y+H)
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by in, saturating the extent at zero
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: sub(r.W, in.Left+in.Right),
		H: sub(r.H, in.Top+in.Bottom),
	}
}

// Intersect returns the overlap of r and o; disjoint rects yield a zero-size Rect at r's origin
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Sub returns a child rect at offset (x, y) within r, clipped to r
func (r Rect) Sub(x, y, w, h int) Rect {
	x, y = max(x, 0), max(y, 0)
	x, y = min(x, r.W), min(y, r.H)
	return Rect{
		X: r.X + x,
		Y: r.Y + y,
		W: min(max(w, 0), r.W-x),
		H: min(max(h, 0), r.H-y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
