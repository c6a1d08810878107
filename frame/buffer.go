// Package frame provides the double-buffered cell grid that components draw into
// and the diffing presenter that repaints a terminal with minimal writes.
//
// Coordinates are 0-indexed, cells are row-major. Writes outside the grid are
// silently dropped so callers never need to clip.
package frame

import (
	"strings"

	"github.com/lixenwraith/cellgrid/style"
	"github.com/mattn/go-runewidth"
)

// Cell is a single terminal grid position
// Rune 0 marks the trailing half of a wide character to its left
type Cell struct {
	Rune  rune
	Style style.Style
	Dirty bool
}

// blank is the cleared cell
var blank = Cell{Rune: ' '}

// invalidRune never matches a drawable cell; used to force repaint
const invalidRune rune = -1

// Buffer holds the grid being drawn (current) and the last presented grid (shadow)
// Both grids always share the same dimensions
type Buffer struct {
	width  int
	height int
	cells  []Cell
	shadow []Cell

	// Presentation scan state carried across frames
	lastX      int
	lastY      int
	lastStyle  style.Style
	posValid   bool
	styleValid bool

	stats Stats
}

// New creates a cleared buffer; negative dimensions are treated as zero
func New(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		shadow: make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = blank
		b.shadow[i] = blank
	}
	return b
}

// Size returns the grid dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the grid width
func (b *Buffer) Width() int { return b.width }

// Height returns the grid height
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Cell returns the current cell at (x, y); out of range yields a blank cell and false
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return blank, false
	}
	return b.cells[y*b.width+x], true
}

// Clear resets every cell to a space in the default style without reallocating
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Resize reallocates both grids, preserving the overlapping region positionally
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	shadow := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
		shadow[i] = blank
	}

	ow, oh := min(width, b.width), min(height, b.height)
	for y := 0; y < oh; y++ {
		copy(cells[y*width:y*width+ow], b.cells[y*b.width:y*b.width+ow])
		copy(shadow[y*width:y*width+ow], b.shadow[y*b.width:y*b.width+ow])
	}

	b.cells, b.shadow = cells, shadow
	b.width, b.height = width, height
	b.posValid = false
}

// put writes one narrow cell; callers have already range-checked
func (b *Buffer) put(x, y int, r rune, st style.Style) {
	idx := y*b.width + x
	old := b.cells[idx]
	b.cells[idx] = Cell{Rune: r, Style: st, Dirty: old.Rune != r || old.Style != st}
}

// SetCell writes a single-width rune at (x, y), breaking any wide character it overlaps
func (b *Buffer) SetCell(x, y int, r rune, st style.Style) {
	if !b.InBounds(x, y) {
		return
	}
	b.breakWide(x, y, st)
	b.put(x, y, r, st)
}

// breakWide blanks the other half of a wide character occupying (x, y)
func (b *Buffer) breakWide(x, y int, st style.Style) {
	row := y * b.width
	c := b.cells[row+x]
	if c.Rune == 0 && x > 0 {
		b.put(x-1, y, ' ', st)
		return
	}
	if x+1 < b.width && b.cells[row+x+1].Rune == 0 {
		b.put(x+1, y, ' ', st)
	}
}

// DrawChar writes r at (x, y) using its display width and returns the columns consumed
// Zero-width runes are ignored; a wide rune that does not fit at the right edge becomes a space
func (b *Buffer) DrawChar(x, y int, r rune, st style.Style) int {
	w := runewidth.RuneWidth(r)
	switch {
	case w <= 0:
		return 0
	case w == 1:
		b.SetCell(x, y, r, st)
		return 1
	}
	b.drawWide(x, y, r, st)
	return 2
}

func (b *Buffer) drawWide(x, y int, r rune, st style.Style) {
	if !b.InBounds(x, y) {
		if b.InBounds(x+1, y) {
			b.SetCell(x+1, y, ' ', st)
		}
		return
	}
	if x+1 >= b.width {
		b.SetCell(x, y, ' ', st)
		return
	}
	b.breakWide(x, y, st)
	b.breakWide(x+1, y, st)
	b.put(x, y, r, st)
	b.put(x+1, y, 0, st)
}

// DrawRect paints a solid rectangle of spaces in st
func (b *Buffer) DrawRect(x, y, w, h int, st style.Style) {
	b.Fill(x, y, w, h, ' ', st)
}

// Fill paints every in-range cell of the rectangle with r
func (b *Buffer) Fill(x, y, w, h int, r rune, st style.Style) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.width), min(y+h, b.height)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			b.SetCell(cx, cy, r, st)
		}
	}
}

// Blit copies a w×h region of src at (sx, sy) onto b at (dx, dy)
func (b *Buffer) Blit(src *Buffer, sx, sy, dx, dy, w, h int) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c, ok := src.Cell(sx+col, sy+row)
			if !ok || c.Rune == 0 {
				continue
			}
			if c.Rune == invalidRune {
				c.Rune = ' '
			}
			b.DrawChar(dx+col, dy+row, c.Rune, c.Style)
		}
	}
}

// DirtyCount returns the number of cells changed since the last present
func (b *Buffer) DirtyCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Dirty {
			n++
		}
	}
	return n
}

// String renders the current grid as text, one line per row, for tests and debugging
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.cells[y*b.width+x].Rune
			if r == 0 {
				continue
			}
			sb.WriteRune(r)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
