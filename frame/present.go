package frame

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/cellgrid/style"
)

// ErrPresent wraps every sink failure returned by Present
var ErrPresent = errors.New("frame: present failed")

// Sink is the terminal surface Present writes to
// Implementations buffer writes until Flush
type Sink interface {
	// Size returns current terminal dimensions
	Size() (width, height int)

	// MoveTo positions the cursor (0-indexed)
	MoveTo(x, y int) error

	// SetStyle switches the active style for subsequent runes
	SetStyle(st style.Style) error

	// WriteRune writes r at the cursor and advances it by the rune's width
	WriteRune(r rune) error

	// Flush pushes buffered output to the terminal
	Flush() error
}

// Stats describes the write stream of one Present call
type Stats struct {
	Cells        int // cells written
	CursorMoves  int
	StyleChanges int
}

// Stats returns the counters of the most recent Present
func (b *Buffer) Stats() Stats {
	return b.stats
}

// Invalidate forces the next Present to repaint every cell and re-send cursor and style
func (b *Buffer) Invalidate() {
	for i := range b.shadow {
		b.shadow[i] = Cell{Rune: invalidRune}
	}
	b.posValid = false
	b.styleValid = false
}

// Present swaps current and shadow grids and emits the cells whose rune or style differ
// from the previously presented frame. The cursor is moved only when it is not already at
// the target cell and the style only when it differs from the last emitted one.
// After a successful present the current grid holds the presented frame with dirty flags cleared.
func (b *Buffer) Present(sink Sink) error {
	b.cells, b.shadow = b.shadow, b.cells
	next, prev := b.shadow, b.cells

	b.stats = Stats{}
	err := b.emit(sink, next, prev)

	for i := range next {
		next[i].Dirty = false
	}
	copy(prev, next)

	if err != nil {
		b.Invalidate()
		return fmt.Errorf("%w: %w", ErrPresent, err)
	}
	return nil
}

func (b *Buffer) emit(sink Sink, next, prev []Cell) error {
	wrote := false
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := next[row+x]
			p := prev[row+x]
			if c.Rune == p.Rune && c.Style == p.Style {
				continue
			}
			// Trailing half is painted by its leader
			if c.Rune == 0 {
				continue
			}

			if !b.posValid || b.lastX != x || b.lastY != y {
				if err := sink.MoveTo(x, y); err != nil {
					return err
				}
				b.stats.CursorMoves++
			}
			if !b.styleValid || b.lastStyle != c.Style {
				if err := sink.SetStyle(c.Style); err != nil {
					return err
				}
				b.lastStyle = c.Style
				b.styleValid = true
				b.stats.StyleChanges++
			}

			r := c.Rune
			if r == invalidRune {
				r = ' '
			}
			if err := sink.WriteRune(r); err != nil {
				return err
			}
			wrote = true
			b.stats.Cells++

			adv := 1
			if x+1 < b.width && next[row+x+1].Rune == 0 {
				adv = 2
			}
			b.lastX, b.lastY = x+adv, y
			b.posValid = true
		}
	}

	if !wrote {
		return nil
	}
	return sink.Flush()
}
