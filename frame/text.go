package frame

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/lixenwraith/cellgrid/style"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis is appended by DrawTextTruncated when text is cut
const Ellipsis = "..."

// TextWidth returns the cells DrawText consumes for s
func TextWidth(s string) int {
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		n += clusterWidth(g.Runes())
	}
	return n
}

// clusterWidth sizes a cluster by the rune a cell keeps, which is also what sinks advance by
func clusterWidth(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	return max(runewidth.RuneWidth(runes[0]), 0)
}

// Truncate shortens s to at most width cells, ending in Ellipsis when cut
// Widths too small for the ellipsis are hard-cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if TextWidth(s) <= width {
		return s
	}
	if width <= len(Ellipsis) {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// DrawText writes s left to right starting at (x, y), one grapheme cluster per glyph,
// and returns the columns consumed. Text past the right edge is dropped
// A cell holds only the first rune of a cluster; combining marks and variation selectors are lost
func (b *Buffer) DrawText(x, y int, s string, st style.Style) int {
	start := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if x >= b.width {
			break
		}
		runes := g.Runes()
		if clusterWidth(runes) == 0 {
			continue
		}
		x += b.DrawChar(x, y, runes[0], st)
	}
	return x - start
}

// DrawTextTruncated writes s clipped to maxWidth cells with an ellipsis when cut
func (b *Buffer) DrawTextTruncated(x, y, maxWidth int, s string, st style.Style) int {
	return b.DrawText(x, y, Truncate(s, maxWidth), st)
}

// DrawTextCentered writes s centered within [x, x+width)
func (b *Buffer) DrawTextCentered(x, y, width int, s string, st style.Style) int {
	s = Truncate(s, width)
	off := (width - TextWidth(s)) / 2
	return b.DrawText(x+max(off, 0), y, s, st)
}
