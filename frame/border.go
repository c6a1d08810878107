package frame

import "github.com/lixenwraith/cellgrid/style"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

var lineNames = map[string]LineType{
	"single":  LineSingle,
	"double":  LineDouble,
	"rounded": LineRounded,
	"heavy":   LineHeavy,
	"none":    LineNone,
}

// ParseLineType maps a config name to a LineType
func ParseLineType(name string) (LineType, bool) {
	lt, ok := lineNames[name]
	return lt, ok
}

// DrawBorder outlines the rectangle edge; rectangles smaller than 2×2 are skipped
func (b *Buffer) DrawBorder(x, y, w, h int, line LineType, st style.Style) {
	if w < 2 || h < 2 {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]

	right, bottom := x+w-1, y+h-1
	b.SetCell(x, y, chars[boxTL], st)
	b.SetCell(right, y, chars[boxTR], st)
	b.SetCell(x, bottom, chars[boxBL], st)
	b.SetCell(right, bottom, chars[boxBR], st)

	for cx := x + 1; cx < right; cx++ {
		b.SetCell(cx, y, chars[boxH], st)
		b.SetCell(cx, bottom, chars[boxH], st)
	}
	for cy := y + 1; cy < bottom; cy++ {
		b.SetCell(x, cy, chars[boxV], st)
		b.SetCell(right, cy, chars[boxV], st)
	}
}

// DrawTitledBorder draws a border with title inset on the top edge
func (b *Buffer) DrawTitledBorder(x, y, w, h int, line LineType, title string, st style.Style) {
	b.DrawBorder(x, y, w, h, line, st)
	if title == "" || w < 5 {
		return
	}
	b.DrawTextTruncated(x+2, y, w-4, title, st)
}
