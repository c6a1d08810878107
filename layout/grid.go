package layout

import "math"

// Cells splits area into cols×rows equal cells in row-major order.
// Cell size is (extent - gap*(count-1)) / count rounded to nearest, ties to even,
// and cells are tiled at stride cell+gap. Non-positive counts yield nil.
// Rounding up can push the last row or column past the area edge;
// 1×3 cells of Rect{0, 0, 10, 8} are 3 rows tall, so the last one reaches y=9. Callers clip to the area.
func Cells(area Rect, cols, rows, colGap, rowGap int) []Rect {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	colGap, rowGap = max(colGap, 0), max(rowGap, 0)

	cw := cellExtent(area.W, cols, colGap)
	ch := cellExtent(area.H, rows, rowGap)

	out := make([]Rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Rect{
				X: area.X + c*(cw+colGap),
				Y: area.Y + r*(ch+rowGap),
				W: cw,
				H: ch,
			})
		}
	}
	return out
}

func cellExtent(extent, count, gap int) int {
	avail := sub(extent, gap*(count-1))
	return int(math.RoundToEven(float64(avail) / float64(count)))
}

