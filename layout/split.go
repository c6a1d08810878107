package layout

// Center returns a w×h rect centered in outer, clipped to it
func Center(outer Rect, w, h int) Rect {
	return outer.Sub((outer.W-w)/2, (outer.H-h)/2, w, h)
}

// SplitH splits r into columns by ratio; the last column takes the remainder
func SplitH(r Rect, ratios ...float64) []Rect {
	widths := splitExtent(r.W, ratios)
	out := make([]Rect, len(widths))
	x := 0
	for i, w := range widths {
		out[i] = r.Sub(x, 0, w, r.H)
		x += w
	}
	return out
}

// SplitV splits r into rows by ratio; the last row takes the remainder
func SplitV(r Rect, ratios ...float64) []Rect {
	heights := splitExtent(r.H, ratios)
	out := make([]Rect, len(heights))
	y := 0
	for i, h := range heights {
		out[i] = r.Sub(0, y, r.W, h)
		y += h
	}
	return out
}

func splitExtent(extent int, ratios []float64) []int {
	if len(ratios) == 0 {
		return nil
	}
	var sum float64
	for _, ratio := range ratios {
		sum += max(ratio, 0)
	}
	if sum <= 0 {
		sum = 1
	}

	out := make([]int, len(ratios))
	remaining := extent
	for i, ratio := range ratios {
		if i == len(ratios)-1 {
			out[i] = remaining
			break
		}
		n := min(int(float64(extent)*max(ratio, 0)/sum+0.5), remaining)
		out[i] = n
		remaining -= n
	}
	return out
}

// SplitHFixed splits with a fixed left width, rest to the right
func SplitHFixed(r Rect, leftW int) (left, right Rect) {
	leftW = min(max(leftW, 0), r.W)
	return r.Sub(0, 0, leftW, r.H), r.Sub(leftW, 0, r.W-leftW, r.H)
}

// SplitVFixed splits with a fixed top height, rest to the bottom
func SplitVFixed(r Rect, topH int) (top, bottom Rect) {
	topH = min(max(topH, 0), r.H)
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}
