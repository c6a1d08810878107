package layout

// Direction is the flex main axis
type Direction uint8

const (
	Row    Direction = iota // main axis horizontal
	Column                  // main axis vertical
)

// Justify distributes items along the main axis
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align positions items on the cross axis
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Flex computes positions for explicitly sized items along one axis
type Flex struct {
	Direction Direction
	Justify   Justify
	Align     Align
	Gap       int
}

// Compute returns one rect per item, relative to the container origin
//
// Start, Center and End place the run (items plus gaps) at the leading, centered or
// trailing edge of the leftover space. SpaceBetween spreads leftover only between items
// with Gap as the minimum spacing; the last item ends flush with the container.
// SpaceAround and SpaceEvenly both put Gap before every item, producing identical output.
func (f Flex) Compute(container Size, items []Size) []Rect {
	n := len(items)
	if n == 0 {
		return nil
	}
	gap := max(f.Gap, 0)

	mainExt, crossExt := container.W, container.H
	if f.Direction == Column {
		mainExt, crossExt = container.H, container.W
	}

	mains := make([]int, n)
	crosses := make([]int, n)
	total := 0
	for i, it := range items {
		m, c := max(it.W, 0), max(it.H, 0)
		if f.Direction == Column {
			m, c = c, m
		}
		mains[i], crosses[i] = m, c
		total += m
	}

	gaps := gap * (n - 1)
	leftover := sub(mainExt, total+gaps)

	offsets := make([]int, n)
	switch f.Justify {
	case JustifySpaceBetween:
		free := max(sub(mainExt, total), gaps)
		pos := 0
		for i := range offsets {
			if n > 1 {
				// Cumulative share keeps the last item flush with the trailing edge
				pos = prefix(mains, i) + free*i/(n-1)
			}
			offsets[i] = pos
		}
	case JustifySpaceAround, JustifySpaceEvenly:
		pos := gap
		for i := range offsets {
			offsets[i] = pos
			pos += mains[i] + gap
		}
	default:
		pos := 0
		switch f.Justify {
		case JustifyCenter:
			pos = leftover / 2
		case JustifyEnd:
			pos = leftover
		}
		for i := range offsets {
			offsets[i] = pos
			pos += mains[i] + gap
		}
	}

	out := make([]Rect, n)
	for i := range items {
		cPos, cExt := 0, crosses[i]
		switch f.Align {
		case AlignCenter:
			cPos = sub(crossExt, cExt) / 2
		case AlignEnd:
			cPos = sub(crossExt, cExt)
		case AlignStretch:
			cExt = crossExt
		}

		if f.Direction == Column {
			out[i] = Rect{X: cPos, Y: offsets[i], W: cExt, H: mains[i]}
		} else {
			out[i] = Rect{X: offsets[i], Y: cPos, W: mains[i], H: cExt}
		}
	}
	return out
}

// ComputeIn is Compute translated into area
func (f Flex) ComputeIn(area Rect, items []Size) []Rect {
	rects := f.Compute(Size{W: area.W, H: area.H}, items)
	for i := range rects {
		rects[i].X += area.X
		rects[i].Y += area.Y
	}
	return rects
}

func prefix(v []int, n int) int {
	s := 0
	for _, x := range v[:n] {
		s += x
	}
	return s
}
