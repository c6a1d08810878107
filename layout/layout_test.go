package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// box is a minimal Node
type box struct {
	r Rect
}

func (b *box) Bounds() Rect     { return b.r }
func (b *box) SetBounds(r Rect) { b.r = r }

type placedBox struct {
	box
	p Rect
}

func (p *placedBox) Placement() Rect { return p.p }

// group is a minimal Parent
type group struct {
	box
	mode Mode
	pad  Insets
	kids []Node
}

func (g *group) LayoutMode() Mode       { return g.mode }
func (g *group) Padding() Insets        { return g.pad }
func (g *group) LayoutChildren() []Node { return g.kids }

func nodes(n int) ([]Node, []*box) {
	ns := make([]Node, n)
	bs := make([]*box, n)
	for i := range ns {
		bs[i] = &box{}
		ns[i] = bs[i]
	}
	return ns, bs
}

func TestVerticalStackTruncates(t *testing.T) {
	ns, bs := nodes(3)
	Resolve(Rect{0, 0, 40, 30}, Vertical, Uniform(2), ns)

	if c := Content(Rect{0, 0, 40, 30}, Uniform(2)); c != (Rect{2, 2, 36, 26}) {
		t.Fatalf("Expected content (2,2,36,26), got %v", c)
	}
	want := []Rect{{2, 2, 36, 8}, {2, 10, 36, 8}, {2, 18, 36, 8}}
	for i, b := range bs {
		if b.r != want[i] {
			t.Errorf("child %d: expected %v, got %v", i, want[i], b.r)
		}
	}
	// Two rows of remainder stay unassigned
	if last := bs[2].r; last.Bottom() != 26 {
		t.Errorf("Expected last child to end at row 26, got %d", last.Bottom())
	}
}

func TestHorizontalStack(t *testing.T) {
	ns, bs := nodes(3)
	Resolve(Rect{5, 1, 20, 4}, Horizontal, Insets{}, ns)
	want := []Rect{{5, 1, 6, 4}, {11, 1, 6, 4}, {17, 1, 6, 4}}
	for i, b := range bs {
		if b.r != want[i] {
			t.Errorf("child %d: expected %v, got %v", i, want[i], b.r)
		}
	}
}

func TestGridModeFallsBackToVertical(t *testing.T) {
	gridNodes, gridBoxes := nodes(2)
	vertNodes, vertBoxes := nodes(2)
	area := Rect{0, 0, 10, 10}
	Resolve(area, Grid, Uniform(1), gridNodes)
	Resolve(area, Vertical, Uniform(1), vertNodes)
	for i := range gridBoxes {
		if gridBoxes[i].r != vertBoxes[i].r {
			t.Errorf("child %d: grid %v differs from vertical %v", i, gridBoxes[i].r, vertBoxes[i].r)
		}
	}
}

func TestDegenerateGeometry(t *testing.T) {
	Resolve(Rect{0, 0, 10, 10}, Vertical, Insets{}, nil)

	ns, bs := nodes(2)
	Resolve(Rect{3, 3, 4, 4}, Vertical, Uniform(5), ns)
	for i, b := range bs {
		if b.r.W != 0 || b.r.H != 0 {
			t.Errorf("child %d: expected zero-size box, got %v", i, b.r)
		}
	}

	ns, bs = nodes(5)
	Resolve(Rect{0, 0, 3, 3}, Horizontal, Insets{}, ns)
	for i, b := range bs {
		if b.r.W != 0 {
			t.Errorf("oversubscribed child %d: expected width 0, got %v", i, b.r)
		}
	}
}

func TestAbsoluteClamps(t *testing.T) {
	inside := &placedBox{p: Rect{2, 1, 3, 2}}
	overflow := &placedBox{p: Rect{8, 1, 10, 10}}
	beyond := &placedBox{p: Rect{50, 50, 2, 2}}
	plain := &box{r: Rect{99, 99, 4, 1}}

	Resolve(Rect{0, 0, 12, 8}, Absolute, Uniform(1), []Node{inside, overflow, beyond, plain})

	tests := []struct {
		name string
		got  Rect
		want Rect
	}{
		{"inside", inside.r, Rect{3, 2, 3, 2}},
		{"overflow", overflow.r, Rect{9, 2, 2, 5}},
		{"beyond", beyond.r, Rect{11, 7, 0, 0}},
		{"plain", plain.r, Rect{1, 1, 4, 1}},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, tc.got)
		}
	}

	// Stable across repeated ticks
	Resolve(Rect{0, 0, 12, 8}, Absolute, Uniform(1), []Node{inside})
	if inside.r != (Rect{3, 2, 3, 2}) {
		t.Errorf("Expected placement stable across resolves, got %v", inside.r)
	}
}

func TestResolveTreeTopDown(t *testing.T) {
	leafA, leafB := &box{}, &box{}
	inner := &group{mode: Horizontal, kids: []Node{leafA, leafB}}
	header := &box{}
	root := &group{mode: Vertical, pad: Insets{}, kids: []Node{header, inner}}

	ResolveTree(root, Rect{0, 0, 20, 10})

	got := []Rect{root.r, header.r, inner.r, leafA.r, leafB.r}
	want := []Rect{
		{0, 0, 20, 10},
		{0, 0, 20, 5},
		{0, 5, 20, 5},
		{0, 5, 10, 5},
		{10, 5, 10, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFlexSpaceBetweenCenter(t *testing.T) {
	f := Flex{Direction: Row, Justify: JustifySpaceBetween, Align: AlignCenter, Gap: 2}
	got := f.Compute(Size{50, 10}, []Size{{10, 5}, {15, 5}, {10, 5}})
	want := []Rect{{0, 2, 10, 5}, {17, 2, 15, 5}, {40, 2, 10, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFlexJustify(t *testing.T) {
	items := []Size{{4, 1}, {6, 1}}
	tests := map[string]struct {
		justify Justify
		want    []int
	}{
		"start":   {JustifyStart, []int{0, 5}},
		"center":  {JustifyCenter, []int{4, 9}},
		"end":     {JustifyEnd, []int{9, 14}},
		"around":  {JustifySpaceAround, []int{1, 6}},
		"evenly":  {JustifySpaceEvenly, []int{1, 6}},
		"between": {JustifySpaceBetween, []int{0, 14}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rects := Flex{Justify: tc.justify, Gap: 1}.Compute(Size{20, 3}, items)
			for i, r := range rects {
				if r.X != tc.want[i] {
					t.Errorf("item %d: expected x=%d, got %d", i, tc.want[i], r.X)
				}
			}
		})
	}
}

func TestFlexAroundEqualsEvenly(t *testing.T) {
	items := []Size{{3, 2}, {5, 1}, {2, 2}}
	around := Flex{Justify: JustifySpaceAround, Align: AlignEnd, Gap: 3}.Compute(Size{40, 6}, items)
	evenly := Flex{Justify: JustifySpaceEvenly, Align: AlignEnd, Gap: 3}.Compute(Size{40, 6}, items)
	if diff := cmp.Diff(around, evenly); diff != "" {
		t.Errorf("SpaceAround and SpaceEvenly differ:\n%s", diff)
	}
}

func TestFlexColumnStretchAndSaturation(t *testing.T) {
	f := Flex{Direction: Column, Align: AlignStretch}
	got := f.Compute(Size{8, 20}, []Size{{2, 3}, {5, 4}})
	want := []Rect{{0, 0, 8, 3}, {0, 3, 8, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("column mismatch (-want +got):\n%s", diff)
	}

	// Items larger than the container never produce negative offsets
	over := Flex{Justify: JustifyCenter, Align: AlignCenter}.Compute(Size{5, 2}, []Size{{10, 4}})
	if over[0].X != 0 || over[0].Y != 0 {
		t.Errorf("Expected saturated origin, got %v", over[0])
	}

	if (Flex{}).Compute(Size{10, 10}, nil) != nil {
		t.Error("Expected nil for no items")
	}
}

func TestFlexComputeIn(t *testing.T) {
	got := Flex{}.ComputeIn(Rect{3, 4, 10, 2}, []Size{{2, 1}})
	if got[0] != (Rect{3, 4, 2, 1}) {
		t.Errorf("Expected translated rect, got %v", got[0])
	}
}

func TestGridCells(t *testing.T) {
	cells := Cells(Rect{0, 0, 10, 7}, 2, 3, 1, 1)
	want := []Rect{
		{0, 0, 4, 2}, {5, 0, 4, 2},
		{0, 3, 4, 2}, {5, 3, 4, 2},
		{0, 6, 4, 2}, {5, 6, 4, 2},
	}
	if diff := cmp.Diff(want, cells); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	if Cells(Rect{0, 0, 10, 10}, 0, 2, 0, 0) != nil {
		t.Error("Expected nil for zero columns")
	}
	tiny := Cells(Rect{0, 0, 1, 1}, 3, 3, 2, 2)
	for _, c := range tiny {
		if c.W != 0 || c.H != 0 {
			t.Errorf("Expected saturated zero cells, got %v", c)
		}
	}

	// Rounded-up cells overrun the area
	tall := Cells(Rect{0, 0, 10, 8}, 1, 3, 0, 0)
	if last := tall[2]; last.Y != 6 || last.Y+last.H != 9 {
		t.Errorf("Expected last cell rows 6..9, got %v", last)
	}
}

func TestSplitAndCenter(t *testing.T) {
	r := Rect{0, 0, 10, 4}
	cols := SplitH(r, 0.3, 0.7)
	if cols[0].W != 3 || cols[1].X != 3 || cols[1].W != 7 {
		t.Errorf("SplitH: got %v", cols)
	}
	rows := SplitV(r, 1, 1)
	if rows[0].H != 2 || rows[1].Y != 2 {
		t.Errorf("SplitV: got %v", rows)
	}
	left, right := SplitHFixed(r, 12)
	if left.W != 10 || right.W != 0 {
		t.Errorf("SplitHFixed: got %v %v", left, right)
	}
	top, bottom := SplitVFixed(r, 1)
	if top != (Rect{0, 0, 10, 1}) || bottom != (Rect{0, 1, 10, 3}) {
		t.Errorf("SplitVFixed: got %v %v", top, bottom)
	}
	if c := Center(Rect{0, 0, 20, 10}, 6, 2); c != (Rect{7, 4, 6, 2}) {
		t.Errorf("Center: got %v", c)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{2, 2, 3, 3}
	if !r.Contains(2, 2) || !r.Contains(4, 4) || r.Contains(5, 2) || r.Contains(1, 3) {
		t.Error("Contains uses half-open bounds")
	}
	if got := r.Intersect(Rect{4, 4, 10, 10}); got != (Rect{4, 4, 1, 1}) {
		t.Errorf("Intersect: got %v", got)
	}
	if got := r.Intersect(Rect{10, 10, 1, 1}); !got.Empty() {
		t.Errorf("Expected empty intersection, got %v", got)
	}
	if m, err := ParseMode("Horizontal"); err != nil || m != Horizontal {
		t.Errorf("ParseMode: got %v %v", m, err)
	}
	if _, err := ParseMode("spiral"); err == nil {
		t.Error("Expected ParseMode error")
	}
}
