package masonry

import "testing"

func TestComputeHorizontalEmpty(t *testing.T) {
	l := New(0, 100, 10)
	if got := l.ComputeHorizontal(300); got != 0 {
		t.Errorf("ComputeHorizontal on empty layout = %d, want 0", got)
	}
}

func TestComputeHorizontalZeroItemSize(t *testing.T) {
	l := New(3, 0, 10)
	l.SetSourceSize(0, 100, 100)
	if got := l.ComputeHorizontal(300); got != 0 {
		t.Errorf("ComputeHorizontal with zero item size = %d, want 0", got)
	}
}

// TestComputeHorizontalTwoRows walks three items through the row-fill pass:
// a 2:1 landscape, a square and a 1:2 portrait at item size 100 with gap 10
// in a 300 wide container. The first two items overflow the row and are
// rescaled to a corrected height of 94; the portrait lands alone on an
// uncorrected second row.
func TestComputeHorizontalTwoRows(t *testing.T) {
	l := New(3, 100, 10)
	l.SetSourceSize(0, 200, 100)
	l.SetSourceSize(1, 100, 100)
	l.SetSourceSize(2, 100, 200)

	total := l.ComputeHorizontal(300)

	want := []Placement{
		{Width: 188, Height: 94, Left: 0, Top: 0},
		{Width: 94, Height: 94, Left: 197, Top: 0},
		{Width: 50, Height: 100, Left: 0, Top: 104},
	}
	for i, w := range want {
		if got := l.Placement(i); got != w {
			t.Errorf("Placement(%d) = %+v, want %+v", i, got, w)
		}
	}

	// Closed row height 94 + gap + natural last row height 100 + gap.
	if total != 214 {
		t.Errorf("total height = %d, want 214", total)
	}
}

func TestComputeHorizontalSingleRowNaturalHeight(t *testing.T) {
	// Two small squares that never overflow: the row keeps the nominal item
	// height and the total is itemSize + gap.
	l := New(2, 100, 10)
	l.SetSourceSize(0, 50, 50)
	l.SetSourceSize(1, 50, 50)

	total := l.ComputeHorizontal(1000)
	if total != 110 {
		t.Errorf("total height = %d, want 110", total)
	}
	for i := 0; i < l.Len(); i++ {
		p := l.Placement(i)
		if p.Height != 100 {
			t.Errorf("Placement(%d).Height = %d, want natural 100", i, p.Height)
		}
	}
}

func TestComputeHorizontalClampsContainerWidth(t *testing.T) {
	// Container narrower than the item size is treated as the item size, so
	// single items do not produce degenerate zero-width rows.
	l := New(1, 100, 0)
	l.SetSourceSize(0, 100, 100)

	if got := l.ComputeHorizontal(10); got == 0 {
		t.Error("ComputeHorizontal with narrow container = 0, want non-zero")
	}
}

func TestComputeHorizontalIdempotent(t *testing.T) {
	l := newTestLayout(t, 40, 120, 8)

	first := l.ComputeHorizontal(900)
	snap := snapshot(l)

	second := l.ComputeHorizontal(900)
	if first != second {
		t.Errorf("total height changed across identical runs: %d then %d", first, second)
	}
	for i, p := range snapshot(l) {
		if p != snap[i] {
			t.Errorf("Placement(%d) changed across identical runs: %+v then %+v", i, snap[i], p)
		}
	}
}

func TestComputeHorizontalRowTightness(t *testing.T) {
	const containerWidth = 800
	l := newTestLayout(t, 60, 100, 10)
	l.ComputeHorizontal(containerWidth)

	rows := groupRows(l)
	for r, row := range rows[:len(rows)-1] {
		// Every completed row is justified against the container edge: the
		// last item's right edge lands within one gap plus rounding error of
		// one unit per item.
		last := l.Placement(row[len(row)-1])
		right := last.Left + uint32(last.Width)
		slack := uint32(l.Gap()) + uint32(len(row))
		if right < containerWidth-slack || right > containerWidth+slack {
			t.Errorf("row %d: right edge %d outside %d±%d", r, right, containerWidth, slack)
		}
	}
}

func TestComputeHorizontalPlacementsWithinBounds(t *testing.T) {
	const containerWidth = 640
	l := newTestLayout(t, 50, 120, 6)
	total := l.ComputeHorizontal(containerWidth)

	for i := 0; i < l.Len(); i++ {
		p := l.Placement(i)
		if p.Top > total {
			t.Errorf("Placement(%d).Top = %d exceeds total height %d", i, p.Top, total)
		}
		if p.Left > containerWidth {
			t.Errorf("Placement(%d).Left = %d exceeds container width %d", i, p.Left, containerWidth)
		}
	}
}

// newTestLayout builds a layout with n items cycling through a fixed set of
// source dimensions.
func newTestLayout(t *testing.T, n int, itemSize, gap uint16) *Layout {
	t.Helper()
	dims := [][2]uint16{
		{400, 300}, {300, 400}, {100, 100}, {1600, 900},
		{900, 1600}, {250, 250}, {5000, 200}, {200, 5000},
	}
	l := New(n, itemSize, gap)
	for i := 0; i < n; i++ {
		d := dims[i%len(dims)]
		l.SetSourceSize(i, d[0], d[1])
	}
	return l
}

// snapshot copies the logical placements for comparison across runs.
func snapshot(l *Layout) []Placement {
	out := make([]Placement, l.Len())
	for i := range out {
		out[i] = l.Placement(i)
	}
	return out
}

// groupRows buckets item indices by their Top offset, in layout order.
func groupRows(l *Layout) [][]int {
	var rows [][]int
	var lastTop uint32
	for i := 0; i < l.Len(); i++ {
		p := l.Placement(i)
		if len(rows) == 0 || p.Top != lastTop {
			rows = append(rows, nil)
			lastTop = p.Top
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], i)
	}
	return rows
}
