package masonry

import "testing"

func TestComputeGridEmpty(t *testing.T) {
	l := New(0, 50, 0)
	if got := l.ComputeGrid(100); got != 0 {
		t.Errorf("ComputeGrid on empty layout = %d, want 0", got)
	}
}

func TestComputeGridTwoByTwo(t *testing.T) {
	l := New(4, 50, 0)
	for i := 0; i < 4; i++ {
		l.SetSourceSize(i, 100, 100)
	}

	total := l.ComputeGrid(100)

	want := []Placement{
		{Width: 50, Height: 50, Left: 0, Top: 0},
		{Width: 50, Height: 50, Left: 50, Top: 0},
		{Width: 50, Height: 50, Left: 0, Top: 50},
		{Width: 50, Height: 50, Left: 50, Top: 50},
	}
	for i, w := range want {
		if got := l.Placement(i); got != w {
			t.Errorf("Placement(%d) = %+v, want %+v", i, got, w)
		}
	}
	if total != 100 {
		t.Errorf("total height = %d, want 100", total)
	}
}

func TestComputeGridPartialLastRow(t *testing.T) {
	l := New(5, 50, 0)
	for i := 0; i < 5; i++ {
		l.SetSourceSize(i, 80, 80)
	}

	// 5 items in 2 columns: three rows, the last holding a single item.
	total := l.ComputeGrid(100)
	if total != 150 {
		t.Errorf("total height = %d, want 150", total)
	}
	if got := l.Placement(4); got.Left != 0 || got.Top != 100 {
		t.Errorf("Placement(4) at (%d, %d), want (0, 100)", got.Left, got.Top)
	}
}

func TestComputeGridGapShrinksCells(t *testing.T) {
	l := New(2, 100, 10)
	l.SetSourceSize(0, 300, 200)
	l.SetSourceSize(1, 200, 300)

	l.ComputeGrid(200)

	// Column width 100, cell size 90; aspect ratios are ignored by the grid.
	for i := 0; i < 2; i++ {
		p := l.Placement(i)
		if p.Width != 90 || p.Height != 90 {
			t.Errorf("Placement(%d) cell = %dx%d, want 90x90", i, p.Width, p.Height)
		}
	}
}

func TestComputeGridIdempotent(t *testing.T) {
	l := newTestLayout(t, 17, 60, 4)

	first := l.ComputeGrid(500)
	snap := snapshot(l)

	second := l.ComputeGrid(500)
	if first != second {
		t.Errorf("total height changed across identical runs: %d then %d", first, second)
	}
	for i, p := range snapshot(l) {
		if p != snap[i] {
			t.Errorf("Placement(%d) changed across identical runs: %+v then %+v", i, snap[i], p)
		}
	}
}
