package masonry

import "container/heap"

// column is one vertical strip of the column-balanced layout.
type column struct {
	left   uint32
	height uint32
}

// columnHeap orders columns as a min-heap on filled height, ties broken by
// ascending left offset so placement is deterministic when columns are
// equally full.
type columnHeap []column

func (h columnHeap) Len() int { return len(h) }

func (h columnHeap) Less(i, j int) bool {
	if h[i].height != h[j].height {
		return h[i].height < h[j].height
	}
	return h[i].left < h[j].left
}

func (h columnHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *columnHeap) Push(x any) { *h = append(*h, x.(column)) }

func (h *columnHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// ComputeVertical lays items out as column-balanced masonry: the container
// is split into equal-width columns and each item in turn is appended to the
// currently shortest column, a greedy heuristic that approximates balanced
// columns in near-linear time.
//
// The container width is clamped to at least the item size. Returns the
// total height of the layout, or 0 when there are no items or the item size
// is zero.
//
// The returned height is an estimate: it is the maximum filled height found
// in the leaf half of the column heap's backing array, not a scan of every
// column. Callers sizing a scroll region must treat it as approximate when
// columns are highly imbalanced.
func (l *Layout) ComputeVertical(containerWidth uint16) uint32 {
	if l.isEmpty() || l.itemSize == 0 {
		return 0
	}

	width := max(containerWidth, l.itemSize)
	nColumns := divInt(width, l.itemSize)
	columnWidth := divInt(width, nColumns)
	itemWidth := columnWidth - l.gap
	gap := uint32(l.gap)

	columns := make(columnHeap, 0, nColumns)
	for c := uint16(0); c < nColumns; c++ {
		columns = append(columns, column{left: uint32(c * columnWidth)})
	}
	heap.Init(&columns)

	for i := 0; i < l.numItems; i++ {
		p := &l.placements[i]
		p.Width = itemWidth
		p.Height = divInt(itemWidth*l.ratios[i].height, l.ratios[i].width)

		// Place into the shortest column, then restore heap order.
		shortest := &columns[0]
		p.Left = shortest.left
		p.Top = shortest.height
		shortest.height += uint32(p.Height) + gap
		heap.Fix(&columns, 0)
	}

	// Height estimate from the leaf half of the heap's backing array only,
	// avoiding a full scan of every column.
	var longest uint32
	for _, c := range columns[len(columns)/2:] {
		if c.height > longest {
			longest = c.height
		}
	}
	return longest
}
