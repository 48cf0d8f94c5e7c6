package masonry

// ComputeGrid lays items out in a uniform grid: the container is split into
// equal-width columns and every item becomes a square cell of the column
// width minus the gap, placed row-major.
//
// The container width is clamped to at least the item size. Returns the
// total height of the grid, or 0 when there are no items or the item size
// is zero.
func (l *Layout) ComputeGrid(containerWidth uint16) uint32 {
	if l.isEmpty() || l.itemSize == 0 {
		return 0
	}

	width := max(containerWidth, l.itemSize)
	nColumns := int(divInt(width, l.itemSize))
	columnWidth := divInt(width, uint16(nColumns))
	cellSize := columnWidth - l.gap
	rowHeight := uint32(columnWidth)

	var topOffset uint32
	for first := 0; first < l.numItems; first += nColumns {
		var leftOffset uint32
		for i := first; i < min(first+nColumns, l.numItems); i++ {
			p := &l.placements[i]
			p.Width = cellSize
			p.Height = cellSize
			p.Left = leftOffset
			p.Top = topOffset
			leftOffset += rowHeight
		}
		topOffset += rowHeight
	}
	return topOffset
}
