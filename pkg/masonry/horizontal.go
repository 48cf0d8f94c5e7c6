package masonry

// ComputeHorizontal lays items out as row-fill masonry: items are placed
// left to right at the nominal item height, and whenever an item would
// overflow the container width the whole row is rescaled so its total width
// matches the container exactly (modulo rounding). Completed rows share a
// uniform corrected height; history is never reflowed, keeping the pass
// linear.
//
// The container width is clamped to at least the item size. Returns the
// total height of the resulting layout, or 0 when there are no items or the
// item size is zero.
func (l *Layout) ComputeHorizontal(containerWidth uint16) uint32 {
	if l.isEmpty() || l.itemSize == 0 {
		return 0
	}

	itemSize := uint32(l.itemSize)
	width := max(uint32(containerWidth), itemSize)
	gap := uint32(l.gap)

	var topOffset, curRowWidth uint32
	firstRowItem := 0

	for i := 0; i < l.numItems; i++ {
		p := &l.placements[i]
		// Tentative size: nominal height, width driven by the aspect ratio.
		p.Height = l.itemSize
		p.Width = divInt(l.itemSize*l.ratios[i].width, l.ratios[i].height)
		p.Top = topOffset
		p.Left = curRowWidth

		newRowWidth := curRowWidth + uint32(p.Width) + gap

		if newRowWidth > width {
			// The row overflowed: rescale every item in it so the row spans
			// the container exactly, then start a new row.
			correctedHeight := divInt(itemSize*width, newRowWidth)
			h := uint16(correctedHeight)
			for j := firstRowItem; j <= i; j++ {
				prev := &l.placements[j]
				prev.Height = h
				prev.Left = divInt(prev.Left*width, newRowWidth)
				prev.Width = uint16(divInt(uint32(prev.Width)*width, newRowWidth))
			}

			curRowWidth = 0
			firstRowItem = i + 1
			topOffset += correctedHeight + gap
		} else {
			curRowWidth = newRowWidth
		}
	}

	// The final row, if it never overflowed, keeps its natural height.
	if curRowWidth == 0 {
		return topOffset
	}
	return topOffset + itemSize + gap
}
