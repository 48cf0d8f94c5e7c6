package masonry

import "math"

// =============================================================================
// Placement - Computed Item Geometry
// =============================================================================

// Placement is the computed position and size of a single item, in pixels.
// Placements are produced and owned by Layout; hosts read them back after a
// Compute call and apply them to their own rendering primitives.
type Placement struct {
	Width  uint16
	Height uint16
	Left   uint32
	Top    uint32
}

// aspectRatio is a bounded width:height pair derived from raw source pixel
// dimensions. The longer side is fixed at 100 and the shorter side is at
// least 100/3, so no single extreme panorama or strip image can dominate a
// row or column. Equal source sides are stored as (1, 1).
type aspectRatio struct {
	width  uint16
	height uint16
}

// minAspectRatio caps extreme aspect ratios at an effective 3:1 crop.
const minAspectRatio = 100 / 3

// normalize stores the bounded ratio for the given raw source dimensions.
func (a *aspectRatio) normalize(srcWidth, srcHeight uint16) {
	switch {
	case srcWidth > srcHeight:
		h := divInt(100*uint32(srcHeight), uint32(max(srcWidth, 1)))
		a.width, a.height = 100, uint16(max(h, minAspectRatio))
	case srcHeight > srcWidth:
		w := divInt(100*uint32(srcWidth), uint32(max(srcHeight, 1)))
		a.width, a.height = uint16(max(w, minAspectRatio)), 100
	default:
		a.width, a.height = 1, 1
	}
}

// =============================================================================
// Layout - Per-Item Buffers and Sizing Parameters
// =============================================================================

const (
	// minItemsCapacity is the initial over-allocation floor for the backing
	// buffers, amortizing growth for small galleries.
	minItemsCapacity = 1000

	// maxItemSize is the largest nominal item size that cannot overflow
	// uint16 when multiplied by an aspect ratio component of up to 100.
	maxItemSize = math.MaxUint16 / 100
)

// Layout holds the per-item buffers and sizing parameters for one gallery.
// The placements and ratios slices are parallel and indexed identically;
// both always cover at least numItems entries. Buffers only ever grow.
//
// Layout is not safe for concurrent use.
type Layout struct {
	numItems   int
	placements []Placement
	ratios     []aspectRatio
	itemSize   uint16
	gap        uint16
}

// New creates a Layout for numItems items with the given nominal item size
// and inter-item gap. Backing buffers are preallocated to at least
// minItemsCapacity entries. The item size is clamped to the overflow-safe
// maximum.
func New(numItems int, itemSize, gap uint16) *Layout {
	capacity := max(numItems, minItemsCapacity)
	return &Layout{
		numItems:   numItems,
		placements: make([]Placement, capacity),
		ratios:     make([]aspectRatio, capacity),
		itemSize:   min(itemSize, maxItemSize),
		gap:        gap,
	}
}

// Len returns the number of items currently participating in layout.
func (l *Layout) Len() int { return l.numItems }

func (l *Layout) isEmpty() bool { return l.numItems == 0 }

// Placement returns the computed placement for the item at index i.
// The index must be within the allocated buffers; out-of-range access panics.
func (l *Layout) Placement(i int) Placement { return l.placements[i] }

// ItemSize returns the nominal square item dimension.
func (l *Layout) ItemSize() uint16 { return l.itemSize }

// Gap returns the spacing inserted between adjacent items, rows and columns.
func (l *Layout) Gap() uint16 { return l.gap }

// SetSourceSize records the raw source pixel dimensions of the item at
// index i. The dimensions are normalized to a bounded aspect ratio
// immediately; raw values are not retained. The index must be less than
// the logical item count.
func (l *Layout) SetSourceSize(i int, srcWidth, srcHeight uint16) {
	l.ratios[i].normalize(srcWidth, srcHeight)
}

// SetItemSize updates the nominal item size, silently clamping to the
// overflow-safe maximum so later multiplications by aspect ratio components
// of up to 100 stay within uint16.
func (l *Layout) SetItemSize(itemSize uint16) {
	l.itemSize = min(itemSize, maxItemSize)
}

// SetGap updates the inter-item spacing.
func (l *Layout) SetGap(gap uint16) {
	l.gap = gap
}

// Resize sets the logical item count, growing the backing buffers when the
// new count exceeds them. Buffers are never shrunk, avoiding reallocation
// churn on transient item-count dips. New slots hold zero placements and
// zero ratios until SetSourceSize is called for them.
func (l *Layout) Resize(numItems int) {
	l.numItems = numItems
	if n := len(l.placements); numItems > n {
		l.placements = append(l.placements, make([]Placement, numItems-n)...)
		l.ratios = append(l.ratios, make([]aspectRatio, numItems-n)...)
	}
}
