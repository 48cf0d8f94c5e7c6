package masonry

import "testing"

func TestNewPreallocates(t *testing.T) {
	l := New(3, 100, 10)

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	// Buffers are over-allocated to the capacity floor: indexing far beyond
	// the logical count must not panic.
	_ = l.Placement(minItemsCapacity - 1)

	// A count above the floor allocates exactly that many slots.
	big := New(minItemsCapacity+500, 100, 10)
	_ = big.Placement(minItemsCapacity + 499)
}

func TestSetItemSizeClampsToOverflowSafeCap(t *testing.T) {
	l := New(1, 100, 0)

	l.SetItemSize(65535)
	if got := l.ItemSize(); got != maxItemSize {
		t.Errorf("ItemSize() after SetItemSize(65535) = %d, want %d", got, maxItemSize)
	}

	l.SetItemSize(200)
	if got := l.ItemSize(); got != 200 {
		t.Errorf("ItemSize() = %d, want 200", got)
	}
}

func TestNewClampsItemSize(t *testing.T) {
	l := New(1, 65535, 0)
	if got := l.ItemSize(); got != maxItemSize {
		t.Errorf("ItemSize() = %d, want %d", got, maxItemSize)
	}
}

func TestResizeGrowsButNeverShrinks(t *testing.T) {
	l := New(2, 100, 0)

	l.Resize(minItemsCapacity + 10)
	if l.Len() != minItemsCapacity+10 {
		t.Errorf("Len() = %d, want %d", l.Len(), minItemsCapacity+10)
	}
	_ = l.Placement(minItemsCapacity + 9)

	// Shrinking the logical count keeps the backing buffers.
	l.Resize(1)
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	_ = l.Placement(minItemsCapacity + 9)
}

func TestNormalizeAspectRatio(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   uint16
		wantW, wantH uint16
	}{
		{"Square", 100, 100, 1, 1},
		{"SquareLarge", 4000, 4000, 1, 1},
		{"Landscape2to1", 200, 100, 100, 50},
		{"Portrait1to2", 100, 200, 50, 100},
		{"Landscape4to3", 400, 300, 100, 75},
		{"PanoramaClamped", 1000, 100, 100, minAspectRatio},
		{"StripClamped", 100, 1000, minAspectRatio, 100},
		{"ExtremePanorama", 65000, 1, 100, minAspectRatio},
		{"ExtremeStrip", 1, 65000, minAspectRatio, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r aspectRatio
			r.normalize(tt.srcW, tt.srcH)
			if r.width != tt.wantW || r.height != tt.wantH {
				t.Errorf("normalize(%d, %d) = (%d, %d), want (%d, %d)",
					tt.srcW, tt.srcH, r.width, r.height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestAspectRatioBound(t *testing.T) {
	// For any non-square source, the longer component over the shorter never
	// exceeds roughly 3:1.
	dims := []uint16{1, 2, 3, 10, 33, 99, 100, 101, 333, 1000, 9999, 65535}
	for _, w := range dims {
		for _, h := range dims {
			if w == h {
				continue
			}
			var r aspectRatio
			r.normalize(w, h)

			long, short := r.width, r.height
			if short > long {
				long, short = short, long
			}
			if long != 100 {
				t.Fatalf("normalize(%d, %d): longer side = %d, want 100", w, h, long)
			}
			if short < minAspectRatio {
				t.Fatalf("normalize(%d, %d): shorter side = %d, below bound %d", w, h, short, minAspectRatio)
			}
		}
	}
}
