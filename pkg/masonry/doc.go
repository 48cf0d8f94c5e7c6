// Package masonry computes on-screen positions for a batch of rectangular
// items (images identified by their source aspect ratio) tiling a container
// of a given width.
//
// Three packing strategies are provided, all single-pass greedy heuristics:
//
//   - ComputeHorizontal: row-fill masonry, each completed row justified to
//     the container width by uniformly rescaling its items
//   - ComputeVertical: column masonry, each item placed into the currently
//     shortest column
//   - ComputeGrid: uniform fixed-cell grid
//
// A Layout owns preallocated parallel buffers of placements and normalized
// aspect ratios. The host feeds source dimensions per item, invokes exactly
// one Compute method per recomputation, and reads back placements. All
// arithmetic is overflow-safe integer math with round-half-up division, so
// cumulative rounding drift across rows and columns stays near zero.
//
// A Layout is not safe for concurrent use; the host must serialize mutation
// and compute calls against the same instance.
//
// # Usage
//
//	l := masonry.New(len(items), 160, 8)
//	for i, it := range items {
//	    l.SetSourceSize(i, it.Width, it.Height)
//	}
//	total := l.ComputeHorizontal(1200)
//	for i := 0; i < l.Len(); i++ {
//	    p := l.Placement(i)
//	    // apply p.Left, p.Top, p.Width, p.Height
//	}
//	_ = total // scroll-region height
package masonry
