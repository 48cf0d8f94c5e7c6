package masonry_test

import (
	"fmt"

	"github.com/tilecraft/mosaic/pkg/masonry"
)

func Example() {
	sources := [][2]uint16{
		{1600, 900}, // landscape
		{900, 1600}, // portrait
		{1200, 1200},
	}

	l := masonry.New(len(sources), 100, 10)
	for i, s := range sources {
		l.SetSourceSize(i, s[0], s[1])
	}

	total := l.ComputeHorizontal(400)
	for i := 0; i < l.Len(); i++ {
		p := l.Placement(i)
		fmt.Printf("item %d: %dx%d at (%d, %d)\n", i, p.Width, p.Height, p.Left, p.Top)
	}
	fmt.Println("container height:", total)
	// Output:
	// item 0: 179x100 at (0, 0)
	// item 1: 56x100 at (189, 0)
	// item 2: 100x100 at (255, 0)
	// container height: 110
}

func ExampleLayout_ComputeGrid() {
	l := masonry.New(4, 50, 0)
	for i := 0; i < 4; i++ {
		l.SetSourceSize(i, 100, 100)
	}

	total := l.ComputeGrid(100)
	fmt.Println("rows of 2, total height:", total)
	// Output: rows of 2, total height: 100
}
