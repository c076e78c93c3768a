package grid_test

import (
	"fmt"

	"github.com/katalvlaran/terragrid/grid"
)

// ExampleGrid_ForEach demonstrates row-major traversal of a freshly
// filled elevation grid.
func ExampleGrid_ForEach() {
	g, _ := grid.New(3, 2, 0.5)
	g.ForEach(func(x, y int, v float64) {
		fmt.Printf("(%d,%d)=%.1f ", x, y, v)
	})
	fmt.Println()
	// Output:
	// (0,0)=0.5 (1,0)=0.5 (2,0)=0.5 (0,1)=0.5 (1,1)=0.5 (2,1)=0.5
}

// ExampleGrid_Neighbors demonstrates the clamp-at-border policy: the
// top-left corner has only three radius-1 neighbors.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(4, 4, 0)
	ns, _ := g.Neighbors(0, 0, 1)
	for _, c := range ns {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()
	// Output:
	// (1,0) (0,1) (1,1)
}
