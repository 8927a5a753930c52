package grid_test

import (
	"fmt"

	"github.com/katalvlaran/sonar/grid"
)

// ExampleGrid_Neighbours shows the four orthogonal slots of a corner cell.
func ExampleGrid_Neighbours() {
	g, _ := grid.New([]int{
		1, 2, 3,
		4, 5, 6,
	}, 3)

	for side, n := range g.Neighbours(0, 0) {
		if n.OK {
			fmt.Printf("side %d: %d at (%d,%d)\n", side, n.Value, n.X, n.Y)
		} else {
			fmt.Printf("side %d: none\n", side)
		}
	}
	// Output:
	// side 0: none
	// side 1: none
	// side 2: 2 at (1,0)
	// side 3: 4 at (0,1)
}

// ExampleGrid_Adjacent lists the 8-connected neighbours of a centre cell.
func ExampleGrid_Adjacent() {
	g, _ := grid.New([]int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3)

	var vals []int
	for c := range g.Adjacent(1, 1, grid.Conn8) {
		vals = append(vals, c.Value)
	}
	fmt.Println(vals)
	// Output:
	// [2 3 6 9 8 7 4 1]
}
