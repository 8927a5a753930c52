package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrShape indicates cells that cannot be laid out in the requested columns.
	ErrShape = errors.New("grid: shape mismatch")
	// ErrEmpty indicates FromRows received no rows or a zero-width first row.
	ErrEmpty = errors.New("grid: input must have at least one row and one column")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the (dx, dy) steps for the connectivity.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Cell is a copy-out view of one grid cell. It does not alias the grid,
// so it stays valid (but stale) across later mutations.
type Cell[T any] struct {
	X, Y  int // Coordinates within the grid
	Value T   // Value at (X, Y) when the cell was read
}

// Side indexes the slots returned by Grid.Neighbours.
type Side int

const (
	Left Side = iota
	Up
	Right
	Down
)

// Neighbour is one slot of Grid.Neighbours. OK is false when the
// neighbour would lie outside the grid.
type Neighbour[T any] struct {
	Cell[T]
	OK bool
}
