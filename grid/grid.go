package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a dense row-major 2-D container.
// The zero value is an empty grid with no columns; use New, NewFilled or FromRows.
type Grid[T any] struct {
	columns int
	cells   []T
}

// New builds a grid from flat row-major values laid out in the given number
// of columns. The input slice is copied.
// Returns ErrShape if columns <= 0 or len(values) is not a multiple of columns.
func New[T any](values []T, columns int) (*Grid[T], error) {
	if columns <= 0 {
		return nil, fmt.Errorf("%w: column count must be positive, got %d", ErrShape, columns)
	}
	if len(values)%columns != 0 {
		return nil, fmt.Errorf("%w: can't divide %d cells into %d columns", ErrShape, len(values), columns)
	}
	cells := make([]T, len(values))
	copy(cells, values)

	return &Grid[T]{columns: columns, cells: cells}, nil
}

// NewFilled builds a columns×rows grid with every cell set to fill.
// Negative sizes are treated as zero.
func NewFilled[T any](columns, rows int, fill T) *Grid[T] {
	columns, rows = max(columns, 0), max(rows, 0)
	cells := make([]T, columns*rows)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{columns: columns, cells: cells}
}

// FromRows builds a grid row by row. The first row fixes the width;
// every following row must match it.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	g, err := New(rows[0], len(rows[0]))
	if err != nil {
		return nil, err
	}
	for _, row := range rows[1:] {
		if err = g.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AppendRow extends the grid by one row at the bottom.
// Returns ErrShape if len(values) differs from the column count.
func (g *Grid[T]) AppendRow(values []T) error {
	if len(values) != g.columns {
		return fmt.Errorf("%w: appended rows must have %d columns, got %d", ErrShape, g.columns, len(values))
	}
	g.cells = append(g.cells, values...)
	return nil
}

// Columns returns the grid width.
func (g *Grid[T]) Columns() int { return g.columns }

// Rows returns the grid height.
func (g *Grid[T]) Rows() int {
	if g.columns == 0 {
		return 0
	}
	return len(g.cells) / g.columns
}

// Dimensions returns (columns, rows).
func (g *Grid[T]) Dimensions() (int, int) { return g.Columns(), g.Rows() }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.Rows()
}

// index maps (x,y) to a row-major index. Callers check bounds first.
func (g *Grid[T]) index(x, y int) int {
	return g.columns*y + x
}

// Index returns the row-major index of (x,y), or false when out of bounds.
func (g *Grid[T]) Index(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.index(x, y), true
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.columns, idx / g.columns
}

// Get returns a copy of the cell at (x,y), or false when out of bounds.
func (g *Grid[T]) Get(x, y int) (Cell[T], bool) {
	if !g.InBounds(x, y) {
		return Cell[T]{}, false
	}
	return Cell[T]{X: x, Y: y, Value: g.cells[g.index(x, y)]}, true
}

// Ref returns a pointer to the cell at (x,y) for in-place mutation,
// or false when out of bounds. The pointer is invalidated by AppendRow.
func (g *Grid[T]) Ref(x, y int) (*T, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.cells[g.index(x, y)], true
}

// Set stores v at (x,y) and returns the value it replaced.
// Returns false and leaves the grid untouched when out of bounds.
func (g *Grid[T]) Set(x, y int, v T) (T, bool) {
	p, ok := g.Ref(x, y)
	if !ok {
		var zero T
		return zero, false
	}
	old := *p
	*p = v
	return old, true
}

// All yields every cell in row-major order.
func (g *Grid[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for i, v := range g.cells {
			x, y := g.Coordinate(i)
			if !yield(Cell[T]{X: x, Y: y, Value: v}) {
				return
			}
		}
	}
}

// Values yields every cell value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Refs yields a pointer to every cell in row-major order.
func (g *Grid[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Row yields the cells of row y from left to right.
// An out-of-range row yields nothing.
func (g *Grid[T]) Row(y int) iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		if y < 0 || y >= g.Rows() {
			return
		}
		for x := 0; x < g.columns; x++ {
			if !yield(Cell[T]{X: x, Y: y, Value: g.cells[g.index(x, y)]}) {
				return
			}
		}
	}
}

// Column yields the cells of column x from top to bottom.
// An out-of-range column yields nothing.
func (g *Grid[T]) Column(x int) iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		if x < 0 || x >= g.columns {
			return
		}
		for y := 0; y < g.Rows(); y++ {
			if !yield(Cell[T]{X: x, Y: y, Value: g.cells[g.index(x, y)]}) {
				return
			}
		}
	}
}

// Neighbours returns the orthogonal neighbours of (x,y) indexed by Side:
// left, up, right, down. Slots outside the grid have OK == false; there is
// no wraparound.
func (g *Grid[T]) Neighbours(x, y int) [4]Neighbour[T] {
	var out [4]Neighbour[T]
	for i, d := range [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		c, ok := g.Get(x+d[0], y+d[1])
		out[i] = Neighbour[T]{Cell: c, OK: ok}
	}
	return out
}

// Adjacent yields the in-bounds neighbours of (x,y) under conn,
// clockwise starting from north.
func (g *Grid[T]) Adjacent(x, y int, conn Connectivity) iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for _, d := range conn.Offsets() {
			c, ok := g.Get(x+d[0], y+d[1])
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid's cell slice.
// Values themselves are copied by assignment.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{columns: g.columns, cells: cells}
}

// String renders the grid one row per line with values separated by spaces.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for i, v := range g.cells {
		if i != 0 && i%g.columns == 0 {
			sb.WriteByte('\n')
		} else if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
