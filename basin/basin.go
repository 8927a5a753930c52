package basin

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/sonar/grid"
	"github.com/katalvlaran/sonar/input"
)

// Ridge is the height that separates basins; it belongs to none of them.
const Ridge = 9

// ErrTooFewBasins indicates LargestProduct asked for more basins than exist.
var ErrTooFewBasins = errors.New("basin: not enough basins")

// Heightmap is a grid of heights 0..9.
type Heightmap struct {
	heights *grid.Grid[int]
}

// New wraps an existing height grid. The grid is not copied.
func New(heights *grid.Grid[int]) *Heightmap {
	return &Heightmap{heights: heights}
}

// Parse reads rows of digits.
func Parse(text string) (*Heightmap, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

// IsLowPoint reports whether (x,y) is in bounds, below Ridge, and strictly
// lower than all of its in-bounds orthogonal neighbours.
func (h *Heightmap) IsLowPoint(x, y int) bool {
	c, ok := h.heights.Get(x, y)
	if !ok || c.Value >= Ridge {
		return false
	}
	for _, n := range h.heights.Neighbours(x, y) {
		if n.OK && n.Value <= c.Value {
			return false
		}
	}
	return true
}

// LowPoints returns every low point in row-major order.
func (h *Heightmap) LowPoints() []grid.Cell[int] {
	var out []grid.Cell[int]
	for c := range h.heights.All() {
		if h.IsLowPoint(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return out
}

// RiskLevel sums 1 + height over all low points.
func (h *Heightmap) RiskLevel() int {
	risk := 0
	for _, c := range h.LowPoints() {
		risk += c.Value + 1
	}
	return risk
}

// Size returns the number of cells in the basin whose low point is (x,y).
// Returns false when (x,y) is not a low point.
func (h *Heightmap) Size(x, y int) (int, bool) {
	if !h.IsLowPoint(x, y) {
		return 0, false
	}
	f := newFlood(h.heights)
	return f.fill(x, y), true
}

// Sizes returns the size of every basin, largest first. Each entry equals
// Size of its low point, so two low points sharing one region both count
// the whole region.
func (h *Heightmap) Sizes() []int {
	lows := h.LowPoints()
	sizes := make([]int, 0, len(lows))
	f := newFlood(h.heights)
	for _, c := range lows {
		sizes = append(sizes, f.fill(c.X, c.Y))
	}
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	return sizes
}

// LargestProduct multiplies the sizes of the n largest basins.
// Returns ErrTooFewBasins if fewer than n basins exist.
func (h *Heightmap) LargestProduct(n int) (int, error) {
	sizes := h.Sizes()
	if len(sizes) < n {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrTooFewBasins, n, len(sizes))
	}
	product := 1
	for _, s := range sizes[:n] {
		product *= s
	}
	return product, nil
}

// flood encapsulates breadth-first fill state. Buffers are reused between
// fills; each fill first clears the cells the previous one marked.
type flood struct {
	heights *grid.Grid[int]
	visited []bool
	queue   []int
}

func newFlood(heights *grid.Grid[int]) *flood {
	return &flood{
		heights: heights,
		visited: make([]bool, heights.Len()),
	}
}

// fill floods from (x,y) and returns the number of cells reached.
func (f *flood) fill(x, y int) int {
	for _, i := range f.queue {
		f.visited[i] = false
	}
	start, _ := f.heights.Index(x, y)
	f.queue = append(f.queue[:0], start)
	f.visited[start] = true
	size := 0

	for qi := 0; qi < len(f.queue); qi++ {
		size++
		ux, uy := f.heights.Coordinate(f.queue[qi])
		for c := range f.heights.Adjacent(ux, uy, grid.Conn4) {
			if c.Value >= Ridge {
				continue
			}
			vi, _ := f.heights.Index(c.X, c.Y)
			if !f.visited[vi] {
				f.visited[vi] = true
				f.queue = append(f.queue, vi)
			}
		}
	}
	return size
}
