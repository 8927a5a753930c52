package basin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sonar/basin"
	"github.com/katalvlaran/sonar/grid"
	"github.com/katalvlaran/sonar/input"
)

const exampleHeightmap = `2199943210
3987894921
9856789892
8767896789
9899965678
`

func exampleMap(t *testing.T) *basin.Heightmap {
	t.Helper()
	h, err := basin.Parse(exampleHeightmap)
	require.NoError(t, err)
	return h
}

// TestLowPoints finds exactly the four documented low points.
func TestLowPoints(t *testing.T) {
	h := exampleMap(t)
	want := []grid.Cell[int]{
		{X: 1, Y: 0, Value: 1},
		{X: 9, Y: 0, Value: 0},
		{X: 2, Y: 2, Value: 5},
		{X: 6, Y: 4, Value: 5},
	}
	assert.ElementsMatch(t, want, h.LowPoints())
	assert.Equal(t, 15, h.RiskLevel())
}

// TestSize checks each basin and rejects non-low seeds.
func TestSize(t *testing.T) {
	h := exampleMap(t)
	cases := []struct {
		x, y int
		want int
	}{
		{1, 0, 3},
		{9, 0, 9},
		{2, 2, 14},
		{6, 4, 9},
	}
	for _, tc := range cases {
		got, ok := h.Size(tc.x, tc.y)
		require.True(t, ok, "(%d,%d) should be a low point", tc.x, tc.y)
		assert.Equal(t, tc.want, got, "basin at (%d,%d)", tc.x, tc.y)
	}

	for _, xy := range [][2]int{{0, 0}, {2, 0}, {-1, 0}, {10, 0}} {
		_, ok := h.Size(xy[0], xy[1])
		assert.False(t, ok, "(%d,%d) is not a low point", xy[0], xy[1])
	}
}

// TestSizesAndProduct checks ordering and the three-largest product.
func TestSizesAndProduct(t *testing.T) {
	h := exampleMap(t)
	assert.Equal(t, []int{14, 9, 9, 3}, h.Sizes())

	p, err := h.LargestProduct(3)
	require.NoError(t, err)
	assert.Equal(t, 1134, p)

	_, err = h.LargestProduct(5)
	assert.ErrorIs(t, err, basin.ErrTooFewBasins)
}

// TestSizesSharedRegion covers two low points in one ridge-bounded region:
// each reports the whole region, in Size and in Sizes alike.
func TestSizesSharedRegion(t *testing.T) {
	h, err := basin.Parse("010\n")
	require.NoError(t, err)
	require.Len(t, h.LowPoints(), 2)

	for _, c := range h.LowPoints() {
		size, ok := h.Size(c.X, c.Y)
		require.True(t, ok)
		assert.Equal(t, 3, size)
	}
	assert.Equal(t, []int{3, 3}, h.Sizes())

	p, err := h.LargestProduct(2)
	require.NoError(t, err)
	assert.Equal(t, 9, p)
}

// TestRidgeNeverLow ensures an all-ridge map has no low points, and that a
// lone cell with no neighbours is its own basin.
func TestRidgeNeverLow(t *testing.T) {
	g := grid.NewFilled(3, 3, basin.Ridge)
	h := basin.New(g)
	assert.Empty(t, h.LowPoints())
	assert.Empty(t, h.Sizes())

	single, err := basin.Parse("4")
	require.NoError(t, err)
	size, ok := single.Size(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, size)
}

// TestEqualNeighboursNotLow covers plateaus: ties are not strictly lower.
func TestEqualNeighboursNotLow(t *testing.T) {
	h, err := basin.Parse("11\n99\n")
	require.NoError(t, err)
	assert.Empty(t, h.LowPoints())
}

func TestParse_Malformed(t *testing.T) {
	_, err := basin.Parse("12\n3x\n")
	assert.ErrorIs(t, err, input.ErrParse)
}
