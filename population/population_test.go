package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sonar/population"
)

var exampleTimers = []int{3, 4, 3, 1, 2}

// TestCounter_Example checks the documented counts after 18, 80 and 256 days.
func TestCounter_Example(t *testing.T) {
	cases := []struct {
		days int
		want uint64
	}{
		{0, 5},
		{18, 26},
		{80, 5934},
		{256, 26984457539},
	}
	for _, tc := range cases {
		c, err := population.FromTimers(exampleTimers)
		require.NoError(t, err)
		c.Advance(tc.days)
		assert.Equal(t, tc.want, c.Count(), "after %d days", tc.days)
	}
}

// TestCounter_Incremental advances one shared counter through the checkpoints.
func TestCounter_Incremental(t *testing.T) {
	c, err := population.FromTimers(exampleTimers)
	require.NoError(t, err)

	c.Advance(18)
	assert.Equal(t, uint64(26), c.Count())
	c.Advance(80 - 18)
	assert.Equal(t, uint64(5934), c.Count())
}

// naive simulates individual timers for cross-checking small populations.
func naive(timers []int, days int) int {
	fish := append([]int(nil), timers...)
	for range days {
		spawned := 0
		for i := range fish {
			if fish[i] == 0 {
				fish[i] = 6
				spawned++
			} else {
				fish[i]--
			}
		}
		for range spawned {
			fish = append(fish, population.NewbornTimer)
		}
	}
	return len(fish)
}

// TestCounter_MatchesNaive compares the bucket model against explicit timers,
// including zero and staging-slot starting timers.
func TestCounter_MatchesNaive(t *testing.T) {
	starts := [][]int{
		exampleTimers,
		{0},
		{0, 0, 6},
		{7, 8, 1},
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
	}
	for _, timers := range starts {
		c, err := population.FromTimers(timers)
		require.NoError(t, err)
		for day := 1; day <= 40; day++ {
			c.AdvanceOneDay()
			require.Equal(t, uint64(naive(timers, day)), c.Count(), "timers %v day %d", timers, day)
		}
	}
}

// TestHistogram follows the example through its first two days.
func TestHistogram(t *testing.T) {
	c, err := population.FromTimers(exampleTimers)
	require.NoError(t, err)
	assert.Equal(t, "0,1,1,2,1,0,0,0,0", c.String())

	c.AdvanceOneDay() // 2,3,2,0,1
	assert.Equal(t, [9]uint64{1, 1, 2, 1, 0, 0, 0, 0, 0}, c.Histogram())

	c.AdvanceOneDay() // 1,2,1,6,0,8
	assert.Equal(t, [9]uint64{1, 2, 1, 0, 0, 0, 1, 0, 1}, c.Histogram())
}

// TestFromTimers_Range rejects timers outside 0..8.
func TestFromTimers_Range(t *testing.T) {
	for _, bad := range [][]int{{-1}, {9}, {3, 4, 12}} {
		_, err := population.FromTimers(bad)
		assert.ErrorIs(t, err, population.ErrTimerRange, "timers %v", bad)
	}
}

// TestCounter_ZeroValue is an empty population that stays empty.
func TestCounter_ZeroValue(t *testing.T) {
	var c population.Counter
	c.Advance(100)
	assert.Zero(t, c.Count())
}
