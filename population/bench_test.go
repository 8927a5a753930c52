package population_test

import (
	"testing"

	"github.com/katalvlaran/sonar/population"
)

// BenchmarkAdvance256 measures a full 256-day run.
func BenchmarkAdvance256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c, _ := population.FromTimers([]int{3, 4, 3, 1, 2})
		c.Advance(256)
		_ = c.Count()
	}
}
