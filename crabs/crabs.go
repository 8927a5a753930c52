// Package crabs aligns crab submarines at the cheapest horizontal position.
//
// Two cost models are supported. Under LinearFuel moving d steps costs d,
// so the median of the positions is optimal. Under TriangularFuel it costs
// d(d+1)/2, whose real minimiser lies within half a step of the mean, so
// only the integers in that window are tried. Exhaustive checks every
// position between the extremes and serves as a reference.
package crabs

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ErrNoCrabs indicates an empty position list.
var ErrNoCrabs = errors.New("crabs: no positions")

// Cost returns the fuel needed to move distance d.
type Cost func(d int) int

// Linear costs one unit per step.
func Linear(d int) int { return d }

// Triangular costs one more unit for every step than the step before.
func Triangular(d int) int { return d * (d + 1) / 2 }

// Alignment is a target position and the fuel needed to reach it.
type Alignment struct {
	Position int
	Fuel     int
}

// Fuel sums cost over all crabs moving to target.
func Fuel(positions []int, target int, cost Cost) int {
	total := 0
	for _, p := range positions {
		d := p - target
		if d < 0 {
			d = -d
		}
		total += cost(d)
	}
	return total
}

// LinearFuel aligns at the median position.
func LinearFuel(positions []int) (Alignment, error) {
	if len(positions) == 0 {
		return Alignment{}, ErrNoCrabs
	}
	x := sortedFloats(positions)
	median := int(stat.Quantile(0.5, stat.Empirical, x, nil))
	return Alignment{Position: median, Fuel: Fuel(positions, median, Linear)}, nil
}

// TriangularFuel aligns at the cheapest integer within half a step of the
// mean. Ties go to the smaller position.
func TriangularFuel(positions []int) (Alignment, error) {
	if len(positions) == 0 {
		return Alignment{}, ErrNoCrabs
	}
	mean := stat.Mean(sortedFloats(positions), nil)
	best := Alignment{Fuel: math.MaxInt}
	for t := int(math.Floor(mean - 0.5)); t <= int(math.Ceil(mean+0.5)); t++ {
		if f := Fuel(positions, t, Triangular); f < best.Fuel {
			best = Alignment{Position: t, Fuel: f}
		}
	}
	return best, nil
}

// Exhaustive tries every position from the smallest to the largest and
// returns the cheapest under cost. Ties go to the smaller position.
func Exhaustive(positions []int, cost Cost) (Alignment, error) {
	if len(positions) == 0 {
		return Alignment{}, ErrNoCrabs
	}
	best := Alignment{Fuel: math.MaxInt}
	for t := slices.Min(positions); t <= slices.Max(positions); t++ {
		if f := Fuel(positions, t, cost); f < best.Fuel {
			best = Alignment{Position: t, Fuel: f}
		}
	}
	return best, nil
}

func sortedFloats(positions []int) []float64 {
	x := make([]float64, len(positions))
	for i, p := range positions {
		x[i] = float64(p)
	}
	slices.Sort(x)
	return x
}
