// Package sonar is a set of solvers for the submarine's daily puzzles,
// built on a shared generic grid.
//
// Shared building blocks:
//
//	grid/        Grid[T]: row-major 2-D storage, bounds-checked access,
//	              4/8 neighbourhoods and range-over-func iterators
//	input/       line, section, integer and digit-grid parsing with ParseError
//
// Core simulations:
//
//	population/  lanternfish timer buckets with an O(1) daily rotation
//	polymer/     pair-insertion rules propagated as pair frequencies
//	basin/       heightmap low points and breadth-first basin sizing
//	octopus/     cascading flashes by rescan or worklist
//
// Day solvers:
//
//	sweep/       depth increases and sliding windows
//	dive/        course commands under two steering models
//	diagnostic/  gamma/epsilon and rating reduction over bit vectors
//	bingo/       first and last winning boards
//	vents/       line overlaps on the ocean floor
//	crabs/       minimal alignment fuel (median / mean)
//	segments/    seven-segment wire deduction
//	syntax/      bracket line classification and scoring
//	caves/       path counting with an optional revisit
//	origami/     folding dotted paper
//
// Command cmd/sonar wires the solvers to YAML configuration
// (internal/config) and a day registry (internal/puzzle).
package sonar
