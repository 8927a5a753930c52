// Package basin sizes the smoke basins of a heightmap.
//
// What:
//
//   - A low point is a cell strictly lower than every in-bounds orthogonal
//     neighbour. Cells at Ridge height are never low points.
//   - A basin is every cell reachable from a low point through orthogonal
//     steps over cells below Ridge.
//   - Size runs a breadth-first flood fill with a visited bitmap and a
//     slice-backed queue; it terminates because every enqueue marks a new
//     cell and the grid is finite.
//
// Complexity:
//
//   - LowPoints: O(W×H).
//   - Size:      O(B) time for a basin of B cells, O(W×H) memory for visited flags.
//   - Sizes:     O(sum of basin sizes). Low points sharing a region each
//     flood it in full; the visited buffer is cleared per fill, not reallocated.
package basin
