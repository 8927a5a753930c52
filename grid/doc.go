// Package grid provides a dense, generic 2-D container addressed by
// (column, row), the shared engine behind the bingo, heightmap, octopus
// and origami solvers.
//
// What:
//
//   - Grid[T] stores cells in one row-major slice; idx = Columns*y + x.
//   - Bounds-checked Get / Ref / Set that report absence instead of panicking.
//   - Range-over-func iterators over all cells, one row or one column.
//   - Orthogonal neighbour slots (left, up, right, down) and 4- or
//     8-connected adjacency.
//
// Invariant:
//
//   - len(cells) % Columns() == 0 at all times. Constructors and AppendRow
//     reject input that would break it with ErrShape.
//
// Complexity:
//
//   - Get, Ref, Set, Neighbours: O(1).
//   - All, Values, Refs: O(W×H). Row: O(W). Column: O(H).
//
// Errors:
//
//   - ErrShape: flat length is not a multiple of the column count, or an
//     appended row has the wrong width.
//   - ErrEmpty: FromRows was given no rows or an empty first row.
package grid
