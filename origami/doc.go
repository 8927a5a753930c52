// Package origami folds transparent paper covered in dots.
//
// A Paper is a grid.Grid[Dot] sized to the furthest dot, plus the visible
// width and height left after folding. Folding along y=L reflects every dot
// below row L onto row 2L-y and shrinks the visible height to L; folding
// along x=L does the same for columns. Overlapping dots merge. Dots lying on
// the fold line disappear with it.
//
// Errors:
//
//   - ErrFoldOutOfBounds if the fold line lies outside the visible area or
//     a reflected dot would land at a negative coordinate.
//   - ErrNoDots if the manual lists no dots.
//   - input.ErrParse for malformed dots or fold instructions.
package origami
