// Package diagnostic decodes the submarine's binary diagnostic report.
//
// The report is stored column-wise: one bit vector per bit position, with a
// bit per report row. Tallies are population counts and rating reductions
// are in-place intersections or differences on an "alive rows" vector.
//
// Tie rules:
//
//   - Gamma picks 0 when a column holds equal ones and zeroes; epsilon is
//     its complement over the report width.
//   - The oxygen rating keeps rows with 1 on a tie.
//   - The CO2 rating keeps rows with 0 on a tie.
//
// Errors:
//
//   - ErrEmptyReport when the report has no rows.
//   - input.ErrParse for characters other than 0/1 or rows of uneven width.
//   - ErrNoUniqueRating when a rating filter leaves zero rows or several
//     identical rows; LifeSupport passes it through.
package diagnostic
