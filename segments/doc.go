// Package segments untangles scrambled seven-segment displays.
//
// Each display lists the ten unique signal patterns of digits 0-9 in
// unknown order, with the wire-to-segment mapping scrambled, followed by
// four output patterns. A Pattern is a 7-bit set of wires a..g, so pattern
// comparison, containment and set difference are single machine operations.
//
// Solve deduces the digit of every pattern:
//
//  1. 1, 4, 7 and 8 by their unique segment counts (2, 4, 3, 7).
//  2. 6 is the six-segment pattern sharing exactly one wire with 1.
//  3. 5 is the five-segment pattern contained in 6.
//  4. The wire for segment e is 6 minus 5.
//  5. 2 is the five-segment pattern containing e; 9 is the six-segment
//     pattern missing e.
//  6. 3 and 0 are the remaining five- and six-segment patterns.
//
// Errors:
//
//   - ErrUnsolvable when a step finds no candidate or an output pattern
//     matches no digit.
//   - input.ErrParse for malformed lines or wires outside a..g.
package segments
