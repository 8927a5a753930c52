// Package caves counts paths through an undirected cave system.
//
// Caves named in lower case are small and may be entered at most once per
// path; upper-case caves are big and unrestricted. Paths run from "start"
// to "end", never re-enter start, and stop at end. With revisit enabled one
// small cave per path, other than start and end, may be entered twice.
//
// Traversal is depth-first recursion over integer cave ids with a visit
// count per cave that is incremented on entry and restored on exit.
//
// Complexity:
//
//   - NewGraph: O(V + E).
//   - CountPaths/Walk: proportional to the number of paths times their
//     length; exponential in the worst case.
//
// Errors:
//
//   - ErrMissingCave if start or end is absent.
//   - ErrBigCavesAdjacent if two big caves are connected, which would allow
//     infinitely many paths.
//   - input.ErrParse for edges without a single '-'.
package caves
