// Package input turns raw puzzle text into the values the solvers consume:
// trimmed lines, blank-line separated sections, integer lists and digit grids.
//
// Every malformed input is reported as a *ParseError carrying the 1-based
// line number and the offending text. ParseError unwraps to ErrParse, so
// callers may test with errors.Is(err, input.ErrParse).
package input
