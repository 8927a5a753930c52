// Package syntax checks navigation subsystem lines of nested brackets.
//
// Check scans a line with a stack of open brackets and classifies it:
//
//   - Empty:      nothing but whitespace.
//   - Complete:   every bracket closed in order.
//   - Incomplete: the line ends with brackets still open.
//   - Corrupted:  a character that does not close the innermost open
//     bracket. This includes a closer with nothing open and any character
//     outside ()[]{}<>.
//
// Corrupted lines score by their first illegal character; incomplete lines
// score their completion string, and the middle of the sorted completion
// scores summarises a whole file.
package syntax
