package input

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/sonar/grid"
)

// Lines splits s on newlines, trims surrounding whitespace and drops blank
// lines at the start and end. Interior blank lines are kept.
func Lines(s string) []string {
	s = strings.Trim(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if strings.TrimSpace(s) == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = strings.TrimSpace(l)
	}
	return out
}

// Line is one input line and its 1-based number within Lines(s).
type Line struct {
	No   int
	Text string
}

// Sections splits s into blank-line separated blocks of lines.
// Empty blocks are skipped.
func Sections(s string) [][]string {
	numbered := NumberedSections(s)
	out := make([][]string, 0, len(numbered))
	for _, sec := range numbered {
		texts := make([]string, len(sec))
		for i, l := range sec {
			texts[i] = l.Text
		}
		out = append(out, texts)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// NumberedSections is Sections with line numbers kept, so callers parsing
// a block can still report where a bad line sits.
func NumberedSections(s string) [][]Line {
	var (
		out [][]Line
		cur []Line
	)
	for i, l := range Lines(s) {
		if l == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, Line{No: i + 1, Text: l})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// IntLines parses one integer per non-blank line.
func IntLines(s string) ([]int, error) {
	var out []int
	for i, l := range Lines(s) {
		if l == "" {
			continue
		}
		n, err := strconv.Atoi(l)
		if err != nil {
			return nil, Wrap(i+1, l, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// IntList parses integers separated by sep, possibly spread over several lines.
func IntList(s, sep string) ([]int, error) {
	var out []int
	for i, l := range Lines(s) {
		if l == "" {
			continue
		}
		for _, f := range strings.Split(l, sep) {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, Wrap(i+1, f, err)
			}
			out = append(out, n)
		}
	}
	return out, nil
}

// Fields parses whitespace separated integers on one line.
func Fields(line string) ([]int, error) {
	fs := strings.Fields(line)
	out := make([]int, 0, len(fs))
	for _, f := range fs {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, Wrap(0, f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// DigitGrid parses rows of decimal digits ("2199943210") into a grid.
// All rows must share the first row's width.
func DigitGrid(s string) (*grid.Grid[int], error) {
	var g *grid.Grid[int]
	for i, l := range Lines(s) {
		if l == "" {
			continue
		}
		row := make([]int, 0, len(l))
		for _, r := range l {
			if r < '0' || r > '9' {
				return nil, Errorf(i+1, l, "%q is not a digit", r)
			}
			row = append(row, int(r-'0'))
		}
		if g == nil {
			var err error
			if g, err = grid.New(row, len(row)); err != nil {
				return nil, Wrap(i+1, l, err)
			}
			continue
		}
		if err := g.AppendRow(row); err != nil {
			return nil, Wrap(i+1, l, err)
		}
	}
	if g == nil {
		return nil, grid.ErrEmpty
	}
	return g, nil
}
