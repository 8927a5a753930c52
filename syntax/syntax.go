package syntax

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoIncomplete indicates MiddleScore was given no incomplete lines.
var ErrNoIncomplete = errors.New("syntax: no incomplete lines")

// Kind classifies a checked line.
type Kind uint8

const (
	Empty Kind = iota
	Complete
	Incomplete
	Corrupted
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	case Corrupted:
		return "corrupted"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var closers = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

var errorPoints = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}

var completionPoints = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}

// Result describes one checked line.
type Result struct {
	Kind Kind

	// Corrupted only.
	Pos      int  // byte offset of the illegal character
	Found    rune // the illegal character
	Expected rune // closer the line needed there, 0 when nothing was open

	// Incomplete only: open brackets, outermost first.
	Open []rune
}

// Check classifies line.
func Check(line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{Kind: Empty}
	}
	var open []rune
	for i, r := range line {
		if _, ok := closers[r]; ok {
			open = append(open, r)
			continue
		}
		if n := len(open); n > 0 && closers[open[n-1]] == r {
			open = open[:n-1]
			continue
		}
		res := Result{Kind: Corrupted, Pos: i, Found: r}
		if n := len(open); n > 0 {
			res.Expected = closers[open[n-1]]
		}
		return res
	}
	if len(open) == 0 {
		return Result{Kind: Complete}
	}
	return Result{Kind: Incomplete, Open: open}
}

// Completion returns the closers that finish an incomplete line.
func (r Result) Completion() string {
	var sb strings.Builder
	for i := len(r.Open) - 1; i >= 0; i-- {
		sb.WriteRune(closers[r.Open[i]])
	}
	return sb.String()
}

// ErrorPoints scores a corrupted line by its illegal character. Characters
// outside the bracket set and other kinds score 0.
func (r Result) ErrorPoints() int {
	if r.Kind != Corrupted {
		return 0
	}
	return errorPoints[r.Found]
}

// CompletionScore folds the completion string: for each closer, multiply by
// 5 and add its value. Lines that are not incomplete score 0.
func (r Result) CompletionScore() int {
	if r.Kind != Incomplete {
		return 0
	}
	score := 0
	for _, c := range r.Completion() {
		score = score*5 + completionPoints[c]
	}
	return score
}

// CheckAll classifies every line of text.
func CheckAll(text string) []Result {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []Result
	for _, l := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		out = append(out, Check(l))
	}
	return out
}

// ErrorScore sums ErrorPoints over results.
func ErrorScore(results []Result) int {
	sum := 0
	for _, r := range results {
		sum += r.ErrorPoints()
	}
	return sum
}

// MiddleScore sorts the completion scores of incomplete lines and returns
// the median. With an even count the lower middle is returned.
func MiddleScore(results []Result) (int, error) {
	var scores []int
	for _, r := range results {
		if r.Kind == Incomplete {
			scores = append(scores, r.CompletionScore())
		}
	}
	if len(scores) == 0 {
		return 0, ErrNoIncomplete
	}
	slices.Sort(scores)
	return scores[(len(scores)-1)/2], nil
}
