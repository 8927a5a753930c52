package segments

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/sonar/input"
)

// ErrUnsolvable indicates signal patterns that do not describe digits 0-9.
var ErrUnsolvable = errors.New("segments: unsolvable display")

// Pattern is a set of lit wires, bit 0 for 'a' through bit 6 for 'g'.
type Pattern uint8

// ParsePattern reads wire letters in any order.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	for _, r := range s {
		if r < 'a' || r > 'g' {
			return 0, input.Errorf(0, s, "wire %q out of range a..g", r)
		}
		p |= 1 << (r - 'a')
	}
	return p, nil
}

// Len returns the number of lit wires.
func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// Contains reports whether every wire of q is lit in p.
func (p Pattern) Contains(q Pattern) bool { return p&q == q }

// String lists the wires in alphabetical order.
func (p Pattern) String() string {
	var sb strings.Builder
	for i := 0; i < 7; i++ {
		if p&(1<<i) != 0 {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}

// segment counts that identify a digit on their own
var uniqueLengths = map[int]bool{2: true, 3: true, 4: true, 7: true}

// Display is one entry of the notes.
type Display struct {
	Signals [10]Pattern
	Output  [4]Pattern
}

// ParseDisplay reads "<ten patterns> | <four patterns>".
func ParseDisplay(line string) (Display, error) {
	var d Display
	left, right, ok := strings.Cut(line, "|")
	if !ok {
		return d, input.Errorf(0, line, "missing \"|\"")
	}
	signals, output := strings.Fields(left), strings.Fields(right)
	if len(signals) != len(d.Signals) || len(output) != len(d.Output) {
		return d, input.Errorf(0, line, "want 10 signals and 4 outputs, have %d and %d", len(signals), len(output))
	}
	for i, s := range signals {
		p, err := ParsePattern(s)
		if err != nil {
			return d, err
		}
		d.Signals[i] = p
	}
	for i, s := range output {
		p, err := ParsePattern(s)
		if err != nil {
			return d, err
		}
		d.Output[i] = p
	}
	return d, nil
}

// ParseDisplays reads one display per line.
func ParseDisplays(text string) ([]Display, error) {
	var out []Display
	for i, l := range input.Lines(text) {
		if l == "" {
			continue
		}
		d, err := ParseDisplay(l)
		if err != nil {
			var pe *input.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Key maps each digit to its pattern.
type Key [10]Pattern

// Digit returns the digit lit by p.
func (k Key) Digit(p Pattern) (int, bool) {
	for d, q := range k {
		if q == p {
			return d, true
		}
	}
	return 0, false
}

// Solve deduces the digit of every signal pattern.
func (d Display) Solve() (Key, error) {
	var (
		k    Key
		used [10]bool
	)
	find := func(digit, length int, cond func(Pattern) bool) error {
		for i, p := range d.Signals {
			if !used[i] && p.Len() == length && (cond == nil || cond(p)) {
				used[i] = true
				k[digit] = p
				return nil
			}
		}
		return fmt.Errorf("%w: no candidate for %d", ErrUnsolvable, digit)
	}

	steps := []struct {
		digit, length int
		cond          func(Pattern) bool
	}{
		{1, 2, nil},
		{4, 4, nil},
		{7, 3, nil},
		{8, 7, nil},
		{6, 6, func(p Pattern) bool { return (p & k[1]).Len() == 1 }},
		{5, 5, func(p Pattern) bool { return k[6].Contains(p) }},
		{2, 5, func(p Pattern) bool { return p.Contains(k[6] &^ k[5]) }},
		{9, 6, func(p Pattern) bool { return !p.Contains(k[6] &^ k[5]) }},
		{3, 5, nil},
		{0, 6, nil},
	}
	for _, s := range steps {
		if err := find(s.digit, s.length, s.cond); err != nil {
			return Key{}, err
		}
	}
	if e := k[6] &^ k[5]; e.Len() != 1 {
		return Key{}, fmt.Errorf("%w: segment e resolves to %q", ErrUnsolvable, e)
	}
	return k, nil
}

// Decode solves the display and reads its four output digits as a number.
func (d Display) Decode() (int, error) {
	k, err := d.Solve()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range d.Output {
		digit, ok := k.Digit(p)
		if !ok {
			return 0, fmt.Errorf("%w: output %q matches no digit", ErrUnsolvable, p)
		}
		n = n*10 + digit
	}
	return n, nil
}

// CountUnique counts output patterns that identify 1, 4, 7 or 8 by length.
func CountUnique(displays []Display) int {
	n := 0
	for _, d := range displays {
		for _, p := range d.Output {
			if uniqueLengths[p.Len()] {
				n++
			}
		}
	}
	return n
}

// SumOutputs decodes every display and sums the outputs.
func SumOutputs(displays []Display) (int, error) {
	sum := 0
	for i, d := range displays {
		n, err := d.Decode()
		if err != nil {
			return 0, fmt.Errorf("display %d: %w", i+1, err)
		}
		sum += n
	}
	return sum, nil
}
