// Package vents maps hydrothermal vent lines on the ocean floor.
//
// Lines are horizontal, vertical or 45° diagonal with inclusive endpoints.
// Overlaps rasterises the chosen lines onto a grid.Grid sized to the
// furthest endpoint and counts cells covered at least twice. Lines at any
// other angle are never drawn.
package vents

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/sonar/grid"
	"github.com/katalvlaran/sonar/input"
)

// ErrNegative indicates a coordinate below zero.
var ErrNegative = errors.New("vents: negative coordinate")

// Point is a floor position.
type Point struct {
	X, Y int
}

func (p Point) String() string { return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) }

// Line is a vent segment between two inclusive endpoints.
type Line struct {
	From, To Point
}

func (l Line) String() string { return l.From.String() + " -> " + l.To.String() }

// Straight reports whether l is horizontal or vertical.
func (l Line) Straight() bool { return l.From.X == l.To.X || l.From.Y == l.To.Y }

// Diagonal reports whether l runs at exactly 45°.
func (l Line) Diagonal() bool {
	dx, dy := abs(l.To.X-l.From.X), abs(l.To.Y-l.From.Y)
	return dx == dy && dx != 0
}

// Points yields every point of l from From to To. Lines that are neither
// straight nor diagonal yield nothing.
func (l Line) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !l.Straight() && !l.Diagonal() {
			return
		}
		sx, sy := sign(l.To.X-l.From.X), sign(l.To.Y-l.From.Y)
		p := l.From
		for {
			if !yield(p) || p == l.To {
				return
			}
			p.X += sx
			p.Y += sy
		}
	}
}

// ParseLine reads "x1,y1 -> x2,y2".
func ParseLine(s string) (Line, error) {
	a, b, ok := strings.Cut(s, "->")
	if !ok {
		return Line{}, input.Errorf(0, s, "missing \"->\"")
	}
	from, err := parsePoint(a)
	if err != nil {
		return Line{}, input.Wrap(0, s, err)
	}
	to, err := parsePoint(b)
	if err != nil {
		return Line{}, input.Wrap(0, s, err)
	}
	return Line{From: from, To: to}, nil
}

func parsePoint(s string) (Point, error) {
	xy, err := input.IntList(strings.TrimSpace(s), ",")
	if err != nil {
		return Point{}, err
	}
	if len(xy) != 2 {
		return Point{}, fmt.Errorf("point %q: want two coordinates", strings.TrimSpace(s))
	}
	if xy[0] < 0 || xy[1] < 0 {
		return Point{}, fmt.Errorf("%w: %d,%d", ErrNegative, xy[0], xy[1])
	}
	return Point{X: xy[0], Y: xy[1]}, nil
}

// ParseLines reads one line per row of text.
func ParseLines(text string) ([]Line, error) {
	var out []Line
	for i, row := range input.Lines(text) {
		if row == "" {
			continue
		}
		l, err := ParseLine(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, l)
	}
	return out, nil
}

// Floor counts how many drawn lines cover each point.
func Floor(lines []Line, includeDiagonals bool) *grid.Grid[int] {
	w, h := 0, 0
	for _, l := range lines {
		w = max(w, l.From.X+1, l.To.X+1)
		h = max(h, l.From.Y+1, l.To.Y+1)
	}
	floor := grid.NewFilled(w, h, 0)
	for _, l := range lines {
		if !l.Straight() && !includeDiagonals {
			continue
		}
		for p := range l.Points() {
			if c, ok := floor.Ref(p.X, p.Y); ok {
				*c++
			}
		}
	}
	return floor
}

// Overlaps returns the number of points covered by at least two lines.
func Overlaps(lines []Line, includeDiagonals bool) int {
	n := 0
	for v := range Floor(lines, includeDiagonals).Values() {
		if v >= 2 {
			n++
		}
	}
	return n
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
