package origami

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/sonar/grid"
	"github.com/katalvlaran/sonar/input"
)

var (
	// ErrFoldOutOfBounds indicates a fold that cannot be applied to the visible sheet.
	ErrFoldOutOfBounds = errors.New("origami: fold out of bounds")

	// ErrNoDots indicates a manual without dots.
	ErrNoDots = errors.New("origami: no dots")
)

// Dot reports whether a position is marked.
type Dot bool

func (d Dot) String() string {
	if d {
		return "#"
	}
	return "."
}

// Axis is the direction a fold line runs across.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
)

// Fold is one instruction, "fold along y=7".
type Fold struct {
	Axis Axis
	Line int
}

func (f Fold) String() string {
	return "fold along " + string(rune(f.Axis)) + "=" + strconv.Itoa(f.Line)
}

const foldPrefix = "fold along "

// ParseFold reads "fold along x=5" or "fold along y=7".
func ParseFold(s string) (Fold, error) {
	rest, ok := strings.CutPrefix(s, foldPrefix)
	if !ok {
		return Fold{}, input.Errorf(0, s, "missing %q", foldPrefix)
	}
	axis, line, ok := strings.Cut(rest, "=")
	if !ok {
		return Fold{}, input.Errorf(0, s, "missing \"=\"")
	}
	var f Fold
	switch strings.ToLower(axis) {
	case "x":
		f.Axis = AxisX
	case "y":
		f.Axis = AxisY
	default:
		return Fold{}, input.Errorf(0, s, "unknown axis %q", axis)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return Fold{}, input.Wrap(0, s, err)
	}
	f.Line = n
	return f, nil
}

// Paper is a folded sheet.
type Paper struct {
	sheet         *grid.Grid[Dot]
	width, height int // visible area, from the top-left corner
}

// New marks the given dots, each an {x, y} pair, on a fresh sheet.
func New(dots [][2]int) (*Paper, error) {
	if len(dots) == 0 {
		return nil, ErrNoDots
	}
	w, h := 0, 0
	for _, d := range dots {
		if d[0] < 0 || d[1] < 0 {
			return nil, fmt.Errorf("%w: dot %d,%d", ErrFoldOutOfBounds, d[0], d[1])
		}
		w, h = max(w, d[0]+1), max(h, d[1]+1)
	}
	p := &Paper{sheet: grid.NewFilled(w, h, Dot(false)), width: w, height: h}
	for _, d := range dots {
		p.sheet.Set(d[0], d[1], true)
	}
	return p, nil
}

// ParseManual reads the dot list, a blank line, then fold instructions.
func ParseManual(text string) (*Paper, []Fold, error) {
	sections := input.NumberedSections(text)
	if len(sections) == 0 {
		return nil, nil, ErrNoDots
	}
	dots := make([][2]int, 0, len(sections[0]))
	for _, l := range sections[0] {
		xy, err := input.IntList(l.Text, ",")
		if err != nil {
			return nil, nil, input.At(l.No, l.Text, err)
		}
		if len(xy) != 2 {
			return nil, nil, input.Errorf(l.No, l.Text, "want \"x,y\"")
		}
		dots = append(dots, [2]int{xy[0], xy[1]})
	}
	p, err := New(dots)
	if err != nil {
		return nil, nil, err
	}

	var folds []Fold
	for _, sec := range sections[1:] {
		for _, l := range sec {
			f, err := ParseFold(l.Text)
			if err != nil {
				return nil, nil, input.At(l.No, l.Text, err)
			}
			folds = append(folds, f)
		}
	}
	return p, folds, nil
}

// Dimensions returns the visible width and height.
func (p *Paper) Dimensions() (int, int) { return p.width, p.height }

// Fold applies f to the visible sheet.
func (p *Paper) Fold(f Fold) error {
	switch f.Axis {
	case AxisY:
		if f.Line < 0 || f.Line >= p.height {
			return fmt.Errorf("%w: %s on height %d", ErrFoldOutOfBounds, f, p.height)
		}
		if err := p.reflect(f); err != nil {
			return err
		}
		p.height = f.Line
	case AxisX:
		if f.Line < 0 || f.Line >= p.width {
			return fmt.Errorf("%w: %s on width %d", ErrFoldOutOfBounds, f, p.width)
		}
		if err := p.reflect(f); err != nil {
			return err
		}
		p.width = f.Line
	default:
		return fmt.Errorf("%w: unknown axis %q", ErrFoldOutOfBounds, rune(f.Axis))
	}
	return nil
}

// reflect moves every dot beyond the fold line onto its mirror image.
// The sheet is left untouched when any dot would land off it.
func (p *Paper) reflect(f Fold) error {
	mirror := func(c grid.Cell[Dot]) (x, y int, beyond bool) {
		if f.Axis == AxisY {
			return c.X, 2*f.Line - c.Y, c.Y > f.Line
		}
		return 2*f.Line - c.X, c.Y, c.X > f.Line
	}
	for c := range p.visible() {
		if x, y, beyond := mirror(c); bool(c.Value) && beyond && (x < 0 || y < 0) {
			return fmt.Errorf("%w: %s moves dot %d,%d off the sheet", ErrFoldOutOfBounds, f, c.X, c.Y)
		}
	}
	for c := range p.visible() {
		if !c.Value {
			continue
		}
		x, y, beyond := mirror(c)
		onLine := (f.Axis == AxisY && c.Y == f.Line) || (f.Axis == AxisX && c.X == f.Line)
		if beyond || onLine {
			p.sheet.Set(c.X, c.Y, false)
		}
		if beyond {
			p.sheet.Set(x, y, true)
		}
	}
	return nil
}

// visible yields the cells of the visible area in row-major order.
func (p *Paper) visible() iter.Seq[grid.Cell[Dot]] {
	return func(yield func(grid.Cell[Dot]) bool) {
		for y := 0; y < p.height; y++ {
			for c := range p.sheet.Row(y) {
				if c.X >= p.width {
					break
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// CountDots counts the visible dots.
func (p *Paper) CountDots() int {
	n := 0
	for c := range p.visible() {
		if c.Value {
			n++
		}
	}
	return n
}

// Render draws the visible area with '#' for dots and '.' elsewhere, one
// line per row.
func (p *Paper) Render() string {
	var sb strings.Builder
	for c := range p.visible() {
		sb.WriteString(c.Value.String())
		if c.X == p.width-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
