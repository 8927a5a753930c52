package octopus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sonar/grid"
	"github.com/katalvlaran/sonar/input"
)

// Threshold is the highest energy an octopus can hold without flashing.
const Threshold = 9

// ErrNeverSynchronized indicates no step within the limit flashed every octopus.
var ErrNeverSynchronized = errors.New("octopus: no synchronized flash within limit")

// Options configures a Cavern.
type Options struct {
	Worklist bool // propagate flashes with a queue instead of rescanning
}

// Option represents a functional option for configuring a Cavern.
type Option func(*Options)

// WithWorklist selects queue-driven flash propagation.
func WithWorklist() Option {
	return func(o *Options) {
		o.Worklist = true
	}
}

// Cavern holds the energy grid and the number of steps taken so far.
type Cavern struct {
	energy *grid.Grid[int]
	opts   Options
	steps  int
	queue  []int
}

// New wraps an energy grid. The grid is mutated in place by Step.
func New(energy *grid.Grid[int], opts ...Option) *Cavern {
	c := &Cavern{energy: energy}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Parse reads rows of energy digits.
func Parse(text string, opts ...Option) (*Cavern, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return nil, err
	}
	return New(g, opts...), nil
}

// Energy exposes the current energy grid.
func (c *Cavern) Energy() *grid.Grid[int] { return c.energy }

// Steps returns how many steps have been simulated.
func (c *Cavern) Steps() int { return c.steps }

// Len returns the number of octopuses.
func (c *Cavern) Len() int { return c.energy.Len() }

// Step advances one step and returns the number of flashes.
func (c *Cavern) Step() int {
	c.steps++
	if c.opts.Worklist {
		return c.stepWorklist()
	}
	return c.stepRescan()
}

func (c *Cavern) stepRescan() int {
	for p := range c.energy.Refs() {
		*p++
	}

	flashes := 0
	for changed := true; changed; {
		changed = false
		for cell := range c.energy.All() {
			if cell.Value <= Threshold {
				continue
			}
			c.energy.Set(cell.X, cell.Y, 0)
			flashes++
			changed = true
			for n := range c.energy.Adjacent(cell.X, cell.Y, grid.Conn8) {
				if n.Value > 0 {
					c.energy.Set(n.X, n.Y, n.Value+1)
				}
			}
		}
	}
	return flashes
}

func (c *Cavern) stepWorklist() int {
	c.queue = c.queue[:0]
	for cell := range c.energy.All() {
		c.energy.Set(cell.X, cell.Y, cell.Value+1)
		if cell.Value+1 > Threshold {
			idx, _ := c.energy.Index(cell.X, cell.Y)
			c.queue = append(c.queue, idx)
		}
	}

	flashes := 0
	for qi := 0; qi < len(c.queue); qi++ {
		x, y := c.energy.Coordinate(c.queue[qi])
		c.energy.Set(x, y, 0)
		flashes++
		for n := range c.energy.Adjacent(x, y, grid.Conn8) {
			if n.Value <= 0 {
				continue
			}
			c.energy.Set(n.X, n.Y, n.Value+1)
			// enqueue only on the crossing so each octopus is queued once
			if n.Value == Threshold {
				idx, _ := c.energy.Index(n.X, n.Y)
				c.queue = append(c.queue, idx)
			}
		}
	}
	return flashes
}

// Run advances n steps and returns the total number of flashes.
func (c *Cavern) Run(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += c.Step()
	}
	return total
}

// Synchronized reports whether a step that produced the given number of
// flashes lit up every octopus.
func (c *Cavern) Synchronized(flashes int) bool {
	return c.Len() > 0 && flashes == c.Len()
}

// FirstSynchronized steps until every octopus flashes together and returns
// the 1-based number of that step, counted from the cavern's creation.
// At most limit further steps are taken.
func (c *Cavern) FirstSynchronized(limit int) (int, error) {
	for i := 0; i < limit; i++ {
		if c.Synchronized(c.Step()) {
			return c.steps, nil
		}
	}
	return 0, fmt.Errorf("%w: %d steps", ErrNeverSynchronized, limit)
}
