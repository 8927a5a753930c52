package population

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Cycle is the number of day-buckets in the reproduction ring.
	Cycle = 7
	// NewbornTimer is the timer a freshly spawned entity starts with.
	NewbornTimer = 8
)

// ErrTimerRange indicates a starting timer outside 0..NewbornTimer.
var ErrTimerRange = errors.New("population: timer out of range")

// Counter is a bucketed population model. The zero value is an empty
// population.
type Counter struct {
	zeroDay int           // ring index holding timer 0
	buckets [Cycle]uint64 // timers 0..6, rotated by zeroDay
	seven   uint64        // timer 7
	eight   uint64        // timer 8
	newborn uint64        // spawned by the next AdvanceOneDay
}

// FromTimers builds a Counter from individual starting timers.
// Returns ErrTimerRange for any timer outside 0..8.
func FromTimers(timers []int) (*Counter, error) {
	c := &Counter{}
	for _, t := range timers {
		switch {
		case t >= 0 && t < Cycle:
			c.buckets[t]++
		case t == Cycle:
			c.seven++
		case t == NewbornTimer:
			c.eight++
		default:
			return nil, fmt.Errorf("%w: %d", ErrTimerRange, t)
		}
	}
	c.newborn = c.buckets[c.zeroDay]
	return c, nil
}

// AdvanceOneDay ages the population by one day.
func (c *Counter) AdvanceOneDay() {
	// timer 7 becomes 6, which after rotation is the bucket leaving zero
	c.buckets[c.zeroDay] += c.seven
	c.seven = c.eight
	c.eight = c.newborn

	c.zeroDay = (c.zeroDay + 1) % Cycle
	c.newborn = c.buckets[c.zeroDay]
}

// Advance runs AdvanceOneDay days times.
func (c *Counter) Advance(days int) {
	for range days {
		c.AdvanceOneDay()
	}
}

// Count returns the total population.
func (c *Counter) Count() uint64 {
	total := c.seven + c.eight
	for _, n := range c.buckets {
		total += n
	}
	return total
}

// Histogram returns the population indexed by timer value 0..8.
func (c *Counter) Histogram() [NewbornTimer + 1]uint64 {
	var h [NewbornTimer + 1]uint64
	for i := 0; i < Cycle; i++ {
		h[i] = c.buckets[(c.zeroDay+i)%Cycle]
	}
	h[Cycle] = c.seven
	h[NewbornTimer] = c.eight
	return h
}

// String renders the histogram as "t0,t1,...,t8".
func (c *Counter) String() string {
	h := c.Histogram()
	parts := make([]string, len(h))
	for i, n := range h {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}
