package diagnostic

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/sonar/input"
)

var (
	// ErrEmptyReport indicates a report with no rows.
	ErrEmptyReport = errors.New("diagnostic: empty report")

	// ErrWidth indicates rows of different lengths.
	ErrWidth = errors.New("diagnostic: row width mismatch")

	// ErrNoUniqueRating indicates a rating filter that ended with no rows or
	// with several identical rows.
	ErrNoUniqueRating = errors.New("diagnostic: no unique rating row")
)

// Report holds rows of equal-width binary numbers.
type Report struct {
	rows    uint
	columns []*bitset.BitSet // columns[c] has bit r set when row r has 1 at position c
}

// Parse reads one binary number per line, most significant bit first.
func Parse(text string) (*Report, error) {
	var lines []string
	for _, l := range input.Lines(text) {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyReport
	}

	width := len(lines[0])
	r := &Report{rows: uint(len(lines)), columns: make([]*bitset.BitSet, width)}
	for c := range r.columns {
		r.columns[c] = bitset.New(r.rows)
	}
	for i, l := range lines {
		if len(l) != width {
			return nil, input.Wrap(i+1, l, fmt.Errorf("%w: want %d, have %d", ErrWidth, width, len(l)))
		}
		for c, ch := range []byte(l) {
			switch ch {
			case '1':
				r.columns[c].Set(uint(i))
			case '0':
			default:
				return nil, input.Errorf(i+1, l, "%q is not a bit", ch)
			}
		}
	}
	return r, nil
}

// Width returns the number of bits per row.
func (r *Report) Width() int { return len(r.columns) }

// Rows returns the number of rows.
func (r *Report) Rows() int { return int(r.rows) }

// Gamma builds a number from the most common bit of each column.
func (r *Report) Gamma() uint64 {
	var g uint64
	for _, col := range r.columns {
		g <<= 1
		if ones := col.Count(); ones > r.rows-ones {
			g |= 1
		}
	}
	return g
}

// Epsilon is the complement of Gamma within the report width.
func (r *Report) Epsilon() uint64 {
	mask := uint64(1)<<uint(len(r.columns)) - 1
	return ^r.Gamma() & mask
}

// PowerConsumption is Gamma × Epsilon.
func (r *Report) PowerConsumption() uint64 {
	return r.Gamma() * r.Epsilon()
}

// OxygenRating filters rows by the most common bit per column, keeping 1 on a tie.
func (r *Report) OxygenRating() (uint64, error) {
	return r.rating("oxygen", func(ones, zeros uint) bool { return ones >= zeros })
}

// CO2Rating filters rows by the least common bit per column, keeping 0 on a tie.
func (r *Report) CO2Rating() (uint64, error) {
	return r.rating("CO2", func(ones, zeros uint) bool { return ones < zeros })
}

// LifeSupport is OxygenRating × CO2Rating.
func (r *Report) LifeSupport() (uint64, error) {
	oxygen, err := r.OxygenRating()
	if err != nil {
		return 0, err
	}
	co2, err := r.CO2Rating()
	if err != nil {
		return 0, err
	}
	return oxygen * co2, nil
}

// rating narrows the alive rows column by column until one is left.
// keepOnes decides, from the tally among alive rows, which bit survives.
// Returns ErrNoUniqueRating unless exactly one row remains.
func (r *Report) rating(name string, keepOnes func(ones, zeros uint) bool) (uint64, error) {
	alive := bitset.New(r.rows)
	alive.FlipRange(0, r.rows)

	for _, col := range r.columns {
		if alive.Count() <= 1 {
			break
		}
		ones := alive.IntersectionCardinality(col)
		if keepOnes(ones, alive.Count()-ones) {
			alive.InPlaceIntersection(col)
		} else {
			alive.InPlaceDifference(col)
		}
	}

	if n := alive.Count(); n != 1 {
		return 0, fmt.Errorf("%w: %s filter left %d rows", ErrNoUniqueRating, name, n)
	}
	row, _ := alive.NextSet(0)
	return r.value(row), nil
}

func (r *Report) value(row uint) uint64 {
	var v uint64
	for _, col := range r.columns {
		v <<= 1
		if col.Test(row) {
			v |= 1
		}
	}
	return v
}
