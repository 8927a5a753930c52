package polymer

import "strings"

// Propagator tracks a polymer as counts of adjacent element pairs.
type Propagator struct {
	rules Rules
	state map[Pair]uint64
	first rune
}

// New counts the adjacent pairs of template.
// Returns ErrEmptyTemplate if template has no elements.
func New(rules Rules, template string) (*Propagator, error) {
	elems := []rune(template)
	if len(elems) == 0 {
		return nil, ErrEmptyTemplate
	}
	state := make(map[Pair]uint64, len(elems))
	for i := 1; i < len(elems); i++ {
		state[Pair{elems[i-1], elems[i]}]++
	}
	return &Propagator{rules: rules, state: state, first: elems[0]}, nil
}

// Step applies one round of pair insertion. Every pair is checked against
// the rules before the state is replaced, so a *RuleMissingError leaves the
// propagator as it was.
func (p *Propagator) Step() error {
	next := make(map[Pair]uint64, len(p.state)*2)
	for pair, n := range p.state {
		mid, ok := p.rules[pair]
		if !ok {
			return &RuleMissingError{Pair: pair}
		}
		next[Pair{pair.Left, mid}] += n
		next[Pair{mid, pair.Right}] += n
	}
	p.state = next
	return nil
}

// Steps applies n rounds, stopping at the first error.
func (p *Propagator) Steps(n int) error {
	for range n {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

// SymbolCounts derives element counts from the pair counts.
func (p *Propagator) SymbolCounts() map[rune]uint64 {
	counts := make(map[rune]uint64)
	for pair, n := range p.state {
		counts[pair.Right] += n
	}
	counts[p.first]++
	return counts
}

// Length returns the chain length: number of pairs plus one.
func (p *Propagator) Length() uint64 {
	var total uint64 = 1
	for _, n := range p.state {
		total += n
	}
	return total
}

// Insert performs one naive insertion round over the full chain.
// Returns a *RuleMissingError for the first pair without a rule.
func Insert(rules Rules, chain string) (string, error) {
	elems := []rune(chain)
	if len(elems) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.Grow(len(elems) * 2)
	for i := 1; i < len(elems); i++ {
		pair := Pair{elems[i-1], elems[i]}
		mid, ok := rules[pair]
		if !ok {
			return "", &RuleMissingError{Pair: pair}
		}
		// the right half is written as the next pair's left half
		sb.WriteRune(pair.Left)
		sb.WriteRune(mid)
	}
	sb.WriteRune(elems[len(elems)-1])
	return sb.String(), nil
}

// CountSymbols counts the elements of a materialised chain.
func CountSymbols(chain string) map[rune]uint64 {
	counts := make(map[rune]uint64)
	for _, r := range chain {
		counts[r]++
	}
	return counts
}

// Spread returns the most common count minus the least common count,
// or 0 for no elements.
func Spread(counts map[rune]uint64) uint64 {
	if len(counts) == 0 {
		return 0
	}
	var lo, hi uint64
	first := true
	for _, n := range counts {
		if first {
			lo, hi, first = n, n, false
			continue
		}
		lo, hi = min(lo, n), max(hi, n)
	}
	return hi - lo
}
