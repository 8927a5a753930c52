package polymer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTemplate indicates a template without any element.
	ErrEmptyTemplate = errors.New("polymer: template is empty")
	// ErrRuleMissing indicates an observed pair without an insertion rule.
	ErrRuleMissing = errors.New("polymer: no insertion rule for pair")
)

// Pair is an ordered pair of adjacent elements.
type Pair struct {
	Left, Right rune
}

func (p Pair) String() string { return string([]rune{p.Left, p.Right}) }

// Rules maps a pair to the element inserted between its halves.
type Rules map[Pair]rune

// RuleMissingError reports the pair that has no rule.
type RuleMissingError struct {
	Pair Pair
}

func (e *RuleMissingError) Error() string {
	return fmt.Sprintf("%v %s", ErrRuleMissing, e.Pair)
}

// Is reports ErrRuleMissing as a match.
func (e *RuleMissingError) Is(target error) bool { return target == ErrRuleMissing }
