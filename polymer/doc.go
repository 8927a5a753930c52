// Package polymer grows a polymer by pair insertion and counts its elements
// without materialising the exponentially long chain.
//
// What:
//
//   - Rules map every adjacent element pair to the element inserted between them.
//   - Propagator stores counts per adjacent pair. Each Step replaces every
//     pair AB (rule AB -> C) with AC and CB, so the cost per step depends on
//     the number of distinct pairs, never on the chain length.
//   - Insert is the naive mode: it rewrites the full string. It is kept as a
//     cross-check for small step counts.
//
// Counting:
//
//	Every interior element is the right half of exactly one pair, so element
//	counts are the sum over right halves plus one for the chain's first
//	element, which is never a right half.
//
// Errors:
//
//   - ErrEmptyTemplate: New was given an empty template.
//   - ErrRuleMissing (via *RuleMissingError): a pair has no insertion rule.
//     Step leaves the state untouched in that case.
//   - *input.ParseError: malformed rule or manual text.
package polymer
