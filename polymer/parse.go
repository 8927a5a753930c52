package polymer

import (
	"strings"

	"github.com/katalvlaran/sonar/input"
)

const ruleDelim = " -> "

// ParseRules parses lines of the form "CH -> B".
func ParseRules(text string) (Rules, error) {
	rules := make(Rules)
	for i, l := range input.Lines(text) {
		if l == "" {
			continue
		}
		if err := parseRule(rules, i+1, l); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

func parseRule(rules Rules, line int, l string) error {
	from, to, ok := strings.Cut(l, ruleDelim)
	if !ok {
		return input.Errorf(line, l, "missing delimiter %q", ruleDelim)
	}
	pair, inserted := []rune(strings.TrimSpace(from)), []rune(strings.TrimSpace(to))
	if len(pair) != 2 || len(inserted) != 1 {
		return input.Errorf(line, l, "rule must map 2 elements to 1")
	}
	rules[Pair{pair[0], pair[1]}] = inserted[0]
	return nil
}

// ParseManual parses a template line, a blank line and the rule lines.
func ParseManual(text string) (string, Rules, error) {
	lines := input.Lines(text)
	if len(lines) == 0 || lines[0] == "" {
		return "", nil, input.Errorf(1, "", "missing polymer template")
	}
	template := lines[0]
	rules := make(Rules)
	for i, l := range lines[1:] {
		if l == "" {
			continue
		}
		if err := parseRule(rules, i+2, l); err != nil {
			return "", nil, err
		}
	}
	return template, rules, nil
}
