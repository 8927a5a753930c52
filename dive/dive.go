// Package dive steers the submarine from a list of course commands.
//
// Two interpretations exist. Submarine treats up and down as direct depth
// changes. AimedSubmarine treats them as aim changes and only moves in depth
// while going forward, by aim × units.
package dive

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/sonar/input"
)

// Kind is the direction of a command.
type Kind uint8

const (
	Forward Kind = iota
	Down
	Up
)

var kindNames = [...]string{Forward: "forward", Down: "down", Up: "up"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ErrUnknownCommand indicates a command word other than forward, down or up.
var ErrUnknownCommand = errors.New("dive: unknown command")

// Command is one course instruction.
type Command struct {
	Kind  Kind
	Units int
}

// ParseCommand reads "forward 5" style text.
func ParseCommand(line string) (Command, error) {
	word, num, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Command{}, input.Errorf(0, line, "want \"<direction> <units>\"")
	}
	var k Kind
	switch word {
	case "forward":
		k = Forward
	case "down":
		k = Down
	case "up":
		k = Up
	default:
		return Command{}, input.Wrap(0, line, ErrUnknownCommand)
	}
	units, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Command{}, input.Wrap(0, line, err)
	}
	return Command{Kind: k, Units: units}, nil
}

// ParseCommands reads one command per line.
func ParseCommands(text string) ([]Command, error) {
	var out []Command
	for i, l := range input.Lines(text) {
		if l == "" {
			continue
		}
		c, err := ParseCommand(l)
		if err != nil {
			var pe *input.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Position is horizontal distance and depth.
type Position struct {
	Horizontal int
	Depth      int
}

// Product multiplies horizontal position by depth.
func (p Position) Product() int { return p.Horizontal * p.Depth }

// Submarine applies commands as direct movement.
type Submarine struct {
	Position
}

// Apply executes one command.
func (s *Submarine) Apply(c Command) {
	switch c.Kind {
	case Forward:
		s.Horizontal += c.Units
	case Down:
		s.Depth += c.Units
	case Up:
		s.Depth -= c.Units
	}
}

// AimedSubmarine applies commands through an aim.
type AimedSubmarine struct {
	Position
	Aim int
}

// Apply executes one command.
func (s *AimedSubmarine) Apply(c Command) {
	switch c.Kind {
	case Forward:
		s.Horizontal += c.Units
		s.Depth += s.Aim * c.Units
	case Down:
		s.Aim += c.Units
	case Up:
		s.Aim -= c.Units
	}
}

// Steerer is implemented by both submarine models.
type Steerer interface {
	Apply(Command)
}

// Follow applies every command to s in order.
func Follow(s Steerer, commands []Command) {
	for _, c := range commands {
		s.Apply(c)
	}
}
