package puzzle

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/sonar/basin"
	"github.com/katalvlaran/sonar/bingo"
	"github.com/katalvlaran/sonar/caves"
	"github.com/katalvlaran/sonar/crabs"
	"github.com/katalvlaran/sonar/diagnostic"
	"github.com/katalvlaran/sonar/dive"
	"github.com/katalvlaran/sonar/input"
	"github.com/katalvlaran/sonar/internal/config"
	"github.com/katalvlaran/sonar/octopus"
	"github.com/katalvlaran/sonar/origami"
	"github.com/katalvlaran/sonar/polymer"
	"github.com/katalvlaran/sonar/population"
	"github.com/katalvlaran/sonar/segments"
	"github.com/katalvlaran/sonar/sweep"
	"github.com/katalvlaran/sonar/syntax"
	"github.com/katalvlaran/sonar/vents"
)

// ErrNoFolds indicates an origami manual without fold instructions.
var ErrNoFolds = errors.New("puzzle: manual has no folds")

// Default returns a registry with every built-in day.
func Default(cfg config.Config, logger *slog.Logger) *Registry {
	r := NewRegistry(cfg, logger)
	for _, d := range builtin {
		r.Register(d)
	}
	return r
}

var builtin = []Day{
	{1, "Sonar Sweep", solveSonar},
	{2, "Dive!", solveDive},
	{3, "Binary Diagnostic", solveDiagnostic},
	{4, "Giant Squid", solveBingo},
	{5, "Hydrothermal Venture", solveVents},
	{6, "Lanternfish", solveLanternfish},
	{7, "The Treachery of Whales", solveCrabs},
	{8, "Seven Segment Search", solveSegments},
	{9, "Smoke Basin", solveBasin},
	{10, "Syntax Scoring", solveSyntax},
	{11, "Dumbo Octopus", solveOctopus},
	{12, "Passage Pathing", solveCaves},
	{13, "Transparent Origami", solveOrigami},
	{14, "Extended Polymerization", solvePolymer},
}

func answer(a, b any) Answer {
	return Answer{Part1: fmt.Sprint(a), Part2: fmt.Sprint(b)}
}

func solveSonar(text string, _ config.Config) (Answer, error) {
	depths, err := input.IntLines(text)
	if err != nil {
		return Answer{}, err
	}
	return answer(sweep.CountIncreases(depths), sweep.CountWindowIncreases(depths, 3)), nil
}

func solveDive(text string, _ config.Config) (Answer, error) {
	cmds, err := dive.ParseCommands(text)
	if err != nil {
		return Answer{}, err
	}
	var plain dive.Submarine
	var aimed dive.AimedSubmarine
	dive.Follow(&plain, cmds)
	dive.Follow(&aimed, cmds)
	return Answer{
		Part1: strconv.Itoa(plain.Product()),
		Part2: strconv.Itoa(aimed.Product()),
	}, nil
}

func solveDiagnostic(text string, _ config.Config) (Answer, error) {
	r, err := diagnostic.Parse(text)
	if err != nil {
		return Answer{}, err
	}
	life, err := r.LifeSupport()
	if err != nil {
		return Answer{}, err
	}
	return answer(r.PowerConsumption(), life), nil
}

func solveBingo(text string, _ config.Config) (Answer, error) {
	g, err := bingo.Parse(text)
	if err != nil {
		return Answer{}, err
	}
	first, err := g.Play()
	if err != nil {
		return Answer{}, err
	}
	last, err := g.PlayToEnd()
	if err != nil {
		return Answer{}, err
	}
	return answer(first.Score(), last.Score()), nil
}

func solveVents(text string, _ config.Config) (Answer, error) {
	lines, err := vents.ParseLines(text)
	if err != nil {
		return Answer{}, err
	}
	return answer(vents.Overlaps(lines, false), vents.Overlaps(lines, true)), nil
}

func solveLanternfish(text string, cfg config.Config) (Answer, error) {
	timers, err := input.IntList(text, ",")
	if err != nil {
		return Answer{}, err
	}
	count := func(days int) (uint64, error) {
		c, err := population.FromTimers(timers)
		if err != nil {
			return 0, err
		}
		c.Advance(days)
		return c.Count(), nil
	}
	a, err := count(cfg.Lanternfish.Part1)
	if err != nil {
		return Answer{}, err
	}
	b, err := count(cfg.Lanternfish.Part2)
	if err != nil {
		return Answer{}, err
	}
	return answer(a, b), nil
}

func solveCrabs(text string, _ config.Config) (Answer, error) {
	positions, err := input.IntList(text, ",")
	if err != nil {
		return Answer{}, err
	}
	lin, err := crabs.LinearFuel(positions)
	if err != nil {
		return Answer{}, err
	}
	tri, err := crabs.TriangularFuel(positions)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Part1: strconv.Itoa(lin.Fuel), Part2: strconv.Itoa(tri.Fuel)}, nil
}

func solveSegments(text string, _ config.Config) (Answer, error) {
	displays, err := segments.ParseDisplays(text)
	if err != nil {
		return Answer{}, err
	}
	sum, err := segments.SumOutputs(displays)
	if err != nil {
		return Answer{}, err
	}
	return answer(segments.CountUnique(displays), sum), nil
}

func solveBasin(text string, _ config.Config) (Answer, error) {
	h, err := basin.Parse(text)
	if err != nil {
		return Answer{}, err
	}
	product, err := h.LargestProduct(3)
	if err != nil {
		return Answer{}, err
	}
	return answer(h.RiskLevel(), product), nil
}

func solveSyntax(text string, _ config.Config) (Answer, error) {
	results := syntax.CheckAll(text)
	mid, err := syntax.MiddleScore(results)
	if err != nil {
		return Answer{}, err
	}
	return answer(syntax.ErrorScore(results), mid), nil
}

func solveOctopus(text string, cfg config.Config) (Answer, error) {
	var opts []octopus.Option
	if cfg.Octopus.Worklist {
		opts = append(opts, octopus.WithWorklist())
	}
	c, err := octopus.Parse(text, opts...)
	if err != nil {
		return Answer{}, err
	}
	flashes := c.Run(cfg.Octopus.Steps)

	c, err = octopus.Parse(text, opts...)
	if err != nil {
		return Answer{}, err
	}
	step, err := c.FirstSynchronized(cfg.Octopus.SyncLimit)
	if err != nil {
		return Answer{}, err
	}
	return answer(flashes, step), nil
}

func solveCaves(text string, _ config.Config) (Answer, error) {
	g, err := caves.Parse(text)
	if err != nil {
		return Answer{}, err
	}
	return answer(g.CountPaths(false), g.CountPaths(true)), nil
}

func solveOrigami(text string, _ config.Config) (Answer, error) {
	p, folds, err := origami.ParseManual(text)
	if err != nil {
		return Answer{}, err
	}
	if len(folds) == 0 {
		return Answer{}, ErrNoFolds
	}
	if err := p.Fold(folds[0]); err != nil {
		return Answer{}, err
	}
	first := p.CountDots()
	for _, f := range folds[1:] {
		if err := p.Fold(f); err != nil {
			return Answer{}, err
		}
	}
	return Answer{Part1: strconv.Itoa(first), Part2: "\n" + p.Render()}, nil
}

func solvePolymer(text string, cfg config.Config) (Answer, error) {
	template, rules, err := polymer.ParseManual(text)
	if err != nil {
		return Answer{}, err
	}
	spread := func(steps int) (uint64, error) {
		p, err := polymer.New(rules, template)
		if err != nil {
			return 0, err
		}
		if err := p.Steps(steps); err != nil {
			return 0, fmt.Errorf("after %d steps: %w", steps, err)
		}
		return polymer.Spread(p.SymbolCounts()), nil
	}
	a, err := spread(cfg.Polymer.Part1)
	if err != nil {
		return Answer{}, err
	}
	b, err := spread(cfg.Polymer.Part2)
	if err != nil {
		return Answer{}, err
	}
	return answer(a, b), nil
}
