// Package puzzle registers a solver for each day and runs it on raw input.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/sonar/internal/config"
)

// ErrUnknownDay indicates a day with no registered solver.
var ErrUnknownDay = errors.New("puzzle: unknown day")

// Answer holds the printable results of both parts.
type Answer struct {
	Part1 string
	Part2 string
}

// SolveFunc parses text and solves both parts of one day.
type SolveFunc func(text string, cfg config.Config) (Answer, error)

// Day describes one registered puzzle.
type Day struct {
	Number int
	Title  string
	Solve  SolveFunc
}

// Registry maps day numbers to solvers.
type Registry struct {
	days   map[int]Day
	cfg    config.Config
	logger *slog.Logger
}

// NewRegistry returns an empty registry. A nil logger discards records.
func NewRegistry(cfg config.Config, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{days: make(map[int]Day), cfg: cfg, logger: logger}
}

// Register adds or replaces a day.
func (r *Registry) Register(d Day) {
	r.days[d.Number] = d
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []Day {
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Day) int { return a.Number - b.Number })
	return out
}

// Lookup returns the day registered under n.
func (r *Registry) Lookup(n int) (Day, bool) {
	d, ok := r.days[n]
	return d, ok
}

// Solve runs day n on text. The context is checked before solving starts;
// solvers themselves run to completion.
func (r *Registry) Solve(ctx context.Context, n int, text string) (Answer, error) {
	d, ok := r.days[n]
	if !ok {
		return Answer{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}

	start := time.Now()
	ans, err := d.Solve(text, r.cfg)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelDebug, "solve failed",
			slog.Int("day", n), slog.Duration("elapsed", elapsed), slog.String("error", err.Error()))
		return Answer{}, fmt.Errorf("day %d: %w", n, err)
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, "solved",
		slog.Int("day", n), slog.String("title", d.Title), slog.Duration("elapsed", elapsed))
	return ans, nil
}
