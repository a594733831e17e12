// Package sweep runs many independent universes and checks that every
// configuration evolves identically when replayed.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"torus-life/pkg/sims/life"
)

// ErrNondeterministic reports two runs of one scenario that diverged.
var ErrNondeterministic = errors.New("sweep: nondeterministic evolution")

// Scenario is one configuration to evolve for Steps generations.
type Scenario struct {
	Config life.Config
	Steps  int
}

func (s Scenario) String() string {
	return fmt.Sprintf("%dx%d %s seed=%d steps=%d", s.Config.Width, s.Config.Height, s.Config.Pattern, s.Config.Seed, s.Steps)
}

// Result summarises a scenario after its replay matched.
type Result struct {
	Scenario Scenario

	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int

	// SettledAt is the first generation identical to its predecessor, or -1
	// when the grid was still changing at the end of the run.
	SettledAt int
}

// Evaluate runs sc once, recording population statistics.
func Evaluate(sc Scenario) (Result, []life.Cell, error) {
	u, err := life.NewWithConfig(sc.Config)
	if err != nil {
		return Result{}, nil, fmt.Errorf("%s: %w", sc, err)
	}
	res := Result{Scenario: sc, SettledAt: -1}
	res.InitialPopulation = u.Population()
	res.PeakPopulation = res.InitialPopulation
	prev := slices.Clone(u.Cells())
	for gen := 1; gen <= sc.Steps; gen++ {
		u.Tick()
		pop := u.Population()
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		if res.SettledAt < 0 && slices.Equal(prev, u.Cells()) {
			res.SettledAt = gen
		}
		copy(prev, u.Cells())
	}
	res.FinalPopulation = u.Population()
	return res, slices.Clone(u.Cells()), nil
}

// Run evaluates every scenario twice on at most workers goroutines. Each run
// owns its universe. Results are returned in scenario order; the first
// failure cancels the remaining work.
func Run(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			first, cells, err := Evaluate(sc)
			if err != nil {
				return err
			}
			second, replay, err := Evaluate(sc)
			if err != nil {
				return err
			}
			if first != second || !slices.Equal(cells, replay) {
				return fmt.Errorf("%w: %s", ErrNondeterministic, sc)
			}
			results[i] = first
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Matrix builds the cross product of sizes and patterns.
func Matrix(sizes [][2]int, patterns []string, seed int64, steps int) []Scenario {
	out := make([]Scenario, 0, len(sizes)*len(patterns))
	for _, size := range sizes {
		for _, pattern := range patterns {
			out = append(out, Scenario{
				Config: life.Config{Width: size[0], Height: size[1], Pattern: pattern, Seed: seed},
				Steps:  steps,
			})
		}
	}
	return out
}
