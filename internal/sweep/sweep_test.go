package sweep

import (
	"context"
	"errors"
	"testing"

	"torus-life/pkg/sims/life"
)

func TestEvaluateStripeSettles(t *testing.T) {
	// On a 2x2 torus the parity pattern is one live column; each live cell
	// sees two live neighbours and each dead cell six.
	sc := Scenario{Config: life.Config{Width: 2, Height: 2, Pattern: life.PatternParity}, Steps: 4}
	res, cells, err := Evaluate(sc)
	if err != nil {
		t.Fatal(err)
	}
	if res.InitialPopulation != 2 || res.FinalPopulation != 2 || res.PeakPopulation != 2 {
		t.Fatalf("result=%+v, want a stable population of 2", res)
	}
	if res.SettledAt != 1 {
		t.Fatalf("settled at %d, want 1", res.SettledAt)
	}
	if len(cells) != 4 || cells[0] != life.Alive || cells[1] != life.Dead {
		t.Fatalf("cells=%v", cells)
	}
}

func TestEvaluateEmptySettlesImmediately(t *testing.T) {
	sc := Scenario{Config: life.Config{Width: 5, Height: 3, Pattern: life.PatternEmpty}, Steps: 3}
	res, _, err := Evaluate(sc)
	if err != nil {
		t.Fatal(err)
	}
	if res.SettledAt != 1 || res.PeakPopulation != 0 {
		t.Fatalf("result=%+v", res)
	}
}

func TestRunMatrix(t *testing.T) {
	sizes := [][2]int{{8, 8}, {16, 9}, {5, 20}, {64, 64}}
	patterns := []string{life.PatternParity, life.PatternRandom}
	scenarios := Matrix(sizes, patterns, 42, 20)
	if len(scenarios) != 8 {
		t.Fatalf("matrix size=%d, want 8", len(scenarios))
	}
	results, err := Run(context.Background(), scenarios, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, res := range results {
		if res.Scenario != scenarios[i] {
			t.Fatalf("result %d is for %s, want %s", i, res.Scenario, scenarios[i])
		}
		cells := res.Scenario.Config.Width * res.Scenario.Config.Height
		if res.FinalPopulation < 0 || res.FinalPopulation > cells || res.PeakPopulation < res.FinalPopulation {
			t.Fatalf("implausible result %+v", res)
		}
	}
}

func TestRunReportsInvalidScenario(t *testing.T) {
	scenarios := []Scenario{
		{Config: life.DefaultConfig(), Steps: 1},
		{Config: life.Config{Width: 0, Height: 4, Pattern: life.PatternParity}, Steps: 1},
	}
	if _, err := Run(context.Background(), scenarios, 2); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("err=%v, want ErrInvalidDimensions", err)
	}
}

func TestRunHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scenarios := Matrix([][2]int{{4, 4}}, []string{life.PatternParity}, 1, 1)
	if _, err := Run(ctx, scenarios, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
