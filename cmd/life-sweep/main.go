package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"torus-life/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 240, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	sizesFlag := flag.String("sizes", "8x8,16x16,32x24,64x64,96x40", "comma-separated WxH grid sizes")
	patternsFlag := flag.String("patterns", "parity,random", "comma-separated seeding patterns")
	seed := flag.Int64("seed", 42, "seed for the random pattern")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatal(err)
	}
	patterns := strings.Split(*patternsFlag, ",")

	scenarios := sweep.Matrix(sizes, patterns, *seed, *steps)
	log.Printf("running %d scenarios on %d workers", len(scenarios), *workers)
	results, err := sweep.Run(context.Background(), scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "size\tpattern\tinitial\tpeak\tfinal\tsettled")
	for _, r := range results {
		settled := "-"
		if r.SettledAt >= 0 {
			settled = strconv.Itoa(r.SettledAt)
		}
		cfg := r.Scenario.Config
		fmt.Fprintf(tw, "%dx%d\t%s\t%d\t%d\t%d\t%s\n",
			cfg.Width, cfg.Height, cfg.Pattern, r.InitialPopulation, r.PeakPopulation, r.FinalPopulation, settled)
	}
	tw.Flush()
}

func parseSizes(s string) ([][2]int, error) {
	var out [][2]int
	for _, part := range strings.Split(s, ",") {
		w, h, ok := strings.Cut(strings.TrimSpace(part), "x")
		if !ok {
			return nil, fmt.Errorf("size %q: want WxH", part)
		}
		wi, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		hi, err := strconv.Atoi(h)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		out = append(out, [2]int{wi, hi})
	}
	return out, nil
}
