package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"mad-sand/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 240, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 4, "seeds to run per scenario (1..n)")
	list := flag.String("scenarios", strings.Join(sand.Scenarios(), ","), "comma separated scenarios")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 96, "grid height")
	verify := flag.Bool("verify", false, "run each job twice and fail on checksum mismatch")
	flag.Parse()

	scenarios, err := parseScenarios(*list)
	if err != nil {
		log.Fatal(err)
	}
	cfg := sweepConfig{width: *width, height: *height, steps: *steps, workers: *workers, verify: *verify}
	jobs := buildJobs(scenarios, *seeds)

	fmt.Printf("Sweeping %d scenario runs (%d workers, %d steps, %dx%d)\n", len(jobs), cfg.workers, cfg.steps, cfg.width, cfg.height)
	start := time.Now()
	results := sweep(cfg, jobs)

	mismatches := 0
	for _, res := range results {
		fmt.Println(formatResult(res))
		if res.mismatch {
			mismatches++
		}
	}
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))

	if mismatches > 0 {
		fmt.Fprintf(os.Stderr, "%d runs were not deterministic\n", mismatches)
		os.Exit(1)
	}
}

func parseScenarios(list string) ([]string, error) {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !sand.ApplyScenario(sand.New(1, 1), name, 1) {
			return nil, fmt.Errorf("unknown scenario %q (known: %s)", name, strings.Join(sand.Scenarios(), ", "))
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no scenarios selected")
	}
	return out, nil
}

func formatResult(res result) string {
	var counts []string
	for _, m := range sand.Materials() {
		if m == sand.Empty || res.census.Count(m) == 0 {
			continue
		}
		counts = append(counts, fmt.Sprintf("%s=%d", m, res.census.Count(m)))
	}
	line := fmt.Sprintf("%-10s seed=%-3d checksum=%016x explosions=%-4d temp=[%d..%d mean %.1f] %s",
		res.scenario, res.seed, res.checksum, res.explosions,
		res.heat.Min, res.heat.Max, res.heat.Mean, strings.Join(counts, " "))
	if res.mismatch {
		line += " NONDETERMINISTIC"
	}
	return line
}
