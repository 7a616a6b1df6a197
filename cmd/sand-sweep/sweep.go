package main

import (
	"sort"
	"sync"

	"mad-sand/internal/sims/sand"
)

type job struct {
	scenario string
	seed     uint32
}

type result struct {
	job
	census     sand.Census
	heat       sand.HeatStats
	explosions int
	checksum   uint64
	mismatch   bool
}

type sweepConfig struct {
	width, height int
	steps         int
	workers       int
	verify        bool
}

// simulate runs one scenario from a fresh universe and summarises the end
// state.
func simulate(cfg sweepConfig, j job) result {
	simCfg := sand.DefaultConfig()
	simCfg.Width = cfg.width
	simCfg.Height = cfg.height
	simCfg.Seed = j.seed
	simCfg.Scenario = j.scenario
	u := sand.NewWithConfig(simCfg)
	u.Reset(0)

	res := result{job: j}
	for i := 0; i < cfg.steps; i++ {
		u.Tick()
		res.explosions += u.Explosions()
	}
	res.census = u.Census()
	res.heat = u.HeatStats()
	res.checksum = u.Checksum()
	return res
}

func runJob(cfg sweepConfig, j job) result {
	res := simulate(cfg, j)
	if cfg.verify {
		again := simulate(cfg, j)
		res.mismatch = again.checksum != res.checksum
	}
	return res
}

// sweep fans jobs out over cfg.workers goroutines and returns the results
// ordered by scenario then seed.
func sweep(cfg sweepConfig, jobs []job) []result {
	workers := max(cfg.workers, 1)
	queue := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				results <- runJob(cfg, j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
	}()

	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, k int) bool {
		if all[i].scenario != all[k].scenario {
			return all[i].scenario < all[k].scenario
		}
		return all[i].seed < all[k].seed
	})
	return all
}

func buildJobs(scenarios []string, seeds int) []job {
	var jobs []job
	for _, name := range scenarios {
		for s := 1; s <= seeds; s++ {
			jobs = append(jobs, job{scenario: name, seed: uint32(s)})
		}
	}
	return jobs
}
