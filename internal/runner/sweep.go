package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"data-array/internal/config"
	"data-array/internal/sims/array"
)

// SweepResult is one row of a parameter sweep.
type SweepResult struct {
	Param        string  `csv:"param"`
	Value        int32   `csv:"value"`
	Seed         int64   `csv:"seed"`
	Ticks        int     `csv:"ticks"`
	Events       int     `csv:"events"`
	Writes       int     `csv:"writes"`
	Failed       int     `csv:"failed"`
	CommitRate   float64 `csv:"commit_rate"`
	WritesMean   float64 `csv:"writes_mean"`
	OccupiedMean float64 `csv:"occupied_mean"`
	Occupied     int     `csv:"occupied_final"`
	Antenna      int     `csv:"antenna"`
	Light        int     `csv:"light"`
	Box          int     `csv:"box"`
	Err          string  `csv:"error"`
}

// Sweep runs one world per value of param, at most workers at a time, and returns
// the results in value order. Every world gets its own copy of base with param set
// to the value; worlds share no state.
func Sweep(ctx context.Context, base *config.Config, param string, values []int32, ticks, workers int) []SweepResult {
	if workers <= 0 {
		workers = 1
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	results := make([]SweepResult, len(values))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, v := range values {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v int32) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = sweepOne(ctx, base, param, v, ticks, quiet)
		}(i, v)
	}
	wg.Wait()
	return results
}

func sweepOne(ctx context.Context, base *config.Config, param string, v int32, ticks int, logger *slog.Logger) SweepResult {
	res := SweepResult{Param: param, Value: v, Seed: base.Seed, Ticks: ticks}

	cfg := *base
	cfg.Params = maps.Clone(base.Params)
	if cfg.Params == nil {
		cfg.Params = map[string]int32{}
	}
	cfg.Params[param] = v
	cfg.Placements = slices.Clone(base.Placements)

	sim, err := array.New(&cfg, logger)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	sum, err := Run(ctx, sim, Options{Ticks: ticks, Logger: logger})
	if err != nil {
		res.Err = fmt.Sprintf("after %d ticks: %v", sum.Ticks, err)
	}
	res.Events = sum.Events
	res.Writes = sum.Writes
	res.Failed = sum.Failed
	res.CommitRate = sum.CommitRate
	res.WritesMean = sum.WritesMean
	res.OccupiedMean = sum.OccupiedMean
	res.Occupied = sum.FinalCounts.Occupied
	res.Antenna = sum.FinalCounts.Antenna
	res.Light = sum.FinalCounts.Light
	res.Box = sum.FinalCounts.Box
	return res
}

// Range returns min, min+step, ... up to and including max.
func Range(min, max, step int32) []int32 {
	if step <= 0 {
		step = 1
	}
	var out []int32
	for v := min; v <= max; v += step {
		out = append(out, v)
		if v > max-step {
			break
		}
	}
	return out
}
