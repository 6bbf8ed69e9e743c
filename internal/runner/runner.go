// Package runner drives an array sim headlessly for a fixed number of ticks and
// collects its telemetry.
package runner

import (
	"context"
	"log/slog"

	"data-array/internal/core"
	"data-array/internal/sims/array"
	"data-array/internal/telemetry"
)

// Options control a headless run.
type Options struct {
	Ticks int
	// Pace, when set, limits stepping to its tick rate.
	Pace *core.FixedStep
	// Output receives one row per tick; nil disables file output.
	Output *telemetry.OutputManager
	// StatsEvery logs a progress line every n ticks; 0 disables it.
	StatsEvery int
	Logger     *slog.Logger
}

// Run steps sim opts.Ticks times and returns the summary of every tick it ran. A
// cancelled ctx ends the run early with ctx.Err() and the partial summary.
func Run(ctx context.Context, sim *array.Sim, opts Options) (telemetry.Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	records := make([]telemetry.TickRecord, 0, opts.Ticks)
	for i := 0; i < opts.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return telemetry.Summarize(records), err
		}
		if opts.Pace != nil {
			if err := opts.Pace.Wait(ctx); err != nil {
				return telemetry.Summarize(records), err
			}
		}
		sim.Step()
		rec := sim.Record()
		records = append(records, rec)
		if err := opts.Output.WriteTick(rec); err != nil {
			return telemetry.Summarize(records), err
		}
		if opts.StatsEvery > 0 && rec.Tick%opts.StatsEvery == 0 {
			logger.Info("tick",
				"tick", rec.Tick,
				"writes", rec.Writes,
				"failed", rec.Failed,
				"occupied", rec.Occupied,
			)
		}
	}
	return telemetry.Summarize(records), nil
}
