package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"data-array/internal/config"
	"data-array/internal/runner"
	"data-array/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "YAML world config merged over the defaults")
	param := flag.String("param", "Antenna.length", "element parameter to sweep, as Element.param")
	from := flag.Int("from", 1, "first value")
	to := flag.Int("to", 15, "last value")
	step := flag.Int("step", 1, "value increment")
	ticks := flag.Int("ticks", 200, "ticks to simulate per value")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel worlds")
	seed := flag.Int64("seed", 0, "random seed (0 keeps the config seed)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	values := runner.Range(int32(*from), int32(*to), int32(*step))
	slog.Info("sweeping", "param", *param, "values", len(values), "workers", *workers, "ticks", *ticks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := telemetry.NewCSVWriter[runner.SweepResult](os.Stdout)
	failed := 0
	for _, res := range runner.Sweep(ctx, cfg, *param, values, *ticks, *workers) {
		if res.Err != "" {
			failed++
		}
		if err := out.Write(res); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if failed > 0 {
		slog.Warn("sweep finished with failures", "failed", failed)
		os.Exit(1)
	}
}
