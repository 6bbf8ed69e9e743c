package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"data-array/internal/config"
	"data-array/internal/core"
	"data-array/internal/render"
	"data-array/internal/runner"
	"data-array/internal/sims/array"
	"data-array/internal/telemetry"

	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "YAML world config merged over the defaults")
	ticks := flag.Int("ticks", -1, "ticks to run (-1 keeps the config value)")
	seed := flag.Int64("seed", 0, "random seed (0 keeps the config seed)")
	outputDir := flag.String("output-dir", "", "directory for ticks.csv and config.yaml")
	dump := flag.Bool("dump", false, "print the final world as text")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the output directory")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	paced := flag.Bool("paced", false, "step at the configured tps instead of flat out")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *ticks >= 0 {
		cfg.Run.Ticks = *ticks
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *outputDir != "" {
		cfg.Run.OutputDir = *outputDir
	}
	if *logLevel != "" {
		cfg.Run.LogLevel = *logLevel
	}
	if err := cfg.Refresh(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Derived.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, *dump, *profileMode, *paced); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, dump bool, profileMode string, paced bool) error {
	profileDir := cfg.Run.OutputDir
	if profileDir == "" {
		profileDir = "."
	}
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	sim, err := array.New(cfg, slog.Default())
	if err != nil {
		return err
	}

	om, err := telemetry.NewOutputManager(cfg.Run.OutputDir)
	if err != nil {
		return err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := runner.Options{
		Ticks:      cfg.Run.Ticks,
		Output:     om,
		StatsEvery: cfg.Run.StatsEvery,
		Logger:     slog.Default(),
	}
	if paced {
		opts.Pace = core.NewFixedStep(cfg.Run.TPS)
	}

	slog.Info("starting run",
		"seed", cfg.Seed,
		"width", cfg.World.Width,
		"height", cfg.World.Height,
		"ticks", cfg.Run.Ticks,
		"output_dir", om.Dir(),
	)
	summary, err := runner.Run(ctx, sim, opts)
	slog.Info("run complete", "summary", summary)
	if err != nil {
		return err
	}

	if dump {
		return render.WriteSymbols(os.Stderr, sim.Symbols(), sim.Size().W)
	}
	return nil
}
