//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"data-array/internal/app"
	"data-array/internal/config"
	"data-array/internal/core"
	_ "data-array/internal/sims/array"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewConfig()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.LoadWithEnv(opts.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := opts.Apply(cfg); err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Derived.LogLevel})))

	factory, err := core.Lookup(opts.Sim)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, core.Sims())
	}
	sim, err := factory(cfg, slog.Default())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Display.Scale, cfg.Display.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("data-array: " + sim.Name())
	ebiten.SetTPS(cfg.Run.TPS)
	ebiten.SetWindowSize(size.W*cfg.Display.Scale+cfg.Display.HUDWidth, size.H*cfg.Display.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
