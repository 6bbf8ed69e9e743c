package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"data-array/internal/config"
	"data-array/internal/sims/array"
	"data-array/internal/telemetry"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func antennaConfig() *config.Config {
	return &config.Config{
		World:      config.WorldConfig{Width: 16, Height: 16},
		Seed:       5,
		Params:     map[string]int32{"Antenna.length": 5},
		Placements: []config.PlacementConfig{{Element: "Antenna", X: 1, Y: 14}},
	}
}

func TestRunWritesTicks(t *testing.T) {
	sim, err := array.New(antennaConfig(), quiet())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dir := t.TempDir()
	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	sum, err := Run(context.Background(), sim, Options{Ticks: 30, Output: om, StatsEvery: 10, Logger: quiet()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if sum.Ticks != 30 || sum.Events != 30*256 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.FinalCounts.Antenna != 5 {
		t.Fatalf("final antenna = %d, want 5", sum.FinalCounts.Antenna)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ticks.csv"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rows := strings.Count(string(data), "\n"); rows != 31 {
		t.Fatalf("ticks.csv has %d lines, want 31", rows)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sim, err := array.New(antennaConfig(), quiet())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := Run(ctx, sim, Options{Ticks: 10})
	if !errors.Is(err, context.Canceled) || sum.Ticks != 0 {
		t.Fatalf("Run = %+v, %v", sum, err)
	}
}

func TestSweepAntennaLength(t *testing.T) {
	base := antennaConfig()
	values := Range(2, 8, 3)
	if !slices.Equal(values, []int32{2, 5, 8}) {
		t.Fatalf("Range = %v", values)
	}

	results := Sweep(context.Background(), base, "Antenna.length", values, 40, 2)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Err != "" {
			t.Fatalf("value %d: %s", r.Value, r.Err)
		}
		if r.Value != values[i] || int32(r.Antenna) != r.Value {
			t.Fatalf("value %d grew %d antenna atoms", r.Value, r.Antenna)
		}
	}
	if base.Params["Antenna.length"] != 5 {
		t.Fatal("sweep mutated the base config")
	}
}

func TestSweepReportsBadParam(t *testing.T) {
	results := Sweep(context.Background(), antennaConfig(), "Antenna.reach", []int32{1}, 5, 1)
	if results[0].Err == "" {
		t.Fatal("unknown parameter did not fail")
	}
}

func TestRangeStopsAtInt32Max(t *testing.T) {
	got := Range(math.MaxInt32-4, math.MaxInt32, 2)
	want := []int32{math.MaxInt32 - 4, math.MaxInt32 - 2, math.MaxInt32}
	if !slices.Equal(got, want) {
		t.Fatalf("Range = %v, want %v", got, want)
	}
	if got := Range(math.MaxInt32-1, math.MaxInt32, 5); !slices.Equal(got, []int32{math.MaxInt32 - 1}) {
		t.Fatalf("Range with a step past the end = %v", got)
	}
	if got := Range(3, 1, 1); len(got) != 0 {
		t.Fatalf("Range(3, 1) = %v, want empty", got)
	}
}
