package core

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"
	"time"

	"data-array/internal/config"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped twice without time passing")
	}
	clock.t = clock.t.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after half an interval")
	}
	clock.t = clock.t.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}
}

func TestFixedStepDefaultsAndWait(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v", fs.Interval())
	}
	fs.SetTPS(1000)
	if err := fs.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	fs.SetTPS(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := fs.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait on cancelled ctx = %v", err)
	}
}

type nopSim struct{}

func (nopSim) Name() string   { return "nop" }
func (nopSim) Size() Size     { return Size{W: 1, H: 1} }
func (nopSim) Reset(int64)    {}
func (nopSim) Step()          {}
func (nopSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	f := func(*config.Config, *slog.Logger) (Sim, error) { return nopSim{}, nil }
	if err := Register("test-nop", f); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register("", f); !errors.Is(err, ErrInvalidFactory) {
		t.Fatalf("unnamed Register = %v", err)
	}
	if !slices.Contains(Sims(), "test-nop") {
		t.Fatalf("Sims() = %v", Sims())
	}
	got, err := Lookup("test-nop")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if sim, _ := got(nil, nil); sim.Name() != "nop" {
		t.Fatalf("factory built %q", sim.Name())
	}
	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("Lookup(missing) = %v", err)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Antenna",
		Params: []Parameter{{Key: "Antenna.length", Value: "5"}},
	}}}
	if p, ok := s.Lookup("Antenna.length"); !ok || p.Value != "5" {
		t.Fatalf("Lookup = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("Box.mode"); ok {
		t.Fatal("found a missing key")
	}
}
