// Package engine runs element behaviors against a world, one event at a time.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"data-array/internal/element"
	"data-array/internal/window"
	"data-array/internal/world"
)

// Stats counts what happened to the events a Dispatcher ran.
type Stats struct {
	Events   int
	Commits  int
	Writes   int
	Rejected int
	Unknown  int
	Failed   int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Events += o.Events
	s.Commits += o.Commits
	s.Writes += o.Writes
	s.Rejected += o.Rejected
	s.Unknown += o.Unknown
	s.Failed += o.Failed
}

// Dispatcher resolves the atom at a scheduled site to its element and runs the
// element's behavior in a window bound to that site.
type Dispatcher struct {
	reg   *element.Registry
	world *world.Grid
	log   *slog.Logger

	stats Stats
	last  window.Point
	lastR int
}

// New returns a dispatcher. A nil logger uses slog.Default().
func New(reg *element.Registry, w *world.Grid, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{reg: reg, world: w, log: logger, lastR: -1}
}

// Registry returns the registry events are resolved against.
func (d *Dispatcher) Registry() *element.Registry { return d.reg }

// World returns the grid events run against.
func (d *Dispatcher) World() *world.Grid { return d.world }

// Event runs one event at site. Writes are committed only when the behavior returns
// nil; a failed behavior leaves the world exactly as it was.
func (d *Dispatcher) Event(site window.Point) error {
	d.stats.Events++
	if !d.world.Live(site) {
		d.stats.Failed++
		return fmt.Errorf("event at %v: %w", site, window.ErrOutOfBounds)
	}

	center := d.world.At(site)
	e, err := d.reg.TypeOf(center.Type())
	if err != nil {
		d.stats.Unknown++
		d.log.Warn("skipping event for unregistered type",
			"site", site.String(),
			"type", fmt.Sprintf("%#08x", uint32(center.Type())),
		)
		return fmt.Errorf("event at %v: %w", site, err)
	}

	w, err := window.New(d.world, site, e.Radius())
	if err != nil {
		d.stats.Failed++
		return fmt.Errorf("event at %v: %w", site, err)
	}
	d.last, d.lastR = site, e.Radius()

	if err := e.Behavior(element.NewEvent(w, d.reg)); err != nil {
		d.stats.Failed++
		if errors.Is(err, window.ErrOutOfBounds) {
			d.stats.Rejected++
		}
		d.log.Debug("behavior failed",
			"element", e.Identity().String(),
			"site", site.String(),
			"discarded", w.Dirty(),
			"error", err,
		)
		return fmt.Errorf("%s at %v: %w", e.Identity(), site, err)
	}

	d.stats.Commits++
	d.stats.Writes += w.Commit()
	return nil
}

// Step runs n events at uniformly chosen live sites. Individual event failures are
// counted and do not stop the step.
func (d *Dispatcher) Step(rng *rand.Rand, n int) Stats {
	sites := d.world.LiveSites()
	before := d.stats
	if len(sites) == 0 {
		return Stats{}
	}
	for i := 0; i < n; i++ {
		_ = d.Event(sites[rng.IntN(len(sites))])
	}
	return diff(d.stats, before)
}

// Stats returns the running totals.
func (d *Dispatcher) Stats() Stats { return d.stats }

// ResetStats zeroes the running totals.
func (d *Dispatcher) ResetStats() { d.stats = Stats{} }

// LastWindow returns the center and radius of the most recent event window.
func (d *Dispatcher) LastWindow() (window.Point, int, bool) {
	return d.last, d.lastR, d.lastR >= 0
}

func diff(a, b Stats) Stats {
	return Stats{
		Events:   a.Events - b.Events,
		Commits:  a.Commits - b.Commits,
		Writes:   a.Writes - b.Writes,
		Rejected: a.Rejected - b.Rejected,
		Unknown:  a.Unknown - b.Unknown,
		Failed:   a.Failed - b.Failed,
	}
}
