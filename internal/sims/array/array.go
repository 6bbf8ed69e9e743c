// Package array runs the built-in element catalog on a tiled world and adapts it to
// the core.Sim contract used by the drivers.
package array

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"data-array/internal/config"
	"data-array/internal/core"
	"data-array/internal/element"
	"data-array/internal/elements"
	"data-array/internal/engine"
	"data-array/internal/telemetry"
	"data-array/internal/window"
	"data-array/internal/world"
	"data-array/pkg/atom"
	pkgcore "data-array/pkg/core"
)

// SimName is the name the sim registers under.
const SimName = "array"

// ErrPlacement is returned for placements that name an unknown element or field, or
// a site outside the world.
var ErrPlacement = errors.New("invalid placement")

var (
	unknownColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	deadColor    = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)

func init() {
	if err := core.Register(SimName, func(cfg *config.Config, logger *slog.Logger) (core.Sim, error) {
		return New(cfg, logger)
	}); err != nil {
		panic(err)
	}
}

// Sim owns one world, its registry and the dispatcher that runs events on it.
type Sim struct {
	cfg  *config.Config
	log  *slog.Logger
	reg  *element.Registry
	grid *world.Grid
	disp *engine.Dispatcher
	rng  *pkgcore.RNG

	elems   []element.Element
	index   map[atom.TypeID]uint8
	palette []color.RGBA
	cells   []uint8

	seed int64
	tick int
	last engine.Stats
}

// New builds a world from cfg and seeds it with cfg.Seed. Element parameters from
// cfg are applied before seeding so default atoms see them.
func New(cfg *config.Config, logger *slog.Logger) (*Sim, error) {
	if cfg == nil {
		var err error
		if cfg, err = config.Defaults(); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	reg, err := elements.NewRegistry()
	if err != nil {
		return nil, err
	}
	for key, v := range cfg.Params {
		stored, err := reg.SetParam(key, v)
		if err != nil {
			return nil, err
		}
		if stored != v {
			logger.Warn("parameter clamped", "key", key, "requested", v, "stored", stored)
		}
	}

	g := world.New(cfg.World.Width, cfg.World.Height)
	g.SetTileSize(cfg.World.TileSize)
	for _, t := range cfg.World.DeadTiles {
		if !g.SetTileLive(t.X, t.Y, false) {
			return nil, fmt.Errorf("%w: dead tile (%d,%d)", config.ErrInvalid, t.X, t.Y)
		}
	}

	s := &Sim{
		cfg:   cfg,
		log:   logger,
		reg:   reg,
		grid:  g,
		disp:  engine.New(reg, g, logger),
		elems: reg.Elements(),
		index: make(map[atom.TypeID]uint8),
		cells: make([]uint8, g.W*g.H),
	}
	for i, e := range s.elems {
		s.index[e.Type()] = uint8(i)
		s.palette = append(s.palette, element.ARGB(e.Meta().PhysicsColor))
	}
	s.palette = append(s.palette, unknownColor, deadColor)

	if err := s.checkPlacements(); err != nil {
		return nil, err
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the registered sim name.
func (s *Sim) Name() string { return SimName }

// Size returns the world dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Reset empties the world and reseeds the configured placements.
func (s *Sim) Reset(seed int64) {
	s.seed = seed
	s.rng = pkgcore.NewRNG(seed)
	s.grid.Clear()
	s.disp.ResetStats()
	s.tick = 0
	s.last = engine.Stats{}
	for i, p := range s.cfg.Placements {
		s.place(p, s.rng.Stream(uint64(i)))
	}
	s.log.Debug("world reset", "seed", seed, "placements", len(s.cfg.Placements))
}

// Step runs one tick: EventsPerTick events, or one per live site when unset.
func (s *Sim) Step() {
	n := s.cfg.Run.EventsPerTick
	if n <= 0 {
		n = len(s.grid.LiveSites())
	}
	s.last = s.disp.Step(s.rng.Source(), n)
	s.tick++
}

// Cells maps each site to its palette index.
func (s *Sim) Cells() []uint8 {
	unknown := uint8(len(s.elems))
	dead := unknown + 1
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			p := window.Point{X: x, Y: y}
			i := s.grid.Index(x, y)
			if !s.grid.Live(p) {
				s.cells[i] = dead
				continue
			}
			idx, ok := s.index[s.grid.At(p).Type()]
			if !ok {
				idx = unknown
			}
			s.cells[i] = idx
		}
	}
	return s.cells
}

// Palette returns one color per element in registry order, then the colors for
// unregistered atoms and unmapped sites.
func (s *Sim) Palette() []color.RGBA { return s.palette }

// Seed returns the seed of the last reset.
func (s *Sim) Seed() int64 { return s.seed }

// Tick returns the number of completed steps since the last reset.
func (s *Sim) Tick() int { return s.tick }

// LastStats returns the dispatch statistics of the last step.
func (s *Sim) LastStats() engine.Stats { return s.last }

// TotalStats returns the dispatch statistics since the last reset.
func (s *Sim) TotalStats() engine.Stats { return s.disp.Stats() }

// LastWindow returns the center and radius of the most recent event window.
func (s *Sim) LastWindow() (window.Point, int, bool) { return s.disp.LastWindow() }

// Registry returns the element registry.
func (s *Sim) Registry() *element.Registry { return s.reg }

// World returns the grid.
func (s *Sim) World() *world.Grid { return s.grid }

// Census counts live sites per element name. Unregistered atoms are counted under
// "unknown".
func (s *Sim) Census() map[string]int {
	counts := make(map[string]int, len(s.elems)+1)
	for _, p := range s.grid.LiveSites() {
		idx, ok := s.index[s.grid.At(p).Type()]
		if !ok {
			counts["unknown"]++
			continue
		}
		counts[s.elems[idx].Identity().Name]++
	}
	return counts
}

// Record returns the telemetry row for the last step.
func (s *Sim) Record() telemetry.TickRecord {
	rec := telemetry.TickRecord{
		Tick:     s.tick,
		Events:   s.last.Events,
		Commits:  s.last.Commits,
		Writes:   s.last.Writes,
		Rejected: s.last.Rejected,
		Unknown:  s.last.Unknown,
		Failed:   s.last.Failed,
	}
	rec.SetCounts(s.Census())
	return rec
}

// Symbols returns the two-character symbol of every site, row-major. Unmapped sites
// are "##" and unregistered atoms "??".
func (s *Sim) Symbols() []string {
	out := make([]string, s.grid.W*s.grid.H)
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			p := window.Point{X: x, Y: y}
			i := s.grid.Index(x, y)
			switch idx, ok := s.index[s.grid.At(p).Type()]; {
			case !s.grid.Live(p):
				out[i] = "##"
			case !ok:
				out[i] = "??"
			default:
				out[i] = fmt.Sprintf("%-2.2s", s.elems[idx].Meta().Symbol)
			}
		}
	}
	return out
}

// StatusLines summarises the world for the HUD.
func (s *Sim) StatusLines() []string {
	census := s.Census()
	lines := []string{
		fmt.Sprintf("tick %d  seed %d", s.tick, s.seed),
		fmt.Sprintf("events %d  writes %d", s.last.Events, s.last.Writes),
		fmt.Sprintf("failed %d  unknown %d", s.last.Failed, s.last.Unknown),
	}
	for _, e := range s.elems[1:] {
		lines = append(lines, fmt.Sprintf("%-2s %-14s %d", e.Meta().Symbol, e.Meta().Name, census[e.Identity().Name]))
	}
	return lines
}
