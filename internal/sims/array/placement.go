package array

import (
	"fmt"

	"data-array/internal/config"
	"data-array/internal/element"
	"data-array/internal/window"
	"data-array/pkg/atom"
	pkgcore "data-array/pkg/core"
)

// randomTries bounds the attempts to find an empty site per randomly placed atom.
const randomTries = 16

func (s *Sim) checkPlacements() error {
	for i, p := range s.cfg.Placements {
		e, ok := s.reg.Lookup(p.Element)
		if !ok {
			return fmt.Errorf("%w: placement %d: %w: %q", ErrPlacement, i, element.ErrUnknownType, p.Element)
		}
		for name := range p.Fields {
			if _, ok := findField(e, name); !ok {
				return fmt.Errorf("%w: placement %d: %s has no field %q", ErrPlacement, i, e.Identity(), name)
			}
		}
		if p.Random == 0 && !s.grid.Live(window.Point{X: p.X, Y: p.Y}) {
			return fmt.Errorf("%w: placement %d: site (%d,%d) is not live", ErrPlacement, i, p.X, p.Y)
		}
	}
	return nil
}

func findField(e element.Element, name string) (element.Field, bool) {
	for _, f := range e.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return element.Field{}, false
}

// placementAtom builds the atom for p from the element's current default.
func (s *Sim) placementAtom(p config.PlacementConfig) (atom.Atom, bool) {
	e, ok := s.reg.Lookup(p.Element)
	if !ok {
		return atom.Atom{}, false
	}
	a := e.DefaultAtom()
	for name, v := range p.Fields {
		if f, ok := findField(e, name); ok {
			f.Set(&a, v)
		}
	}
	return a, true
}

// place seeds p. Random placements draw from their own stream so that adding one
// does not change the event sequence.
func (s *Sim) place(p config.PlacementConfig, rng *pkgcore.RNG) {
	a, ok := s.placementAtom(p)
	if !ok {
		return
	}
	if p.Random <= 0 {
		s.grid.Set(window.Point{X: p.X, Y: p.Y}, a)
		return
	}
	sites := s.grid.LiveSites()
	if len(sites) == 0 {
		return
	}
	placed := 0
	for try := 0; try < p.Random*randomTries && placed < p.Random; try++ {
		site := sites[rng.IntN(len(sites))]
		if !s.grid.At(site).IsEmpty() {
			continue
		}
		s.grid.Set(site, a)
		placed++
	}
	if placed < p.Random {
		s.log.Warn("world too full for placement", "element", p.Element, "requested", p.Random, "placed", placed)
	}
}

// Place writes the default atom of the named element at p, as a user click would.
func (s *Sim) Place(name string, p window.Point) error {
	a, ok := s.placementAtom(config.PlacementConfig{Element: name})
	if !ok {
		return fmt.Errorf("%w: %w: %q", ErrPlacement, element.ErrUnknownType, name)
	}
	if !s.grid.Live(p) {
		return fmt.Errorf("%w: %w: %v", ErrPlacement, window.ErrOutOfBounds, p)
	}
	s.grid.Set(p, a)
	return nil
}

// Placeable returns the names of the elements Place accepts, in palette order.
func (s *Sim) Placeable() []string {
	names := make([]string, 0, len(s.elems)-1)
	for _, e := range s.elems[1:] {
		names = append(names, e.Identity().Name)
	}
	return names
}
