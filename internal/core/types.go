package core

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"sort"
	"sync"

	"data-array/internal/config"
)

var (
	// ErrUnknownSim is returned when no factory is registered under a name.
	ErrUnknownSim = errors.New("unknown sim")
	// ErrInvalidFactory is returned for an unnamed or nil factory.
	ErrInvalidFactory = errors.New("invalid sim factory")
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a driver needs to run and draw a world.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Cells returns one palette index per site, row-major.
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose cell values index a color table.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim from a loaded configuration.
type Factory func(cfg *config.Config, logger *slog.Logger) (Sim, error)

var (
	simsMu sync.RWMutex
	sims   = map[string]Factory{}
)

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) error {
	if name == "" || f == nil {
		return ErrInvalidFactory
	}
	simsMu.Lock()
	defer simsMu.Unlock()
	sims[name] = f
	return nil
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	simsMu.RLock()
	defer simsMu.RUnlock()
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSim, name)
	}
	return f, nil
}

// Sims returns the registered names, sorted.
func Sims() []string {
	simsMu.RLock()
	defer simsMu.RUnlock()
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
