//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"data-array/internal/core"
	"data-array/internal/render"
	"data-array/internal/ui"
	"data-array/internal/window"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type placer interface {
	Placeable() []string
	Place(name string, p window.Point) error
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette []color.RGBA
	dimmed  []color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	brush    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if pp, ok := sim.(core.PaletteProvider); ok {
		g.palette = pp.Palette()
	} else {
		g.palette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	}
	for _, c := range g.palette {
		g.dimmed = append(g.dimmed, render.Lowlight(c))
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	slog.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleBrush()

	g.overlay.Update()
	g.hud.Update(g.worldWidth())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// handleBrush cycles the placed element with Tab and places it on left click.
func (g *Game) handleBrush() {
	p, ok := g.sim.(placer)
	if !ok {
		return
	}
	names := p.Placeable()
	if len(names) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.brush = (g.brush + 1) % len(names)
		slog.Info("brush", "element", names[g.brush])
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= g.worldWidth() {
		return
	}
	site := window.Point{X: mx / g.scale, Y: my / g.scale}
	if err := p.Place(names[g.brush%len(names)], site); err != nil {
		slog.Debug("place failed", "site", site.String(), "error", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.palette
	if g.paused {
		palette = g.dimmed
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.worldWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.worldWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) worldWidth() int { return g.sim.Size().W * g.scale }
