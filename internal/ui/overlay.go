//go:build ebiten

package ui

import (
	"image/color"

	"data-array/internal/core"
	"data-array/internal/window"
	"data-array/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windowProvider interface {
	LastWindow() (window.Point, int, bool)
}

type worldProvider interface {
	World() *world.Grid
}

// Overlay draws debugging visuals on top of the world: unmapped tiles, tile
// borders and the most recent event window.
type Overlay struct {
	sim        core.Sim
	scale      int
	showTiles  bool
	showWindow bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, showTiles: true, showWindow: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 for tiles, 2 for the event window.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTiles = !o.showTiles
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWindow = !o.showWindow
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showTiles {
		if wp, ok := o.sim.(worldProvider); ok {
			o.drawTiles(screen, wp.World())
		}
	}
	if o.showWindow {
		if wp, ok := o.sim.(windowProvider); ok {
			if center, r, ok := wp.LastWindow(); ok {
				var g *world.Grid
				if gp, ok := o.sim.(worldProvider); ok {
					g = gp.World()
				}
				o.drawWindow(screen, g, center, r)
			}
		}
	}
}

func (o *Overlay) drawTiles(screen *ebiten.Image, g *world.Grid) {
	tw, th := g.Tiles()
	size := g.TileSize()
	border := premultiplied(color.NRGBA{R: 70, G: 70, B: 90, A: 90})
	for ty := 0; ty < th; ty++ {
		for tx := 0; tx < tw; tx++ {
			x, y := tx*size, ty*size
			w, h := min(size, g.W-x), min(size, g.H-y)
			if !g.TileLive(tx, ty) {
				o.fillRect(screen, x, y, w, h, premultiplied(color.NRGBA{R: 120, G: 30, B: 30, A: 110}))
				continue
			}
			if tw*th > 1 {
				o.fillRect(screen, x, y, w, 1, border)
				o.fillRect(screen, x, y, 1, h, border)
			}
		}
	}
}

func (o *Overlay) drawWindow(screen *ebiten.Image, g *world.Grid, center window.Point, r int) {
	for d, ring := range windowRings(g, center, r) {
		tint := premultiplied(color.NRGBA{R: 250, G: 220, B: 60, A: uint8(140 - 25*d)})
		for _, p := range ring {
			o.fillRect(screen, p.X, p.Y, 1, 1, tint)
		}
	}
}

// fillRect tints a rectangle given in site coordinates.
func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, tint color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w*o.scale), float64(h*o.scale))
	op.GeoM.Translate(float64(x*o.scale), float64(y*o.scale))
	op.ColorScale.ScaleWithColor(tint)
	screen.DrawImage(o.pixel, op)
}
