// Package world stores the atoms of a rectangular world split into square tiles.
package world

import (
	"data-array/internal/window"
	"data-array/pkg/atom"
)

// Grid stores atoms in row-major order. Sites past the edges do not exist, and
// neither do sites inside a tile that has been unmapped.
type Grid struct {
	W, H int

	tile  int
	tw    int
	th    int
	dead  []bool
	atoms []atom.Atom
}

// New allocates an empty grid with a single tile covering the whole world.
func New(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, atoms: make([]atom.Atom, w*h)}
	g.SetTileSize(0)
	return g
}

// SetTileSize partitions the world into size*size tiles and maps all of them.
// A size <= 0 uses one tile for the whole grid.
func (g *Grid) SetTileSize(size int) {
	if size <= 0 {
		size = max(g.W, g.H)
	}
	g.tile = size
	g.tw = (g.W + size - 1) / size
	g.th = (g.H + size - 1) / size
	g.dead = make([]bool, g.tw*g.th)
}

// TileSize returns the tile edge length.
func (g *Grid) TileSize() int { return g.tile }

// Tiles returns the tile grid dimensions.
func (g *Grid) Tiles() (int, int) { return g.tw, g.th }

// SetTileLive maps or unmaps tile (tx, ty). It returns false for a tile outside the grid.
func (g *Grid) SetTileLive(tx, ty int, live bool) bool {
	if tx < 0 || ty < 0 || tx >= g.tw || ty >= g.th {
		return false
	}
	g.dead[ty*g.tw+tx] = !live
	return true
}

// TileLive reports whether tile (tx, ty) exists and is mapped.
func (g *Grid) TileLive(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= g.tw || ty >= g.th {
		return false
	}
	return !g.dead[ty*g.tw+tx]
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether p lies inside the world rectangle.
func (g *Grid) InBounds(p window.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// Live reports whether p exists: inside the rectangle and on a mapped tile.
func (g *Grid) Live(p window.Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return !g.dead[(p.Y/g.tile)*g.tw+p.X/g.tile]
}

// At returns the atom at p. Sites that are not live read as empty.
func (g *Grid) At(p window.Point) atom.Atom {
	if !g.Live(p) {
		return atom.Atom{}
	}
	return g.atoms[g.Index(p.X, p.Y)]
}

// Set stores a at p. Writes to sites that are not live are dropped.
func (g *Grid) Set(p window.Point, a atom.Atom) {
	if !g.Live(p) {
		return
	}
	g.atoms[g.Index(p.X, p.Y)] = a
}

// Atoms exposes the backing slice.
func (g *Grid) Atoms() []atom.Atom { return g.atoms }

// Snapshot returns a copy of every site.
func (g *Grid) Snapshot() []atom.Atom {
	return append([]atom.Atom(nil), g.atoms...)
}

// LiveSites returns every live coordinate in row-major order.
func (g *Grid) LiveSites() []window.Point {
	out := make([]window.Point, 0, len(g.atoms))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := window.Point{X: x, Y: y}
			if g.Live(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Clear fills the grid with empty atoms.
func (g *Grid) Clear() {
	for i := range g.atoms {
		g.atoms[i] = atom.Atom{}
	}
}
