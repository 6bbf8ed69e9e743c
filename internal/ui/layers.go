package ui

import (
	"image/color"

	"data-array/internal/window"
	"data-array/internal/world"
)

// premultiplied converts a straight-alpha tint into the form ColorScale expects.
func premultiplied(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// windowRings returns the sites of the window around center, ring by ring,
// dropping any that fall outside the world.
func windowRings(g *world.Grid, center window.Point, r int) [][]window.Point {
	t := window.MDist(r)
	rings := make([][]window.Point, r+1)
	for d := 0; d <= r; d++ {
		for _, rel := range t.Ring(d) {
			p := center.Add(rel)
			if g != nil && !g.InBounds(p) {
				continue
			}
			rings[d] = append(rings[d], p)
		}
	}
	return rings
}
