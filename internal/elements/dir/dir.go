// Package dir holds the eight compass directions elements store in their atoms.
package dir

import "data-array/internal/window"

// Dir is a 3-bit compass direction, starting at Left and turning clockwise.
type Dir uint8

const (
	Left Dir = iota
	UpLeft
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
)

// Count is the number of directions.
const Count = 8

var names = [Count]string{"left", "up-left", "up", "up-right", "right", "down-right", "down", "down-left"}

var unit = [Count]window.Point{
	Left:      {X: -1, Y: 0},
	UpLeft:    {X: -1, Y: -1},
	Up:        {X: 0, Y: -1},
	UpRight:   {X: 1, Y: -1},
	Right:     {X: 1, Y: 0},
	DownRight: {X: 1, Y: 1},
	Down:      {X: 0, Y: 1},
	DownLeft:  {X: -1, Y: 1},
}

// FromBits maps a stored field value onto a direction, wrapping values above 7.
func FromBits(v uint64) Dir { return Dir(v % Count) }

// Offset returns the relative site n steps away in direction d.
func (d Dir) Offset(n int) window.Point { return unit[d%Count].Scale(n) }

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir { return (d + Count/2) % Count }

func (d Dir) String() string { return names[d%Count] }
