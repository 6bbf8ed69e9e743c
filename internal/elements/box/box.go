// Package box implements an element that walks to the top-right corner of its world
// and then traces a wall around the edges.
package box

import (
	"data-array/internal/element"
	"data-array/internal/window"
	"data-array/pkg/atom"
)

// Name and Version identify the Box element; together they derive its type.
const (
	Name    = "Box"
	Version = 1
)

// Mode is what a box atom is currently doing.
type Mode uint8

const (
	Roaming Mode = iota
	BuildDown
	BuildLeft
	BuildUp
	BuildRight
)

var modeNames = [...]string{"roaming", "down", "left", "up", "right"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "roaming"
}

var (
	up      = window.Point{X: 0, Y: -1}
	down    = window.Point{X: 0, Y: 1}
	left    = window.Point{X: -1, Y: 0}
	right   = window.Point{X: 1, Y: 0}
	upRight = window.Point{X: 1, Y: -1}
)

// Box is a builder atom that claims the top-right corner of the world and then
// walls in its edges.
type Box struct {
	element.Base

	mode element.Field
}

// New returns the Box element.
func New() *Box {
	b := &Box{Base: element.NewBase(Name, Version, element.Meta{
		Symbol:        "Bx",
		Name:          "Box",
		Description:   "Heads for the top-right corner, then builds a wall along the world edges.",
		PhysicsColor:  0x99999999,
		LowlightColor: 0x99993333,
	}, 2)}
	b.mode = b.AddField(element.NewField("mode", 3, 0))
	return b
}

// Mode returns the mode of a. Unused codes behave as Roaming.
func (b *Box) Mode(a atom.Atom) Mode {
	m := Mode(b.mode.Get(a))
	if m > BuildRight {
		return Roaming
	}
	return m
}

// NewAtomWithMode returns a box atom in mode m.
func (b *Box) NewAtomWithMode(m Mode) atom.Atom {
	a := b.NewAtom()
	b.mode.Set(&a, uint64(m))
	return a
}

// DefaultAtom returns a roaming box.
func (b *Box) DefaultAtom() atom.Atom { return b.NewAtomWithMode(Roaming) }

// Behavior runs one step of the current mode: roaming boxes move toward the
// corner, building boxes extend the wall or hand over to the next edge.
func (b *Box) Behavior(ev *element.Event) error {
	switch m := b.Mode(ev.CenterAtom()); m {
	case BuildDown:
		if ev.IsEmptySite(down) {
			return ev.SetRelativeAtom(down, b.NewAtomWithMode(BuildDown))
		}
		if !ev.IsLiveSite(down) {
			ev.SetCenterAtom(b.NewAtomWithMode(BuildLeft))
		}
		return nil
	case BuildLeft:
		return b.extend(ev, left, m, BuildUp)
	case BuildUp:
		return b.extend(ev, up, m, BuildRight)
	case BuildRight:
		if ev.IsLiveSite(right) {
			return ev.SetRelativeAtom(right, b.NewAtomWithMode(BuildRight))
		}
		return nil
	default:
		return b.roam(ev)
	}
}

// extend writes a box in mode m toward rel, or turns the center to next once rel
// runs off the world.
func (b *Box) extend(ev *element.Event, rel window.Point, m, next Mode) error {
	if ev.IsLiveSite(rel) {
		return ev.SetRelativeAtom(rel, b.NewAtomWithMode(m))
	}
	ev.SetCenterAtom(b.NewAtomWithMode(next))
	return nil
}

func (b *Box) roam(ev *element.Event) error {
	for _, rel := range []window.Point{upRight, up, right} {
		if !ev.IsLiveSite(rel) {
			continue
		}
		if err := ev.SetRelativeAtom(rel, b.DefaultAtom()); err != nil {
			return err
		}
		ev.SetCenterAtom(element.EmptyAtom())
		return nil
	}
	ev.SetCenterAtom(b.NewAtomWithMode(BuildDown))
	return nil
}
