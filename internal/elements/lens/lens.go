// Package lens implements the inert focus atom of a lens structure.
package lens

import (
	"data-array/internal/element"
	"data-array/pkg/atom"
)

// Name and Version identify the Lens element; together they derive its type.
const (
	Name    = "Lens"
	Version = 1
)

// Lens has no behavior yet; its length parameter is reserved for the antenna arms a
// lens will build around itself.
type Lens struct {
	element.Base

	armLength *element.Param
}

// New returns the Lens element.
func New() *Lens {
	l := &Lens{Base: element.NewBase(Name, Version, element.Meta{
		Symbol:        "Ln",
		Name:          "Lens",
		Description:   "Focus of a lens structure that bends light toward the surrounding walls.",
		PhysicsColor:  0xffffffff,
		LowlightColor: 0xff777777,
	}, 0)}
	l.armLength = l.AddParam(element.NewParam("length", "Antenna length",
		"Length of each antenna arm the lens builds.", 1, 5, 10, 1))
	return l
}

// ArmLength returns the length parameter.
func (l *Lens) ArmLength() *element.Param { return l.armLength }

// DefaultAtom returns a stateless lens atom.
func (l *Lens) DefaultAtom() atom.Atom { return l.NewAtom() }

// Behavior does nothing.
func (l *Lens) Behavior(*element.Event) error { return nil }
