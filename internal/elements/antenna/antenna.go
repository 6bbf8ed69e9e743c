// Package antenna implements an element that grows a straight arm of itself.
package antenna

import (
	"data-array/internal/element"
	"data-array/internal/elements/dir"
	"data-array/pkg/atom"
)

// Name and Version identify the Antenna element; together they derive its type.
const (
	Name    = "Antenna"
	Version = 1
)

// Antenna atoms carry their position in the arm, the direction the arm grows in and
// the arm length they were built with.
type Antenna struct {
	element.Base

	length    element.Field
	direction element.Field
	max       element.Field

	maxLength *element.Param
}

// New returns the Antenna element.
func New() *Antenna {
	a := &Antenna{Base: element.NewBase(Name, Version, element.Meta{
		Symbol:        "An",
		Name:          "Antenna",
		Description:   "Grows an arm of antenna atoms until it reaches the configured length.",
		PhysicsColor:  0xfff00000,
		LowlightColor: 0x77700000,
	}, 2)}
	a.length = a.AddField(element.NewField("length", 4, 0))
	a.direction = a.AddField(a.length.After("direction", 3))
	a.max = a.AddField(a.direction.After("max", 4))
	a.maxLength = a.AddParam(element.NewParam("length", "Antenna Length",
		"Number of antenna atoms in a constructed arm.", 1, 5, 15, 1))
	return a
}

// MaxLength returns the length parameter.
func (a *Antenna) MaxLength() *element.Param { return a.maxLength }

// Length returns the position of at in its arm.
func (a *Antenna) Length(at atom.Atom) uint64 { return a.length.Get(at) }

// Direction returns the growth direction of at.
func (a *Antenna) Direction(at atom.Atom) dir.Dir { return dir.FromBits(a.direction.Get(at)) }

// Max returns the arm length at was built for.
func (a *Antenna) Max(at atom.Atom) uint64 { return a.max.Get(at) }

// NewAtomWith returns an antenna atom with the given state.
func (a *Antenna) NewAtomWith(length uint64, d dir.Dir, maxLen uint64) atom.Atom {
	at := a.NewAtom()
	a.length.Set(&at, length)
	a.direction.Set(&at, uint64(d))
	a.max.Set(&at, maxLen)
	return at
}

// DefaultAtom is the root of a new arm growing up and to the right.
func (a *Antenna) DefaultAtom() atom.Atom {
	return a.NewAtomWith(1, dir.UpRight, uint64(a.maxLength.Value()))
}

// Behavior extends the arm by one atom when this atom is not yet its tip. The
// center keeps its own length; the new atom is one longer.
func (a *Antenna) Behavior(ev *element.Event) error {
	us := ev.CenterAtom()
	length := a.Length(us)
	if length >= a.Max(us) {
		return nil
	}
	d := a.Direction(us)
	next := d.Offset(1)
	if !ev.IsLiveSite(next) {
		return nil
	}
	return ev.SetRelativeAtom(next, a.NewAtomWith(length+1, d, a.Max(us)))
}
