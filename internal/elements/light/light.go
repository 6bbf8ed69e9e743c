// Package light implements a ray that copies itself forward and erases the ray
// segment behind it.
package light

import (
	"data-array/internal/element"
	"data-array/internal/elements/dir"
	"data-array/pkg/atom"
)

// Name and Version identify the Light element; together they derive its type.
const (
	Name    = "Light"
	Version = 1
)

// Light atoms store only the direction they travel in.
type Light struct {
	element.Base

	direction element.Field
	dirParam  *element.Param
}

// New returns the Light element.
func New() *Light {
	l := &Light{Base: element.NewBase(Name, Version, element.Meta{
		Symbol:        "Lt",
		Name:          "Light data",
		Description:   "Travels in a straight line, one site per event.",
		PhysicsColor:  0xff11bb33,
		LowlightColor: 0xff11bb33,
	}, 2)}
	l.direction = l.AddField(element.NewField("direction", 3, 0))
	l.dirParam = l.AddParam(element.NewParam("direction", "Direction",
		"Direction new light atoms travel in, 0 left turning clockwise to 7 down-left.", 0, 0, 7, 1))
	return l
}

// Direction returns the travel direction of a.
func (l *Light) Direction(a atom.Atom) dir.Dir { return dir.FromBits(l.direction.Get(a)) }

// NewAtomWithDirection returns a light atom traveling in d.
func (l *Light) NewAtomWithDirection(d dir.Dir) atom.Atom {
	a := l.NewAtom()
	l.direction.Set(&a, uint64(d))
	return a
}

// DefaultAtom travels in the direction parameter.
func (l *Light) DefaultAtom() atom.Atom {
	return l.NewAtomWithDirection(dir.Dir(l.dirParam.Value()))
}

// Behavior moves the ray one step: light is copied forward and the trailing light
// behind it is erased.
func (l *Light) Behavior(ev *element.Event) error {
	d := l.Direction(ev.CenterAtom())
	forward := d.Offset(1)
	backward := d.Opposite().Offset(1)

	if ev.IsLiveSite(forward) && !ev.IsTypeAt(forward, l.Type()) {
		if err := ev.SetRelativeAtom(forward, l.NewAtomWithDirection(d)); err != nil {
			return err
		}
	}
	if ev.IsTypeAt(backward, l.Type()) {
		return ev.SetRelativeAtom(backward, element.EmptyAtom())
	}
	return nil
}
