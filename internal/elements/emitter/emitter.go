// Package emitter implements a stationary source that keeps a light ray alive two
// sites away.
package emitter

import (
	"fmt"

	"data-array/internal/element"
	"data-array/internal/elements/dir"
	"data-array/internal/elements/light"
	"data-array/pkg/atom"
)

// Name and Version identify the Light Emitter element; together they derive its type.
const (
	Name    = "LEmitter"
	Version = 1
)

// LightType is the type of the atoms the emitter places.
var LightType = element.TypeFor(light.Name, light.Version)

// lightSource is the part of the Light element the emitter depends on.
type lightSource interface {
	NewAtomWithDirection(d dir.Dir) atom.Atom
}

// Emitter is a stationary light source facing one of the eight directions.
type Emitter struct {
	element.Base

	direction element.Field
	dirParam  *element.Param
}

// New returns the emitter element.
func New() *Emitter {
	e := &Emitter{Base: element.NewBase(Name, Version, element.Meta{
		Symbol:        "Lm",
		Name:          "Light Emitter",
		Description:   "Emits light in its direction.",
		PhysicsColor:  0xff11bb33,
		LowlightColor: 0xff0b7722,
	}, 4)}
	e.direction = e.AddField(element.NewField("direction", 3, 0))
	e.dirParam = e.AddParam(element.NewParam("direction", "Direction",
		"Direction new emitters shine in, 0 left turning clockwise to 7 down-left.", 0, 0, 7, 1))
	return e
}

// Direction returns the direction a shines in.
func (e *Emitter) Direction(a atom.Atom) dir.Dir { return dir.FromBits(e.direction.Get(a)) }

// NewAtomWithDirection returns an emitter shining in d.
func (e *Emitter) NewAtomWithDirection(d dir.Dir) atom.Atom {
	a := e.NewAtom()
	e.direction.Set(&a, uint64(d))
	return a
}

// DefaultAtom returns an emitter facing the current direction parameter.
func (e *Emitter) DefaultAtom() atom.Atom {
	return e.NewAtomWithDirection(dir.Dir(e.dirParam.Value()))
}

// Behavior places a light atom two steps out unless one is already there. The Light
// element is resolved through the registry, so an emitter in a catalog without light
// fails its events with element.ErrUnknownType.
func (e *Emitter) Behavior(ev *element.Event) error {
	d := e.Direction(ev.CenterAtom())
	target := d.Offset(2)
	if !ev.IsLiveSite(target) || ev.IsTypeAt(target, LightType) {
		return nil
	}
	el, err := ev.Registry().TypeOf(LightType)
	if err != nil {
		return err
	}
	src, ok := el.(lightSource)
	if !ok {
		return fmt.Errorf("%w: %s cannot build directed atoms", element.ErrTypeMismatch, el.Identity())
	}
	return ev.SetRelativeAtom(target, src.NewAtomWithDirection(d))
}
