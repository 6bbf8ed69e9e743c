// Package element defines the contract between atom types and the event kernel,
// and the registry that maps type tags to their elements.
package element

import (
	"image/color"

	"data-array/internal/window"
	"data-array/pkg/atom"
)

// Element is the stateless handler for one atom type. Implementations hold no
// state outside their parameters; everything an event changes lives in atoms.
type Element interface {
	Identity() Identity
	Type() atom.TypeID
	Meta() Meta
	// Radius is the event window radius Behavior needs.
	Radius() int
	Fields() []Field
	Params() []*Param
	// DefaultAtom builds a fresh atom from the current parameter values.
	DefaultAtom() atom.Atom
	PercentMovable(you, me atom.Atom, offset window.Point) uint32
	Behavior(ev *Event) error
}

// Meta carries presentation data used by drivers.
type Meta struct {
	Symbol        string
	Name          string
	Description   string
	PhysicsColor  uint32
	LowlightColor uint32
}

// ARGB converts a 0xAARRGGBB color to RGBA.
func ARGB(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// Base implements the bookkeeping half of Element. Concrete elements embed it and
// supply DefaultAtom and Behavior.
type Base struct {
	id     Identity
	typ    atom.TypeID
	meta   Meta
	radius int
	fields []Field
	params []*Param
}

// NewBase returns a Base whose type tag is derived from name and version.
func NewBase(name string, version uint32, meta Meta, radius int) Base {
	id := Identity{Name: name, Version: version}
	if meta.Name == "" {
		meta.Name = name
	}
	return Base{id: id, typ: id.TypeID(), meta: meta, radius: radius}
}

// AddField appends a field to the layout and returns it.
func (b *Base) AddField(f Field) Field {
	b.fields = append(b.fields, f)
	return f
}

// AddParam appends a parameter and returns it.
func (b *Base) AddParam(p *Param) *Param {
	b.params = append(b.params, p)
	return p
}

// Identity, Type, Meta, Radius, Fields and Params satisfy the Element accessors.
func (b *Base) Identity() Identity { return b.id }
func (b *Base) Type() atom.TypeID  { return b.typ }
func (b *Base) Meta() Meta         { return b.meta }
func (b *Base) Radius() int        { return b.radius }
func (b *Base) Fields() []Field    { return b.fields }
func (b *Base) Params() []*Param   { return b.params }

// Field returns the layout field with the given name.
func (b *Base) Field(name string) (Field, bool) {
	for _, f := range b.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Param returns the parameter with the given key.
func (b *Base) Param(key string) (*Param, bool) {
	for _, p := range b.params {
		if p.Key == key {
			return p, true
		}
	}
	return nil, false
}

// NewAtom returns an atom of this element's type with zeroed state.
func (b *Base) NewAtom() atom.Atom { return atom.New(b.typ, 0, 0, 0) }

// IsType reports whether a belongs to this element.
func (b *Base) IsType(a atom.Atom) bool { return a.Type() == b.typ }

// PercentMovable defaults to immovable.
func (b *Base) PercentMovable(you, me atom.Atom, offset window.Point) uint32 { return 0 }
