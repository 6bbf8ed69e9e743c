// Package atom defines the bit-packed value that occupies one grid site.
package atom

import (
	"fmt"

	"data-array/pkg/bits"
)

// TypeID selects the element that interprets an atom's state bits.
type TypeID uint32

// EmptyType is the type of the zero Atom.
const EmptyType TypeID = 0

// StateBitsPos is the first bit available to element-defined fields.
const StateBitsPos = 32

// StateBits is the number of bits available to element-defined fields.
const StateBits = bits.Capacity - StateBitsPos

// TypeField holds the type tag.
var TypeField = bits.Field{Width: 32, Offset: 0}

// rawFields are the three opaque state words seeded by New.
var rawFields = [3]bits.Field{
	{Width: 32, Offset: StateBitsPos},
	{Width: 32, Offset: StateBitsPos + 32},
	{Width: 32, Offset: StateBitsPos + 64},
}

// Atom is a type tag followed by per-type state. Atoms are values; copying one
// copies its whole state.
type Atom struct {
	v bits.Vector
}

// New builds an atom of type t whose three state words are seeded with a, b and c.
// The meaning of the seeds belongs to the element that owns t.
func New(t TypeID, a, b, c uint32) Atom {
	var at Atom
	at.v.Write(TypeField, uint64(t))
	at.v.Write(rawFields[0], uint64(a))
	at.v.Write(rawFields[1], uint64(b))
	at.v.Write(rawFields[2], uint64(c))
	return at
}

// RawField returns the descriptor of seed word i (0, 1 or 2) as written by New.
func RawField(i int) bits.Field { return rawFields[i] }

// Type returns the atom's type tag.
func (a Atom) Type() TypeID { return TypeID(a.v.Read(TypeField)) }

// IsEmpty reports whether the atom is of EmptyType.
func (a Atom) IsEmpty() bool { return a.Type() == EmptyType }

// Bits returns a copy of the backing vector.
func (a Atom) Bits() bits.Vector { return a.v }

// SetBits replaces the state bits with those of v. The type tag is kept.
func (a *Atom) SetBits(v bits.Vector) {
	t := a.v.Read(TypeField)
	a.v = v
	a.v.Write(TypeField, t)
}

func (a Atom) String() string {
	return fmt.Sprintf("%08x/%s", uint32(a.Type()), a.v)
}
