// Package bits packs small unsigned values into a fixed-capacity bit vector.
package bits

import (
	"errors"
	"fmt"
)

const (
	// Words is the number of 64-bit words backing a Vector.
	Words = 2
	// Capacity is the number of addressable bits in a Vector.
	Capacity = Words * 64
	// MaxWidth is the widest value a single Field can hold.
	MaxWidth = 64
)

var (
	// ErrFieldRange indicates a field with zero width, a width above MaxWidth, or one
	// that runs past the end of the vector.
	ErrFieldRange = errors.New("bit field out of range")
	// ErrFieldOverlap indicates two fields of one layout share bits.
	ErrFieldOverlap = errors.New("bit fields overlap")
)

// Vector is a fixed-size bit vector. Bit 0 is the least significant bit of word 0.
type Vector [Words]uint64

// Field describes Width contiguous bits starting at Offset.
type Field struct {
	Width  uint
	Offset uint
}

// NewField validates and returns a field descriptor.
func NewField(width, offset uint) (Field, error) {
	f := Field{Width: width, Offset: offset}
	if !f.Valid() {
		return Field{}, fmt.Errorf("%w: width %d offset %d", ErrFieldRange, width, offset)
	}
	return f, nil
}

// MustField is like NewField but panics on a malformed descriptor.
func MustField(width, offset uint) Field {
	f, err := NewField(width, offset)
	if err != nil {
		panic(err)
	}
	return f
}

// Valid reports whether the field fits inside a Vector.
func (f Field) Valid() bool {
	return f.Width > 0 && f.Width <= MaxWidth && f.Offset+f.Width <= Capacity
}

// End returns the first bit past the field.
func (f Field) End() uint { return f.Offset + f.Width }

// Max returns the largest value the field can store.
func (f Field) Max() uint64 { return f.mask() }

// Truncate reduces v to the bits the field would keep on write.
func (f Field) Truncate(v uint64) uint64 { return v & f.mask() }

// Overlaps reports whether f and g share at least one bit.
func (f Field) Overlaps(g Field) bool {
	return f.Offset < g.End() && g.Offset < f.End()
}

func (f Field) String() string {
	return fmt.Sprintf("bits[%d:%d]", f.Offset, f.End())
}

func (f Field) mask() uint64 {
	if f.Width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << f.Width) - 1
}

func (f Field) mustValid() {
	if !f.Valid() {
		panic(fmt.Sprintf("bits: malformed field width %d offset %d", f.Width, f.Offset))
	}
}

// Read extracts the field from v, zero-extended.
func (v Vector) Read(f Field) uint64 {
	f.mustValid()
	word, shift := f.Offset>>6, f.Offset&63
	out := v[word] >> shift
	if shift+f.Width > 64 {
		out |= v[word+1] << (64 - shift)
	}
	return out & f.mask()
}

// Write stores the low f.Width bits of value into the field. Higher bits of value are
// dropped; bits outside the field are left untouched.
func (v *Vector) Write(f Field, value uint64) {
	f.mustValid()
	m := f.mask()
	value &= m
	word, shift := f.Offset>>6, f.Offset&63
	v[word] = v[word]&^(m<<shift) | value<<shift
	if shift+f.Width > 64 {
		spill := 64 - shift
		v[word+1] = v[word+1]&^(m>>spill) | value>>spill
	}
}

// Clear zeroes the bits covered by f.
func (v *Vector) Clear(f Field) { v.Write(f, 0) }

// Equal reports whether the two vectors hold the same bits.
func (v Vector) Equal(o Vector) bool { return v == o }

// EqualOutside reports whether v and o agree on every bit not covered by f.
func (v Vector) EqualOutside(o Vector, f Field) bool {
	a, b := v, o
	a.Clear(f)
	b.Clear(f)
	return a == b
}

func (v Vector) String() string {
	return fmt.Sprintf("%016x%016x", v[1], v[0])
}

// CheckLayout verifies every field is well formed and that no two fields overlap.
func CheckLayout(fields ...Field) error {
	for i, f := range fields {
		if !f.Valid() {
			return fmt.Errorf("%w: %d-bit field at %d", ErrFieldRange, f.Width, f.Offset)
		}
		for _, g := range fields[:i] {
			if f.Overlaps(g) {
				return fmt.Errorf("%w: %s and %s", ErrFieldOverlap, g, f)
			}
		}
	}
	return nil
}
