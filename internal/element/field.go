package element

import (
	"fmt"

	"data-array/pkg/atom"
	"data-array/pkg/bits"
)

// Field is a named slice of an atom's state bits, owned by one element.
type Field struct {
	Name string
	bits.Field
}

// NewField describes width bits at offset, counted from atom.StateBitsPos.
func NewField(name string, width, offset uint) Field {
	return Field{Name: name, Field: bits.Field{Width: width, Offset: atom.StateBitsPos + offset}}
}

// After returns a field of the given width placed directly after f.
func (f Field) After(name string, width uint) Field {
	return Field{Name: name, Field: bits.Field{Width: width, Offset: f.End()}}
}

// Get reads the field from a.
func (f Field) Get(a atom.Atom) uint64 {
	return a.Bits().Read(f.Field)
}

// Set writes v into the field of a, truncated to the field width.
func (f Field) Set(a *atom.Atom, v uint64) {
	b := a.Bits()
	b.Write(f.Field, v)
	a.SetBits(b)
}

func (f Field) String() string {
	return fmt.Sprintf("%s%s", f.Name, f.Field)
}

// CheckFields verifies a layout: every field inside the state region, no overlaps,
// no duplicate names.
func CheckFields(fields []Field) error {
	raw := make([]bits.Field, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: unnamed field %s", ErrInvalidLayout, f.Field)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidLayout, f.Name)
		}
		seen[f.Name] = true
		if f.Offset < atom.StateBitsPos {
			return fmt.Errorf("%w: field %s overlaps the type tag", ErrInvalidLayout, f)
		}
		raw = append(raw, f.Field)
	}
	if err := bits.CheckLayout(raw...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return nil
}
