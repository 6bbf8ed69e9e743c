package element

import "data-array/pkg/atom"

// Empty is the element of unoccupied sites. It owns atom.EmptyType and is present
// in every Registry.
type Empty struct {
	Base
}

func newEmpty() *Empty {
	return &Empty{Base: Base{
		id:   Identity{Name: "Empty"},
		typ:  atom.EmptyType,
		meta: Meta{Symbol: " ", Name: "Empty", PhysicsColor: 0xff000000, LowlightColor: 0xff000000},
	}}
}

// DefaultAtom returns the zero atom.
func (e *Empty) DefaultAtom() atom.Atom { return atom.Atom{} }

// PercentMovable lets anything swap into an empty site.
func (e *Empty) PercentMovable(you, me atom.Atom, _ Point) uint32 { return 100 }

// Behavior does nothing.
func (e *Empty) Behavior(*Event) error { return nil }

// EmptyAtom returns the atom of an unoccupied site.
func EmptyAtom() atom.Atom { return atom.Atom{} }
