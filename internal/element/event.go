package element

import (
	"data-array/internal/window"
	"data-array/pkg/atom"
)

// Point is a relative site offset.
type Point = window.Point

// Event is what a Behavior sees: the window around the scheduled site plus the
// registry, through which an element reaches any other type.
type Event struct {
	*window.Window
	reg *Registry
}

// NewEvent binds a loaded window to a registry.
func NewEvent(w *window.Window, reg *Registry) *Event {
	return &Event{Window: w, reg: reg}
}

// Registry returns the registry the event was dispatched from.
func (ev *Event) Registry() *Registry { return ev.reg }

// IsType reports whether a is of type t.
func (ev *Event) IsType(a atom.Atom, t atom.TypeID) bool { return IsType(a, t) }

// IsEmptySite reports whether rel is live and holds an empty atom.
func (ev *Event) IsEmptySite(rel Point) bool {
	a, err := ev.RelativeAtom(rel)
	return err == nil && a.IsEmpty()
}

// IsTypeAt reports whether rel is live and holds an atom of type t.
func (ev *Event) IsTypeAt(rel Point, t atom.TypeID) bool {
	a, err := ev.RelativeAtom(rel)
	return err == nil && a.Type() == t
}
