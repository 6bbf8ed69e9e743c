// Package window provides the bounded neighborhood view a behavior runs against
// during one event.
package window

import (
	"errors"
	"fmt"

	"data-array/pkg/atom"
)

var (
	// ErrOutOfBounds indicates an offset outside the window radius or a site that
	// does not exist in the world.
	ErrOutOfBounds = errors.New("site out of bounds")
	// ErrRadius indicates a window radius outside 0..MaxRadius.
	ErrRadius = errors.New("invalid window radius")
	// ErrSpaceRequired indicates a window built without a backing space.
	ErrSpaceRequired = errors.New("space is required")
)

// Space is the world storage a window reads from and commits to. Points are absolute.
type Space interface {
	Live(p Point) bool
	At(p Point) atom.Atom
	Set(p Point, a atom.Atom)
}

// Window is a single-owner view of the sites around one center. Reads and writes
// go to a private cache; Commit copies written sites back to the space.
type Window struct {
	space  Space
	center Point
	table  *Table

	atoms []atom.Atom
	live  []bool
	dirty []bool
}

// New loads the neighborhood of center into a window of the given radius.
func New(space Space, center Point, radius int) (*Window, error) {
	if space == nil {
		return nil, ErrSpaceRequired
	}
	if radius < 0 || radius > MaxRadius {
		return nil, fmt.Errorf("%w: %d", ErrRadius, radius)
	}
	if !space.Live(center) {
		return nil, fmt.Errorf("%w: center %v", ErrOutOfBounds, center)
	}
	t := MDist(radius)
	w := &Window{
		space:  space,
		center: center,
		table:  t,
		atoms:  make([]atom.Atom, t.Len()),
		live:   make([]bool, t.Len()),
		dirty:  make([]bool, t.Len()),
	}
	for i, rel := range t.Points() {
		abs := center.Add(rel)
		if !space.Live(abs) {
			continue
		}
		w.live[i] = true
		w.atoms[i] = space.At(abs)
	}
	return w, nil
}

// Center returns the absolute coordinate the window is bound to.
func (w *Window) Center() Point { return w.center }

// Radius returns the window radius.
func (w *Window) Radius() int { return w.table.Radius() }

// CenterAtom returns the atom at the bound site.
func (w *Window) CenterAtom() atom.Atom { return w.atoms[0] }

// SetCenterAtom overwrites the atom at the bound site.
func (w *Window) SetCenterAtom(a atom.Atom) {
	w.atoms[0] = a
	w.dirty[0] = true
}

// IsLiveSite reports whether rel is within the radius and exists in the world.
func (w *Window) IsLiveSite(rel Point) bool {
	i, ok := w.table.Index(rel)
	return ok && w.live[i]
}

// RelativeAtom returns the atom at rel. It fails with ErrOutOfBounds when rel is not
// a live site.
func (w *Window) RelativeAtom(rel Point) (atom.Atom, error) {
	i, err := w.slot(rel)
	if err != nil {
		return atom.Atom{}, err
	}
	return w.atoms[i], nil
}

// SetRelativeAtom writes a at rel. It fails with ErrOutOfBounds, leaving the window
// unchanged, when rel is not a live site.
func (w *Window) SetRelativeAtom(rel Point, a atom.Atom) error {
	i, err := w.slot(rel)
	if err != nil {
		return err
	}
	w.atoms[i] = a
	w.dirty[i] = true
	return nil
}

func (w *Window) slot(rel Point) (int, error) {
	i, ok := w.table.Index(rel)
	if !ok || !w.live[i] {
		return 0, fmt.Errorf("%w: offset %v from %v (radius %d)", ErrOutOfBounds, rel, w.center, w.table.Radius())
	}
	return i, nil
}

// Sites returns the live offsets, nearest first.
func (w *Window) Sites() []Point {
	out := make([]Point, 0, len(w.live))
	for i, ok := range w.live {
		if ok {
			out = append(out, w.table.Point(i))
		}
	}
	return out
}

// Dirty returns the number of sites written since the window was loaded.
func (w *Window) Dirty() int {
	n := 0
	for _, d := range w.dirty {
		if d {
			n++
		}
	}
	return n
}

// Commit writes every dirty site back to the space and returns how many were written.
// The window must not be used afterwards.
func (w *Window) Commit() int {
	n := 0
	for i, d := range w.dirty {
		if !d {
			continue
		}
		w.space.Set(w.center.Add(w.table.Point(i)), w.atoms[i])
		w.dirty[i] = false
		n++
	}
	return n
}
