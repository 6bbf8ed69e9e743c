package element

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"data-array/internal/window"
	"data-array/pkg/atom"
)

var (
	// ErrRegistryRequired indicates a nil registry.
	ErrRegistryRequired = errors.New("registry is required")
	// ErrElementRequired indicates a nil element.
	ErrElementRequired = errors.New("element is required")
	// ErrNameRequired indicates an element without a name.
	ErrNameRequired = errors.New("element name is required")
	// ErrDuplicateType indicates a type tag already owned by a different element.
	ErrDuplicateType = errors.New("duplicate element type")
	// ErrUnknownType indicates a type tag with no registered element.
	ErrUnknownType = errors.New("unknown element type")
	// ErrTypeMismatch indicates an element whose Type disagrees with its identity.
	ErrTypeMismatch = errors.New("element type does not match identity")
	// ErrInvalidLayout indicates a malformed or overlapping field layout.
	ErrInvalidLayout = errors.New("invalid element field layout")
	// ErrInvalidParam indicates a malformed parameter.
	ErrInvalidParam = errors.New("invalid element parameter")
	// ErrInvalidRadius indicates an event window radius outside 0..window.MaxRadius.
	ErrInvalidRadius = errors.New("invalid element radius")
	// ErrUnknownParam indicates a parameter key no element owns.
	ErrUnknownParam = errors.New("unknown element parameter")
)

// Registry maps type tags to elements. It is built at start-up and read
// concurrently afterwards.
type Registry struct {
	mu     sync.RWMutex
	byType map[atom.TypeID]Element
	byName map[string]Element
	order  []Element
}

// NewRegistry returns a registry that already holds the Empty element.
func NewRegistry() *Registry {
	r := &Registry{
		byType: make(map[atom.TypeID]Element),
		byName: make(map[string]Element),
	}
	r.add(newEmpty())
	return r
}

func (r *Registry) add(e Element) {
	r.byType[e.Type()] = e
	id := e.Identity()
	if prev, ok := r.byName[id.Name]; !ok || prev.Identity().Version < id.Version {
		r.byName[id.Name] = e
	}
	r.order = append(r.order, e)
}

// Register adds e and returns its type tag. Registering the same element twice is a
// no-op; a different element resolving to an owned tag fails with ErrDuplicateType.
func (r *Registry) Register(e Element) (atom.TypeID, error) {
	if r == nil {
		return 0, ErrRegistryRequired
	}
	if e == nil {
		return 0, ErrElementRequired
	}
	id := e.Identity()
	if strings.TrimSpace(id.Name) == "" {
		return 0, ErrNameRequired
	}
	t := id.TypeID()
	if e.Type() != t {
		return 0, fmt.Errorf("%w: %s reports %#08x, derived %#08x", ErrTypeMismatch, id, uint32(e.Type()), uint32(t))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byType[t]; ok {
		if existing == e {
			return t, nil
		}
		return 0, fmt.Errorf("%w: %s and %s both map to %#08x", ErrDuplicateType, existing.Identity(), id, uint32(t))
	}
	if rad := e.Radius(); rad < 0 || rad > window.MaxRadius {
		return 0, fmt.Errorf("%w: %s radius %d", ErrInvalidRadius, id, rad)
	}
	if err := CheckFields(e.Fields()); err != nil {
		return 0, fmt.Errorf("%s: %w", id, err)
	}
	seen := make(map[string]bool)
	for _, p := range e.Params() {
		if p == nil {
			return 0, fmt.Errorf("%w: %s has a nil parameter", ErrInvalidParam, id)
		}
		if err := p.validate(); err != nil {
			return 0, fmt.Errorf("%s: %w", id, err)
		}
		if seen[p.Key] {
			return 0, fmt.Errorf("%w: %s repeats key %q", ErrInvalidParam, id, p.Key)
		}
		seen[p.Key] = true
	}

	r.add(e)
	return t, nil
}

// MustRegister is like Register but panics on failure. Use it only during start-up.
func (r *Registry) MustRegister(e Element) atom.TypeID {
	t, err := r.Register(e)
	if err != nil {
		panic(fmt.Sprintf("element: register: %v", err))
	}
	return t
}

// TypeOf resolves a type tag to its element.
func (r *Registry) TypeOf(t atom.TypeID) (Element, error) {
	if r == nil {
		return nil, ErrRegistryRequired
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byType[t]
	if !ok {
		return nil, fmt.Errorf("%w: %#08x", ErrUnknownType, uint32(t))
	}
	return e, nil
}

// IsType reports whether a has type tag t.
func (r *Registry) IsType(a atom.Atom, t atom.TypeID) bool { return IsType(a, t) }

// IsType reports whether a has type tag t.
func IsType(a atom.Atom, t atom.TypeID) bool { return a.Type() == t }

// DefaultAtom returns the canonical new atom of type t.
func (r *Registry) DefaultAtom(t atom.TypeID) (atom.Atom, error) {
	e, err := r.TypeOf(t)
	if err != nil {
		return atom.Atom{}, err
	}
	return e.DefaultAtom(), nil
}

// Lookup returns the element registered under name. When several versions of name
// are registered it returns the highest one.
func (r *Registry) Lookup(name string) (Element, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	return e, ok
}

// Elements returns every element in registration order, Empty first.
func (r *Registry) Elements() []Element {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Element(nil), r.order...)
}

// Index returns the registration position of t, or -1.
func (r *Registry) Index(t atom.TypeID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, e := range r.order {
		if e.Type() == t {
			return i
		}
	}
	return -1
}

// ParamKey joins an element name and a parameter key, e.g. "Antenna.length".
func ParamKey(elementName, key string) string { return elementName + "." + key }

// Param resolves a key built by ParamKey against the element Lookup returns.
func (r *Registry) Param(key string) (*Param, error) {
	name, pkey, ok := strings.Cut(key, ".")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	e, found := r.Lookup(name)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	for _, p := range e.Params() {
		if p.Key == pkey {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParam, key)
}

// SetParam sets the parameter named by key and returns the clamped stored value.
func (r *Registry) SetParam(key string, v int32) (int32, error) {
	p, err := r.Param(key)
	if err != nil {
		return 0, err
	}
	return p.Set(v), nil
}
