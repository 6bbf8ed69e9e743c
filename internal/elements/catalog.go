// Package elements assembles the built-in element catalog.
package elements

import (
	"fmt"

	"data-array/internal/element"
	"data-array/internal/elements/antenna"
	"data-array/internal/elements/box"
	"data-array/internal/elements/emitter"
	"data-array/internal/elements/lens"
	"data-array/internal/elements/light"
)

// Catalog returns fresh instances of every built-in element, in palette order.
// Instances carry their own parameter values, so each world should use its own.
func Catalog() []element.Element {
	return []element.Element{
		antenna.New(),
		light.New(),
		emitter.New(),
		box.New(),
		lens.New(),
	}
}

// Register adds every element of Catalog to reg.
func Register(reg *element.Registry) error {
	for _, e := range Catalog() {
		if _, err := reg.Register(e); err != nil {
			return fmt.Errorf("register %s: %w", e.Identity(), err)
		}
	}
	return nil
}

// NewRegistry returns a registry holding Empty and the built-in catalog.
func NewRegistry() (*element.Registry, error) {
	reg := element.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
