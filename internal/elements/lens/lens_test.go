package lens

import (
	"testing"

	"data-array/internal/element"
	"data-array/internal/engine"
	"data-array/internal/window"
	"data-array/internal/world"
)

func TestLensIsInert(t *testing.T) {
	reg := element.NewRegistry()
	l := New()
	reg.MustRegister(l)

	g := world.New(3, 3)
	g.Set(window.Point{X: 1, Y: 1}, l.DefaultAtom())
	d := engine.New(reg, g, nil)

	if err := d.Event(window.Point{X: 1, Y: 1}); err != nil {
		t.Fatalf("Event: %v", err)
	}
	if got := d.Stats(); got.Commits != 1 || got.Writes != 0 {
		t.Fatalf("stats = %+v", got)
	}
	if _, r, _ := d.LastWindow(); r != 0 {
		t.Fatalf("window radius = %d, want 0", r)
	}
}

func TestArmLengthRange(t *testing.T) {
	p := New().ArmLength()
	if p.Value() != 5 || p.Min != 1 || p.Max != 10 {
		t.Fatalf("param = %d in [%d, %d]", p.Value(), p.Min, p.Max)
	}
	if got := p.Set(0); got != 1 {
		t.Fatalf("Set(0) = %d", got)
	}
}
