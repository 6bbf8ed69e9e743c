package light

import (
	"io"
	"log/slog"
	"testing"

	"data-array/internal/element"
	"data-array/internal/elements/dir"
	"data-array/internal/engine"
	"data-array/internal/window"
	"data-array/internal/world"
)

func setup(t *testing.T) (*Light, *world.Grid, *engine.Dispatcher) {
	t.Helper()
	reg := element.NewRegistry()
	l := New()
	reg.MustRegister(l)
	g := world.New(5, 5)
	return l, g, engine.New(reg, g, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLightMovesForward(t *testing.T) {
	l, g, d := setup(t)
	center := window.Point{X: 2, Y: 2}
	g.Set(center, l.NewAtomWithDirection(dir.Up))

	if err := d.Event(center); err != nil {
		t.Fatalf("Event: %v", err)
	}
	ahead := g.At(window.Point{X: 2, Y: 1})
	if !l.IsType(ahead) || l.Direction(ahead) != dir.Up {
		t.Fatalf("ahead = %s", ahead)
	}
	if !l.IsType(g.At(center)) {
		t.Fatal("center changed")
	}
}

func TestLightDoesNotOverwriteLight(t *testing.T) {
	l, g, d := setup(t)
	center := window.Point{X: 2, Y: 2}
	g.Set(center, l.NewAtomWithDirection(dir.Up))
	g.Set(window.Point{X: 2, Y: 1}, l.NewAtomWithDirection(dir.Left))

	if err := d.Event(center); err != nil {
		t.Fatalf("Event: %v", err)
	}
	if d.Stats().Writes != 0 {
		t.Fatalf("writes = %d, want 0", d.Stats().Writes)
	}
	if got := l.Direction(g.At(window.Point{X: 2, Y: 1})); got != dir.Left {
		t.Fatalf("existing light turned %s", got)
	}
}

func TestLightErasesTrail(t *testing.T) {
	l, g, d := setup(t)
	center := window.Point{X: 2, Y: 2}
	g.Set(center, l.NewAtomWithDirection(dir.Right))
	g.Set(window.Point{X: 1, Y: 2}, l.NewAtomWithDirection(dir.Right))

	if err := d.Event(center); err != nil {
		t.Fatalf("Event: %v", err)
	}
	if !g.At(window.Point{X: 1, Y: 2}).IsEmpty() {
		t.Fatal("trail behind the light was not cleared")
	}
	if !l.IsType(g.At(window.Point{X: 3, Y: 2})) {
		t.Fatal("light did not advance")
	}
}

func TestLightAtEdge(t *testing.T) {
	l, g, d := setup(t)
	center := window.Point{X: 0, Y: 2}
	g.Set(center, l.NewAtomWithDirection(dir.Left))

	if err := d.Event(center); err != nil {
		t.Fatalf("Event: %v", err)
	}
	if d.Stats().Writes != 0 {
		t.Fatalf("writes = %d, want 0", d.Stats().Writes)
	}
}

func TestDefaultAtomFollowsParam(t *testing.T) {
	l := New()
	p, ok := l.Param("direction")
	if !ok {
		t.Fatal("missing direction param")
	}
	p.Set(int32(dir.DownRight))
	if got := l.Direction(l.DefaultAtom()); got != dir.DownRight {
		t.Fatalf("default direction = %s", got)
	}
}
