package physics

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
)

func TestSimulation_AddEntity(t *testing.T) {
	sim := NewSimulation()
	e1 := NewEntity(4)
	e2 := NewEntity(4)

	if !sim.AddEntity(e1) {
		t.Error("first AddEntity = false; want true")
	}
	if sim.AddEntity(e1) {
		t.Error("second AddEntity of same entity = true; want false")
	}
	if sim.AddEntity(nil) {
		t.Error("AddEntity(nil) = true; want false")
	}

	got := sim.AddEntities(e2, e1, nil)
	want := []bool{true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AddEntities result[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	if len(sim.AddEntities()) != 0 {
		t.Error("variadic AddEntities with no arguments must return an empty slice")
	}
}

func TestSimulation_RemoveEntity(t *testing.T) {
	sim := NewSimulation()
	e1 := NewEntity(4)
	e2 := NewEntity(4)
	sim.AddEntities(e1, e2)

	if !sim.RemoveEntity(e1) {
		t.Error("RemoveEntity of present entity = false; want true")
	}
	if sim.RemoveEntity(e1) {
		t.Error("RemoveEntity of absent entity = true; want false")
	}
	if sim.RemoveEntity(nil) {
		t.Error("RemoveEntity(nil) = true; want false")
	}

	got := sim.RemoveEntities(e2, e2)
	want := []bool{true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RemoveEntities result[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	if len(sim.Entities()) != 0 {
		t.Errorf("entities left = %d; want 0", len(sim.Entities()))
	}
}

func TestSimulation_UpdateFansOut(t *testing.T) {
	sim := NewSimulation()
	bounds := geometry.NewRect(0, 0, 500, 500)

	mk := func() (*Entity, *PointMass) {
		e := NewEntity(1)
		p := NewPointMass(geometry.Vector2D{X: 100, Y: 100}, geometry.Vector2D{})
		p.Acceleration = geometry.Vector2D{X: 0, Y: 1}
		e.AddPoint(p)
		return e, p
	}

	e1, p1 := mk()
	e2, p2 := mk()
	sim.AddEntities(e1, e2)

	sim.Update(bounds)

	for i, p := range []*PointMass{p1, p2} {
		want := geometry.Vector2D{X: 100, Y: 101}
		if !p.Position.Eq(want) {
			t.Errorf("entity %d point = %v; want %v", i+1, p.Position, want)
		}
	}
}
