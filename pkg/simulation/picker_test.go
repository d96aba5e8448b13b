package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/physics"
)

func TestNearestPoint(t *testing.T) {
	sim := physics.NewSimulation()
	e := physics.NewEntity(1)

	near := physics.NewPointMass(geometry.NewVector(10, 10), geometry.Vector2D{})
	far := physics.NewPointMass(geometry.NewVector(200, 200), geometry.Vector2D{})
	e.AddPoints(near, far)
	sim.AddEntity(e)

	t.Run("closest point wins", func(t *testing.T) {
		got := NearestPoint(sim, geometry.NewVector(12, 12), 50)
		if got != near {
			t.Errorf("Expected the point at (10,10), got %v", got)
		}
	})

	t.Run("outside the cutoff returns nil", func(t *testing.T) {
		if got := NearestPoint(sim, geometry.NewVector(500, 500), 50); got != nil {
			t.Errorf("Expected nil, got %v", got)
		}
	})

	t.Run("cutoff is exclusive", func(t *testing.T) {
		if got := NearestPoint(sim, geometry.NewVector(60, 10), 50); got != nil {
			t.Errorf("Expected a point exactly at the cutoff to be rejected, got %v", got)
		}
	})

	t.Run("empty simulation returns nil", func(t *testing.T) {
		if got := NearestPoint(physics.NewSimulation(), geometry.NewVector(0, 0), 50); got != nil {
			t.Errorf("Expected nil, got %v", got)
		}
	})
}
