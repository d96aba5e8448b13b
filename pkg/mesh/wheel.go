package mesh

import (
	"math"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/physics"
)

const DefaultWheelRadius = 60.0

// WheelConfig parameterizes a closed n-gon braced by spokes: a rim of Sides
// points joined in a ring, plus a hub point at the center connected to every
// rim vertex. The bracing keeps the polygon from collapsing under load.
type WheelConfig struct {
	Sides       int     // rim vertex count, clamped to at least 3
	Radius      float64 // rim radius
	Center      geometry.Vector2D
	Stiffness   float64
	Friction    float64
	Mass        float64
	Gravity     geometry.Vector2D
	Iterations  int
	PointRadius float64

	// Pinned reports whether rim vertex i is fixed; the hub is never pinned.
	// Nil means nothing is pinned and the wheel tumbles freely.
	Pinned func(i int) bool
}

// Wheel builds the ring-with-spokes body. Rim vertices sit at equal angles
// around Center; ring and spoke rest lengths are taken from the initial
// distances.
func Wheel(cfg WheelConfig) (*physics.Entity, error) {
	sides := clampInt(cfg.Sides, 3)
	radius := defaultFloat(cfg.Radius, DefaultWheelRadius)
	stiffness := defaultFloat(cfg.Stiffness, DefaultStiffness)
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = physics.DefaultIterations
	}

	e := physics.NewEntity(iterations)

	hub := newWheelPoint(cfg, cfg.Center)
	e.AddPoint(hub)

	rim := make([]*physics.PointMass, sides)
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		p := newWheelPoint(cfg, cfg.Center.Add(geometry.NewVectorPolar(radius, theta)))
		if cfg.Pinned != nil && cfg.Pinned(i) {
			p.Fixed = true
		}
		rim[i] = p
		e.AddPoint(p)
	}

	for i := 0; i < sides; i++ {
		// ring edge to the next vertex, wrapping around
		if err := link(e, rim[i], rim[(i+1)%sides], stiffness); err != nil {
			return nil, err
		}
		// bracing spoke to the hub
		if err := link(e, hub, rim[i], stiffness); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func newWheelPoint(cfg WheelConfig, pos geometry.Vector2D) *physics.PointMass {
	p := physics.NewPointMass(pos, geometry.Vector2D{})
	p.Acceleration = cfg.Gravity
	if cfg.Mass != 0 {
		p.SetMass(cfg.Mass)
	}
	p.SetFriction(cfg.Friction)
	if cfg.PointRadius > 0 {
		p.Radius = cfg.PointRadius
	}
	return p
}
