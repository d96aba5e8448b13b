package physics

import (
	"math"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
)

const (
	// DefaultPointRadius is the visual/interaction radius given to new points.
	// It is also the inset used when clamping a point against the world bounds,
	// so the circle's edge rather than its center stays inside.
	DefaultPointRadius = 4.0

	// MinMass is the smallest storable mass. Masses are clamped into
	// (MinMass, math.MaxFloat64] so the ratio massA/(massA+massB) used by
	// spring relaxation is always well defined.
	MinMass = math.SmallestNonzeroFloat64
)

// PointMass is a single integrated particle. Velocity is never stored: it is
// inferred each tick from Position - Previous (Verlet integration), so
// overwriting Position directly, as the pointer-drag layer does, is safe.
type PointMass struct {
	Position     geometry.Vector2D
	Previous     geometry.Vector2D
	Acceleration geometry.Vector2D // constant per-point acceleration, e.g. gravity
	Fixed        bool              // anchors the point: Update and spring corrections leave it alone
	Radius       float64

	mass     float64
	friction float64
}

// NewPointMass creates a particle at the given position with mass 1, zero
// friction and the default radius. A non-zero initial velocity is encoded as
// Previous = position + velocity, so the very first Update applies the
// supplied velocity with its sign inverted; callers that want the motion to
// start in the direction of v must pass its negation. See DESIGN.md.
func NewPointMass(position, velocity geometry.Vector2D) *PointMass {
	p := &PointMass{
		Position: position,
		Previous: position,
		Radius:   DefaultPointRadius,
		mass:     1,
	}
	if !velocity.IsZero() {
		p.Previous = position.Add(velocity)
	}
	return p
}

// Mass returns the stored mass.
func (p *PointMass) Mass() float64 { return p.mass }

// SetMass stores the absolute value of m clamped into (MinMass, MaxFloat64]
// and returns the stored value together with a flag reporting whether the
// input had to be adjusted. NaN clamps to the lower bound.
func (p *PointMass) SetMass(m float64) (float64, bool) {
	v := math.Abs(m)
	clamped := v != m
	switch {
	case math.IsNaN(v) || v < MinMass:
		v = MinMass
		clamped = true
	case v > math.MaxFloat64: // +Inf
		v = math.MaxFloat64
		clamped = true
	}
	p.mass = v
	return v, clamped
}

// Friction returns the stored friction.
func (p *PointMass) Friction() float64 { return p.friction }

// SetFriction stores f clamped into [0, 1] and returns the stored value plus
// a flag reporting whether clamping occurred. NaN clamps to 0.
func (p *PointMass) SetFriction(f float64) (float64, bool) {
	switch {
	case math.IsNaN(f) || f < 0:
		p.friction = 0
		return 0, true
	case f > 1:
		p.friction = 1
		return 1, true
	}
	p.friction = f
	return f, false
}

// Velocity returns the implicit velocity, the raw position delta of the last
// step before damping.
func (p *PointMass) Velocity() geometry.Vector2D {
	return p.Position.Sub(p.Previous)
}

// Update advances the particle by one tick of semi-implicit Verlet:
//
//	velocity = (Position - Previous) * (1 - friction)
//	Previous = Position
//	Position += velocity + Acceleration
//
// Friction damps only the inferred velocity term, never the acceleration
// term: a point at rest under gravity still accelerates at a constant rate
// per tick even with friction 1. Fixed points are left untouched.
func (p *PointMass) Update() {
	if p.Fixed {
		return
	}
	velocity := p.Position.Sub(p.Previous).Mul(1 - p.friction)
	p.Previous = p.Position
	p.Position = p.Position.Add(velocity).Add(p.Acceleration)
}

// ClearVelocity rewrites history so the next inferred velocity is exactly
// zero. The drag layer calls this on release to let go of a point without an
// instantaneous velocity snapshot from the drag.
func (p *PointMass) ClearVelocity() {
	p.Previous = p.Position
}
