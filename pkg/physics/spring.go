package physics

import (
	"errors"
	"math"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
)

// MinStiffness is the floor applied to stiffness and rest length values.
const MinStiffness = math.SmallestNonzeroFloat64

var (
	ErrNilPoint         = errors.New("spring constraint requires two non-nil points")
	ErrDegenerateSpring = errors.New("spring constraint endpoints must be distinct points")
)

// SpringConstraint is a bidirectional distance constraint between two points.
// The references are non-owning: the entity (or entities) that registered the
// points own them, and a spring may span two different entities. One call to
// Update applies a single Gauss-Seidel style relaxation pass; convergence
// toward equilibrium needs repeated passes, which Entity.Update drives.
type SpringConstraint struct {
	a, b       *PointMass
	stiffness  float64
	restLength float64
}

// NewSpringConstraint builds a spring between a and b whose rest length is the
// Euclidean distance between the two points at this instant. The rest length
// never auto-updates afterwards.
func NewSpringConstraint(a, b *PointMass, stiffness float64) (*SpringConstraint, error) {
	if a == nil || b == nil {
		return nil, ErrNilPoint
	}
	return NewSpringConstraintWithRest(a, b, stiffness, a.Position.DistanceTo(b.Position))
}

// NewSpringConstraintWithRest builds a spring with an explicit rest length.
func NewSpringConstraintWithRest(a, b *PointMass, stiffness, restLength float64) (*SpringConstraint, error) {
	if a == nil || b == nil {
		return nil, ErrNilPoint
	}
	if a == b {
		return nil, ErrDegenerateSpring
	}
	s := &SpringConstraint{a: a, b: b}
	s.SetStiffness(stiffness)
	s.SetRestLength(restLength)
	return s, nil
}

// A returns the first endpoint.
func (s *SpringConstraint) A() *PointMass { return s.a }

// B returns the second endpoint.
func (s *SpringConstraint) B() *PointMass { return s.b }

// Stiffness returns the stored stiffness.
func (s *SpringConstraint) Stiffness() float64 { return s.stiffness }

// SetStiffness stores the absolute value of k floored at MinStiffness and
// returns the stored value plus a flag reporting whether clamping occurred.
func (s *SpringConstraint) SetStiffness(k float64) (float64, bool) {
	v, clamped := clampPositive(k)
	s.stiffness = v
	return v, clamped
}

// RestLength returns the stored rest length.
func (s *SpringConstraint) RestLength() float64 { return s.restLength }

// SetRestLength stores the absolute value of l floored at MinStiffness and
// returns the stored value plus a flag reporting whether clamping occurred.
func (s *SpringConstraint) SetRestLength(l float64) (float64, bool) {
	v, clamped := clampPositive(l)
	s.restLength = v
	return v, clamped
}

func clampPositive(x float64) (float64, bool) {
	v := math.Abs(x)
	clamped := v != x
	if math.IsNaN(v) || v < MinStiffness {
		return MinStiffness, true
	}
	return v, clamped
}

// Update applies one relaxation pass:
//
//	d        = b.Position - a.Position
//	restDiff = (restLength - |d|) / |d| * stiffness
//	offset   = d * restDiff * 0.5
//
// The correction is split by the opposite endpoint's mass ratio, so the
// lighter point absorbs more of it; a fixed endpoint takes none. Coincident
// endpoints (|d| below epsilon) make restDiff undefined, so the pass is
// skipped entirely rather than propagating NaN.
func (s *SpringConstraint) Update() {
	if s.a.Fixed && s.b.Fixed {
		return
	}
	delta := s.b.Position.Sub(s.a.Position)
	dist := delta.Len()
	if dist < geometry.Epsilon {
		return
	}
	restDiff := (s.restLength - dist) / dist * s.stiffness
	offset := delta.Mul(restDiff * 0.5)
	total := s.a.mass + s.b.mass
	if !s.a.Fixed {
		s.a.Position = s.a.Position.Sub(offset.Mul(s.b.mass / total))
	}
	if !s.b.Fixed {
		s.b.Position = s.b.Position.Add(offset.Mul(s.a.mass / total))
	}
}
