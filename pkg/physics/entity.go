// Package physics implements the position-based Verlet core: point masses,
// spring constraints, boundary clamping, and the fixed-budget iterative
// solver that ties them together.
package physics

import (
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
)

// DefaultIterations is the relaxation budget used when none is configured.
const DefaultIterations = 16

// Entity is one deformable body: it exclusively owns a set of point masses
// and a set of spring constraints solved together each tick. Points and
// springs keep their insertion order, so the relaxation trajectory is
// deterministic and reproducible; the companion sets give O(1) membership
// checks for the add/remove operations.
type Entity struct {
	points    []*PointMass
	pointSet  map[*PointMass]struct{}
	springs   []*SpringConstraint
	springSet map[*SpringConstraint]struct{}

	iterations int
}

// NewEntity creates an empty body with the given relaxation budget, clamped
// to at least 1.
func NewEntity(iterations int) *Entity {
	e := &Entity{
		pointSet:  make(map[*PointMass]struct{}),
		springSet: make(map[*SpringConstraint]struct{}),
	}
	e.SetIterations(iterations)
	return e
}

// Iterations returns the per-tick relaxation pass count.
func (e *Entity) Iterations() int { return e.iterations }

// SetIterations stores n clamped to at least 1 and returns the stored value
// plus a flag reporting whether clamping occurred.
func (e *Entity) SetIterations(n int) (int, bool) {
	if n < 1 {
		e.iterations = 1
		return 1, true
	}
	e.iterations = n
	return n, false
}

// Points returns the owned points in insertion order.
func (e *Entity) Points() []*PointMass { return e.points }

// Springs returns the owned springs in insertion order.
func (e *Entity) Springs() []*SpringConstraint { return e.springs }

// AddPoint registers p. Adding nil or an already-present point is a no-op
// returning false.
func (e *Entity) AddPoint(p *PointMass) bool {
	if p == nil {
		return false
	}
	if _, ok := e.pointSet[p]; ok {
		return false
	}
	e.pointSet[p] = struct{}{}
	e.points = append(e.points, p)
	return true
}

// AddPoints registers every argument, returning one boolean per argument in
// input order. With no arguments it returns an empty slice.
func (e *Entity) AddPoints(points ...*PointMass) []bool {
	results := make([]bool, 0, len(points))
	for _, p := range points {
		results = append(results, e.AddPoint(p))
	}
	return results
}

// RemovePoint unregisters p, returning true iff it was present. Springs of
// this entity that reference p are removed along with it, so the solver never
// relaxes against a point the body no longer owns.
func (e *Entity) RemovePoint(p *PointMass) bool {
	if p == nil {
		return false
	}
	if _, ok := e.pointSet[p]; !ok {
		return false
	}
	delete(e.pointSet, p)
	e.points = removeOrdered(e.points, p)
	for _, s := range e.springs {
		if s.a == p || s.b == p {
			delete(e.springSet, s)
		}
	}
	kept := e.springs[:0]
	for _, s := range e.springs {
		if _, ok := e.springSet[s]; ok {
			kept = append(kept, s)
		}
	}
	e.springs = kept
	return true
}

// RemovePoints unregisters every argument, returning one boolean per argument
// in input order.
func (e *Entity) RemovePoints(points ...*PointMass) []bool {
	results := make([]bool, 0, len(points))
	for _, p := range points {
		results = append(results, e.RemovePoint(p))
	}
	return results
}

// AddSpring registers s. Adding nil or an already-present spring is a no-op
// returning false.
func (e *Entity) AddSpring(s *SpringConstraint) bool {
	if s == nil {
		return false
	}
	if _, ok := e.springSet[s]; ok {
		return false
	}
	e.springSet[s] = struct{}{}
	e.springs = append(e.springs, s)
	return true
}

// AddSprings registers every argument, returning one boolean per argument in
// input order.
func (e *Entity) AddSprings(springs ...*SpringConstraint) []bool {
	results := make([]bool, 0, len(springs))
	for _, s := range springs {
		results = append(results, e.AddSpring(s))
	}
	return results
}

// RemoveSpring unregisters s, returning true iff it was present.
func (e *Entity) RemoveSpring(s *SpringConstraint) bool {
	if s == nil {
		return false
	}
	if _, ok := e.springSet[s]; !ok {
		return false
	}
	delete(e.springSet, s)
	e.springs = removeOrdered(e.springs, s)
	return true
}

// RemoveSprings unregisters every argument, returning one boolean per
// argument in input order.
func (e *Entity) RemoveSprings(springs ...*SpringConstraint) []bool {
	results := make([]bool, 0, len(springs))
	for _, s := range springs {
		results = append(results, e.RemoveSpring(s))
	}
	return results
}

// Update runs one tick of the solve pipeline:
//
//  1. integrate every point once, then clamp every point into bounds using
//     its own radius as inset;
//  2. repeat iterations times: clamp every point again (spring corrections
//     may have pushed points outside since the last clamp), then relax every
//     spring once.
//
// Boundary and spring corrections are not independent, so both are re-applied
// every pass until the budget is spent. The solver never checks convergence:
// it is a fixed-budget approximation, not a residual-driven one. An entity
// with no points returns immediately; one with no springs stops after the
// integrate+clamp phase (pure particle system).
func (e *Entity) Update(bounds geometry.Rect) {
	if len(e.points) == 0 {
		return
	}
	for _, p := range e.points {
		p.Update()
	}
	for _, p := range e.points {
		p.Position = bounds.Clamp(p.Position, p.Radius)
	}
	if len(e.springs) == 0 {
		return
	}
	for i := 0; i < e.iterations; i++ {
		for _, p := range e.points {
			p.Position = bounds.Clamp(p.Position, p.Radius)
		}
		for _, s := range e.springs {
			s.Update()
		}
	}
}

// removeOrdered deletes the first occurrence of v from s, preserving order.
func removeOrdered[T comparable](s []T, v T) []T {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
