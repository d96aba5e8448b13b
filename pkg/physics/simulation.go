package physics

import (
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
)

// Simulation owns a set of unique entities and fans the per-tick update out
// to each of them. Entities keep their insertion order so runs are
// reproducible.
type Simulation struct {
	entities  []*Entity
	entitySet map[*Entity]struct{}
}

// NewSimulation creates an empty simulation.
func NewSimulation() *Simulation {
	return &Simulation{entitySet: make(map[*Entity]struct{})}
}

// Entities returns the owned entities in insertion order.
func (s *Simulation) Entities() []*Entity { return s.entities }

// AddEntity registers e. Adding nil or an already-present entity is a no-op
// returning false; a fresh entity returns true exactly once.
func (s *Simulation) AddEntity(e *Entity) bool {
	if e == nil {
		return false
	}
	if _, ok := s.entitySet[e]; ok {
		return false
	}
	s.entitySet[e] = struct{}{}
	s.entities = append(s.entities, e)
	return true
}

// AddEntities registers every argument, returning one boolean per argument in
// input order. With no arguments it returns an empty slice.
func (s *Simulation) AddEntities(entities ...*Entity) []bool {
	results := make([]bool, 0, len(entities))
	for _, e := range entities {
		results = append(results, s.AddEntity(e))
	}
	return results
}

// RemoveEntity unregisters e, returning true iff it was present immediately
// before the call.
func (s *Simulation) RemoveEntity(e *Entity) bool {
	if e == nil {
		return false
	}
	if _, ok := s.entitySet[e]; !ok {
		return false
	}
	delete(s.entitySet, e)
	s.entities = removeOrdered(s.entities, e)
	return true
}

// RemoveEntities unregisters every argument, returning one boolean per
// argument in input order.
func (s *Simulation) RemoveEntities(entities ...*Entity) []bool {
	results := make([]bool, 0, len(entities))
	for _, e := range entities {
		results = append(results, s.RemoveEntity(e))
	}
	return results
}

// Update advances every entity by one tick within the given world bounds.
func (s *Simulation) Update(bounds geometry.Rect) {
	for _, e := range s.entities {
		e.Update(bounds)
	}
}
