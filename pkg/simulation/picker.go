package simulation

import (
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/physics"
)

// NearestPoint returns the point closest to 'at' across all entities, or nil
// when nothing lies within maxDist. Squared distances avoid Sqrt() in the loop.
func NearestPoint(sim *physics.Simulation, at geometry.Vector2D, maxDist float64) *physics.PointMass {
	bestSq := maxDist * maxDist
	var best *physics.PointMass

	for _, e := range sim.Entities() {
		for _, p := range e.Points() {
			distSq := p.Position.DistanceSquaredTo(at)
			if distSq < bestSq {
				bestSq = distSq
				best = p
			}
		}
	}
	return best
}
