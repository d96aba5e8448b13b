// Package mesh provides the topology builders: free functions that populate
// a physics.Entity from validated parameters, using small strategy callbacks
// (pin predicate, mass generator) instead of specialized entity types. They
// only ever call the core constructors, so they can be swapped out without
// touching the solver.
package mesh

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/physics"
)

const (
	DefaultSpacing   = 20.0
	DefaultStiffness = 0.9
)

// ClothConfig parameterizes a rectangular cloth sheet. Zero-value fields fall
// back to defaults; out-of-range numerics are clamped, not rejected.
type ClothConfig struct {
	Cols, Rows  int               // grid size, clamped to at least 2x2
	Spacing     float64           // rest distance between neighbors
	Origin      geometry.Vector2D // top-left point position
	Stiffness   float64
	Friction    float64
	Mass        float64
	Gravity     geometry.Vector2D
	Iterations  int
	PointRadius float64

	// Pinned reports whether the point at (col, row) is fixed. When nil the
	// whole top row is pinned, which is what a hanging sheet wants.
	Pinned func(col, row int) bool

	// MassOf generates a per-point mass, overriding Mass when set.
	MassOf func(col, row int) float64
}

// Cloth builds a cols x rows grid of points joined by horizontal and vertical
// structural springs. Rest lengths are taken from the initial point distances.
func Cloth(cfg ClothConfig) (*physics.Entity, error) {
	cols := clampInt(cfg.Cols, 2)
	rows := clampInt(cfg.Rows, 2)
	spacing := defaultFloat(cfg.Spacing, DefaultSpacing)
	stiffness := defaultFloat(cfg.Stiffness, DefaultStiffness)
	pinned := cfg.Pinned
	if pinned == nil {
		pinned = func(col, row int) bool { return row == 0 }
	}
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = physics.DefaultIterations
	}

	e := physics.NewEntity(iterations)

	grid := make([][]*physics.PointMass, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]*physics.PointMass, cols)
		for col := 0; col < cols; col++ {
			pos := cfg.Origin.Add(geometry.Vector2D{X: float64(col) * spacing, Y: float64(row) * spacing})
			p := physics.NewPointMass(pos, geometry.Vector2D{})
			p.Fixed = pinned(col, row)
			p.Acceleration = cfg.Gravity
			if cfg.MassOf != nil {
				p.SetMass(cfg.MassOf(col, row))
			} else if cfg.Mass != 0 {
				p.SetMass(cfg.Mass)
			}
			p.SetFriction(cfg.Friction)
			if cfg.PointRadius > 0 {
				p.Radius = cfg.PointRadius
			}
			grid[row][col] = p
			e.AddPoint(p)
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col > 0 {
				if err := link(e, grid[row][col-1], grid[row][col], stiffness); err != nil {
					return nil, err
				}
			}
			if row > 0 {
				if err := link(e, grid[row-1][col], grid[row][col], stiffness); err != nil {
					return nil, err
				}
			}
		}
	}

	return e, nil
}

func link(e *physics.Entity, a, b *physics.PointMass, stiffness float64) error {
	s, err := physics.NewSpringConstraint(a, b, stiffness)
	if err != nil {
		return fmt.Errorf("failed to link mesh points: %w", err)
	}
	e.AddSpring(s)
	return nil
}

func clampInt(n, min int) int {
	if n < min {
		return min
	}
	return n
}

func defaultFloat(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
