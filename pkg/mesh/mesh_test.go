package mesh

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
)

func TestCloth_Topology(t *testing.T) {
	cols, rows := 5, 4
	e, err := Cloth(ClothConfig{
		Cols:    cols,
		Rows:    rows,
		Spacing: 25,
		Origin:  geometry.Vector2D{X: 100, Y: 50},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(e.Points()), cols*rows; got != want {
		t.Errorf("point count = %d; want %d", got, want)
	}
	// structural springs: (cols-1)*rows horizontal + cols*(rows-1) vertical
	if got, want := len(e.Springs()), (cols-1)*rows+cols*(rows-1); got != want {
		t.Errorf("spring count = %d; want %d", got, want)
	}

	// Default predicate pins exactly the top row.
	pinnedCount := 0
	for _, p := range e.Points() {
		if p.Fixed {
			pinnedCount++
			if p.Position.Y != 50 {
				t.Errorf("pinned point at y=%v; want top row y=50", p.Position.Y)
			}
		}
	}
	if pinnedCount != cols {
		t.Errorf("pinned count = %d; want %d", pinnedCount, cols)
	}

	// Neighbor springs rest at the grid spacing.
	for _, s := range e.Springs() {
		if math.Abs(s.RestLength()-25) > geometry.Epsilon {
			t.Errorf("spring rest length = %v; want 25", s.RestLength())
		}
	}
}

func TestCloth_ClampsDegenerateParameters(t *testing.T) {
	e, err := Cloth(ClothConfig{Cols: -3, Rows: 0, Spacing: -10})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(e.Points()); got != 4 {
		t.Errorf("point count = %d; want 4 (clamped to 2x2)", got)
	}
	if e.Iterations() < 1 {
		t.Errorf("iterations = %d; want at least 1", e.Iterations())
	}
}

func TestCloth_CustomCallbacks(t *testing.T) {
	e, err := Cloth(ClothConfig{
		Cols: 3,
		Rows: 3,
		Pinned: func(col, row int) bool {
			return col == 0 && row == 0 // only the top-left corner
		},
		MassOf: func(col, row int) float64 {
			return float64(row + 1) // rows get heavier toward the bottom
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	pinned := 0
	for _, p := range e.Points() {
		if p.Fixed {
			pinned++
		}
	}
	if pinned != 1 {
		t.Errorf("pinned count = %d; want 1", pinned)
	}

	// Points are added row-major, so the last point sits on the bottom row
	points := e.Points()
	if got := points[0].Mass(); got != 1 {
		t.Errorf("top row mass = %v; want 1", got)
	}
	if got := points[len(points)-1].Mass(); got != 3 {
		t.Errorf("bottom row mass = %v; want 3", got)
	}
}

func TestWheel_Topology(t *testing.T) {
	sides := 8
	radius := 50.0
	center := geometry.Vector2D{X: 300, Y: 300}
	e, err := Wheel(WheelConfig{Sides: sides, Radius: radius, Center: center})
	if err != nil {
		t.Fatal(err)
	}

	// hub + rim
	if got, want := len(e.Points()), sides+1; got != want {
		t.Errorf("point count = %d; want %d", got, want)
	}
	// ring edges + spokes
	if got, want := len(e.Springs()), 2*sides; got != want {
		t.Errorf("spring count = %d; want %d", got, want)
	}

	// First registered point is the hub at the center; rim vertices sit on
	// the circle.
	hub := e.Points()[0]
	if !hub.Position.Eq(center) {
		t.Errorf("hub at %v; want %v", hub.Position, center)
	}
	for _, p := range e.Points()[1:] {
		if d := p.Position.DistanceTo(center); math.Abs(d-radius) > geometry.Epsilon {
			t.Errorf("rim vertex at distance %v from center; want %v", d, radius)
		}
	}

	// Spokes rest at the rim radius.
	spokes := 0
	for _, s := range e.Springs() {
		if s.A() == hub || s.B() == hub {
			spokes++
			if math.Abs(s.RestLength()-radius) > geometry.Epsilon {
				t.Errorf("spoke rest length = %v; want %v", s.RestLength(), radius)
			}
		}
	}
	if spokes != sides {
		t.Errorf("spoke count = %d; want %d", spokes, sides)
	}
}

func TestWheel_ClampsDegenerateParameters(t *testing.T) {
	e, err := Wheel(WheelConfig{Sides: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(e.Points()); got != 4 {
		t.Errorf("point count = %d; want 4 (clamped to triangle plus hub)", got)
	}
}

func TestWheel_PinnedPredicate(t *testing.T) {
	e, err := Wheel(WheelConfig{
		Sides:  6,
		Pinned: func(i int) bool { return i == 0 },
	})
	if err != nil {
		t.Fatal(err)
	}

	if e.Points()[0].Fixed {
		t.Error("hub must never be pinned")
	}
	pinned := 0
	for _, p := range e.Points()[1:] {
		if p.Fixed {
			pinned++
		}
	}
	if pinned != 1 {
		t.Errorf("pinned rim vertices = %d; want 1", pinned)
	}
}
