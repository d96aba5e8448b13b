package physics

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
)

var testBounds = geometry.NewRect(0, 0, 1000, 1000)

func TestEntity_IterationsClamped(t *testing.T) {
	e := NewEntity(0)
	if e.Iterations() != 1 {
		t.Errorf("NewEntity(0) iterations = %d; want 1", e.Iterations())
	}

	got, clamped := e.SetIterations(-5)
	if got != 1 || !clamped {
		t.Errorf("SetIterations(-5) = (%d, %v); want (1, true)", got, clamped)
	}

	got, clamped = e.SetIterations(32)
	if got != 32 || clamped {
		t.Errorf("SetIterations(32) = (%d, %v); want (32, false)", got, clamped)
	}
}

func TestEntity_EmptyUpdateIsNoop(t *testing.T) {
	e := NewEntity(8)
	e.Update(testBounds) // must not panic, must not allocate work
	if len(e.Points()) != 0 || len(e.Springs()) != 0 {
		t.Error("empty entity gained members from Update")
	}
}

func TestEntity_PointMembership(t *testing.T) {
	e := NewEntity(1)
	p1 := NewPointMass(geometry.Vector2D{X: 1, Y: 1}, geometry.Vector2D{})
	p2 := NewPointMass(geometry.Vector2D{X: 2, Y: 2}, geometry.Vector2D{})

	if !e.AddPoint(p1) {
		t.Error("first AddPoint = false; want true")
	}
	if e.AddPoint(p1) {
		t.Error("duplicate AddPoint = true; want false")
	}
	if e.AddPoint(nil) {
		t.Error("AddPoint(nil) = true; want false")
	}

	got := e.AddPoints(p2, p1, nil)
	want := []bool{true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AddPoints result[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	if len(e.AddPoints()) != 0 {
		t.Error("variadic AddPoints with no arguments must return an empty slice")
	}

	if !e.RemovePoint(p1) {
		t.Error("RemovePoint of present point = false; want true")
	}
	if e.RemovePoint(p1) {
		t.Error("RemovePoint of absent point = true; want false")
	}

	// Insertion order survives removal.
	if len(e.Points()) != 1 || e.Points()[0] != p2 {
		t.Errorf("points after removal = %v; want just p2", e.Points())
	}
}

func TestEntity_RemovePointDropsItsSprings(t *testing.T) {
	e := NewEntity(1)
	p1 := NewPointMass(geometry.Vector2D{X: 0, Y: 0}, geometry.Vector2D{})
	p2 := NewPointMass(geometry.Vector2D{X: 10, Y: 0}, geometry.Vector2D{})
	p3 := NewPointMass(geometry.Vector2D{X: 20, Y: 0}, geometry.Vector2D{})
	e.AddPoints(p1, p2, p3)

	s12, err := NewSpringConstraint(p1, p2, 1)
	if err != nil {
		t.Fatal(err)
	}
	s23, err := NewSpringConstraint(p2, p3, 1)
	if err != nil {
		t.Fatal(err)
	}
	s13, err := NewSpringConstraint(p1, p3, 1)
	if err != nil {
		t.Fatal(err)
	}
	e.AddSprings(s12, s23, s13)

	e.RemovePoint(p2)

	if len(e.Springs()) != 1 || e.Springs()[0] != s13 {
		t.Errorf("springs after removing p2 = %d; want only the p1-p3 spring", len(e.Springs()))
	}
}

func TestEntity_SpringMembership(t *testing.T) {
	e := NewEntity(1)
	p1 := NewPointMass(geometry.Vector2D{X: 0, Y: 0}, geometry.Vector2D{})
	p2 := NewPointMass(geometry.Vector2D{X: 10, Y: 0}, geometry.Vector2D{})
	e.AddPoints(p1, p2)

	s, err := NewSpringConstraint(p1, p2, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !e.AddSpring(s) {
		t.Error("first AddSpring = false; want true")
	}
	if e.AddSpring(s) {
		t.Error("duplicate AddSpring = true; want false")
	}
	if e.AddSpring(nil) {
		t.Error("AddSpring(nil) = true; want false")
	}
	if !e.RemoveSpring(s) {
		t.Error("RemoveSpring of present spring = false; want true")
	}
	if e.RemoveSpring(s) {
		t.Error("RemoveSpring of absent spring = true; want false")
	}
}

func TestEntity_UpdateClampsAgainstBounds(t *testing.T) {
	bounds := geometry.NewRect(0, 0, 100, 100)
	e := NewEntity(4)
	p := NewPointMass(geometry.Vector2D{X: 50, Y: 98}, geometry.Vector2D{})
	p.Acceleration = geometry.Vector2D{X: 0, Y: 2}
	e.AddPoint(p)

	for i := 0; i < 10; i++ {
		e.Update(bounds)
	}

	wantY := 100 - p.Radius
	if !floatsClose(p.Position.Y, wantY) {
		t.Errorf("point rests at y=%v; want clamped to %v", p.Position.Y, wantY)
	}
}

// With friction 1 the inferred velocity dies every tick, so repeated solving
// is pure constraint relaxation and must converge to the rest length.
func TestEntity_RelaxationConverges(t *testing.T) {
	e := NewEntity(16)
	a := NewPointMass(geometry.Vector2D{X: 500, Y: 500}, geometry.Vector2D{})
	a.Fixed = true
	b := NewPointMass(geometry.Vector2D{X: 560, Y: 500}, geometry.Vector2D{})
	b.SetFriction(1)
	e.AddPoints(a, b)

	s, err := NewSpringConstraintWithRest(a, b, 0.8, 40)
	if err != nil {
		t.Fatal(err)
	}
	e.AddSpring(s)

	for i := 0; i < 50; i++ {
		e.Update(testBounds)
	}

	dist := a.Position.DistanceTo(b.Position)
	if math.Abs(dist-40) > 0.01 {
		t.Errorf("distance after relaxation = %v; want ~40", dist)
	}
}

func TestEntity_FixedPointImmuneToSprings(t *testing.T) {
	e := NewEntity(8)
	anchor := NewPointMass(geometry.Vector2D{X: 500, Y: 100}, geometry.Vector2D{})
	anchor.Fixed = true
	weight := NewPointMass(geometry.Vector2D{X: 500, Y: 200}, geometry.Vector2D{})
	weight.Acceleration = geometry.Vector2D{X: 0, Y: 1}
	e.AddPoints(anchor, weight)

	s, err := NewSpringConstraintWithRest(anchor, weight, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	e.AddSpring(s)

	start := anchor.Position
	for i := 0; i < 200; i++ {
		e.Update(testBounds)
	}

	if !anchor.Position.Eq(start) {
		t.Errorf("anchor moved to %v under spring load; want %v", anchor.Position, start)
	}
}

func floatsClose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

// buildGrid wires a cols x rows lattice with structural springs, pinning the
// top row, the way the mesh builders do but with raw constructors only.
func buildGrid(tb testing.TB, cols, rows int, spacing float64) *Entity {
	tb.Helper()
	e := NewEntity(8)
	grid := make([][]*PointMass, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]*PointMass, cols)
		for c := 0; c < cols; c++ {
			p := NewPointMass(geometry.Vector2D{X: 100 + float64(c)*spacing, Y: 100 + float64(r)*spacing}, geometry.Vector2D{})
			p.Fixed = r == 0
			p.SetFriction(0.05)
			p.Acceleration = geometry.Vector2D{X: 0, Y: 0.5}
			grid[r][c] = p
			e.AddPoint(p)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				s, err := NewSpringConstraint(grid[r][c-1], grid[r][c], 0.9)
				if err != nil {
					tb.Fatal(err)
				}
				e.AddSpring(s)
			}
			if r > 0 {
				s, err := NewSpringConstraint(grid[r-1][c], grid[r][c], 0.9)
				if err != nil {
					tb.Fatal(err)
				}
				e.AddSpring(s)
			}
		}
	}
	return e
}

func TestEntity_ClothSettlesInsideBounds(t *testing.T) {
	e := buildGrid(t, 8, 6, 20)

	for i := 0; i < 300; i++ {
		e.Update(testBounds)
	}

	// The pipeline ends each tick with a relaxation pass, so a settled point
	// may sit a hair past the last clamp; allow a small slack.
	const slack = 1.0
	for _, p := range e.Points() {
		if math.IsNaN(p.Position.X) || math.IsNaN(p.Position.Y) {
			t.Fatal("NaN position after settling")
		}
		loose := geometry.NewRect(testBounds.X-slack, testBounds.Y-slack,
			testBounds.W+2*slack, testBounds.H+2*slack)
		if !loose.Contains(p.Position) {
			t.Errorf("point at %v escaped the bounds", p.Position)
		}
	}
}

func BenchmarkEntity_Update(b *testing.B) {
	e := buildGrid(b, 20, 15, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Update(testBounds)
	}
}
