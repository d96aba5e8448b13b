package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/mesh"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/physics"
)

const (
	screenWidth  = 800
	screenHeight = 600
	grabRadius   = 20.0
)

// Game is a minimal cloth demo driving the solver directly from Update,
// without the actor layer.
type Game struct {
	cloth    *physics.Entity
	bounds   geometry.Rect
	grabbed  *physics.PointMass
	wasFixed bool
}

func (g *Game) Update() error {
	g.handleMouse()
	g.cloth.Update(g.bounds)
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	at := geometry.NewVector(float64(mx), float64(my))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.grabbed = nearestPoint(g.cloth, at, grabRadius)
		if g.grabbed != nil {
			g.wasFixed = g.grabbed.Fixed
			g.grabbed.Fixed = true
		}
	}
	if g.grabbed != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.grabbed.Position = at
		g.grabbed.ClearVelocity()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.grabbed != nil {
		g.grabbed.Fixed = g.wasFixed
		g.grabbed.ClearVelocity()
		g.grabbed = nil
	}
}

func nearestPoint(e *physics.Entity, at geometry.Vector2D, maxDist float64) *physics.PointMass {
	bestSq := maxDist * maxDist
	var best *physics.PointMass
	for _, p := range e.Points() {
		if d := p.Position.DistanceSquaredTo(at); d < bestSq {
			bestSq = d
			best = p
		}
	}
	return best
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	lineColor := color.RGBA{R: 140, G: 160, B: 180, A: 255}
	for _, s := range g.cloth.Springs() {
		a, b := s.A().Position, s.B().Position
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			1, lineColor, true)
	}

	for _, p := range g.cloth.Points() {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if p.Fixed {
			clr = color.RGBA{R: 255, G: 120, B: 80, A: 255}
		}
		vector.FillCircle(screen,
			float32(p.Position.X), float32(p.Position.Y),
			float32(p.Radius), clr, true)
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cloth, err := mesh.Cloth(mesh.ClothConfig{
		Cols:       20,
		Rows:       12,
		Spacing:    24,
		Origin:     geometry.NewVector(160, 40),
		Stiffness:  0.9,
		Friction:   0.02,
		Gravity:    geometry.NewVector(0, 0.5),
		Iterations: 16,
	})
	if err != nil {
		log.Fatal(err)
	}

	g := &Game{
		cloth:  cloth,
		bounds: geometry.NewRect(0, 0, screenWidth, screenHeight),
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Cloth")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
