package simulation

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pb"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/ui"
)

var (
	springColor  = color.RGBA{R: 120, G: 140, B: 160, A: 255}
	pointColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	pinnedColor  = color.RGBA{R: 255, G: 120, B: 80, A: 255}
	grabbedColor = color.RGBA{R: 100, G: 220, B: 120, A: 255}
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot

	// UI Controls
	panel *ui.Panel

	// Widget references for easy access
	widgetGravity    *ui.Slider
	widgetIterations *ui.Slider
	widgetStiffness  *ui.Slider
	widgetFriction   *ui.Slider
	widgetPaused     *ui.Checkbox

	dragging bool

	cfg *Config

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem) *Game {
	// 1. Create Channel for communication
	snapshotCh := make(chan *pb.WorldSnapshot, 10) // Buffer to avoid blocking

	// 2. Spawn World Actor
	// We pass the channel to the World so it can push updates to us.
	worldActor := NewWorldActor(snapshotCh, cfg)
	worldPID, err := system.Spawn(ctx, "world", worldActor)
	if err != nil {
		panic(fmt.Sprintf("Failed to spawn world: %v", err))
	}

	// 3. Initialize UI Panel
	panel := ui.NewPanel(10, 10, 240, 320, "Soft Body Controls")

	panel.AddSection("Solver")
	widgetGravity := panel.AddSlider("Gravity", 0, 2, cfg.Gravity)
	widgetIterations := panel.AddSlider("Iterations", 1, 64, float64(cfg.Iterations))
	widgetStiffness := panel.AddSlider("Stiffness", 0.05, 1, cfg.Stiffness)
	widgetFriction := panel.AddSlider("Friction", 0, 1, cfg.Friction)

	panel.AddSection("Run")
	widgetPaused := panel.AddCheckbox("Paused", false)
	panel.AddButton("Reset Bodies", func() {
		actor.Tell(ctx, worldPID, &pb.Reset{})
	})

	return &Game{
		ctx:              ctx,
		System:           system,
		worldPID:         worldPID,
		snapshotCh:       snapshotCh,
		lastState:        &pb.WorldSnapshot{}, // Avoid nil pointer
		panel:            panel,
		widgetGravity:    widgetGravity,
		widgetIterations: widgetIterations,
		widgetStiffness:  widgetStiffness,
		widgetFriction:   widgetFriction,
		widgetPaused:     widgetPaused,
		cfg:              cfg,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.panel.Update()

	// 2. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 3. Forward pointer input to the world
	g.handlePointer()

	// 4. Send updated configuration values to the world
	actor.Tell(g.ctx, g.worldPID, &pb.UpdateConfig{
		Gravity:    g.widgetGravity.Value,
		Iterations: int32(g.widgetIterations.Value),
		Stiffness:  g.widgetStiffness.Value,
		Friction:   g.widgetFriction.Value,
		Paused:     g.widgetPaused.Value,
	})

	// 5. Trigger Simulation Step
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{})

	return nil
}

// handlePointer translates mouse state into pointer messages. Left drag moves
// the nearest point, right click toggles its pin. Clicks landing on the panel
// belong to the widgets and are never forwarded.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	at := &pb.Vec2{X: fx, Y: fy}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.panel.Contains(fx, fy) {
		g.dragging = true
		actor.Tell(g.ctx, g.worldPID, &pb.PointerGrab{Position: at})
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		actor.Tell(g.ctx, g.worldPID, &pb.PointerMove{Position: at})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging {
		g.dragging = false
		actor.Tell(g.ctx, g.worldPID, &pb.PointerRelease{})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !g.panel.Contains(fx, fy) {
		actor.Tell(g.ctx, g.worldPID, &pb.PointerGrab{Position: at, Pin: true})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Draw all bodies from the last known snapshot, springs below points
	for _, body := range g.lastState.Bodies {
		for _, s := range body.Springs {
			a := body.Points[s.A].Position
			b := body.Points[s.B].Position
			vector.StrokeLine(screen,
				float32(a.X), float32(a.Y),
				float32(b.X), float32(b.Y),
				1, springColor, true)
		}
		for _, p := range body.Points {
			clr := pointColor
			if p.Fixed {
				clr = pinnedColor
			}
			if p.Grabbed {
				clr = grabbedColor
			}
			vector.FillCircle(screen,
				float32(p.Position.X), float32(p.Position.Y),
				float32(p.Radius), clr, true)
		}
	}

	// 2. Draw UI Panel
	g.panel.Draw(screen)

	// 3. Display timing breakdown for performance analysis
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nPoints:  %d\nSprings: %d\n\nUpdate: %.2fms\nDraw:   %.2fms\nTotal:  %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.PointCount,
		g.lastState.SpringCount,
		g.updateAvg,
		g.drawAvg,
		g.updateAvg+g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }
