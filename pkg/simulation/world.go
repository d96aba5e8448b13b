package simulation

import (
	"fmt"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-softbody-simulation/pb"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/mesh"
	"github.com/lao-tseu-is-alive/go-softbody-simulation/pkg/physics"
)

// WorldActor is the authoritative owner of the soft-body state. All mutation,
// the solver step as well as pointer grabs, goes through its mailbox, so the
// renderer never touches a point concurrently with the solver.
type WorldActor struct {
	sim    *physics.Simulation
	bodies []*physics.Entity
	bounds geometry.Rect
	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot
	cfg        *Config
	// Live solver settings (received from UI sliders)
	gravity    float64
	stiffness  float64
	friction   float64
	iterations int
	paused     bool
	// Pointer interaction state
	grabbed         *physics.PointMass
	grabbedWasFixed bool
	// --- Benchmark Stats ---
	tickCount    int64
	stepCount    int
	stepDuration time.Duration
	lastLogTime  time.Time
}

// NewWorldActor creates the world logic unit
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config) *WorldActor {
	return &WorldActor{
		sim:         physics.NewSimulation(),
		bounds:      geometry.NewRect(0, 0, cfg.WorldWidth, cfg.WorldHeight),
		snapshotCh:  snapshotCh,
		cfg:         cfg,
		gravity:     cfg.Gravity,
		stiffness:   cfg.Stiffness,
		friction:    cfg.Friction,
		iterations:  cfg.Iterations,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is building the soft bodies...")
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World started. Building bodies...")
		if err := w.buildBodies(); err != nil {
			ctx.Logger().Errorf("body build failed: %v", err)
		}

	// The Main Simulation Step (Driven by Game Loop)
	case *pb.Tick:
		w.tickCount++
		if !w.paused {
			start := time.Now()
			w.sim.Update(w.bounds)
			w.stepDuration += time.Since(start)
			w.stepCount++
		}
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	// Handle dynamic slider updates from UI
	case *pb.UpdateConfig:
		for _, warning := range w.applyConfig(msg) {
			ctx.Logger().Warn(warning)
		}

	case *pb.PointerGrab:
		w.handleGrab(msg)

	case *pb.PointerMove:
		w.handleMove(msg)

	case *pb.PointerRelease:
		w.handleRelease()

	case *pb.Reset:
		ctx.Logger().Info("World reset requested. Rebuilding bodies...")
		w.grabbed = nil
		w.sim = physics.NewSimulation()
		if err := w.buildBodies(); err != nil {
			ctx.Logger().Errorf("body build failed: %v", err)
		}
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}

// buildBodies populates the simulation with the demo scene: a pinned cloth
// sheet on the left and a free-falling wheel on the right.
func (w *WorldActor) buildBodies() error {
	gravity := geometry.NewVector(0, w.gravity)

	cloth, err := mesh.Cloth(mesh.ClothConfig{
		Cols:        w.cfg.ClothCols,
		Rows:        w.cfg.ClothRows,
		Spacing:     w.cfg.ClothSpacing,
		Origin:      geometry.NewVector(w.cfg.WorldWidth/8, w.cfg.WorldHeight/10),
		Stiffness:   w.stiffness,
		Friction:    w.friction,
		Mass:        w.cfg.Mass,
		Gravity:     gravity,
		Iterations:  w.iterations,
		PointRadius: w.cfg.PointRadius,
	})
	if err != nil {
		return fmt.Errorf("cloth build failed: %w", err)
	}

	wheel, err := mesh.Wheel(mesh.WheelConfig{
		Sides:       w.cfg.WheelSides,
		Radius:      w.cfg.WheelRadius,
		Center:      geometry.NewVector(w.cfg.WorldWidth*3/4, w.cfg.WorldHeight/4),
		Stiffness:   w.stiffness,
		Friction:    w.friction,
		Mass:        w.cfg.Mass,
		Gravity:     gravity,
		Iterations:  w.iterations,
		PointRadius: w.cfg.PointRadius,
	})
	if err != nil {
		return fmt.Errorf("wheel build failed: %w", err)
	}

	w.bodies = []*physics.Entity{cloth, wheel}
	w.sim.AddEntities(cloth, wheel)
	return nil
}

// applyConfig pushes slider values into the live bodies through the clamping
// setters. A clamped value means the UI sent something out of range, each
// occurrence is reported once as a warning string.
func (w *WorldActor) applyConfig(msg *pb.UpdateConfig) []string {
	var warnings []string
	warned := map[string]bool{}
	warnOnce := func(key, format string, args ...any) {
		if !warned[key] {
			warned[key] = true
			warnings = append(warnings, fmt.Sprintf(format, args...))
		}
	}

	w.paused = msg.GetPaused()
	w.gravity = msg.GetGravity()
	w.stiffness = msg.GetStiffness()
	w.friction = msg.GetFriction()
	w.iterations = int(msg.GetIterations())
	gravity := geometry.NewVector(0, w.gravity)

	for _, body := range w.bodies {
		if n, clamped := body.SetIterations(w.iterations); clamped {
			warnOnce("iterations", "iterations %d clamped to %d", w.iterations, n)
		}
		for _, p := range body.Points() {
			p.Acceleration = gravity
			if f, clamped := p.SetFriction(w.friction); clamped {
				warnOnce("friction", "friction %.3f clamped to %.3f", w.friction, f)
			}
		}
		for _, s := range body.Springs() {
			if k, clamped := s.SetStiffness(w.stiffness); clamped {
				warnOnce("stiffness", "stiffness %.3f clamped to %.3f", w.stiffness, k)
			}
		}
	}
	return warnings
}

// handleGrab resolves a pointer press: with pin set it toggles the Fixed flag
// of the nearest point, otherwise it starts a drag by temporarily fixing it.
func (w *WorldActor) handleGrab(msg *pb.PointerGrab) {
	if msg.GetPosition() == nil {
		return
	}
	at := geometry.NewVector(msg.GetPosition().GetX(), msg.GetPosition().GetY())
	p := NearestPoint(w.sim, at, w.cfg.GrabRadius)
	if p == nil {
		return
	}

	if msg.GetPin() {
		p.Fixed = !p.Fixed
		if !p.Fixed {
			// A freshly unpinned point must not fling off with stale velocity.
			p.ClearVelocity()
		}
		return
	}

	w.grabbed = p
	w.grabbedWasFixed = p.Fixed
	p.Fixed = true
	p.Position = at
	p.ClearVelocity()
}

func (w *WorldActor) handleMove(msg *pb.PointerMove) {
	if w.grabbed == nil || msg.GetPosition() == nil {
		return
	}
	w.grabbed.Position = geometry.NewVector(msg.GetPosition().GetX(), msg.GetPosition().GetY())
}

func (w *WorldActor) handleRelease() {
	if w.grabbed == nil {
		return
	}
	w.grabbed.Fixed = w.grabbedWasFixed
	w.grabbed.ClearVelocity()
	w.grabbed = nil
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		avg := time.Duration(0)
		if w.stepCount > 0 {
			avg = w.stepDuration / time.Duration(w.stepCount)
		}
		ctx.Logger().Infof("📊 SOLVER: %d steps/sec, avg %s/step | Points: %d, Springs: %d",
			w.stepCount, avg, w.countPoints(), w.countSprings())
		w.stepCount = 0
		w.stepDuration = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) countPoints() int {
	n := 0
	for _, e := range w.sim.Entities() {
		n += len(e.Points())
	}
	return n
}

func (w *WorldActor) countSprings() int {
	n := 0
	for _, e := range w.sim.Entities() {
		n += len(e.Springs())
	}
	return n
}

func (w *WorldActor) buildSnapshot() *pb.WorldSnapshot {
	snapshot := &pb.WorldSnapshot{
		Bodies: make([]*pb.BodySnapshot, 0, len(w.bodies)),
		Tick:   w.tickCount,
	}

	names := []string{"cloth", "wheel"}
	for i, body := range w.bodies {
		name := "body"
		if i < len(names) {
			name = names[i]
		}

		points := body.Points()
		springs := body.Springs()
		bs := &pb.BodySnapshot{
			Id:      name,
			Points:  make([]*pb.PointState, 0, len(points)),
			Springs: make([]*pb.SpringState, 0, len(springs)),
		}

		// Point ids are indices in insertion order, springs reference them.
		index := make(map[*physics.PointMass]uint32, len(points))
		for j, p := range points {
			index[p] = uint32(j)
			bs.Points = append(bs.Points, &pb.PointState{
				Id:       uint32(j),
				Position: &pb.Vec2{X: p.Position.X, Y: p.Position.Y},
				Fixed:    p.Fixed,
				Radius:   p.Radius,
				Grabbed:  p == w.grabbed,
			})
		}
		for _, s := range springs {
			a, okA := index[s.A()]
			b, okB := index[s.B()]
			if !okA || !okB {
				continue // spring anchored outside this body
			}
			bs.Springs = append(bs.Springs, &pb.SpringState{A: a, B: b})
		}

		snapshot.Bodies = append(snapshot.Bodies, bs)
		snapshot.PointCount += int32(len(points))
		snapshot.SpringCount += int32(len(springs))
	}

	return snapshot
}
