//go:build ebiten

package app

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"phase-ca/internal/render"
	"phase-ca/internal/ui"
	"phase-ca/pkg/core"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep
	log     *zap.Logger

	canvasW int
	canvasH int

	paused    bool
	tickOnce  bool
	seed      int64
	lastTitle int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		sim:       sim,
		painter:   render.NewGridPainter(render.FrameOptions{Ellipse: opts.Ellipse}),
		hud:       ui.NewHUD(sim, opts.HUD),
		overlay:   ui.NewOverlay(sim),
		clock:     core.NewFixedStep(opts.Pause),
		log:       opts.Logger,
		canvasW:   int(math.Round(float64(opts.Canvas) * opts.Stretch)),
		canvasH:   opts.Canvas,
		seed:      opts.Seed,
		lastTitle: -1,
	}
	return g
}

// WindowSize returns the initial window size in device-independent pixels.
func (g *Game) WindowSize(scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return (g.canvasW + g.hud.Width()) * scale, g.canvasH * scale
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Info("reset", zap.Int64("seed", seed))
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.painter.SetEllipse(!g.painter.Ellipse())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.overlay.Toggle()
	}

	if g.tickOnce || (!g.paused && g.clock.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}

	step := stepCount(g.sim)
	if step != g.lastTitle {
		ebiten.SetWindowTitle(fmt.Sprintf("Life Emergence — Step %d", step))
		g.lastTitle = step
	}
	g.hud.Update(g.status(step)...)
	return nil
}

func (g *Game) status(step int) []string {
	size := g.sim.Size()
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("step %d (%s)", step, state),
		fmt.Sprintf("lattice %dx%d", size.W, size.H),
		fmt.Sprintf("seed %d", g.seed),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Blit(screen, g.sim, g.canvasW, g.canvasH)
	g.overlay.Draw(screen, g.canvasW, g.canvasH)
	g.hud.Draw(screen, g.canvasW, g.canvasH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvasW + g.hud.Width(), g.canvasH
}

type stepCounter interface {
	StepCount() int
}

func stepCount(sim core.Sim) int {
	if sc, ok := sim.(stepCounter); ok {
		return sc.StepCount()
	}
	return 0
}
