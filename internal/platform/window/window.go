// Package window hosts the simulation in a desktop window through Ebitengine.
// Sprites are drawn from optional PNG assets; anything missing falls back to
// vector shapes.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/render"
	"github.com/vovakirdan/depthscroll/internal/sim"
)

// Options configures the window host.
type Options struct {
	Scene     config.SceneConfig
	Runtime   core.RuntimeConfig // ScreenW/ScreenH are the initial window size
	AssetsDir string
	Logger    *log.Logger
}

// Game implements ebiten.Game around one simulation.
type Game struct {
	sim     *sim.Sim
	images  Images
	painter *painter
	logger  *log.Logger
	vp      sim.Viewport
	paused  bool
}

// NewGame creates the window game. Images must already be loaded.
func NewGame(opts Options, images Images) *Game {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		sim:     sim.New(opts.Scene, seed, sim.WithLogger(logger)),
		images:  images,
		painter: newPainter(images),
		logger:  logger,
		vp:      sim.Viewport{W: float64(opts.Runtime.ScreenW), H: float64(opts.Runtime.ScreenH)},
	}
}

// Update advances the simulation once per ebiten tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused, "frame", g.sim.Frame())
	}
	if !g.paused {
		g.sim.Update(time.Now(), g.vp)
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	var assets render.Assets
	if len(g.images) > 0 {
		assets = g.images
	}
	g.painter.draw(screen, render.Frame(g.sim, g.vp, assets))
}

// Layout tracks the window size; a resize only changes the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.vp = sim.Viewport{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger

	images, err := LoadImages(opts.AssetsDir, logger)
	if err != nil {
		return err
	}

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowTitle("depthscroll")
	ebiten.SetWindowSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("opening window", "width", opts.Runtime.ScreenW, "height", opts.Runtime.ScreenH, "sprites", len(images))
	if err := ebiten.RunGame(NewGame(opts, images)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
