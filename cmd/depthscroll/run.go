package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/render"
	"github.com/vovakirdan/depthscroll/internal/sim"
)

var (
	flagFrames    int
	flagSnapshot  bool
	flagRunWidth  int
	flagRunHeight int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run headless and print statistics",
	Long: `Run the simulation without a display for a fixed number of frames,
feeding it timestamps spaced at --fps, then print statistics. With
--snapshot the final frame is rasterized and printed as ASCII.

A fixed --seed makes the output reproducible.

Examples:
  depthscroll run --frames 600 --seed 1
  depthscroll run --frames 1200 --snapshot --width 100 --height 60`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	runCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Print an ASCII rendering of the final frame")
	runCmd.Flags().IntVar(&flagRunWidth, "width", core.DefaultConfig().ScreenW, "Viewport width in pixels")
	runCmd.Flags().IntVar(&flagRunHeight, "height", core.DefaultConfig().ScreenH, "Viewport height in pixels")
}

func runHeadless(_ *cobra.Command, _ []string) {
	scene, err := loadScene()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(os.Stderr, "run")
	exitOnError("setting up logging", err)
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{ScreenW: flagRunWidth, ScreenH: flagRunHeight, TickRate: flagFPS, Seed: seed}

	s := simulate(scene, rt, flagFrames, sim.WithLogger(logger))
	printStats(os.Stdout, s, rt)

	if flagSnapshot {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, snapshot(s, rt))
	}
}

// simulate runs frames steps with synthetic timestamps spaced at the tick rate.
func simulate(scene config.SceneConfig, rt core.RuntimeConfig, frames int, opts ...sim.Option) *sim.Sim {
	s := sim.New(scene, rt.Seed, opts...)
	vp := sim.Viewport{W: float64(rt.ScreenW), H: float64(rt.ScreenH)}

	tps := rt.TickRate
	if tps <= 0 {
		tps = 60
	}
	interval := time.Second / time.Duration(tps)
	now := time.Unix(0, 0)
	for i := 0; i < frames; i++ {
		s.Update(now, vp)
		now = now.Add(interval)
	}
	return s
}

func printStats(w io.Writer, s *sim.Sim, rt core.RuntimeConfig) {
	st := s.Stats()
	scroll := s.Scroll()
	fmt.Fprintf(w, "seed         %d\n", rt.Seed)
	fmt.Fprintf(w, "viewport     %dx%d\n", rt.ScreenW, rt.ScreenH)
	fmt.Fprintf(w, "frames       %d (%.2fs simulated)\n", s.Frame(), s.Elapsed())
	fmt.Fprintf(w, "world z      %.3f (%d ground wraps)\n", scroll.WorldZ, scroll.Wraps)
	fmt.Fprintf(w, "rows         %d (%d empty)\n", st.Rows, st.EmptyRows)
	fmt.Fprintf(w, "spawned      %d obstacles, %d projectiles\n", st.Placed, st.Shots)
	fmt.Fprintf(w, "despawned    %d\n", st.Despawned)
	fmt.Fprintf(w, "live         %d obstacles, %d projectiles\n", s.ObstacleCount(), s.ProjectileCount())
}

// snapshot rasterizes the current frame as ASCII art.
func snapshot(s *sim.Sim, rt core.RuntimeConfig) string {
	c := core.NewCanvas(rt.ScreenW, rt.ScreenH)
	c.Clear(render.NewPalette(s.Config()).Sky)
	vp := sim.Viewport{W: float64(rt.ScreenW), H: float64(rt.ScreenH)}
	render.Rasterize(c, render.Frame(s, vp, nil))
	return c.ASCII()
}
