package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the scene in the terminal",
	Long: `Run the scene in the current terminal. Each character cell shows
two pixels stacked vertically, so a truecolor terminal looks best.

Controls:
  P/Space    - Pause
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  depthscroll play
  depthscroll play --seed 7 --pace calm
  depthscroll play --config ./scene.toml --log-file /tmp/depthscroll.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	scene, err := loadScene()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(io.Discard, "play")
	exitOnError("setting up logging", err)
	defer closeLog()

	// Get terminal size early; a WindowSizeMsg follows once the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  max(0, height-1) * 2,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(tui.Options{Scene: scene, Runtime: rt, Logger: logger})
	exitOnError("running scene", runErr)
}
