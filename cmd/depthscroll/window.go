package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
	flagAssets string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run the scene in a desktop window",
	Long: `Open a resizable window and run the scene. Sprites are read from
<assets>/bush.png, column.png, projectile.png and actor.png when present;
missing sprites are drawn as shapes.

Controls:
  P/Space    - Pause
  Q/Esc      - Quit

Examples:
  depthscroll window
  depthscroll window --width 1280 --height 720 --assets ./sprites`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Initial window width")
	windowCmd.Flags().IntVar(&flagHeight, "height", 540, "Initial window height")
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory of <name>.png sprites")
}

func runWindow(_ *cobra.Command, _ []string) {
	scene, err := loadScene()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(os.Stderr, "window")
	exitOnError("setting up logging", err)
	defer closeLog()

	rt := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	exitOnError("running window", window.Run(window.Options{
		Scene:     scene,
		Runtime:   rt,
		AssetsDir: flagAssets,
		Logger:    logger,
	}))
}
