// depthscroll renders an endless pseudo-3D forward-scrolling scene: a
// checkerboard ground rushing toward the camera, lane-spawned obstacles, an
// autonomous player sprite and projectiles that zoom away into the distance.
//
// Usage:
//
//	depthscroll play           - Run the scene in the terminal
//	depthscroll serve          - Serve the scene over SSH, one run per session
//	depthscroll window         - Run the scene in a desktop window
//	depthscroll run            - Run headless and print statistics
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Scene config (.yaml or .toml)
//	--pace <preset>      - calm, normal or rush
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/depthscroll/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPace     string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "depthscroll",
	Short: "Endless pseudo-3D forward scroller",
	Long: `depthscroll renders an endless forward-scrolling scene with a
perspective ground, lane obstacles, an autonomous runner and receding
projectiles. The scene takes no gameplay input.

Available commands:
  play     - Run in the terminal (half-block pixels)
  serve    - Serve over SSH, one independent run per session
  window   - Run in a desktop window
  run      - Run headless and print statistics

Examples:
  depthscroll play
  depthscroll play --pace rush --seed 42
  depthscroll serve --ssh :2222
  depthscroll window --assets ./sprites
  depthscroll run --frames 600 --snapshot`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to scene config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "normal", "Pace preset: calm, normal, rush")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(runCmd)
}

// loadScene resolves the scene config and applies the pace preset.
func loadScene() (config.SceneConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SceneConfig{}, err
	}
	pace, err := config.ParsePace(flagPace)
	if err != nil {
		return config.SceneConfig{}, err
	}
	config.ApplyPace(&cfg, pace)
	if err := cfg.Validate(); err != nil {
		return config.SceneConfig{}, fmt.Errorf("after pace %s: %w", pace, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. fallback receives logs when no
// --log-file is given; terminal hosts pass io.Discard so logs do not tear
// the alternate screen. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		//nolint:errcheck // Best-effort close on exit
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// exitOnError prints err and exits non-zero.
func exitOnError(what string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
