package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scene over SSH",
	Long: `Start an SSH server. Every connection gets its own independent
simulation sized to the client's terminal; nothing is shared between
sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.depthscroll/host_key

Examples:
  depthscroll serve                           # Listen on :23234 with auto-generated key
  depthscroll serve --ssh :2222               # Listen on port 2222
  depthscroll serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	scene, err := loadScene()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(os.Stderr, "depthscroll-ssh")
	exitOnError("setting up logging", err)
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	server, err := tui.NewSSHServer(cfg, scene, rt, logger)
	exitOnError("creating server", err)

	fmt.Printf("Starting depthscroll SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	exitOnError("serving", server.ListenAndServe())
}
