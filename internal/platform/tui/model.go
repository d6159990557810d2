package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/render"
	"github.com/vovakirdan/depthscroll/internal/sim"
)

// statusLines is the number of terminal rows reserved below the scene.
const statusLines = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Options configures a Model.
type Options struct {
	Scene    config.SceneConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil uses the process default
}

// Model is the Bubble Tea model hosting one simulation.
type Model struct {
	sim      *sim.Sim
	config   core.RuntimeConfig
	canvas   *core.Canvas
	blocks   *HalfBlockRenderer
	status   lipgloss.Style
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	paused   bool
	quitting bool
}

// NewModel creates a model with its own simulation.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	status := statusStyle
	if opts.Renderer != nil {
		status = opts.Renderer.NewStyle().Foreground(lipgloss.Color("245"))
	}

	return Model{
		sim:    sim.New(opts.Scene, cfg.Seed, sim.WithLogger(logger)),
		config: cfg,
		canvas: core.NewCanvas(cfg.ScreenW, cfg.ScreenH),
		blocks: NewHalfBlockRenderer(opts.Renderer),
		status: status,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("simulation started", "seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused, "frame", m.sim.Frame())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleResize adopts the new terminal size. The simulation keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-statusLines) * 2
	m.canvas.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation unless paused. Pausing stops update
// calls entirely, so the clock sees one long interval on resume and clamps it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.paused {
		m.sim.Update(now, m.viewport())
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) viewport() sim.Viewport {
	return sim.Viewport{W: float64(m.config.ScreenW), H: float64(m.config.ScreenH)}
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pal := render.NewPalette(m.sim.Config())
	m.canvas.Clear(pal.Sky)
	render.Rasterize(m.canvas, render.Frame(m.sim, m.viewport(), nil))

	return m.blocks.Render(m.canvas) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	state := ""
	if m.paused {
		state = "  paused"
	}
	stats := fmt.Sprintf("frame %d  obstacles %d  projectiles %d%s  ",
		m.sim.Frame(), m.sim.ObstacleCount(), m.sim.ProjectileCount(), state)
	return m.status.Render(stats) + m.help.View(m.keys)
}

// Sim exposes the hosted simulation.
func (m Model) Sim() *sim.Sim {
	return m.sim
}

// Paused reports whether updates are suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
