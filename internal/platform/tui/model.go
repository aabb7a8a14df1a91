package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/raket/internal/core"
	"github.com/vovakirdan/raket/internal/game"
)

// MaxFrameTime caps the wall-clock delta fed to the simulation, so a stalled
// terminal does not teleport the rocket through obstacles.
const MaxFrameTime = 0.25

// Model is the Bubble Tea model that runs one World.
type Model struct {
	world      *game.World
	screen     *core.Screen
	viewport   Viewport
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	logger     *log.Logger
	inputFrame core.InputFrame
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a model with a fresh world in the launch menu.
// A nil logger discards output.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := game.NewWorld(cfg.Seed)
	world.SetShowHitboxes(cfg.ShowHitboxes)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	rows := playfieldRows(cfg.ScreenH)
	return Model{
		world:      world,
		screen:     core.NewScreen(cfg.ScreenW, rows),
		viewport:   NewViewport(cfg.ScreenW, rows),
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// playfieldRows reserves the last terminal row for the help line.
func playfieldRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("world created", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the bound action for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse maps a left click from cells to world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.ClickAt(m.viewport.ToWorld(msg.X, msg.Y))
	}
	return m, nil
}

// handleResize rescales the playfield. The world is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rows := playfieldRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.viewport = NewViewport(msg.Width, rows)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick steps the world by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick).Seconds(), MaxFrameTime)
		dt = max(dt, 0)
	}
	m.lastTick = now

	result := m.world.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.logger.Debug("cue", "event", e, "score", result.State.Score, "deaths", result.State.Deaths)
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// World returns the simulated world.
func (m Model) World() *game.World {
	return m.world
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.world, m.viewport)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Menu buttons are clickable
	)

	_, err := p.Run()
	return err
}
