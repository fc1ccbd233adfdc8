package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/platform"
	"github.com/vovakirdan/trex-runner/internal/platform/sound"
	"github.com/vovakirdan/trex-runner/internal/registry"
	"github.com/vovakirdan/trex-runner/internal/world"
)

// Model is the Bubble Tea model for running a session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	world      config.WorldConfig
	difficulty *config.DifficultyManager
	sound      sound.Player
	logger     *log.Logger
	keys       *KeyMapper
	journal    *platform.Journal
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts platform.Options) Model {
	opts = opts.WithDefaults()

	return Model{
		game:       opts.Game,
		screen:     core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		config:     opts.Config,
		world:      opts.World,
		difficulty: opts.Difficulty,
		sound:      opts.Sound,
		logger:     opts.Logger,
		keys:       NewKeyMapper(),
		journal:    platform.NewJournal(opts.Store, opts.Logger),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started",
		"seed", m.config.Seed,
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"tick_rate", m.config.TickRate,
	)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.BlurMsg:
		m.inputFrame.Set(core.ActionFocusLost)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.game.Step(m.inputFrame)
		m.logger.Info("session closed", "best", m.game.State().Best)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rebuilds the world for a new terminal size, but only while
// no run is in progress. A running world keeps its viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	if m.ticks > 0 && !m.gameState.Waiting {
		m.logger.Debug("resize ignored during run", "width", msg.Width, "height", msg.Height)
		return m, nil
	}
	if platform.Replaying(m.game) {
		return m, nil
	}
	if err := m.world.CheckViewport(world.Viewport{Width: msg.Width, Height: msg.Height}); err != nil {
		m.logger.Warn("resize ignored", "err", err)
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen = core.NewScreen(msg.Width, msg.Height)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("world resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++

	// Clear input for next frame
	m.inputFrame.Clear()

	m.sound.Play(result.Events)
	m.journal.Observe(m.game, result)

	if m.gameState.Closed {
		m.quitting = true
		return m, tea.Quit
	}

	rate := m.difficulty.TickRate(m.config.TickRate, m.gameState.Score, m.ticks)
	return m, tickCmd(rate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(config.HomeDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts platform.Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Deliver BlurMsg so focus loss pauses the run
	)

	_, err := p.Run()
	return err
}
