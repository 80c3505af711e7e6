package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Mouse   bool
	Logger  *log.Logger

	// Renderer is the lipgloss renderer for the session's output. Nil
	// means the default stdout renderer.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model hosting one game session. The same model
// serves local play and SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *Renderer
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime.WithDefaults()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW
	h.ShowAll = false

	m := Model{
		game:       game,
		renderer:   NewRenderer(opts.Renderer),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// gameHeight is the terminal height left for the game after the help footer.
func (m Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		lines = len(m.keys.FullHelp()[0])
	}
	return max(m.config.ScreenH-lines, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	m.game.Reset(cfg)
	m.logger.Debug("session started", "game", m.game.ID(), "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// resize fits the screen to the terminal. Games that can follow a resize
// keep their state; others restart.
func (m *Model) resize() {
	h := m.gameHeight()
	m.screen.Resize(m.config.ScreenW, h)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, h)
		return
	}
	cfg := m.config
	cfg.ScreenH = h
	m.game.Reset(cfg)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("session game over", "game", m.game.ID(), "score", m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text under
// ~/.t2048/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the most recent game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// ProgramOptions returns the Bubble Tea options for a session.
func ProgramOptions(mouse bool) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// Run starts the Bubble Tea program with the given game on the local terminal.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(model, ProgramOptions(opts.Mouse)...)
	_, err := p.Run()
	return err
}
