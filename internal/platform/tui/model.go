package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model running a single game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config: cfg,
		keys:   keys,
		help:   h,
		logger: logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey runs the key's game command immediately, so every press is
// applied once, in order, and followed by a render.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "generation", m.gameState.Generation)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.game.Apply(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running; the
// board is re-centered on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame (gravity).
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step()
	m.gameState = result.State
	m.logStep(result)

	return m, tickCmd(m.config.TickRate)
}

// logStep records the notable events of a frame.
func (m Model) logStep(result core.StepResult) {
	if result.Locked {
		m.logger.Debug("piece locked", "rows_cleared", result.RowsCleared)
		if result.RowsCleared > 0 {
			m.logger.Info("rows cleared", "count", result.RowsCleared)
		}
	}
	if result.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "next_generation", result.State.Generation)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, keys, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
