package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// footerRows is the number of terminal rows below the field (help line).
const footerRows = 1

// Model is the Bubble Tea model for running a pong game.
// Bubble Tea delivers ticks, keys and resizes one at a time, so the game
// needs no locking.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	showHelp bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game and starts a
// fresh match sized to the terminal.
func NewModel(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	m := Model{
		game:     game,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		showHelp: true,
	}

	rows := m.fieldRows()
	m.screen = core.NewScreen(cfg.ScreenW, rows)
	fieldCfg := cfg
	fieldCfg.ScreenH = rows
	m.game.Reset(fieldCfg)
	m.help.Width = cfg.ScreenW

	return m
}

// fieldRows returns the number of rows available to the field.
func (m Model) fieldRows() int {
	return core.Max(m.config.ScreenH-footerRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	field := m.game.Field()
	m.logger.Info("game started", "field_w", field.X, "field_h", field.Y, "tick_rate", m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		snap := m.game.Snapshot()
		m.logger.Info("game ended", "left", snap.LeftScore, "right", snap.RightScore, "ticks", snap.Tick)
		return m, tea.Quit
	case core.ActionPause:
		m.game.TogglePause()
		m.logger.Debug("pause toggled", "paused", m.game.State().Paused)
		return m, nil
	case core.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}

	// Paddle keys are applied immediately, one step per key-down event
	m.game.HandleKey(msg.String())
	return m, nil
}

// handleResize processes window resize events.
// The match keeps its scores and ball velocity; only positions are re-anchored.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	rows := m.fieldRows()

	m.screen.Resize(msg.Width, rows)
	m.game.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	field := m.game.Field()
	m.logger.Debug("resized", "cols", msg.Width, "rows", rows, "field_w", field.X, "field_h", field.Y)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Update()
	for _, e := range result.Events {
		if e.Kind == core.EventPoint {
			m.logger.Debug("point scored",
				"side", e.Side,
				"left", result.State.LeftScore,
				"right", result.State.RightScore,
			)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	if m.showHelp {
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

// Game returns the game driven by this model.
func (m Model) Game() *pong.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
