package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Model is the Bubble Tea model for one game.
// Human players move with keys; AI players move on each TickMsg.
type Model struct {
	session *game.Session
	policy  registry.Policy // nil for human play
	cfg     config.Config
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	logger  *log.Logger
	width   int
	height  int
	err     error

	quitting bool
}

// NewModel starts a session for cfg and resolves the AI policy, if any.
func NewModel(cfg config.Config, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := game.NewSession(cfg, logger)
	if err != nil {
		return Model{}, err
	}

	var policy registry.Policy
	if cfg.Mode.IsAI() {
		policy, err = registry.Create(cfg.Mode.PolicyID(), cfg)
		if err != nil {
			return Model{}, err
		}
	}

	return Model{
		session: session,
		policy:  policy,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(0, 0),
		logger:  logger,
	}, nil
}

// Init starts the move clock for AI players.
func (m Model) Init() tea.Cmd {
	if m.policy == nil {
		return nil
	}
	return tickCmd(m.cfg.AIDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case m.session.Over():
		// Any key acknowledges the final board.
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.policy != nil {
		return m, nil
	}

	mv, ok := m.keys.MoveFor(msg)
	if !ok {
		return m, nil
	}
	if _, err := m.session.Play(mv); err != nil {
		m.err = err
		return m.quit()
	}
	return m, nil
}

// handleTick plays one AI move and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.policy == nil || m.session.Over() {
		return m, nil
	}

	if _, _, err := m.session.PlayPolicy(m.policy); err != nil {
		m.err = err
		return m.quit()
	}
	if m.session.Over() {
		return m, nil
	}
	return m, tickCmd(m.cfg.AIDelay)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Err reports the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := frame{
		grid:   m.session.Grid(),
		log2:   m.cfg.ShowLog2,
		over:   m.session.Over(),
		turns:  m.session.Turns(),
		player: m.playerName(),
	}
	m.screen.Resize(screenSize(f))
	draw(m.screen, f)

	view := lipgloss.JoinVertical(lipgloss.Center,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m Model) playerName() string {
	if m.policy == nil {
		return "human"
	}
	return m.policy.Title()
}

// Run starts the Bubble Tea program for cfg on the alternate screen.
func Run(cfg config.Config, logger *log.Logger) error {
	model, err := NewModel(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
