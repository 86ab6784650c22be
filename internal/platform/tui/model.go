package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/widebird/internal/core"
	"github.com/vovakirdan/widebird/internal/games/widebird"
	"github.com/vovakirdan/widebird/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a Model.
type Options struct {
	Interval time.Duration // Simulation tick, defaults to the engine's configured tick
	Logger   *log.Logger
	Runtime  core.RuntimeConfig
}

// Model is the Bubble Tea model running one WideBird engine.
type Model struct {
	engine   *widebird.Engine
	store    *storage.Store
	logger   *log.Logger
	interval time.Duration

	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	history historyPanel

	showHistory bool
	gen         int  // Generation of the current tick loop
	ticking     bool // A tick of generation gen is in flight
	quitting    bool
}

// NewModel creates a model driving engine. store may be nil, in which case
// the history panel stays empty.
func NewModel(engine *widebird.Engine, store *storage.Store, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = engine.Config().Timing.TickInterval()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime = core.DefaultConfig()
	}

	opts.Logger.Debug("model ready", "seed", opts.Runtime.Seed, "interval", opts.Interval,
		"screen", fmt.Sprintf("%dx%d", opts.Runtime.ScreenW, opts.Runtime.ScreenH))

	h := help.New()
	h.ShowAll = false

	return Model{
		engine:   engine,
		store:    store,
		logger:   opts.Logger,
		interval: opts.Interval,
		keys:     DefaultKeyMap(),
		help:     h,
		screen:   core.NewScreen(opts.Runtime.ScreenW, sceneHeight(opts.Runtime.ScreenH)),
		history:  newHistoryPanel(opts.Runtime.ScreenH),
	}
}

// sceneHeight leaves the last terminal line for the help footer.
func sceneHeight(h int) int {
	return max(1, h-1)
}

// Init initializes the model. Nothing ticks until a playthrough starts.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("WideBird")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleAction maps an action to engine commands for the current phase.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	phase := m.engine.Session().Phase

	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPrimary:
		switch phase {
		case widebird.PhasePlaying:
			m.engine.Jump()
		case widebird.PhaseEnded:
			m.engine.Start()
		case widebird.PhaseWaiting:
			// The first playthrough needs the explicit start affordance
		}

	case core.ActionStart:
		m.engine.Start()

	case core.ActionTap:
		if phase == widebird.PhasePlaying {
			m.engine.Jump()
		} else {
			m.engine.Start()
		}

	case core.ActionHistory:
		if phase == widebird.PhasePlaying {
			return m, nil
		}
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.history.load(m.store)
		}
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	return m.syncTicker()
}

// syncTicker starts a tick loop when a playthrough has begun and none is
// running. Loops end by themselves when the engine leaves Playing.
func (m Model) syncTicker() (tea.Model, tea.Cmd) {
	if m.engine.Session().Phase != widebird.PhasePlaying || m.ticking {
		return m, nil
	}

	m.showHistory = false
	m.gen++
	m.ticking = true
	m.logger.Debug("tick loop started", "gen", m.gen, "interval", m.interval)
	return m, tickCmd(m.interval, m.gen)
}

// handleTick steps the engine and schedules the next tick while playing.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticking || msg.Gen != m.gen {
		return m, nil
	}

	m.engine.Step()

	s := m.engine.Session()
	if s.Phase == widebird.PhasePlaying {
		return m, tickCmd(m.interval, m.gen)
	}

	m.ticking = false
	m.logger.Debug("tick loop stopped", "gen", m.gen, "phase", s.Phase, "score", s.Score)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width
	m.history.setHeight(msg.Height)
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showHistory {
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, m.history.View())
	} else {
		DrawScene(m.screen, Scene{
			Session:      m.engine.Session(),
			GroundHeight: m.engine.Config().World.GroundHeight,
			CanStart:     m.engine.CanStart(),
		})
		body = RenderScreen(m.screen)
	}

	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given engine.
func Run(engine *widebird.Engine, store *storage.Store, opts Options) error {
	model := NewModel(engine, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks start and jump
	)

	_, err := p.Run()
	return err
}
