package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model hosting one tetris loop.
type Model struct {
	loop     *tetris.Loop
	sched    *frameScheduler
	view     *BoardView
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model whose loop draws pieces from a source seeded
// with cfg.Seed. A zero seed uses the current time. A nil logger discards
// output.
func NewModel(cfg core.RuntimeConfig, rules tetris.Rules, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := newFrameScheduler(cfg.FrameRate)
	view := &BoardView{}
	loop, err := tetris.NewLoop(tetris.Host{
		Clock:     tetris.SystemClock{},
		Scheduler: sched,
		Random:    rand.New(rand.NewSource(cfg.Seed)),
		Renderer:  view,
	}, rules)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		loop:   loop,
		sched:  sched,
		view:   view,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		config: cfg,
	}, nil
}

// Init sets the window title. The game waits for the start key.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("model ready", "seed", m.config.Seed, "fps", m.config.FrameRate)
	return tea.SetWindowTitle("tetris")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if !m.sched.Accept(msg) {
			return m, nil
		}
		m.loop.Tick()
		return m, m.afterUpdate()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.loop.Stop()
		m.afterUpdate()
		m.logger.Info("quit", "score", m.loop.Session().Points)
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionStart:
		if m.loop.State() != tetris.StateRunning {
			m.loop.Start()
		}

	case core.ActionPause:
		m.loop.TogglePause()

	default:
		if cmd, ok := commandFor(action); ok {
			res := m.loop.Handle(cmd)
			if res.Locked {
				m.logger.Debug("piece locked", "command", cmd, "score", m.loop.Session().Points)
			}
		}
	}

	return m, m.afterUpdate()
}

// afterUpdate logs engine events and returns the frame command the loop
// requested, if any.
func (m Model) afterUpdate() tea.Cmd {
	for _, e := range m.loop.DrainEvents() {
		switch e.Kind {
		case tetris.EventLinesCleared:
			m.logger.Info("lines cleared", "lines", e.Lines, "points", e.Points, "score", e.Score)
		case tetris.EventLevelUp:
			m.logger.Info("level up", "level", e.Level, "interval", m.loop.Interval())
		case tetris.EventGameOver:
			m.logger.Info("game over", "score", e.Score, "level", e.Level, "lines", m.loop.Session().TotalLines)
		default:
			m.logger.Debug(e.Kind.String(), "score", e.Score, "level", e.Level)
		}
	}
	return m.sched.Cmd()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Paint(m.screen, HUD{
		State:    m.loop.State(),
		Paused:   m.loop.Paused(),
		Session:  m.loop.Session(),
		Interval: m.loop.Interval(),
	})
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program.
func Run(cfg core.RuntimeConfig, rules tetris.Rules, logger *log.Logger) error {
	model, err := NewModel(cfg, rules, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run: %w", err)
	}
	return nil
}
