package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/audio"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Options configures the interactive host.
type Options struct {
	Runtime  core.RuntimeConfig
	Logger   *log.Logger       // Nil discards logs
	Audio    *audio.Player     // Nil plays nothing
	Recorder *storage.Recorder // Nil records nothing
}

// Model is the Bubble Tea model running one flappy session.
type Model struct {
	game     *flappy.Game
	view     *View
	screen   *core.Screen
	clock    *core.WallClock
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	audio    *audio.Player
	recorder *storage.Recorder
	tickRate int
	seed     int64
	width    int
	height   int
	quitting bool
}

// NewModel creates a model hosting g.
func NewModel(g *flappy.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	view := NewView(g)
	if opts.Audio != nil {
		view.SetMuted(opts.Audio.Muted())
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     g,
		view:     view,
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		clock:    core.NewWallClock(),
		input:    core.NewInputFrame(),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		audio:    opts.Audio,
		recorder: opts.Recorder,
		tickRate: opts.Runtime.TickRate,
		seed:     opts.Runtime.Seed,
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.clock.Reset()
	m.logger.Info("session started", "seed", m.seed, "state", m.game.State(), "fps", m.tickRate)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey accumulates actions until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		m.logger.Info("quit requested", "ticks", m.game.Ticks())
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick feeds one measured delta and the held inputs to the engine.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionMute) && m.audio != nil {
		muted := m.audio.ToggleMute()
		m.view.SetMuted(muted)
		m.logger.Debug("mute toggled", "muted", muted)
	}

	dt := m.clock.Delta()
	events := m.game.Tick(dt, m.input)
	if m.recorder != nil {
		m.recorder.Record(dt, m.input)
	}
	m.dispatch(events)

	m.input.Clear()
	return m, tickCmd(m.tickRate)
}

// dispatch routes engine events to logging and audio.
func (m Model) dispatch(events []core.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case core.StateChanged:
			m.logger.Info("state changed", "from", ev.From, "to", ev.To, "score", m.game.DisplayScore())
			if ev.To == core.StateGameOver {
				m.logger.Info("run ended", "hit", m.game.LastCollision().Kind, "score", m.game.DisplayScore())
			}
		case core.ObstacleSpawned, core.ObstacleDespawned, core.ScoreChanged:
			m.logger.Debug("event", "event", ev)
		}
	}
	if m.audio != nil {
		m.audio.PlayAll(audio.CuesFor(events))
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	fieldH := m.height - lipgloss.Height(helpView)
	if m.screen.Width() != m.width || m.screen.Height() != fieldH {
		m.screen.Resize(m.width, fieldH)
	}

	m.view.Render(m.screen, m.game)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(g *flappy.Game, opts Options) error {
	p := tea.NewProgram(NewModel(g, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
