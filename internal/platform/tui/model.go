package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
	"github.com/vovakirdan/brickpong/internal/platform/history"
	"github.com/vovakirdan/brickpong/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving one engine.
// The terminal reports key presses only, so movement keys are turned into
// held actions by a HoldTracker.
type Model struct {
	engine   *brickpong.Engine
	recorder *history.Recorder
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *core.HoldTracker
	input    core.InputFrame // Presses since the last frame
	last     time.Time       // Time of the last frame
	now      func() time.Time
	quitting bool
}

// NewModel creates a model for engine. recorder may be nil.
// The engine should report finished matches to the same recorder through
// brickpong.WithMatchEnd.
func NewModel(engine *brickpong.Engine, recorder *history.Recorder, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:   engine,
		recorder: recorder,
		screen:   core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		holds:    core.NewHoldTracker(cfg.HoldWindow),
		input:    core.NewInputFrame(),
		now:      time.Now,
	}
}

// screenRows leaves the last terminal row for the help line.
func screenRows(h int) int {
	return max(h-1, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case action == core.ActionNone:
	case held(action):
		m.holds.Press(action, m.now())
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleMouse turns a left click on the menu's Play button into a confirm.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.engine.State() != brickpong.StateMenu {
		return m, nil
	}
	if playButton(m.screen.Width(), m.screen.Height()).Contains(msg.X, msg.Y) {
		m.input.Set(core.ActionConfirm)
	}
	return m, nil
}

// handleFrame advances the engine by the wall time since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	m.holds.Apply(&m.input, now)
	m.engine.Advance(elapsed, m.input)
	m.input.Clear()

	if m.engine.State() != brickpong.StatePlaying {
		m.holds.Reset()
	}

	return m, frameCmd(m.config.FrameRate)
}

// quit records an unfinished match before the program exits.
func (m *Model) quit() {
	m.quitting = true
	if m.engine.InMatch() {
		m.recorder.Record(m.engine.Summary(), storage.EndQuit)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.engine.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given engine.
func Run(engine *brickpong.Engine, recorder *history.Recorder, cfg core.RuntimeConfig) error {
	model := NewModel(engine, recorder, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
