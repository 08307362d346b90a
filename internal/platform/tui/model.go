package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-traffic/internal/assets"
	"github.com/vovakirdan/tui-traffic/internal/core"
	"github.com/vovakirdan/tui-traffic/internal/engine"
	"github.com/vovakirdan/tui-traffic/internal/game"
)

// Options configures a terminal session.
type Options struct {
	Session *game.Session
	Catalog *assets.Catalog
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Model is the Bubble Tea model for the traffic game.
type Model struct {
	session  *game.Session
	renderer *Renderer
	screen   *core.Screen
	hold     *HoldState
	clock    *engine.FrameClock
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  opts.Session,
		renderer: NewRenderer(opts.Catalog),
		screen:   core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		hold:     NewHoldState(opts.Session.Config.Input.HoldWindow()),
		clock:    &engine.FrameClock{},
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	case core.ActionNone:
	default:
		m.hold.Press(a, time.Now())
	}
	return m, nil
}

// handleMouse activates the restart control on a left click inside it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.session.GameOver() {
		return m, nil
	}
	if restartButtonRect(m.screen.Width(), m.screen.Height()).Contains(msg.X, msg.Y) {
		m.restart()
	}
	return m, nil
}

// handleResize processes window resize events. World coordinates do not
// depend on the terminal size, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one frame with the currently held keys.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	m.session.Frame(dt, m.hold.Frame(now))
	return m, tickCmd(m.config.TickRate)
}

func (m Model) restart() {
	if m.session.Restart() {
		m.hold.Reset()
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.session)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("traffic_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.session)
	out := RenderScreen(m.screen)
	if m.config.ScreenH > 1 {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// playHeight returns the rows left for the world once the help footer takes
// the last terminal line.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
