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

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Options configures a Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger        // nil discards logs
	Bell    io.Writer          // Where terminal bells go; nil is silent
	Theme   *lipgloss.Renderer // nil uses the default renderer
	// ScreenshotDir receives ctrl+s screenshots. Empty uses ~/.pong/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one pong game in the terminal.
type Model struct {
	game    *pong.Game
	screen  *core.Screen
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	theme   Theme
	held    *HeldKeys
	bell    *Bell
	logger  *log.Logger
	shotDir string
	sound   bool

	// pending collects one-shot input (click, confirm, pointer) until the next tick.
	pending  core.InputFrame
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *pong.Game, opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.Play.TickRate
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(config.Dir(), "screenshots")
	}

	h := help.New()
	h.ShowAll = false

	game.Reset(rt)

	return Model{
		game:    game,
		screen:  core.NewScreen(rt.ScreenW, boardRows(rt.ScreenH)),
		runtime: rt,
		keys:    NewKeyMap(opts.Config.Keys),
		help:    h,
		theme:   NewTheme(opts.Theme, opts.Config.Theme),
		held:    NewHeldKeys(opts.Config.Play.HoldWindow()),
		bell:    NewBell(opts.Bell),
		logger:  logger,
		shotDir: shotDir,
		sound:   opts.Config.Sound.Enabled,
		pending: core.NewInputFrame(),
		now:     time.Now,
	}
}

// boardRows is the screen height left for the board under the help line.
func boardRows(height int) int {
	return max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.game.Seed(), "tick_rate", m.runtime.TickRate)
	return tickCmd(m.runtime.TickRate)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		return m.quit("quit key")
	case core.ActionConfirm:
		m.pending.Set(action)
	case core.ActionNone:
	default:
		m.held.Press(action, m.now())
	}

	return m, nil
}

// handleMouse turns mouse events into pointer input in board units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.screen.Height() {
		return m, nil // Help line
	}

	m.pending.SetPointer(pong.CellToBoard(msg.X, msg.Y, m.screen.Width(), m.screen.Height()))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.pending.Set(core.ActionClick)
	}
	return m, nil
}

// handleResize rescales the board; the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.pending.Clone()
	m.held.Apply(&in, m.now())
	m.pending.Clear()

	frame := m.game.Step(in)
	m.dispatch(frame)

	if frame.Exit {
		return m.quit("exit button")
	}
	return m, tickCmd(m.runtime.TickRate)
}

// dispatch acts on the events of a frame.
func (m Model) dispatch(frame pong.Frame) {
	for _, e := range frame.Events {
		switch e.Kind {
		case pong.EventSound:
			if m.sound {
				m.bell.Play(e.Cue)
			}
		case pong.EventScored:
			left, right := frame.Scores()
			m.logger.Debug("point", "side", e.Side, "left", left, "right", right, "tick", e.Tick)
		case pong.EventStateChanged:
			m.logger.Info("state changed", "state", e.State, "tick", e.Tick)
			if e.State == pong.StatePlaying {
				m.held.Reset()
			}
		}
	}
}

func (m Model) quit(reason string) (tea.Model, tea.Cmd) {
	left, right := m.game.Frame().Scores()
	m.logger.Info("session ended", "reason", reason, "left", left, "right", right)
	m.quitting = true
	m.bell.Close()
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local game.
func Run(game *pong.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without buttons
	)

	_, err := p.Run()
	model.bell.Close()
	return err
}
