// Package tui hosts pong sessions in a terminal through Bubble Tea, locally
// or over SSH. It owns pacing, key translation and terminal rendering.
package tui

import (
	"fmt"
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

// TickMsg paces the session: one message, one simulation tick.
type TickMsg time.Time

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a pong session. Key messages are queued
// and consumed by the driver on the next tick, so input always lands before
// physics within a tick.
type Model struct {
	driver   *pong.Driver
	queue    *core.EventQueue
	renderer *Renderer
	help     help.Model
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model running a fresh session. ScreenW and ScreenH in rt
// are the terminal size; a zero Seed is replaced with one from the clock and
// a zero TickRate falls back to the configured fps.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Screen.FPS
	}

	session, err := pong.NewSession(cfg, rt.Seed, logger)
	if err != nil {
		return Model{}, err
	}

	queue := core.NewEventQueue()
	renderer := NewRenderer(cfg, rt.ScreenW, rt.ScreenH-helpHeight)
	session.Render(renderer)
	renderer.Present()

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		driver:   pong.NewDriver(session, queue, renderer),
		queue:    queue,
		renderer: renderer,
		help:     h,
		config:   rt,
	}, nil
}

// Session returns the running session.
func (m Model) Session() *pong.Session {
	return m.driver.Session()
}

// keys derives the key map from the session's live bindings, so a rebind
// applies to the very next key press.
func (m Model) keys() KeyMap {
	return NewKeyMap(m.Session().Bindings())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := m.keys()
		if key.Matches(msg, keys.Screenshot) {
			m.saveScreenshot()
			return m, nil
		}
		if ev := keys.MapKey(msg); ev.Kind != core.EventNone {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.renderer.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.driver.Step() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// saveScreenshot writes the current frame as plain text to
// ~/.pong/screenshots.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("pong_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.renderer.screen.String()), 0o600)
}

// View renders the last presented frame with the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Frame() + "\n" + helpStyle.Render(m.help.View(m.keys()))
}

// Run plays a session in the current terminal until the players quit.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
