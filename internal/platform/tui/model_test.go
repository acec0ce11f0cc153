package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 7}, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitialView(t *testing.T) {
	m := newTestModel(t)
	if m.config.TickRate != 60 {
		t.Errorf("tick rate = %d, expected fps from config", m.config.TickRate)
	}

	view := m.View()
	if !strings.Contains(view, "Welcome to Pong!") {
		t.Error("start screen missing from first view")
	}
	if !strings.Contains(view, "quit") {
		t.Error("help footer missing")
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestModelKeysApplyOnTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Session().State() != pong.StateStartScreen {
		t.Fatal("key applied before the tick")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	if m.Session().State() != pong.StatePlaying {
		t.Errorf("state = %v, expected Playing", m.Session().State())
	}
	if strings.Contains(m.View(), "Welcome to Pong!") {
		t.Error("view still shows the start screen")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command produced %T, expected tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("view not cleared on quit")
	}
}

func TestModelFollowsRebinding(t *testing.T) {
	m := newTestModel(t)
	if err := m.Session().Bindings().Rebind(pong.ActionConfirm, "p"); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m, _ = update(t, m, TickMsg{})
	if m.Session().State() != pong.StatePlaying {
		t.Errorf("state = %v, expected the rebound confirm key to start the game", m.Session().State())
	}
	if !strings.Contains(m.View(), "p confirm") {
		t.Error("help footer still shows the old confirm key")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.renderer.screen.Width() != 120 || m.renderer.screen.Height() != 40-helpHeight {
		t.Errorf("renderer = %dx%d, expected 120x%d", m.renderer.screen.Width(), m.renderer.screen.Height(), 40-helpHeight)
	}
	m, _ = update(t, m, TickMsg{})
	if lines := strings.Count(m.renderer.Frame(), "\n") + 1; lines != 40-helpHeight {
		t.Errorf("frame has %d lines", lines)
	}
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Ball.Size = 0
	if _, err := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil); err == nil {
		t.Error("expected error")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.queue.Len() != 0 {
		t.Error("screenshot key reached the game")
	}

	files, err := filepath.Glob(filepath.Join(home, ".pong", "screenshots", "pong_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Welcome to Pong!") {
		t.Error("screenshot missing start screen text")
	}
}
