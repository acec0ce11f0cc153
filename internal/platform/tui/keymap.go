package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// KeyMap holds the terminal bindings for a session. Game bindings come from
// the session's key bindings; quit is fixed so a bad config can't trap the
// player.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Confirm    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds a key map from pong bindings.
func NewKeyMap(kb *pong.KeyBindings) KeyMap {
	return KeyMap{
		LeftUp:    binding(kb.Key(pong.ActionLeftUp), "P1 up"),
		LeftDown:  binding(kb.Key(pong.ActionLeftDown), "P1 down"),
		RightUp:   binding(kb.Key(pong.ActionRightUp), "P2 up"),
		RightDown: binding(kb.Key(pong.ActionRightDown), "P2 down"),
		Confirm:   binding(kb.Key(pong.ActionConfirm), "confirm"),
		Quit: key.NewBinding(
			key.WithKeys(config.QuitKeys...),
			key.WithHelp("esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

func binding(k, desc string) key.Binding {
	keys := []string{k}
	if k == "space" {
		keys = append(keys, " ")
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(k, desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Confirm, k.Quit, k.Screenshot},
	}
}

// MapKey translates a key message into an input event.
// Keys that are not bound to anything yield an EventNone event.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Event {
	if key.Matches(msg, k.Quit) {
		return core.Quit()
	}
	if key.Matches(msg, k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Confirm) {
		return core.KeyDown(keyID(msg))
	}
	return core.Event{}
}

// keyID returns the identifier bindings use for a key. Bubble Tea reports
// the space bar as " ", which is unreadable in config files.
func keyID(msg tea.KeyMsg) string {
	if s := msg.String(); s != " " {
		return s
	}
	return "space"
}
