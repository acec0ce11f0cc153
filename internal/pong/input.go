package pong

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// PaddleAccel is the speed change applied per key press.
const PaddleAccel = 2

// Action is a logical control a key can be bound to.
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionConfirm
)

// Actions lists every bindable action in display order.
var Actions = []Action{ActionLeftUp, ActionLeftDown, ActionRightUp, ActionRightDown, ActionConfirm}

// String returns the action's config name.
func (a Action) String() string {
	switch a {
	case ActionLeftUp:
		return "left_up"
	case ActionLeftDown:
		return "left_down"
	case ActionRightUp:
		return "right_up"
	case ActionRightDown:
		return "right_down"
	case ActionConfirm:
		return "confirm"
	default:
		return "none"
	}
}

// ParseAction resolves a config name such as "left_up".
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if a.String() == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%q (want one of left_up, left_down, right_up, right_down, confirm): %w", name, ErrUnknownAction)
}

// KeyBindings maps actions to key identifiers.
type KeyBindings struct {
	keys map[Action]string
}

// NewKeyBindings creates bindings from the keys section of the config.
func NewKeyBindings(cfg config.KeysConfig) *KeyBindings {
	return &KeyBindings{keys: map[Action]string{
		ActionLeftUp:    cfg.LeftUp,
		ActionLeftDown:  cfg.LeftDown,
		ActionRightUp:   cfg.RightUp,
		ActionRightDown: cfg.RightDown,
		ActionConfirm:   cfg.Confirm,
	}}
}

// DefaultKeyBindings returns W/S for the left paddle, arrows for the right
// one and space to confirm.
func DefaultKeyBindings() *KeyBindings {
	return NewKeyBindings(config.Default().Keys)
}

// Key returns the key bound to an action.
func (kb *KeyBindings) Key(a Action) string {
	return kb.keys[a]
}

// Lookup returns the action bound to key, or ActionNone.
func (kb *KeyBindings) Lookup(key string) Action {
	for _, a := range Actions {
		if kb.keys[a] == key {
			return a
		}
	}
	return ActionNone
}

// Rebind binds action to key. A key can serve only one action, and the
// quit keys serve none.
func (kb *KeyBindings) Rebind(a Action, key string) error {
	if !isAction(a) {
		return fmt.Errorf("rebind %d: %w", a, ErrUnknownAction)
	}
	if key == "" {
		return fmt.Errorf("rebind %s to empty key: %w", a, ErrUnknownAction)
	}
	if config.IsQuitKey(key) {
		return fmt.Errorf("rebind %s to %q, reserved for quit: %w", a, key, ErrKeyInUse)
	}
	if other := kb.Lookup(key); other != ActionNone && other != a {
		return fmt.Errorf("rebind %s to %q, used by %s: %w", a, key, other, ErrKeyInUse)
	}
	kb.keys[a] = key
	return nil
}

// RebindSpec applies an "action=key" pair, as given on the command line.
func (kb *KeyBindings) RebindSpec(spec string) error {
	name, key, ok := strings.Cut(spec, "=")
	if !ok {
		return fmt.Errorf("binding %q is not action=key: %w", spec, ErrUnknownAction)
	}
	a, err := ParseAction(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	return kb.Rebind(a, strings.TrimSpace(key))
}

// Config converts the bindings back to their config form.
func (kb *KeyBindings) Config() config.KeysConfig {
	return config.KeysConfig{
		LeftUp:    kb.keys[ActionLeftUp],
		LeftDown:  kb.keys[ActionLeftDown],
		RightUp:   kb.keys[ActionRightUp],
		RightDown: kb.keys[ActionRightDown],
		Confirm:   kb.keys[ActionConfirm],
	}
}

func isAction(a Action) bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// InputMapper turns paddle key presses into velocity changes.
// Presses accumulate: pressing in the direction of travel (or from rest)
// adds PaddleAccel, pressing against it stops the paddle before it can reverse.
type InputMapper struct {
	bindings *KeyBindings
}

// NewInputMapper creates a mapper over the given bindings.
func NewInputMapper(bindings *KeyBindings) *InputMapper {
	return &InputMapper{bindings: bindings}
}

// Apply handles one key press. Returns the action it resolved to.
func (m *InputMapper) Apply(key string, left, right *Paddle) Action {
	a := m.bindings.Lookup(key)
	switch a {
	case ActionLeftUp:
		accelerate(left, 1)
	case ActionLeftDown:
		accelerate(left, -1)
	case ActionRightUp:
		accelerate(right, 1)
	case ActionRightDown:
		accelerate(right, -1)
	}
	return a
}

// accelerate applies one press in direction dir (+1 up, -1 down).
func accelerate(p *Paddle, dir int) {
	v := p.VSpeed()
	if v*dir < 0 {
		_ = p.SetVSpeed(0)
		return
	}
	// At full speed the setter rejects the change, which caps the paddle.
	_ = p.SetVSpeed(v + dir*PaddleAccel)
}
