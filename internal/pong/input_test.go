package pong

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func newPaddles(t *testing.T) (*Paddle, *Paddle) {
	t.Helper()
	left, err := NewPaddle(SideLeft, 5, 60, testField)
	if err != nil {
		t.Fatal(err)
	}
	right, err := NewPaddle(SideRight, 5, 60, testField)
	if err != nil {
		t.Fatal(err)
	}
	return left, right
}

func TestInputMapperAccumulates(t *testing.T) {
	left, right := newPaddles(t)
	m := NewInputMapper(DefaultKeyBindings())

	want := []int{2, 4, 6, 8, 10, 10, 10}
	for i, w := range want {
		if a := m.Apply("w", left, right); a != ActionLeftUp {
			t.Fatalf("press %d resolved to %v", i, a)
		}
		if left.VSpeed() != w {
			t.Fatalf("press %d: v = %d, expected %d", i, left.VSpeed(), w)
		}
	}
	if right.VSpeed() != 0 {
		t.Errorf("right paddle moved: v = %d", right.VSpeed())
	}
}

func TestInputMapperStopsBeforeReversing(t *testing.T) {
	left, right := newPaddles(t)
	m := NewInputMapper(DefaultKeyBindings())

	_ = right.SetVSpeed(6)
	m.Apply("down", left, right)
	if right.VSpeed() != 0 {
		t.Fatalf("opposing press: v = %d, expected 0", right.VSpeed())
	}
	m.Apply("down", left, right)
	if right.VSpeed() != -2 {
		t.Fatalf("press from rest: v = %d, expected -2", right.VSpeed())
	}
	m.Apply("up", left, right)
	if right.VSpeed() != 0 {
		t.Fatalf("opposing press: v = %d, expected 0", right.VSpeed())
	}

	for i := 0; i < 8; i++ {
		m.Apply("s", left, right)
	}
	if left.VSpeed() != -MaxPaddleSpeed {
		t.Errorf("left v = %d, expected %d", left.VSpeed(), -MaxPaddleSpeed)
	}
}

func TestInputMapperIgnoresUnboundKeys(t *testing.T) {
	left, right := newPaddles(t)
	m := NewInputMapper(DefaultKeyBindings())

	for _, key := range []string{"x", "space", "", "left"} {
		m.Apply(key, left, right)
	}
	if left.VSpeed() != 0 || right.VSpeed() != 0 {
		t.Errorf("velocities changed: left=%d right=%d", left.VSpeed(), right.VSpeed())
	}
}

func TestDefaultKeyBindings(t *testing.T) {
	kb := DefaultKeyBindings()
	want := map[Action]string{
		ActionLeftUp:    "w",
		ActionLeftDown:  "s",
		ActionRightUp:   "up",
		ActionRightDown: "down",
		ActionConfirm:   "space",
	}
	for a, key := range want {
		if got := kb.Key(a); got != key {
			t.Errorf("Key(%v) = %q, expected %q", a, got, key)
		}
		if got := kb.Lookup(key); got != a {
			t.Errorf("Lookup(%q) = %v, expected %v", key, got, a)
		}
	}
	if kb.Lookup("q") != ActionNone {
		t.Error("unbound key resolved to an action")
	}
}

func TestRebind(t *testing.T) {
	kb := DefaultKeyBindings()

	if err := kb.Rebind(ActionLeftUp, "i"); err != nil {
		t.Fatalf("Rebind() failed: %v", err)
	}
	if kb.Lookup("i") != ActionLeftUp {
		t.Error("new key not bound")
	}
	if kb.Lookup("w") != ActionNone {
		t.Error("old key still bound")
	}

	if err := kb.Rebind(ActionLeftUp, "i"); err != nil {
		t.Errorf("rebinding to the same key failed: %v", err)
	}

	tests := []struct {
		name    string
		action  Action
		key     string
		wantErr error
	}{
		{name: "key in use", action: ActionLeftUp, key: "s", wantErr: ErrKeyInUse},
		{name: "esc is quit", action: ActionConfirm, key: "esc", wantErr: ErrKeyInUse},
		{name: "ctrl+c is quit", action: ActionRightUp, key: "ctrl+c", wantErr: ErrKeyInUse},
		{name: "no action", action: ActionNone, key: "k", wantErr: ErrUnknownAction},
		{name: "out of range action", action: Action(99), key: "k", wantErr: ErrUnknownAction},
		{name: "empty key", action: ActionConfirm, key: "", wantErr: ErrUnknownAction},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := kb.Config()
			err := kb.Rebind(tc.action, tc.key)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, expected %v", err, tc.wantErr)
			}
			if kb.Config() != before {
				t.Error("failed rebind changed bindings")
			}
		})
	}
}

func TestRebindSpec(t *testing.T) {
	tests := []struct {
		spec    string
		action  Action
		key     string
		wantErr error
	}{
		{spec: "right_up=k", action: ActionRightUp, key: "k"},
		{spec: " confirm = enter ", action: ActionConfirm, key: "enter"},
		{spec: "jump=j", wantErr: ErrUnknownAction},
		{spec: "right_up", wantErr: ErrUnknownAction},
		{spec: "left_down=up", wantErr: ErrKeyInUse},
		{spec: "confirm=esc", wantErr: ErrKeyInUse},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			kb := DefaultKeyBindings()
			err := kb.RebindSpec(tc.spec)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kb.Key(tc.action) != tc.key {
				t.Errorf("Key(%v) = %q, expected %q", tc.action, kb.Key(tc.action), tc.key)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("none"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("ParseAction(none) error = %v", err)
	}
}

func TestKeyBindingsConfig(t *testing.T) {
	cfg := config.KeysConfig{LeftUp: "a", LeftDown: "z", RightUp: "k", RightDown: "m", Confirm: "enter"}
	kb := NewKeyBindings(cfg)
	if kb.Config() != cfg {
		t.Errorf("Config() = %+v, expected %+v", kb.Config(), cfg)
	}
}
