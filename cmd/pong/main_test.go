package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestApplyOverrides(t *testing.T) {
	cfg, err := applyOverrides(config.Default(), 120, []string{"left_up=i", "left_down=k"})
	if err != nil {
		t.Fatalf("applyOverrides() failed: %v", err)
	}
	if cfg.Screen.FPS != 120 {
		t.Errorf("fps = %d, expected 120", cfg.Screen.FPS)
	}
	if cfg.Keys.LeftUp != "i" || cfg.Keys.LeftDown != "k" {
		t.Errorf("keys = %+v", cfg.Keys)
	}
	if cfg.Keys.RightUp != "up" {
		t.Errorf("unrelated binding changed: %+v", cfg.Keys)
	}
}

func TestApplyOverridesKeepsConfigFPS(t *testing.T) {
	cfg, err := applyOverrides(config.Default(), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Screen.FPS != 60 {
		t.Errorf("fps = %d, expected 60", cfg.Screen.FPS)
	}
}

func TestApplyOverridesErrors(t *testing.T) {
	tests := []struct {
		name    string
		fps     int
		binds   []string
		wantErr error
	}{
		{name: "unknown action", binds: []string{"serve=x"}, wantErr: pong.ErrUnknownAction},
		{name: "key in use", binds: []string{"left_up=down"}, wantErr: pong.ErrKeyInUse},
		{name: "quit key", binds: []string{"confirm=esc"}, wantErr: pong.ErrKeyInUse},
		{name: "bad fps", fps: -5, wantErr: config.ErrInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := applyOverrides(config.Default(), tc.fps, tc.binds)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}
