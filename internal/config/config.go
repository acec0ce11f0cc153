// Package config provides YAML-based configuration loading for pong.
// The loaded Config is an immutable snapshot handed to a session at creation.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Config contains all configuration for a pong session.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Keys     KeysConfig     `yaml:"keys"`
	Colors   ColorsConfig   `yaml:"colors"`
	Fonts    FontsConfig    `yaml:"fonts"`
}

// ScreenConfig defines the playfield size in pixels and the tick rate.
// The terminal renderer scales the playfield onto whatever terminal it gets.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// GameplayConfig defines scoring rules.
type GameplayConfig struct {
	WinningScore int  `yaml:"winning_score"`
	WinByTwo     bool `yaml:"win_by_two"`
	MaxBallSpeed int  `yaml:"max_ball_speed"` // Ceiling on |h_speed|, 0 = unbounded
}

// BallConfig defines ball size and serve speeds (magnitudes, px per tick).
type BallConfig struct {
	Size   int `yaml:"size"`
	HSpeed int `yaml:"h_speed"`
	VSpeed int `yaml:"v_speed"`
}

// PaddleConfig defines paddle dimensions.
type PaddleConfig struct {
	Width  int `yaml:"width"`
	Length int `yaml:"length"`
}

// KeysConfig maps logical actions to key identifiers.
type KeysConfig struct {
	LeftUp    string `yaml:"left_up"`
	LeftDown  string `yaml:"left_down"`
	RightUp   string `yaml:"right_up"`
	RightDown string `yaml:"right_down"`
	Confirm   string `yaml:"confirm"`
}

// ColorsConfig holds "#RRGGBB" values for each palette role.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Title      string `yaml:"title"`
	Leading    string `yaml:"leading"`
	Trailing   string `yaml:"trailing"`
	Tied       string `yaml:"tied"`
	Hint       string `yaml:"hint"`
}

// FontConfig defines style flags for a text role.
type FontConfig struct {
	Bold      bool `yaml:"bold"`
	Italic    bool `yaml:"italic"`
	Underline bool `yaml:"underline"`
}

// FontsConfig groups the fonts used by the screens.
type FontsConfig struct {
	Title    FontConfig `yaml:"title"`
	Menu     FontConfig `yaml:"menu"`
	Controls FontConfig `yaml:"controls"`
}

// Font converts the config entry into a core.Font.
func (f FontConfig) Font() core.Font {
	return core.Font{Bold: f.Bold, Italic: f.Italic, Underline: f.Underline}
}

// Hex returns the configured value for a palette role.
func (c ColorsConfig) Hex(role core.Color) string {
	switch role {
	case core.ColorBackground:
		return c.Background
	case core.ColorForeground:
		return c.Foreground
	case core.ColorTitle:
		return c.Title
	case core.ColorLeading:
		return c.Leading
	case core.ColorTrailing:
		return c.Trailing
	case core.ColorTied:
		return c.Tied
	case core.ColorHint:
		return c.Hint
	default:
		return ""
	}
}

// QuitKeys always quit and cannot be bound to an action.
var QuitKeys = []string{"ctrl+c", "esc"}

// IsQuitKey reports whether key is one of QuitKeys.
func IsQuitKey(key string) bool {
	for _, q := range QuitKeys {
		if key == q {
			return true
		}
	}
	return false
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	s := c.Screen
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d must be positive", ErrInvalid, s.Width, s.Height)
	case s.FPS <= 0 || s.FPS > 1000:
		return fmt.Errorf("%w: fps %d out of range 1-1000", ErrInvalid, s.FPS)
	case c.Gameplay.WinningScore <= 0:
		return fmt.Errorf("%w: winning_score must be positive", ErrInvalid)
	case c.Gameplay.MaxBallSpeed < 0:
		return fmt.Errorf("%w: max_ball_speed must not be negative", ErrInvalid)
	case c.Ball.Size <= 0 || c.Ball.Size > s.Width || c.Ball.Size > s.Height:
		return fmt.Errorf("%w: ball size %d does not fit the screen", ErrInvalid, c.Ball.Size)
	case c.Ball.HSpeed <= 0 || c.Ball.VSpeed <= 0:
		return fmt.Errorf("%w: ball speeds must be positive magnitudes", ErrInvalid)
	case c.Paddle.Width <= 0 || c.Paddle.Length <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalid)
	case c.Paddle.Length > s.Height || 2*(c.Paddle.Width+2) > s.Width:
		return fmt.Errorf("%w: paddles do not fit the screen", ErrInvalid)
	}

	keys := map[string]string{
		"left_up":    c.Keys.LeftUp,
		"left_down":  c.Keys.LeftDown,
		"right_up":   c.Keys.RightUp,
		"right_down": c.Keys.RightDown,
		"confirm":    c.Keys.Confirm,
	}
	seen := make(map[string]string, len(keys))
	for action, key := range keys {
		if key == "" {
			return fmt.Errorf("%w: no key bound to %s", ErrInvalid, action)
		}
		if IsQuitKey(key) {
			return fmt.Errorf("%w: %s bound to %q, which is reserved for quit", ErrInvalid, action, key)
		}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, other, action)
		}
		seen[key] = action
	}

	for _, role := range []core.Color{
		core.ColorBackground, core.ColorForeground, core.ColorTitle,
		core.ColorLeading, core.ColorTrailing, core.ColorTied, core.ColorHint,
	} {
		if v := c.Colors.Hex(role); !hexColor.MatchString(v) {
			return fmt.Errorf("%w: color %s = %q is not #RRGGBB", ErrInvalid, role, v)
		}
	}
	return nil
}
