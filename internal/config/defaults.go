package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/pong.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Gameplay: GameplayConfig{
			WinningScore: 11,
			WinByTwo:     true,
			MaxBallSpeed: 15,
		},
		Ball: BallConfig{
			Size:   10,
			HSpeed: 3,
			VSpeed: 5,
		},
		Paddle: PaddleConfig{
			Width:  5,
			Length: 60,
		},
		Keys: KeysConfig{
			LeftUp:    "w",
			LeftDown:  "s",
			RightUp:   "up",
			RightDown: "down",
			Confirm:   "space",
		},
		Colors: ColorsConfig{
			Background: "#000000",
			Foreground: "#FFFFFF",
			Title:      "#00FF00",
			Leading:    "#228B22",
			Trailing:   "#DC143C",
			Tied:       "#DEB887",
			Hint:       "#808080",
		},
		Fonts: FontsConfig{
			Title:    FontConfig{Bold: true},
			Controls: FontConfig{Bold: true},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
