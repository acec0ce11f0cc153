// pong is two-player Pong for the terminal.
//
// Usage:
//
//	pong play     - Play in this terminal
//	pong serve    - Start an SSH server, one game per connection
//	pong config   - Print the default config file
//	pong keys     - Show the effective key bindings
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible serves
//	--config <path>       - Use a specific config file
//	--bind <action=key>   - Rebind a control (repeatable)
//	--log-file <path>     - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagBinds   []string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in your terminal",
	Long: `Pong for two players sharing one keyboard.

Available commands:
  play     - Play in this terminal
  serve    - Start an SSH server for remote play
  config   - Print the default config file
  keys     - Show the effective key bindings

Config is read from --config, then ~/.pong/config.yaml, then ./config.yaml.
Values missing from a file fall back to the built-in defaults.

Examples:
  pong play
  pong play --bind left_up=i --bind left_down=k
  pong play --config ./fast.yaml --fps 120
  pong serve --ssh :2222
  pong config > ~/.pong/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (overrides screen.fps from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringArrayVar(&flagBinds, "bind", nil, "Rebind a control as action=key (left_up, left_down, right_up, right_down, confirm)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadGameConfig loads the config and applies the global flag overrides.
func loadGameConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	var fps int
	if cmd.Flags().Changed("fps") {
		fps = flagFPS
	}
	return applyOverrides(cfg, fps, flagBinds)
}

// applyOverrides sets the tick rate when fps is non-zero and applies
// "action=key" rebinds in order. The result is validated.
func applyOverrides(cfg config.Config, fps int, binds []string) (config.Config, error) {
	if fps != 0 {
		cfg.Screen.FPS = fps
	}

	kb := pong.NewKeyBindings(cfg.Keys)
	for _, spec := range binds {
		if err := kb.RebindSpec(spec); err != nil {
			return config.Config{}, fmt.Errorf("--bind: %w", err)
		}
	}
	cfg.Keys = kb.Config()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
