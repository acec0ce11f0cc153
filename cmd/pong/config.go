package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config file",
	Long: `Print the built-in default configuration as YAML.

Save it as ~/.pong/config.yaml or ./config.yaml and edit the values you
want to change; anything you delete falls back to the default.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings",
	Long:  `Shows the key bound to each action after applying the config file and --bind flags.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kb := pong.NewKeyBindings(cfg.Keys)
	fmt.Printf("  %-12s  %s\n", "Action", "Key")
	fmt.Printf("  %-12s  %s\n", "------", "---")
	for _, a := range pong.Actions {
		fmt.Printf("  %-12s  %s\n", a, kb.Key(a))
	}
	fmt.Printf("  %-12s  %s\n", "quit", "esc, ctrl+c")
}
