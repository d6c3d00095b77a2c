package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default game config",
	Long: `Print the built-in YAML config for a mode (default: match3).
Save it as ~/.arcade/configs/match3.yaml or ./configs/match3.yaml and edit
it, or pass it to 'match3 play --config'.

Examples:
  match3 config
  match3 config > ~/.arcade/configs/match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := "match3"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'match3 list' to see available modes)", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for %q", gameID)
	}
	_, err := os.Stdout.Write(data)
	return err
}
