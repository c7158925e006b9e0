package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/acorn-drop/internal/config"
	"github.com/vovakirdan/acorn-drop/internal/games/acorns"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in acorns.yaml. Save it to
~/.arcade/configs/acorns.yaml or pass it with --config to customize the game.

Examples:
  acorns config > ~/.arcade/configs/acorns.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data := config.GetDefaultYAML(acorns.GameID)
		if data == nil {
			return fmt.Errorf("no default config for %q", acorns.GameID)
		}
		_, err := os.Stdout.Write(data)
		return err
	},
}
