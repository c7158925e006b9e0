package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/acorn-drop/internal/config"
	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/games/acorns"
	"github.com/vovakirdan/acorn-drop/internal/platform/tui"
	"github.com/vovakirdan/acorn-drop/internal/registry"
	"github.com/vovakirdan/acorn-drop/internal/storage"
)

var (
	flagConfig string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Acorn Drop",
	Long: `Start a game in this terminal.

Controls:
  Left/Right, A/D  - Walk
  Up/Space/W       - Jump (only from the ground)
  P                - Pause
  Enter/R          - Play again (after game over)
  Tab              - High scores (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  acorns play
  acorns play --seed 7
  acorns play --config ./my-acorns.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name saved with scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	// Fail before taking over the terminal if the file is unusable
	gameCfg, err := config.LoadAcorns(flagConfig)
	if err != nil {
		return err
	}
	if err := gameCfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	acorns.SetConfigPath(flagConfig)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(acorns.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting", "game", game.ID(), "fps", cfg.TickRate, "seed", cfg.Seed)
	runErr := tui.Run(game, store, cfg,
		tui.WithLogger(logger),
		tui.WithPlayer(flagPlayer),
		tui.WithHoldWindow(gameCfg.Input.HoldWindow()),
	)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
