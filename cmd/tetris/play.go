package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start playing. The game defaults to tetris.

Controls (configurable under keys: in the config file):
  Left/A        - Move left
  Right/D       - Move right
  Up/W          - Rotate
  Down/S/Space  - Drop
  Q/Ctrl+C      - Quit

The board is redrawn centered whenever the terminal is resized. Logs go to
--log-file, or nowhere, since the game owns the terminal.

Examples:
  tetris play
  tetris play --seed 7 --log-file tetris.log --log-level debug
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'tetris list' to see available games)", gameID)
	}

	logger, err := newLogger(io.Discard, "tetris")
	if err != nil {
		return err
	}

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

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(game, tui.NewKeyMap(gameConfig.Keys), cfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
