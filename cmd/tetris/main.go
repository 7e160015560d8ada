// tetris is a falling-block puzzle for the terminal.
//
// Usage:
//
//	tetris play      - Play locally
//	tetris list      - List registered games
//	tetris shapes    - Print the piece catalog
//	tetris serve     - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible piece order
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// Set up by the root command before any subcommand runs.
var (
	gameConfig config.TetrisConfig
	logFile    *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - a falling-block puzzle in your terminal",
	Long: `Tetris is a terminal falling-block puzzle.

Available commands:
  play     - Play in this terminal
  list     - Show registered games
  shapes   - Print the seven pieces
  serve    - Start SSH server for remote play

Configuration is read from --config, ~/.tetris/configs/tetris.yaml,
./configs/tetris.yaml or the built-in defaults, in that order. A .env file
in the working directory is loaded first; TETRIS_BOARD_WIDTH,
TETRIS_BOARD_HEIGHT, TETRIS_GRAVITY_MS and TETRIS_GAME_OVER_ROW override
the file.

Examples:
  tetris play
  tetris play --seed 42
  tetris serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration shared by every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if err := config.LoadEnvFile(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	gameConfig = cfg
	tetris.SetConfig(cfg)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
	}
	return nil
}

// newLogger creates a logger writing to the log file if one was given and
// to fallback otherwise.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	w := fallback
	if logFile != nil {
		w = logFile
	}
	if w == nil {
		return nil, errors.New("no log destination")
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
