package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvBoardWidth  = "TETRIS_BOARD_WIDTH"
	EnvBoardHeight = "TETRIS_BOARD_HEIGHT"
	EnvGravityMS   = "TETRIS_GRAVITY_MS"
	EnvGameOverRow = "TETRIS_GAME_OVER_ROW"
)

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
// Files are applied on top of the defaults, so partial files are allowed.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultTetrisConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		candidate := DefaultTetrisConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// LoadEnvFile merges variables from dotenv files into the process environment.
// Variables already set are left untouched. Missing files are not an error.
func LoadEnvFile(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: cannot load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with any TETRIS_* environment variables that are set.
func ApplyEnv(cfg *TetrisConfig) error {
	overrides := []struct {
		name string
		dst  *int
	}{
		{EnvBoardWidth, &cfg.Board.Width},
		{EnvBoardHeight, &cfg.Board.Height},
		{EnvGravityMS, &cfg.Rules.GravityIntervalMS},
		{EnvGameOverRow, &cfg.Rules.GameOverRow},
	}

	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", o.name, raw, err)
		}
		*o.dst = v
	}
	return nil
}

// Validate reports the first setting that would make the game unplayable.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("config: board width must be >= 4, got %d", c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("config: board height must be >= 4, got %d", c.Board.Height)
	case c.Spawn.X < 1 || c.Spawn.X > c.Board.Width-3:
		// The I piece spans x-1..x+2.
		return fmt.Errorf("config: spawn x must be within [1, %d], got %d", c.Board.Width-3, c.Spawn.X)
	case c.Spawn.Y < 0 || c.Spawn.Y >= c.Board.Height:
		return fmt.Errorf("config: spawn y must be within [0, %d), got %d", c.Board.Height, c.Spawn.Y)
	case c.Rules.GameOverRow < 0 || c.Rules.GameOverRow >= c.Board.Height-1:
		return fmt.Errorf("config: game over row must be within [0, %d), got %d", c.Board.Height-1, c.Rules.GameOverRow)
	case c.Rules.GravityIntervalMS <= 0:
		return fmt.Errorf("config: gravity interval must be positive, got %dms", c.Rules.GravityIntervalMS)
	}

	bindings := map[string][]string{
		"rotate": c.Keys.Rotate,
		"left":   c.Keys.Left,
		"right":  c.Keys.Right,
		"drop":   c.Keys.Drop,
		"quit":   c.Keys.Quit,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("config: no keys bound to %s", name)
		}
	}
	return nil
}

// Load resolves the full configuration: file search, env overrides, validation.
func Load(customPath string) (TetrisConfig, error) {
	cfg, err := LoadTetris(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
