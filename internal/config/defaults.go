package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Spawn: SpawnConfig{
			X: 4,
			Y: 0,
		},
		Rules: RulesConfig{
			GameOverRow:       2,
			GravityIntervalMS: 1000,
		},
		Keys: KeyBindings{
			Rotate: []string{"up", "w"},
			Left:   []string{"left", "a"},
			Right:  []string{"right", "d"},
			Drop:   []string{"down", "s", " "},
			Quit:   []string{"q", "ctrl+c"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
