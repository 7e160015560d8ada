// Package config provides YAML-based game configuration loading,
// environment overrides and validation for the game platform.
package config

import "time"

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Rules RulesConfig `yaml:"rules"`
	Keys  KeyBindings `yaml:"keys"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines the preferred anchor for new pieces.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RulesConfig defines game-over and gravity parameters.
type RulesConfig struct {
	GameOverRow       int `yaml:"game_over_row"`
	GravityIntervalMS int `yaml:"gravity_interval_ms"`
}

// KeyBindings lists the key names (as reported by Bubble Tea) for each command.
type KeyBindings struct {
	Rotate []string `yaml:"rotate"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Drop   []string `yaml:"drop"`
	Quit   []string `yaml:"quit"`
}

// GravityInterval returns the time between gravity steps.
func (r RulesConfig) GravityInterval() time.Duration {
	return time.Duration(r.GravityIntervalMS) * time.Millisecond
}
