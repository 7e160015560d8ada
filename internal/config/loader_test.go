package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points the search path at empty directories so only the
// embedded defaults can be found.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("embedded defaults differ from DefaultTetrisConfig():\n%+v\n%+v", cfg, DefaultTetrisConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown games should have no embedded YAML")
	}
}

func TestLoadTetrisEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("board = %dx%d, expected 10x20", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Rules.GravityInterval() != time.Second {
		t.Errorf("GravityInterval() = %v, expected 1s", cfg.Rules.GravityInterval())
	}
}

func TestLoadTetrisCustomPartial(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  height: 24\nrules:\n  gravity_interval_ms: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Board.Height != 24 {
		t.Errorf("height = %d, expected 24", cfg.Board.Height)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("width = %d, expected default 10", cfg.Board.Width)
	}
	if cfg.Rules.GravityIntervalMS != 500 {
		t.Errorf("gravity = %d, expected 500", cfg.Rules.GravityIntervalMS)
	}
	if len(cfg.Keys.Rotate) == 0 {
		t.Error("keys should keep their defaults")
	}
}

func TestLoadTetrisCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTetris(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Local configs directory is used when no user config exists.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "tetris.yaml"), []byte("board:\n  width: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("width = %d, expected 12 from ./configs", cfg.Board.Width)
	}

	// User config wins over the local directory.
	userDir := filepath.Join(home, ".tetris", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "tetris.yaml"), []byte("board:\n  width: 14\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Board.Width != 14 {
		t.Errorf("width = %d, expected 14 from user config", cfg.Board.Width)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBoardHeight, "22")
	t.Setenv(EnvGravityMS, "250")
	t.Setenv(EnvBoardWidth, "")

	cfg := DefaultTetrisConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if cfg.Board.Height != 22 {
		t.Errorf("height = %d, expected 22", cfg.Board.Height)
	}
	if cfg.Rules.GravityIntervalMS != 250 {
		t.Errorf("gravity = %d, expected 250", cfg.Rules.GravityIntervalMS)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("empty variable should be ignored, width = %d", cfg.Board.Width)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv(EnvGameOverRow, "two")

	cfg := DefaultTetrisConfig()
	err := ApplyEnv(&cfg)
	if err == nil || !strings.Contains(err.Error(), EnvGameOverRow) {
		t.Errorf("expected error naming %s, got %v", EnvGameOverRow, err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(EnvGravityMS+"=750\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvGravityMS, "")
	os.Unsetenv(EnvGravityMS)

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() failed: %v", err)
	}
	if got := os.Getenv(EnvGravityMS); got != "750" {
		t.Errorf("%s = %q, expected 750", EnvGravityMS, got)
	}

	if err := LoadEnvFile(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *TetrisConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *TetrisConfig) {}},
		{name: "narrow board", mutate: func(c *TetrisConfig) { c.Board.Width = 3 }, wantErr: "board width"},
		{name: "short board", mutate: func(c *TetrisConfig) { c.Board.Height = 2 }, wantErr: "board height"},
		{name: "spawn against left wall", mutate: func(c *TetrisConfig) { c.Spawn.X = 0 }, wantErr: "spawn x"},
		{name: "spawn against right wall", mutate: func(c *TetrisConfig) { c.Spawn.X = 8 }, wantErr: "spawn x"},
		{name: "spawn below board", mutate: func(c *TetrisConfig) { c.Spawn.Y = 20 }, wantErr: "spawn y"},
		{name: "game over row too low", mutate: func(c *TetrisConfig) { c.Rules.GameOverRow = 19 }, wantErr: "game over row"},
		{name: "zero gravity", mutate: func(c *TetrisConfig) { c.Rules.GravityIntervalMS = 0 }, wantErr: "gravity interval"},
		{name: "unbound drop", mutate: func(c *TetrisConfig) { c.Keys.Drop = nil }, wantErr: "drop"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	isolate(t)
	t.Setenv(EnvBoardWidth, "2")

	if _, err := Load(""); err == nil {
		t.Error("Load() should reject an invalid env override")
	}
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
