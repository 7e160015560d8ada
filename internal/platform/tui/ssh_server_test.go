package tui

import (
	"testing"
	"time"

	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.GameID != "tetris" {
		t.Errorf("GameID = %q", cfg.GameID)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "nope"
	cfg.HostKeyPath = t.TempDir() + "/host_key"

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("expected error for unknown game")
	}
}

func TestSessionRuntime(t *testing.T) {
	srv := &SSHServer{config: DefaultSSHServerConfig()}
	cfg := srv.sessionRuntime(120, 40)

	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("size = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d", cfg.TickRate)
	}
	if cfg.Seed == 0 {
		t.Error("seed not set")
	}
}

func TestSSHServerAddr(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:2222"
	srv := &SSHServer{config: cfg}

	if got := srv.Addr(); got != "127.0.0.1:2222" {
		t.Errorf("Addr() = %q", got)
	}
}
