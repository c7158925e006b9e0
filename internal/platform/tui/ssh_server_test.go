package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/acorn-drop/internal/registry"
)

func TestResolveHostKeyPathCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(path)
	if err != nil {
		t.Fatalf("resolveHostKeyPath failed: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory should exist: %v", err)
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no_such_game"

	_, err := NewSSHServer(cfg)
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("expected unknown game error, got %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	registry.Register("zz_ssh_fake", func() registry.Game { return &scriptedGame{} })

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.GameID = "zz_ssh_fake"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Logger = log.New(io.Discard)

	s, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	defer s.closeStore()

	if s.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr = %q", s.Addr())
	}
	if s.Online() != 0 {
		t.Errorf("no one should be online yet, got %d", s.Online())
	}
	if s.store == nil {
		t.Error("store should be open")
	}
}
