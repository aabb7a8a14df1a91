package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerGeneratesHostKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: keyPath,
		IdleTimeout: time.Minute,
		TickRate:    30,
	}, log.New(os.Stderr))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}

	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("Host key should exist after NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d before any connection", srv.ActiveSessions())
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	got, err := resolveHostKeyPath("/etc/raket/key")
	if err != nil || got != "/etc/raket/key" {
		t.Errorf("Explicit path = %q, %v", got, err)
	}

	t.Setenv("HOME", t.TempDir())
	got, err = resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join(".raket", "host_key")) {
		t.Errorf("Default path = %q, expected ~/.raket/host_key", got)
	}
}
