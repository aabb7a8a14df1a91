package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/raket/internal/core"
)

// ShutdownTimeout bounds how long open sessions get to finish on shutdown.
const ShutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address      string        // host:port to listen on, e.g. ":23234"
	HostKeyPath  string        // Empty means ~/.raket/host_key, generated on first use
	IdleTimeout  time.Duration // Zero disables the idle timeout
	TickRate     int           // Frame rate of every session
	ShowHitboxes bool          // Start every session with the overlay enabled
}

// SSHServer hosts raket over SSH. Each session plays its own World;
// nothing is shared between sessions.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates an SSH server. The host key is generated on first
// use if the key file does not exist yet.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "raket-ssh",
		})
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: create host key directory: %w", err)
	}

	srv := &SSHServer{config: cfg, logger: logger}

	// Middlewares run last to first: the session is logged around the program.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newSession),
			srv.requirePTY,
			srv.logSession,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	srv.server = server

	return srv, nil
}

func resolveHostKeyPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: home directory: %w", err)
	}
	return filepath.Join(home, ".raket", "host_key"), nil
}

// newSession builds a Model around a fresh World sized to the client's PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	cfg := core.RuntimeConfig{
		ScreenW:      pty.Window.Width,
		ScreenH:      pty.Window.Height,
		TickRate:     s.config.TickRate,
		Seed:         time.Now().UnixNano(),
		ShowHitboxes: s.config.ShowHitboxes,
	}

	model := NewModel(cfg, s.logger.With("user", sess.User()))
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// requirePTY turns away clients that did not request a terminal.
func (s *SSHServer) requirePTY(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if _, _, ok := sess.Pty(); !ok {
			s.logger.Warn("no PTY requested", "user", sess.User())
			wish.Fatalln(sess, "raket needs an interactive terminal, try: ssh -t")
			return
		}
		next(sess)
	}
}

func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()

		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.active.Add(1))
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"remote", remote,
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()

		next(sess)
	}
}

// ListenAndServe accepts sessions until ctx is done, then shuts down
// gracefully. A listener failure is returned immediately.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown stops accepting sessions and waits up to ShutdownTimeout
// for open ones to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("tui: shutdown: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ActiveSessions returns the number of sessions currently connected.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}
