package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raket/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host terminal sessions over SSH",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own independent game; nothing is shared
between sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.raket/host_key

Examples:
  raket serve                           # Listen on the configured address (default :23234)
  raket serve --ssh :2222               # Listen on port 2222
  raket serve --host-key ./my_host_key  # Use specific host key
  raket serve --idle-timeout 5m         # Drop idle sessions after 5 minutes

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("ssh") {
		cfg.SSH.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.SSH.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	logger := newLogger(os.Stderr, "raket-ssh")

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:      cfg.SSH.Address,
		HostKeyPath:  cfg.SSH.HostKey,
		IdleTimeout:  cfg.SSH.IdleTimeout,
		TickRate:     cfg.Display.FPS,
		ShowHitboxes: cfg.Display.ShowHitboxes,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting raket SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

// cmdContext returns the command's context, or Background when the command
// is executed without one.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
