package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/raket/internal/config"
	"github.com/vovakirdan/raket/internal/core"
	"github.com/vovakirdan/raket/internal/platform/tui"
)

var (
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up   - Thrust
  Enter      - Start / Resume
  P/Esc      - Pause
  H          - Show hitboxes
  Q/Ctrl+C   - Quit

The menu buttons can also be clicked with the mouse.

Examples:
  raket play
  raket play --fps 30
  raket play --seed 42 --log-file raket.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (default from config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--fps: %w", err)
		}
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "raket")

	// Get terminal size early; Bubble Tea sends the real size on start.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := runtimeConfig(cfg, width, height, flagSeed)
	logger.Info("starting terminal game", "config", cfgSource, "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the front-end settings from the loaded config.
func runtimeConfig(c config.Config, width, height int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     c.Display.FPS,
		Seed:         seed,
		ShowHitboxes: c.Display.ShowHitboxes,
	}
}
