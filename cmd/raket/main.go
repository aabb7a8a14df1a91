// raket is a single-screen arcade game: keep the rocket airborne and thread
// it through the gaps.
//
// Usage:
//
//	raket play     - Play in the terminal
//	raket window   - Play in a graphical window
//	raket serve    - Host terminal sessions over SSH
//	raket config   - Print the effective configuration
//	raket assets   - Verify the asset directory
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.raket/config.yaml, ./configs/raket.yaml)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/raket/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Loaded in PersistentPreRunE, before any subcommand runs.
	cfg       config.Config
	cfgSource string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raket",
	Short: "Raket - steer a rocket through an endless stream of gaps",
	Long: `Raket is an arcade game: gravity pulls the rocket down, each thrust
pushes it up, and every gap you clear scores a point.

Available commands:
  play     - Play in the terminal
  window   - Play in a graphical window
  serve    - Host terminal sessions over SSH
  config   - Print the effective configuration
  assets   - Verify the asset directory

Examples:
  raket play
  raket window --assets ./assets
  raket serve --ssh :2222
  raket config --config ./my-raket.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}

// loadConfig resolves the configuration and applies the global overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, cfgSource, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
		if _, err := cfg.LogLevel(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	return nil
}

// newLogger creates a logger at the configured level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
