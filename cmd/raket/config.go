package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after all files and environment overrides
have been applied, as YAML. The first line names the file it came from.

Search order:
  --config <path> -> ~/.raket/config.yaml -> ./configs/raket.yaml -> built-in defaults

Environment overrides (also read from ./.env):
  RAKET_ASSETS, RAKET_FPS, RAKET_LOG_LEVEL, RAKET_SSH_ADDR`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := cfg.YAML()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", cfgSource)
	_, err = out.Write(data)
	return err
}
