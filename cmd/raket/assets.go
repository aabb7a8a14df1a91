package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/raket/internal/assets"
)

var flagCheckAssets string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Verify the asset directory",
	Long: `Check that the asset directory provides every file the graphical
window loads at startup.

Examples:
  raket assets
  raket assets --assets ./assets`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func init() {
	assetsCmd.Flags().StringVar(&flagCheckAssets, "assets", "", "Asset directory (default from config)")
}

func runAssets(cmd *cobra.Command, _ []string) error {
	root := cfg.Assets.Root
	if cmd.Flags().Changed("assets") {
		root = flagCheckAssets
	}
	if root == "" {
		return errors.New("no asset directory configured (set assets.root, RAKET_ASSETS or --assets)")
	}

	statuses := assets.Check(assets.NewDirResolver(root))
	failed := printAssetReport(cmd, root, statuses)
	if failed > 0 {
		return fmt.Errorf("%d of %d assets missing or unreadable", failed, len(statuses))
	}
	return nil
}

// printAssetReport writes one line per asset and returns the failure count.
func printAssetReport(cmd *cobra.Command, root string, statuses []assets.Status) int {
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range statuses {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Fprintf(out, "Assets in %s\n\n", root)
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "Name", "Kind", "Status")
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "----", "----", "------")

	failed := 0
	for _, s := range statuses {
		status := okStyle.Render(fmt.Sprintf("ok (%d bytes)", s.Size))
		if s.Err != nil {
			failed++
			status = missingStyle.Render(s.Err.Error())
		}
		fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, s.Name, s.Kind, status)
	}
	fmt.Fprintln(out)
	return failed
}
