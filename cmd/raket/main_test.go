package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/raket/internal/assets"
	"github.com/vovakirdan/raket/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raket.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := writeConfig(t, "display:\n  fps: 30\n")

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# source: "+path+"\n"))
	assert.Contains(t, out, "fps: 30")
	assert.Contains(t, out, "effects_volume:")
}

func TestLogLevelFlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")

	_, err := execute(t, "config", "--config", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = execute(t, "config", "--config", path, "--log-level", "shout")
	assert.Error(t, err)
}

func TestAssetsCommand(t *testing.T) {
	cfgPath := writeConfig(t, "")
	dir := t.TempDir()
	for _, e := range assets.Manifest() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, string(e.Name)), []byte("data"), 0o644))
	}

	out, err := execute(t, "assets", "--config", cfgPath, "--assets", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "raket.png")
	assert.Contains(t, out, "4 bytes")

	require.NoError(t, os.Remove(filepath.Join(dir, string(assets.Music))))
	out, err = execute(t, "assets", "--config", cfgPath, "--assets", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 11")
	assert.Contains(t, out, "music.wav")
}

func TestRuntimeConfig(t *testing.T) {
	c := config.Default()
	c.Display.FPS = 45
	c.Display.ShowHitboxes = true

	rc := runtimeConfig(c, 100, 30, 7)
	assert.Equal(t, 100, rc.ScreenW)
	assert.Equal(t, 30, rc.ScreenH)
	assert.Equal(t, 45, rc.TickRate)
	assert.Equal(t, int64(7), rc.Seed)
	assert.True(t, rc.ShowHitboxes)
}
