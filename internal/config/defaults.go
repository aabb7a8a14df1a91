package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/raket.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/raket.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:   60,
			Scale: 1.0,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MusicVolume:   0.5,
			EffectsVolume: 0.8,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
