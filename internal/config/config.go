// Package config provides YAML-based configuration loading for raket.
// Gameplay tuning is fixed at compile time; only presentation, audio,
// SSH hosting and logging are configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// AssetsConfig locates the sprite, font and sound files.
type AssetsConfig struct {
	Root string `yaml:"root"` // Empty = built-in shapes and no audio
}

// DisplayConfig controls frame rate and window size.
type DisplayConfig struct {
	FPS          int     `yaml:"fps"`
	Scale        float64 `yaml:"scale"` // Window scale factor (graphical mode only)
	ShowHitboxes bool    `yaml:"show_hitboxes"`
}

// AudioConfig controls music and sound effects.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MusicVolume   float64 `yaml:"music_volume"`   // 0.0 - 1.0
	EffectsVolume float64 `yaml:"effects_volume"` // 0.0 - 1.0
}

// SSHConfig holds settings for `raket serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty = ~/.raket/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Bounds for validated options.
const (
	MinFPS   = 1
	MaxFPS   = 240
	MaxScale = 4.0
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks that all options are within range.
func (c Config) Validate() error {
	if c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS {
		return fmt.Errorf("%w: display.fps must be in [%d, %d], got %d", ErrInvalid, MinFPS, MaxFPS, c.Display.FPS)
	}
	if c.Display.Scale <= 0 || c.Display.Scale > MaxScale {
		return fmt.Errorf("%w: display.scale must be in (0, %.0f], got %g", ErrInvalid, MaxScale, c.Display.Scale)
	}
	if !unitRange(c.Audio.MusicVolume) {
		return fmt.Errorf("%w: audio.music_volume must be in [0, 1], got %g", ErrInvalid, c.Audio.MusicVolume)
	}
	if !unitRange(c.Audio.EffectsVolume) {
		return fmt.Errorf("%w: audio.effects_volume must be in [0, 1], got %g", ErrInvalid, c.Audio.EffectsVolume)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// YAML encodes the configuration in the same layout it is read from.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

func unitRange(v float64) bool {
	return v >= 0 && v <= 1
}
