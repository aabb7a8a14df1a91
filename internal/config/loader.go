package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvAssets   = "RAKET_ASSETS"
	EnvFPS      = "RAKET_FPS"
	EnvLogLevel = "RAKET_LOG_LEVEL"
	EnvSSHAddr  = "RAKET_SSH_ADDR"
)

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded"

// Loader resolves the configuration from files and the environment.
// Zero values select the real home directory, working directory and process
// environment.
type Loader struct {
	Path      string                      // Explicit file; must exist when set
	HomeDir   string                      // Defaults to os.UserHomeDir
	WorkDir   string                      // Defaults to the current directory
	EnvFile   string                      // Defaults to WorkDir/.env; a missing file is ignored
	LookupEnv func(string) (string, bool) // Defaults to os.LookupEnv
}

// Load loads the configuration with the default Loader.
// Search order: customPath -> ~/.raket/config.yaml -> ./configs/raket.yaml -> embedded default
func Load(customPath string) (Config, string, error) {
	return Loader{Path: customPath}.Load()
}

// Load returns the effective configuration and the file it came from.
// The first file found is decoded over the embedded defaults, so a partial
// file only overrides the keys it names. Environment overrides are applied
// last, with real variables taking precedence over the .env file.
func (l Loader) Load() (Config, string, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return cfg, "", fmt.Errorf("config: parse embedded defaults: %w", err)
	}

	source, err := l.loadFile(&cfg)
	if err != nil {
		return cfg, "", err
	}

	env, err := l.env()
	if err != nil {
		return cfg, source, err
	}
	if err := applyEnv(&cfg, env); err != nil {
		return cfg, source, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, source, nil
}

// loadFile decodes the first config file found into cfg.
func (l Loader) loadFile(cfg *Config) (string, error) {
	// Try custom path first
	if l.Path != "" {
		data, err := os.ReadFile(l.Path)
		if err != nil {
			return "", fmt.Errorf("config: read %s: %w", l.Path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return "", fmt.Errorf("config: parse %s: %w", l.Path, err)
		}
		return l.Path, nil
	}

	for _, path := range l.searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return "", fmt.Errorf("config: parse %s: %w", path, err)
		}
		return path, nil
	}

	return SourceEmbedded, nil
}

// searchPaths lists the implicit config locations in priority order.
func (l Loader) searchPaths() []string {
	var paths []string
	if home := l.homeDir(); home != "" {
		paths = append(paths, filepath.Join(home, ".raket", "config.yaml"))
	}
	return append(paths, filepath.Join(l.workDir(), "configs", "raket.yaml"))
}

// env returns a lookup that consults the process environment, then .env.
func (l Loader) env() (func(string) (string, bool), error) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	path := l.EnvFile
	if path == "" {
		path = filepath.Join(l.workDir(), ".env")
	}
	dotenv, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAssets); ok {
		cfg.Assets.Root = v
	}
	if v, ok := lookup(EnvFPS); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvFPS, v, err)
		}
		cfg.Display.FPS = fps
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvSSHAddr); ok {
		cfg.SSH.Address = v
	}
	return nil
}

func (l Loader) homeDir() string {
	if l.HomeDir != "" {
		return l.HomeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func (l Loader) workDir() string {
	if l.WorkDir != "" {
		return l.WorkDir
	}
	return "."
}

// UserDir returns ~/.raket, where the SSH host key is generated by default.
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".raket"), nil
}
