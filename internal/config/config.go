// Package config provides application configuration management for Paletto.
//
// Configuration is layered: built-in defaults, then the TOML config file,
// then PALETTO_* environment variables. Command-line flags are applied on
// top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
)

// Environment variables recognised by Load.
const (
	EnvConfig   = "PALETTO_CONFIG"
	EnvStore    = "PALETTO_STORE"
	EnvListen   = "PALETTO_LISTEN"
	EnvLogLevel = "PALETTO_LOG_LEVEL"
	EnvWatch    = "PALETTO_WATCH"
)

// Preview modes for terminal swatches.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Config holds the Paletto configuration.
type Config struct {
	Store    string        `toml:"store" json:"store"`         // Path to the JSON store
	LogLevel string        `toml:"log_level" json:"log_level"` // trace, debug, info, warn, error, off
	Server   ServerConfig  `toml:"server" json:"server"`
	Display  DisplayConfig `toml:"display" json:"display"`
}

// ServerConfig holds settings for paletto serve.
type ServerConfig struct {
	Listen          string `toml:"listen" json:"listen"`
	Watch           bool   `toml:"watch" json:"watch"`                       // Reload the store when it changes on disk
	ShutdownTimeout string `toml:"shutdown_timeout" json:"shutdown_timeout"` // e.g. "5s"
}

// DisplayConfig holds terminal output settings.
type DisplayConfig struct {
	Preview string `toml:"preview" json:"preview"` // auto, always, never
}

// ShutdownDuration returns the parsed shutdown timeout (default: 5s).
func (c ServerConfig) ShutdownDuration() time.Duration {
	if c.ShutdownTimeout != "" {
		if d, err := time.ParseDuration(c.ShutdownTimeout); err == nil && d > 0 {
			return d
		}
	}
	return 5 * time.Second
}

// Default returns a configuration with all defaults set.
func Default() Config {
	return Config{
		Store:    defaultStorePath(),
		LogLevel: "info",
		Server: ServerConfig{
			Listen:          "127.0.0.1:7410",
			Watch:           true,
			ShutdownTimeout: "5s",
		},
		Display: DisplayConfig{
			Preview: PreviewAuto,
		},
	}
}

// Dir returns the Paletto config directory.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paletto"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "paletto"), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaultStorePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "paletto", "store.json")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "paletto", "store.json")
	}
	return "paletto-store.json"
}

// Load reads the configuration. An explicit path must exist; when path is
// empty, PALETTO_CONFIG or the default location is used and a missing file
// means defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfig); env != "" {
			path = env
			explicit = true
		} else if p, err := Path(); err == nil {
			path = p
		}
	}

	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// No config file; defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStore); v != "" {
		c.Store = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvWatch); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvWatch, err)
		}
		c.Server.Watch = b
	}
	return nil
}

// Validate checks configuration values.
func (c Config) Validate() error {
	if c.Store == "" {
		return fmt.Errorf("store path cannot be empty")
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error, off)", c.LogLevel)
	}
	switch c.Display.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", c.Display.Preview)
	}
	if c.Server.Listen == "" {
		return fmt.Errorf("server listen address cannot be empty")
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// Save writes the configuration as TOML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) // #nosec G304 - config path is user controlled
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return f.Close()
}
