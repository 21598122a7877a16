package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ConserveLee/zoot/internal/constants"
)

// Theme choices
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds user-adjustable settings
type Config struct {
	Theme        string `json:"theme"` // "light", "dark", "auto"
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Frameless    bool   `json:"frameless"` // Hide the OS frame and draw our own controls
	DebugMode    bool   `json:"debug_mode"`

	path string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:        ThemeAuto,
		WindowWidth:  constants.DefaultWindowWidth,
		WindowHeight: constants.DefaultWindowHeight,
		Frameless:    runtime.GOOS != "darwin", // macOS keeps its traffic lights
		DebugMode:    false,
	}
}

// ConfigPath returns the config file location, creating its directory
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appConfigDir := filepath.Join(configDir, "zoot")
	if err := os.MkdirAll(appConfigDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appConfigDir, "config.json"), nil
}

// LoadConfig loads the config from the user config directory
func LoadConfig() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return Load(configPath)
}

// Load reads the config at path. A missing file yields the defaults bound to path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.path = path
	cfg.validate()

	return cfg, nil
}

// Save writes the config back to the file it was loaded from
func (c *Config) Save() error {
	if c.path == "" {
		p, err := ConfigPath()
		if err != nil {
			return fmt.Errorf("get config path: %w", err)
		}
		c.path = p
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the file the config is bound to
func (c *Config) Path() string {
	return c.path
}

// validate replaces out-of-range values with defaults
func (c *Config) validate() {
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		c.Theme = ThemeAuto
	}
	if c.WindowWidth < constants.MinWindowWidth {
		c.WindowWidth = constants.DefaultWindowWidth
	}
	if c.WindowHeight < constants.MinWindowHeight {
		c.WindowHeight = constants.DefaultWindowHeight
	}
}
