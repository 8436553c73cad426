// Package config loads the YAML settings file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the settings file is looked for when no path is given.
const DefaultPath = "chessplay.yaml"

// Config is the full settings file.
type Config struct {
	Window  Window  `yaml:"window"`
	Theme   Theme   `yaml:"theme"`
	Board   Board   `yaml:"board"`
	Sound   Sound   `yaml:"sound"`
	Storage Storage `yaml:"storage"`
}

// Window holds window settings.
type Window struct {
	Title      string `yaml:"title"`
	SquareSize int    `yaml:"square_size"`
}

// Theme holds board colours as "#rrggbb" strings.
type Theme struct {
	LightSquare string `yaml:"light_square"`
	DarkSquare  string `yaml:"dark_square"`
}

// Board holds display preferences for the board.
type Board struct {
	Flipped   bool `yaml:"flipped"`
	ShowHints bool `yaml:"show_hints"`
}

// Sound holds sound effect settings.
type Sound struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Storage holds persistence settings.
type Storage struct {
	// Dir is the Badger database directory; empty means the platform data dir.
	Dir    string `yaml:"dir"`
	Resume bool   `yaml:"resume"`
	// Backend is "badger" or "none".
	Backend string `yaml:"backend"`
}

var backends = []string{"badger", "none"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:      "ChessPlay",
			SquareSize: 80,
		},
		Theme: Theme{
			LightSquare: "#f0d9b5",
			DarkSquare:  "#b58863",
		},
		Board: Board{
			ShowHints: true,
		},
		Sound: Sound{
			Enabled: true,
			Volume:  0.5,
		},
		Storage: Storage{
			Resume:  true,
			Backend: "badger",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config '%s': %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks value ranges and colour syntax.
func (c *Config) Validate() error {
	if c.Window.SquareSize < 16 || c.Window.SquareSize > 256 {
		return fmt.Errorf("window.square_size %d out of range [16, 256]", c.Window.SquareSize)
	}
	if _, err := ParseColor(c.Theme.LightSquare); err != nil {
		return fmt.Errorf("theme.light_square: %w", err)
	}
	if _, err := ParseColor(c.Theme.DarkSquare); err != nil {
		return fmt.Errorf("theme.dark_square: %w", err)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume %v out of range [0, 1]", c.Sound.Volume)
	}
	if !slices.Contains(backends, c.Storage.Backend) {
		return fmt.Errorf("storage.backend %q must be one of %v", c.Storage.Backend, backends)
	}
	return nil
}

// ParseColor parses "#rrggbb" into an opaque colour.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || hex == s {
		return color.RGBA{}, fmt.Errorf("invalid colour %q, want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
