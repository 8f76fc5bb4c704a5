package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/dshills/editkit/textarea"
)

var (
	// ErrUnknownFormat is returned for config files with an
	// unsupported extension.
	ErrUnknownFormat = errors.New("unknown config format")
	// ErrBadTabWidth is returned when the configured tab width is
	// negative.
	ErrBadTabWidth = errors.New("tab width must not be negative")
)

// Config holds the editor settings an embedding application can tune.
type Config struct {
	Tab   TabConfig   `toml:"tab" yaml:"tab"`
	Theme ThemeConfig `toml:"theme" yaml:"theme"`
	Frame FrameConfig `toml:"frame" yaml:"frame"`
}

// TabConfig controls tab expansion.
type TabConfig struct {
	// Width is the tab stop interval in columns. Zero disables tab
	// insertion.
	Width int `toml:"width" yaml:"width"`
}

// ThemeConfig holds colors as hex strings ("#rrggbb"). Empty values
// fall back to the terminal defaults.
type ThemeConfig struct {
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
}

// FrameConfig controls the optional border drawn around the widget.
type FrameConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Title   string `toml:"title" yaml:"title"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Tab:   TabConfig{Width: 4},
		Frame: FrameConfig{Enabled: true, Title: "editkit"},
	}
}

// Load reads a config file, dispatching on its extension (.toml, .yaml
// or .yml). A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the widget cannot apply.
func (c Config) Validate() error {
	if c.Tab.Width < 0 {
		return fmt.Errorf("%w: %d", ErrBadTabWidth, c.Tab.Width)
	}
	if err := validateHex(c.Theme.Foreground); err != nil {
		return fmt.Errorf("theme foreground: %w", err)
	}
	if err := validateHex(c.Theme.Background); err != nil {
		return fmt.Errorf("theme background: %w", err)
	}
	return nil
}

// Apply pushes the settings onto a textarea.
func (c Config) Apply(ta *textarea.TextArea) error {
	if err := ta.SetTabString(strings.Repeat(" ", c.Tab.Width)); err != nil {
		return err
	}
	ta.SetStyle(c.BaseStyle())

	if !c.Frame.Enabled {
		ta.RemoveBlock()
		return nil
	}
	ta.SetBlock(textarea.NewBlock(c.Frame.Title).WithStyle(c.FrameStyle()))
	return nil
}
