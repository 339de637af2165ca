// Package config loads cubescramble settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubescramble"
	"github.com/SeamusWaldron/cubescramble/internal/render"
	"github.com/SeamusWaldron/cubescramble/pkg/types"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "CUBESCRAMBLE_CONFIG"

// Config holds user settings. Zero values mean "use the default".
type Config struct {
	CubieSize         int               `yaml:"cubie_size,omitempty"`
	Gap               *int              `yaml:"gap,omitempty"`
	StrictDepth       bool              `yaml:"strict_depth,omitempty"`
	MaxScrambleLength int               `yaml:"max_scramble_length,omitempty"`
	DBPath            string            `yaml:"db_path,omitempty"`
	Colors            map[string]string `yaml:"colors,omitempty"`
}

// Dir returns the cubescramble data directory, ~/.cubescramble.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cubescramble"
	}
	return filepath.Join(home, ".cubescramble")
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// ResolvePath picks the config path: explicit path, then $CUBESCRAMBLE_CONFIG,
// then DefaultPath. explicit reports whether the file must exist.
func ResolvePath(path string) (resolved string, explicit bool) {
	if path != "" {
		return path, true
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, true
	}
	return DefaultPath(), false
}

// Load reads the config file. A missing default file yields an empty
// Config; a missing file that was asked for by name is an error.
func Load(path string) (*Config, error) {
	resolved, explicit := ResolvePath(path)

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", resolved, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return &cfg, nil
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and colour entries.
func (c *Config) Validate() error {
	if c.CubieSize < 0 {
		return fmt.Errorf("cubie_size must not be negative, got %d", c.CubieSize)
	}
	if c.Gap != nil && *c.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", *c.Gap)
	}
	if c.MaxScrambleLength < 0 {
		return fmt.Errorf("max_scramble_length must not be negative, got %d", c.MaxScrambleLength)
	}
	_, err := c.ColorScheme()
	return err
}

// Layout returns the SVG layout with defaults filled in.
func (c *Config) Layout() render.Layout {
	l := render.DefaultLayout()
	if c.CubieSize > 0 {
		l.CubieSize = c.CubieSize
	}
	if c.Gap != nil {
		l.Gap = *c.Gap
	}
	return l
}

// ColorScheme returns the default scheme with the configured colours applied
// on top, or nil when the file sets no colours.
// Keys are face letters; values are colour names or #RRGGBB.
func (c *Config) ColorScheme() (types.ColorScheme, error) {
	if len(c.Colors) == 0 {
		return nil, nil
	}
	overrides := make(types.ColorScheme, len(c.Colors))
	for key, value := range c.Colors {
		face, err := types.ParseFace(key)
		if err != nil {
			return nil, fmt.Errorf("colors: %w", err)
		}
		color, err := types.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %w", key, err)
		}
		overrides[face] = color
	}
	return types.DefaultColorScheme().Merge(overrides), nil
}

// GetDBPath returns the render history database path.
func (c *Config) GetDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(Dir(), "renders.db")
}

// Options converts the config into puzzle options.
func (c *Config) Options() ([]cubescramble.Option, error) {
	opts := []cubescramble.Option{
		cubescramble.WithStrictDepth(c.StrictDepth),
		cubescramble.WithLayout(c.Layout()),
	}
	if c.MaxScrambleLength > 0 {
		opts = append(opts, cubescramble.WithMaxScrambleLength(c.MaxScrambleLength))
	}
	scheme, err := c.ColorScheme()
	if err != nil {
		return nil, err
	}
	if scheme != nil {
		opts = append(opts, cubescramble.WithColorScheme(scheme))
	}
	return opts, nil
}

// Default returns a config with every default written out, suitable for
// writing a starter file.
func Default() *Config {
	l := render.DefaultLayout()
	gap := l.Gap
	colors := make(map[string]string, types.NumFaces)
	for f, c := range types.DefaultColorScheme() {
		colors[f.String()] = c.Hex()
	}
	return &Config{
		CubieSize:         l.CubieSize,
		Gap:               &gap,
		MaxScrambleLength: cubescramble.DefaultMaxScrambleLength,
		DBPath:            filepath.Join(Dir(), "renders.db"),
		Colors:            colors,
	}
}
