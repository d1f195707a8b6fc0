// =======================
// config/config.go
// =======================

// Package config loads runtime settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Supported glyph sets for the wireframe.
const (
	CharsetASCII  = "ascii"
	CharsetDots   = "dots"
	CharsetBlocks = "blocks"
)

type Config struct {
	Display struct {
		FPS         int     `toml:"fps"`
		AspectRatio float64 `toml:"aspect_ratio"` // terminal cell height / width
		Charset     string  `toml:"charset"`
		Labels      bool    `toml:"labels"`
	} `toml:"display"`

	Sound struct {
		Enabled bool    `toml:"enabled"`
		Volume  float64 `toml:"volume"` // beep volume exponent, 0 is unchanged
	} `toml:"sound"`

	Log struct {
		Debug bool   `toml:"debug"`
		Dir   string `toml:"dir"`
	} `toml:"log"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	var c Config
	c.Display.FPS = 25
	c.Display.AspectRatio = 2.0
	c.Display.Charset = CharsetDots
	c.Display.Labels = true
	c.Sound.Enabled = true
	c.Sound.Volume = -1
	c.Log.Dir = "logs"
	return &c
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Display.FPS <= 0 || c.Display.FPS > 120 {
		return fmt.Errorf("%w: display.fps %d not in 1..120", ErrInvalidConfig, c.Display.FPS)
	}
	if c.Display.AspectRatio <= 0 {
		return fmt.Errorf("%w: display.aspect_ratio must be positive", ErrInvalidConfig)
	}
	switch c.Display.Charset {
	case CharsetASCII, CharsetDots, CharsetBlocks:
	default:
		return fmt.Errorf("%w: display.charset %q", ErrInvalidConfig, c.Display.Charset)
	}
	if c.Log.Debug && c.Log.Dir == "" {
		return fmt.Errorf("%w: log.dir required with log.debug", ErrInvalidConfig)
	}
	return nil
}
