// Package config loads duckpond's settings: compiled defaults, an
// optional TOML file on top, and DUCKPOND_* environment variables on
// top of that.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config is the game configuration.
type Config struct {
	// Width and Height bound the playfield when the terminal is
	// larger; a smaller terminal wins.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Sound enables the synth effects.
	Sound bool `toml:"sound"`

	// Color enables the RGB palette; off renders in the terminal's
	// default colors.
	Color bool `toml:"color"`

	// FrameMillis is the render tick interval in milliseconds.
	FrameMillis int `toml:"frame_millis"`

	// Debug routes logs to logs/duckpond.log instead of discarding.
	Debug bool `toml:"debug"`
}

// Default returns the stock configuration: a 60x15 pond at ~30 FPS
// with sound on.
func Default() *Config {
	return &Config{
		Width:       60,
		Height:      15,
		Sound:       true,
		Color:       true,
		FrameMillis: 33,
		Debug:       false,
	}
}

// Load reads the config file at path, layered over defaults and under
// env overrides. An absent file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// First run: defaults apply.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DUCKPOND_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Width = n
		}
	}
	if v := os.Getenv("DUCKPOND_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Height = n
		}
	}
	if v := os.Getenv("DUCKPOND_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sound = b
		}
	}
	if v := os.Getenv("DUCKPOND_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Color = b
		}
	}
	if v := os.Getenv("DUCKPOND_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

func (c *Config) validate() error {
	if c.Width < 20 || c.Height < 10 {
		return fmt.Errorf("playfield %dx%d too small, need at least 20x10", c.Width, c.Height)
	}
	if c.FrameMillis < 10 || c.FrameMillis > 1000 {
		return fmt.Errorf("frame interval %dms out of range 10-1000", c.FrameMillis)
	}
	return nil
}
