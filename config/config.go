// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the startup configuration
// for the groundsaver screensaver.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileEnv names the environment variable holding the path
	// of an optional, read-only TOML config file.
	FileEnv = "GROUNDSAVER_CONFIG"

	// FPSEnv overrides [Config.FPS].
	FPSEnv = "GROUNDSAVER_FPS"

	// LogLevelEnv overrides [Config.LogLevel].
	LogLevelEnv = "GROUNDSAVER_LOG_LEVEL"
)

// Config is the main config struct that contains all of
// the configuration options for groundsaver. It is fixed
// once the frame loop starts.
type Config struct {

	// the target number of frames per second of the frame loop
	FPS int `toml:"fps" default:"30"`

	// the minimum level of log messages shown: debug, info, warn or error
	LogLevel string `toml:"log_level" default:"info"`

	// the width of the standalone developer window
	WindowWidth int `toml:"window_width" default:"1200"`

	// the height of the standalone developer window
	WindowHeight int `toml:"window_height" default:"800"`

	// whether the camera aspect ratio follows the surface on resize
	FixAspectOnResize bool `toml:"fix_aspect_on_resize" default:"true"`
}

// Default returns a Config with all `default:` tag values applied.
func Default() *Config {
	cfg := &Config{}
	errors.Log(cli.SetFromDefaults(cfg))
	return cfg
}

// Load returns the configuration: defaults, then the optional
// TOML file named by [FileEnv], then environment overrides.
// The result is validated.
func Load(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if fn, ok := lookup(FileEnv); ok && fn != "" {
		if err := cfg.Open(fn); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Open decodes the given TOML file on top of the current values.
func (cfg *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// ApplyEnv applies the environment overrides.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(FPSEnv); ok && v != "" {
		fps, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", FPSEnv, err)
		}
		cfg.FPS = fps
	}
	if v, ok := lookup(LogLevelEnv); ok && v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	return nil
}

// Validate returns an error if any value is out of range.
func (cfg *Config) Validate() error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", cfg.FPS)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the [slog.Level] named by LogLevel.
func (cfg *Config) Level() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log_level: %w", err)
	}
	return lv, nil
}
