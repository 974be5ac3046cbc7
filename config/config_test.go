// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1200, cfg.WindowWidth)
	assert.Equal(t, 800, cfg.WindowHeight)
	assert.True(t, cfg.FixAspectOnResize)
}

func TestLoadEnv(t *testing.T) {
	cfg, err := Load(env(map[string]string{FPSEnv: " 60 ", LogLevelEnv: "debug"}))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	lv, err := cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "groundsaver.toml")
	data := "fps = 24\nwindow_width = 640\nwindow_height = 480\nfix_aspect_on_resize = false\n"
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))

	cfg, err := Load(env(map[string]string{FileEnv: fn, FPSEnv: "12"}))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.FPS) // env wins over file
	assert.Equal(t, 640, cfg.WindowWidth)
	assert.Equal(t, 480, cfg.WindowHeight)
	assert.False(t, cfg.FixAspectOnResize)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(env(map[string]string{FPSEnv: "fast"}))
	assert.Error(t, err)
	_, err = Load(env(map[string]string{FPSEnv: "0"}))
	assert.Error(t, err)
	_, err = Load(env(map[string]string{LogLevelEnv: "loud"}))
	assert.Error(t, err)
	_, err = Load(env(map[string]string{FileEnv: filepath.Join(t.TempDir(), "missing.toml")}))
	assert.Error(t, err)
}
