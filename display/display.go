// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display persists the window settings used to open the
// render window, so that later runs start with the same display.
package display

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
)

// Settings are the display settings of the render window.
type Settings struct {

	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the requested window size in screen pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// FullScreen opens the window on the primary monitor.
	FullScreen bool `toml:"full_screen"`

	// VSync paces the render loop to the display refresh rate.
	VSync bool `toml:"vsync"`

	// RenderSystem names the render system plugin the window is for.
	RenderSystem string `toml:"render_system"`
}

// Defaults returns the settings used when none are saved.
func Defaults() Settings {
	return Settings{
		Title:        "Tutorial Application",
		Width:        800,
		Height:       600,
		VSync:        true,
		RenderSystem: "RenderSystem_GL",
	}
}

// Validate checks that the settings describe an openable window.
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("display: invalid window size %dx%d", s.Width, s.Height)
	}
	return nil
}

// Load reads the settings from the given TOML file. If the file does
// not exist, def is saved to it and returned, with created true;
// a failure to save in that case is logged and not returned.
func Load(path string, def Settings) (s Settings, created bool, err error) {
	s = def
	err = tomlx.Open(&s, path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := def.Validate(); err != nil {
			return def, false, err
		}
		errors.Log(Save(path, def))
		slog.Info("no saved display settings, using defaults", "path", path)
		return def, true, nil
	}
	if err != nil {
		return def, false, fmt.Errorf("display: parsing %s: %w", path, err)
	}
	return s, false, s.Validate()
}

// Save writes the settings to the given TOML file, creating its
// directory if needed.
func Save(path string, s Settings) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return tomlx.Save(s, path)
}
