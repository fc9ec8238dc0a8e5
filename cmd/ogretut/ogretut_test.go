// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog sends the log of Run to the returned buffer for the
// duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = old })
	return &buf
}

// writeMedia writes a resource list locating the tutorial meshes and
// returns its path.
func writeMedia(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	models := filepath.Join(dir, "media", "models")
	require.NoError(t, os.MkdirAll(models, 0o755))
	for _, fn := range []string{"ninja.mesh", "ogrehead.mesh"} {
		require.NoError(t, os.WriteFile(filepath.Join(models, fn), []byte("mesh"), 0o644))
	}
	cfg := filepath.Join(dir, "resources.cfg")
	require.NoError(t, os.WriteFile(cfg, []byte("[General]\nFileSystem=media/models\n"), 0o644))
	return cfg
}

func headlessConfig(t *testing.T, tutorial string) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		Tutorial:  tutorial,
		Resources: writeMedia(t),
		Display:   filepath.Join(dir, "display.toml"),
		Title:     "Test",
		Width:     320,
		Height:    240,
		Headless:  true,
		Frames:    1,
	}
}

func TestRunUnknownTutorial(t *testing.T) {
	buf := captureLog(t)
	c := headlessConfig(t, "robots")
	assert.NoError(t, Run(c))
	assert.Contains(t, buf.String(), "an exception has occurred")
	assert.Contains(t, buf.String(), "robots")
}

func TestRunMissingResources(t *testing.T) {
	buf := captureLog(t)
	c := headlessConfig(t, "ninjas")
	c.Resources = filepath.Join(t.TempDir(), "none.cfg")
	assert.NoError(t, Run(c))
	assert.Contains(t, buf.String(), "an exception has occurred")
	assert.Contains(t, buf.String(), "none.cfg")
}

func TestRunHeadless(t *testing.T) {
	for _, tut := range []string{"ninjas", "shadows", "heads"} {
		t.Run(tut, func(t *testing.T) {
			buf := captureLog(t)
			c := headlessConfig(t, tut)
			c.DumpScene = filepath.Join(t.TempDir(), "scene.yaml")
			assert.NoError(t, Run(c))
			assert.NotContains(t, buf.String(), "an exception has occurred")
			assert.FileExists(t, c.Display)
			assert.FileExists(t, c.DumpScene)
		})
	}
}
