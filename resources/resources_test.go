// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResources = `# Resources required by the sample browser and most samples.
[Essential]
Zip=packs/SdkTrays.zip
FileSystem=media/thumbnails

# Common sample resources needed by many of the samples.
[General]
FileSystem=media
FileSystem=media/models
FileSystem=media/materials/scripts
`

const testPlugins = `# Defines plugins to load

# Define plugin folder
PluginFolder=/usr/lib/OGRE

# Define plugins
Plugin=RenderSystem_GL
Plugin=Plugin_ParticleFX
Plugin=Plugin_OctreeSceneManager
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "resources.cfg")
	writeFile(t, fn, testResources)

	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	require.Len(t, cfg.Groups, 2)

	ess := cfg.Group("Essential")
	require.NotNil(t, ess)
	assert.ElementsMatch(t, []Location{
		{Type: Zip, Path: "packs/SdkTrays.zip"},
		{Type: FileSystem, Path: "media/thumbnails"},
	}, ess.Locations)

	gen := cfg.Group("General")
	require.NotNil(t, gen)
	assert.Equal(t, []Location{
		{Type: FileSystem, Path: "media"},
		{Type: FileSystem, Path: "media/models"},
		{Type: FileSystem, Path: "media/materials/scripts"},
	}, gen.Locations)

	assert.Nil(t, cfg.Group("Popular"))
	assert.Equal(t, filepath.Join(dir, "media"), cfg.Resolve(gen.Locations[0]))
	assert.Equal(t, "/abs/media", cfg.Resolve(Location{Type: FileSystem, Path: "/abs/media"}))
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "resources.cfg"))
	assert.Error(t, err)
}

func TestLoadPlugins(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "plugins.cfg")
	writeFile(t, fn, testPlugins)

	pl, err := LoadPlugins(fn)
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/OGRE", pl.Folder)
	assert.Equal(t, []string{"RenderSystem_GL", "Plugin_ParticleFX", "Plugin_OctreeSceneManager"}, pl.Names)
	assert.True(t, pl.Has("RenderSystem_GL"))
	assert.False(t, pl.Has("RenderSystem_Direct3D9"))

	empty := filepath.Join(t.TempDir(), "plugins.cfg")
	writeFile(t, empty, "# nothing\n")
	pl, err = LoadPlugins(empty)
	require.NoError(t, err)
	assert.Empty(t, pl.Folder)
	assert.Empty(t, pl.Names)
}

func TestLocator(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "resources.cfg")
	writeFile(t, fn, testResources)
	writeFile(t, filepath.Join(dir, "media/models/ninja.mesh"), "mesh")
	writeFile(t, filepath.Join(dir, "media/thumbnails/ninja.png"), "png")

	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	lc := NewLocator(cfg)
	assert.Equal(t, []string{"Essential", "General"}, lc.Groups())

	p, err := lc.Find("General", "ninja.mesh")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "media/models/ninja.mesh"), p)

	p, err = lc.Find("", "ninja.mesh")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "media/models/ninja.mesh"), p)

	p, err = lc.Find("", "ninja.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "media/thumbnails/ninja.png"), p)

	_, err = lc.Find("General", "robot.mesh")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = lc.Find("Essential", "robot.mesh")
	assert.ErrorIs(t, err, ErrUnsupportedArchive)

	_, err = lc.Find("Popular", "ninja.mesh")
	assert.ErrorIs(t, err, ErrNoGroup)
}

func TestLocatorDirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "media", "ninja.mesh"), 0o755))
	lc := NewLocator(nil)
	lc.AddLocation("General", Location{Type: FileSystem, Path: filepath.Join(dir, "media")})
	_, err := lc.Find("General", "ninja.mesh")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve(t *testing.T) {
	cfg := &Config{Dir: "/opt/tut"}
	assert.Equal(t, "/opt/tut/media", cfg.Resolve(Location{Type: FileSystem, Path: "media"}))
	assert.Equal(t, "/srv/media", cfg.Resolve(Location{Type: FileSystem, Path: "/srv/media"}))

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "media"), cfg.Resolve(Location{Type: FileSystem, Path: "~/media"}))
}
