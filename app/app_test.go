// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"github.com/juicycheckers/ogretut/display"
	"github.com/juicycheckers/ogretut/host"
	"github.com/juicycheckers/ogretut/input"
	"github.com/juicycheckers/ogretut/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// boxHooks builds a scene with one box on a plane and one light.
type boxHooks struct {
	Base
	order  []string
	frames int
	stopAt int
}

func (bh *boxHooks) CreateCamera(sm *scene.Manager) (*scene.Camera, error) {
	bh.order = append(bh.order, "camera")
	cam, err := bh.Base.CreateCamera(sm)
	if err != nil {
		return nil, err
	}
	cam.SetPosition(math32.Vec3(0, 10, 50)).LookAt(math32.Vector3{})
	return cam, nil
}

func (bh *boxHooks) CreateViewports(sm *scene.Manager, win host.Window, cam *scene.Camera) (*scene.Viewport, error) {
	bh.order = append(bh.order, "viewports")
	return bh.Base.CreateViewports(sm, win, cam)
}

func (bh *boxHooks) CreateScene(sm *scene.Manager) error {
	bh.order = append(bh.order, "scene")
	ent, err := sm.CreateNamedEntity("box", "box.mesh")
	if err != nil {
		return err
	}
	nd, err := sm.Root().CreateChild("BoxNode", math32.Vec3(0, 5, 0))
	if err != nil {
		return err
	}
	if err := nd.AttachObject(ent); err != nil {
		return err
	}
	_, err = sm.CreateLight("Sun")
	return err
}

func (bh *boxHooks) FrameRenderingQueued(ev scene.FrameEvent) bool {
	bh.frames++
	return bh.stopAt == 0 || bh.frames < bh.stopAt
}

func writeResources(t *testing.T) (dir, cfg string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "media"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "media", "box.mesh"), []byte("mesh"), 0o644))
	cfg = filepath.Join(dir, "resources.cfg")
	require.NoError(t, os.WriteFile(cfg, []byte("[General]\nFileSystem=media\n"), 0o644))
	return dir, cfg
}

func testDisplay(w, h int) display.Settings {
	s := display.Defaults()
	s.Width, s.Height = w, h
	return s
}

func newTestApp(t *testing.T, h host.Host) (*Application, *boxHooks) {
	t.Helper()
	_, cfg := writeResources(t)
	bh := &boxHooks{}
	a := New(Config{Resources: cfg, DefaultDisplay: testDisplay(1280, 720)}, bh, h)
	return a, bh
}

func TestSetup(t *testing.T) {
	a, bh := newTestApp(t, host.NewHeadless(1))
	require.NoError(t, a.Setup())
	assert.Same(t, a, bh.App)
	assert.Equal(t, []string{"camera", "viewports", "scene"}, bh.order)

	assert.Len(t, a.Scene.Entities(), 1)
	assert.Len(t, a.Scene.Lights(), 1)
	assert.Equal(t, math32.Vec3(0, 10, 50), a.Camera.Pos())
	assert.Equal(t, float32(5), a.Camera.Near)
	require.NotNil(t, a.Viewport)
	assert.Equal(t, image.Pt(1280, 720), a.Viewport.Size)
	assert.InDelta(t, 1280.0/720.0, a.Camera.Aspect, 1e-6)
	assert.Equal(t, scene.Black, a.Viewport.Background)
	assert.Same(t, a.Camera, a.CameraMan.Camera)
	assert.Same(t, &a.Scene.XYZ.Camera, a.Camera.Camera)
	assert.Equal(t, image.Pt(1280, 720), a.Scene.XYZ.Geom.Size)
	assert.Equal(t, 1, a.Scene.XYZ.Lights.Len())
}

func TestViewportAspect(t *testing.T) {
	for _, sz := range []image.Point{{800, 600}, {1920, 1080}, {600, 800}, {1, 1}} {
		hl := host.NewHeadless(1)
		win, err := hl.OpenWindow(testDisplay(sz.X, sz.Y))
		require.NoError(t, err)
		sm := scene.NewManager("test", nil)
		cam, err := sm.CreateCamera("cam")
		require.NoError(t, err)
		_, err = DefaultViewport(sm, win, cam)
		require.NoError(t, err)
		assert.InDelta(t, float64(sz.X)/float64(sz.Y), cam.Aspect, 1e-6, "size %v", sz)
	}
}

func TestFrameRenderingQueued(t *testing.T) {
	hl := host.NewHeadless(1)
	a, _ := newTestApp(t, hl)
	require.NoError(t, a.Setup())
	ev := scene.FrameEvent{TimeSinceLastFrame: 0.016}

	assert.True(t, a.FrameRenderingQueued(ev))

	// exit key held
	kb := hl.Keyboard().(*input.KeyState)
	kb.Press(key.CodeEscape)
	assert.False(t, a.FrameRenderingQueued(ev))
	kb.Release(key.CodeEscape)
	assert.True(t, a.FrameRenderingQueued(ev))

	// other keys do not end the loop
	kb.Press(key.CodeQ)
	assert.True(t, a.FrameRenderingQueued(ev))

	// window closed
	a.Window.Close()
	assert.False(t, a.FrameRenderingQueued(ev))
}

func TestFrameRenderingQueuedShutdown(t *testing.T) {
	a, _ := newTestApp(t, host.NewHeadless(1))
	require.NoError(t, a.Setup())
	ev := scene.FrameEvent{}
	assert.True(t, a.FrameRenderingQueued(ev))
	assert.True(t, a.KeyPressed(input.Key{Code: key.CodeEscape}))
	assert.True(t, a.ShuttingDown())
	assert.False(t, a.FrameRenderingQueued(ev))
}

func TestGoFrameHook(t *testing.T) {
	hl := host.NewHeadless(50)
	a, bh := newTestApp(t, hl)
	bh.stopAt = 7
	require.NoError(t, a.Go(context.Background()))
	assert.Equal(t, 7, bh.frames)
	assert.Equal(t, 7, hl.Frames)
	assert.True(t, a.Window.Closed())
}

func TestGoExitKey(t *testing.T) {
	hl := host.NewHeadless(50)
	hl.At(5, input.KeyDown(key.CodeEscape))
	a, bh := newTestApp(t, hl)
	require.NoError(t, a.Go(context.Background()))
	assert.Equal(t, 5, bh.frames)
}

func TestGoWindowClosed(t *testing.T) {
	hl := host.NewHeadless(50)
	hl.CloseAt(2)
	a, bh := newTestApp(t, hl)
	require.NoError(t, a.Go(context.Background()))
	assert.Equal(t, 2, bh.frames)
}

func TestGoMissingResources(t *testing.T) {
	a := New(Config{Resources: filepath.Join(t.TempDir(), "resources.cfg"), DefaultDisplay: testDisplay(800, 600)}, &boxHooks{}, host.NewHeadless(1))
	assert.Error(t, a.Go(context.Background()))
	assert.Nil(t, a.Window)
}

func TestGoMissingMesh(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "resources.cfg")
	require.NoError(t, os.WriteFile(cfg, []byte("[General]\nFileSystem=media\n"), 0o644))
	hl := host.NewHeadless(1)
	a := New(Config{Resources: cfg, DefaultDisplay: testDisplay(800, 600)}, &boxHooks{}, hl)
	err := a.Go(context.Background())
	assert.ErrorIs(t, err, scene.ErrMeshNotFound)
	require.NotNil(t, a.Window)
	assert.True(t, a.Window.Closed())
}

func TestDisplayAndPlugins(t *testing.T) {
	dir, cfg := writeResources(t)
	plugins := filepath.Join(dir, "plugins.cfg")
	require.NoError(t, os.WriteFile(plugins, []byte("PluginFolder=.\nPlugin=RenderSystem_GL\n"), 0o644))
	disp := filepath.Join(dir, "display.toml")
	require.NoError(t, display.Save(disp, testDisplay(640, 480)))

	a := New(Config{
		Plugins:        plugins,
		Resources:      cfg,
		Display:        disp,
		DefaultDisplay: testDisplay(1280, 720),
	}, &boxHooks{}, host.NewHeadless(1))
	require.NoError(t, a.Setup())
	assert.Equal(t, []string{"RenderSystem_GL"}, a.Plugins.Names)
	assert.Equal(t, 640, a.Display.Width)
	assert.Equal(t, image.Pt(640, 480), a.Window.Size())
	assert.InDelta(t, 640.0/480.0, a.Camera.Aspect, 1e-6)
}

func TestDumpScene(t *testing.T) {
	dir, cfg := writeResources(t)
	dump := filepath.Join(dir, "scene.yaml")
	a := New(Config{Resources: cfg, DefaultDisplay: testDisplay(800, 600), DumpScene: dump}, &boxHooks{}, host.NewHeadless(1))
	require.NoError(t, a.Setup())

	b, err := os.ReadFile(dump)
	require.NoError(t, err)
	var d struct {
		Entities []struct {
			Name string `yaml:"name"`
			Node string `yaml:"node"`
		} `yaml:"entities"`
	}
	require.NoError(t, yaml.Unmarshal(b, &d))
	require.Len(t, d.Entities, 1)
	assert.Equal(t, "box", d.Entities[0].Name)
	assert.Equal(t, "BoxNode", d.Entities[0].Node)
}
