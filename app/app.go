// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs a scene bootstrap application: it loads the
// plugin and resource lists, opens the window, lets the [Hooks]
// build the scene, and then runs the host render loop, handling
// per-frame and input callbacks until the user exits.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"github.com/juicycheckers/ogretut/cameraman"
	"github.com/juicycheckers/ogretut/display"
	"github.com/juicycheckers/ogretut/host"
	"github.com/juicycheckers/ogretut/input"
	"github.com/juicycheckers/ogretut/resources"
	"github.com/juicycheckers/ogretut/scene"
)

// Config configures an [Application].
type Config struct {

	// Plugins is the plugin list file; skipped if empty.
	Plugins string

	// Resources is the resource location list file; required.
	Resources string

	// Display is the display settings file; if empty, the
	// DefaultDisplay settings are used without being saved.
	Display string

	// DefaultDisplay are the display settings used when none are saved.
	DefaultDisplay display.Settings

	// DumpScene, if set, is a file the built scene is written to as YAML.
	DumpScene string
}

// Application is a running tutorial application.
type Application struct {
	Config Config

	// Hooks build the scene.
	Hooks Hooks

	// Host provides the window and render loop.
	Host host.Host

	// ExitKey ends the application when pressed or held.
	ExitKey key.Codes

	Plugins   *resources.Plugins
	Locator   *resources.Locator
	Display   display.Settings
	Window    host.Window
	Scene     *scene.Manager
	Camera    *scene.Camera
	Viewport  *scene.Viewport
	CameraMan *cameraman.Man

	shutDown bool

	// closers release acquired resources, in acquisition order.
	closers []func()
}

// New returns an application that runs the hooks on the host.
func New(cfg Config, hooks Hooks, h host.Host) *Application {
	a := &Application{Config: cfg, Hooks: hooks, Host: h, ExitKey: key.CodeEscape}
	if b, ok := hooks.(Binder); ok {
		b.Bind(a)
	}
	return a
}

// Go sets up the application and runs the render loop until it ends.
// Acquired resources are released before returning, in reverse order.
func (a *Application) Go(ctx context.Context) error {
	defer a.teardown()
	if err := a.Setup(); err != nil {
		return err
	}
	slog.Info("starting render loop", "scene", a.Scene.Name)
	err := a.Host.Run(ctx, a.FrameRenderingQueued)
	slog.Info("render loop ended")
	return err
}

// Setup loads configuration, opens the window and builds the scene.
func (a *Application) Setup() error {
	if err := a.setupResources(); err != nil {
		return err
	}
	if err := a.configure(); err != nil {
		return err
	}
	a.Scene = scene.NewManager("SceneManager", a.Locator)

	cam, err := a.Hooks.CreateCamera(a.Scene)
	if err != nil {
		return fmt.Errorf("creating camera: %w", err)
	}
	a.Camera = cam
	a.CameraMan = cameraman.New(cam)

	vp, err := a.Hooks.CreateViewports(a.Scene, a.Window, cam)
	if err != nil {
		return fmt.Errorf("creating viewports: %w", err)
	}
	a.Viewport = vp

	if err := a.Hooks.CreateScene(a.Scene); err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	slog.Info("scene created", "entities", len(a.Scene.Entities()), "lights", len(a.Scene.Lights()))

	a.Host.SetListener(a)
	a.closers = append(a.closers, func() { a.Host.SetListener(nil) })

	if a.Config.DumpScene != "" {
		errors.Log(a.dumpScene(a.Config.DumpScene))
	}
	return nil
}

// setupResources reads the plugin and resource location lists.
func (a *Application) setupResources() error {
	if a.Config.Plugins != "" {
		pl, err := resources.LoadPlugins(a.Config.Plugins)
		if err != nil {
			return err
		}
		a.Plugins = pl
		slog.Info("plugins", "folder", pl.Folder, "names", pl.Names)
	}
	cfg, err := resources.LoadConfig(a.Config.Resources)
	if err != nil {
		return err
	}
	a.Locator = resources.NewLocator(cfg)
	return nil
}

// configure restores the display settings and opens the window.
func (a *Application) configure() error {
	a.Display = a.Config.DefaultDisplay
	if a.Config.Display != "" {
		s, _, err := display.Load(a.Config.Display, a.Config.DefaultDisplay)
		if err != nil {
			return err
		}
		a.Display = s
	}
	if a.Plugins != nil && a.Display.RenderSystem != "" && !a.Plugins.Has(a.Display.RenderSystem) {
		slog.Warn("render system is not in the plugin list", "render_system", a.Display.RenderSystem)
	}
	win, err := a.Host.OpenWindow(a.Display)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	a.Window = win
	a.closers = append(a.closers, win.Close)
	return nil
}

func (a *Application) teardown() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *Application) dumpScene(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = a.Scene.WriteYAML(f)
	return errors.Join(err, f.Close())
}

// Shutdown requests that the render loop end after the current frame.
func (a *Application) Shutdown() {
	a.shutDown = true
}

// ShuttingDown returns whether [Application.Shutdown] was called.
func (a *Application) ShuttingDown() bool {
	return a.shutDown
}

// FrameRenderingQueued is called by the host once per frame. It
// returns false, ending the loop, when the window has been closed,
// shutdown was requested or the exit key is down.
func (a *Application) FrameRenderingQueued(ev scene.FrameEvent) bool {
	if a.Window == nil || a.Window.Closed() {
		return false
	}
	if a.shutDown {
		return false
	}
	if a.Host.Keyboard().IsKeyDown(a.ExitKey) {
		return false
	}
	if fh, ok := a.Hooks.(FrameHook); ok && !fh.FrameRenderingQueued(ev) {
		return false
	}
	if a.CameraMan != nil {
		a.CameraMan.FrameRenderingQueued(ev)
	}
	return true
}

// listener returns the hooks if they handle input themselves.
func (a *Application) listener() (input.Listener, bool) {
	l, ok := a.Hooks.(input.Listener)
	return l, ok
}

// MouseMoved implements [input.Listener].
func (a *Application) MouseMoved(ev input.Mouse) bool {
	if l, ok := a.listener(); ok {
		return l.MouseMoved(ev)
	}
	a.CameraMan.MouseMoved(ev)
	return true
}

// MousePressed implements [input.Listener].
func (a *Application) MousePressed(ev input.Mouse, btn events.Buttons) bool {
	if l, ok := a.listener(); ok {
		return l.MousePressed(ev, btn)
	}
	a.CameraMan.MousePressed(ev, btn)
	return true
}

// MouseReleased implements [input.Listener].
func (a *Application) MouseReleased(ev input.Mouse, btn events.Buttons) bool {
	if l, ok := a.listener(); ok {
		return l.MouseReleased(ev, btn)
	}
	a.CameraMan.MouseReleased(ev, btn)
	return true
}

// KeyPressed implements [input.Listener]. Unless the hooks handle
// input, the exit key requests shutdown.
func (a *Application) KeyPressed(ev input.Key) bool {
	if l, ok := a.listener(); ok {
		return l.KeyPressed(ev)
	}
	if ev.Code == a.ExitKey {
		a.Shutdown()
	}
	a.CameraMan.KeyPressed(ev)
	return true
}

// KeyReleased implements [input.Listener].
func (a *Application) KeyReleased(ev input.Key) bool {
	if l, ok := a.listener(); ok {
		return l.KeyReleased(ev)
	}
	a.CameraMan.KeyReleased(ev)
	return true
}
