// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/juicycheckers/ogretut/host"
	"github.com/juicycheckers/ogretut/scene"
)

// Hooks builds the scene of an application. The [Application] calls
// CreateCamera, then CreateViewports, then CreateScene, once each,
// before the render loop starts.
//
// Hooks may also implement [input.Listener] to replace the default
// input handling, and [FrameHook] to run code every frame.
type Hooks interface {

	// CreateScene populates the scene graph.
	CreateScene(sm *scene.Manager) error

	// CreateCamera creates the camera and sets its pose.
	CreateCamera(sm *scene.Manager) (*scene.Camera, error)

	// CreateViewports adds the viewports the camera is drawn into.
	CreateViewports(sm *scene.Manager, win host.Window, cam *scene.Camera) (*scene.Viewport, error)
}

// FrameHook is implemented by [Hooks] that run code every frame.
// Returning false ends the render loop.
type FrameHook interface {
	FrameRenderingQueued(ev scene.FrameEvent) bool
}

// Binder is implemented by [Hooks] that need their [Application],
// typically by embedding [Base].
type Binder interface {
	Bind(a *Application)
}

// Base can be embedded in [Hooks] to get the [Application] and the
// default camera and viewport setup.
type Base struct {
	App *Application
}

// Bind implements [Binder].
func (b *Base) Bind(a *Application) {
	b.App = a
}

// CreateCamera creates a camera named PlayerCam with the default pose.
func (b *Base) CreateCamera(sm *scene.Manager) (*scene.Camera, error) {
	cam, err := sm.CreateCamera("PlayerCam")
	if err != nil {
		return nil, err
	}
	cam.SetNearClipDistance(5)
	return cam, nil
}

// CreateViewports calls [DefaultViewport].
func (b *Base) CreateViewports(sm *scene.Manager, win host.Window, cam *scene.Camera) (*scene.Viewport, error) {
	return DefaultViewport(sm, win, cam)
}

// DefaultViewport adds one black viewport covering the window and
// sets the camera aspect ratio from the window's pixel size.
func DefaultViewport(sm *scene.Manager, win host.Window, cam *scene.Camera) (*scene.Viewport, error) {
	vp, err := sm.AddViewport(cam, win.Size())
	if err != nil {
		return nil, err
	}
	vp.SetBackground(scene.Black)
	cam.SetAspectRatio(vp.AspectRatio())
	return vp, nil
}
