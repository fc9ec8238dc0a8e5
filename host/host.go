// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides the window, input devices and blocking
// render loop that applications run inside. [GLFW] opens a real
// desktop window; [Headless] runs a scripted loop without one.
package host

import (
	"context"
	"image"

	"github.com/juicycheckers/ogretut/display"
	"github.com/juicycheckers/ogretut/input"
	"github.com/juicycheckers/ogretut/scene"
)

// Window is a render window.
type Window interface {

	// Size returns the drawable size in pixels.
	Size() image.Point

	// Closed returns whether the user has asked to close the window.
	Closed() bool

	// Close destroys the window.
	Close()
}

// FrameFunc is called once per frame; returning false ends the loop.
type FrameFunc func(ev scene.FrameEvent) bool

// Host owns the platform windowing and input layer.
// All methods must be called from the same goroutine.
type Host interface {

	// OpenWindow opens the render window. Only one window is supported.
	OpenWindow(s display.Settings) (Window, error)

	// Keyboard returns the current key state.
	Keyboard() input.Keyboard

	// SetListener sets the receiver of input events.
	SetListener(l input.Listener)

	// Run runs the render loop until fun returns false, the window
	// is closed, or ctx is done.
	Run(ctx context.Context, fun FrameFunc) error

	// Terminate releases the platform layer.
	Terminate()
}
