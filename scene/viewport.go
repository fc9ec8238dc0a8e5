// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"

	"cogentcore.org/core/colors"
)

// Viewport is a rectangular region of the window into which one
// camera's view is drawn. The first viewport is the xyz scene's own
// render target: its camera becomes the scene camera and its size and
// background are those of the scene.
type Viewport struct {

	// Camera is the camera drawn into this viewport.
	Camera *Camera

	// Size is the actual size of the viewport in pixels.
	Size image.Point

	// Background is the clear colour.
	Background Color

	sm      *Manager
	primary bool
}

// AspectRatio returns width / height.
func (vp *Viewport) AspectRatio() float32 {
	return float32(vp.Size.X) / float32(vp.Size.Y)
}

// SetBackground sets the clear colour.
func (vp *Viewport) SetBackground(c Color) *Viewport {
	vp.Background = c
	if vp.primary {
		vp.sm.XYZ.Background = colors.Uniform(c.ToRGBA())
	}
	return vp
}

// AddViewport adds a viewport of the given pixel size showing the
// camera. The size must be positive in both dimensions.
func (sm *Manager) AddViewport(cam *Camera, size image.Point) (*Viewport, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrZeroSize, size)
	}
	vp := &Viewport{Camera: cam, Size: size, sm: sm, primary: len(sm.viewports) == 0}
	if vp.primary {
		sm.XYZ.SetSize(size)
		sm.bindCamera(cam)
	}
	vp.SetBackground(Black)
	sm.viewports = append(sm.viewports, vp)
	return vp, nil
}

// bindCamera makes cam the camera of the xyz scene. A camera that was
// bound before keeps its own copy of the view.
func (sm *Manager) bindCamera(cam *Camera) {
	sc := &sm.XYZ.Camera
	if cam.Camera == sc {
		return
	}
	for _, o := range sm.cameras {
		if o.Camera == sc {
			prev := *sc
			o.Camera = &prev
		}
	}
	*sc = *cam.Camera
	cam.Camera = sc
}

// Viewport returns the viewport at the given index, or nil.
func (sm *Manager) Viewport(idx int) *Viewport {
	if idx < 0 || idx >= len(sm.viewports) {
		return nil
	}
	return sm.viewports[idx]
}

// Viewports returns all viewports.
func (sm *Manager) Viewports() []*Viewport {
	return sm.viewports
}
