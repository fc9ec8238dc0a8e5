// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cameraman provides a free-look camera controller that
// maps keyboard and mouse input to camera movement.
package cameraman

import (
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"github.com/juicycheckers/ogretut/input"
	"github.com/juicycheckers/ogretut/scene"
)

// Man moves a camera: W/S or Up/Down go forward and back, A/D or
// Left/Right strafe, PageUp/PageDown rise and sink, Shift moves
// faster, and mouse motion turns the view.
// It implements [input.Listener].
type Man struct {

	// Camera is the camera being moved.
	Camera *scene.Camera

	// TopSpeed is the maximum speed in units per second.
	TopSpeed float32

	// FastFactor multiplies TopSpeed while Shift is held.
	FastFactor float32

	// Sensitivity is the turn in degrees per pixel of mouse motion.
	Sensitivity float32

	// Velocity is the current velocity.
	Velocity math32.Vector3

	forward, back, left, right, up, down bool
	fast                                 bool
}

// New returns a controller for the camera with default speeds.
func New(cam *scene.Camera) *Man {
	return &Man{Camera: cam, TopSpeed: 150, FastFactor: 20, Sensitivity: 0.15}
}

// Stop halts all motion.
func (cm *Man) Stop() {
	cm.forward, cm.back, cm.left, cm.right, cm.up, cm.down = false, false, false, false, false, false
	cm.Velocity = math32.Vector3{}
}

// setKey updates the movement flags, returning whether the key is bound.
func (cm *Man) setKey(code key.Codes, on bool) bool {
	switch code {
	case key.CodeW, key.CodeUpArrow:
		cm.forward = on
	case key.CodeS, key.CodeDownArrow:
		cm.back = on
	case key.CodeA, key.CodeLeftArrow:
		cm.left = on
	case key.CodeD, key.CodeRightArrow:
		cm.right = on
	case key.CodePageUp:
		cm.up = on
	case key.CodePageDown:
		cm.down = on
	case key.CodeLeftShift, key.CodeRightShift:
		cm.fast = on
	default:
		return false
	}
	return true
}

// KeyPressed implements [input.Listener].
func (cm *Man) KeyPressed(ev input.Key) bool {
	cm.setKey(ev.Code, true)
	return true
}

// KeyReleased implements [input.Listener].
func (cm *Man) KeyReleased(ev input.Key) bool {
	cm.setKey(ev.Code, false)
	return true
}

// MouseMoved implements [input.Listener].
func (cm *Man) MouseMoved(ev input.Mouse) bool {
	if cm.Camera == nil {
		return true
	}
	if ev.Rel.X != 0 {
		cm.Camera.Yaw(-float32(ev.Rel.X) * cm.Sensitivity)
	}
	if ev.Rel.Y != 0 {
		cm.Camera.Pitch(-float32(ev.Rel.Y) * cm.Sensitivity)
	}
	return true
}

// MousePressed implements [input.Listener].
func (cm *Man) MousePressed(ev input.Mouse, btn events.Buttons) bool {
	return true
}

// MouseReleased implements [input.Listener].
func (cm *Man) MouseReleased(ev input.Mouse, btn events.Buttons) bool {
	return true
}

// tooSmall is the speed below which the camera stops.
const tooSmall = 1e-4

// FrameRenderingQueued accelerates toward the held direction, or
// decelerates when nothing is held, and moves the camera.
func (cm *Man) FrameRenderingQueued(ev scene.FrameEvent) bool {
	if cm.Camera == nil {
		return true
	}
	dt := ev.TimeSinceLastFrame
	cam := cm.Camera
	var accel math32.Vector3
	if cm.forward {
		accel = accel.Add(cam.Direction())
	}
	if cm.back {
		accel = accel.Sub(cam.Direction())
	}
	if cm.right {
		accel = accel.Add(cam.Right())
	}
	if cm.left {
		accel = accel.Sub(cam.Right())
	}
	if cm.up {
		accel = accel.Add(cam.Up())
	}
	if cm.down {
		accel = accel.Sub(cam.Up())
	}

	top := cm.TopSpeed
	if cm.fast {
		top *= cm.FastFactor
	}
	if accel.Length() != 0 {
		cm.Velocity = cm.Velocity.Add(accel.Normal().MulScalar(top * dt * 10))
	} else {
		cm.Velocity = cm.Velocity.Sub(cm.Velocity.MulScalar(math32.Min(dt*10, 1)))
	}

	speed := cm.Velocity.Length()
	switch {
	case speed > top:
		cm.Velocity = cm.Velocity.Normal().MulScalar(top)
	case speed < tooSmall:
		cm.Velocity = math32.Vector3{}
	}
	if cm.Velocity.Length() != 0 {
		cam.Move(cm.Velocity.MulScalar(dt))
	}
	return true
}
