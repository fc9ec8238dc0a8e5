// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// Camera defines the view onto the scene. It wraps an [xyz.Camera],
// whose Pose holds the position and orientation and whose Target is
// the point looked at, adding Ogre-style clip defaults and free-look
// movement.
type Camera struct {
	*xyz.Camera

	name string
}

func newCamera(name string, xc *xyz.Camera) *Camera {
	cm := &Camera{Camera: xc, name: name}
	cm.Defaults()
	return cm
}

// Name returns the camera name.
func (cm *Camera) Name() string {
	return cm.name
}

// Defaults sets the default projection and a pose looking at the
// origin from (0, 0, 500).
func (cm *Camera) Defaults() {
	cm.Camera.Defaults()
	cm.FOV = 45
	cm.Aspect = 1.33333
	cm.Near = 100
	cm.Far = 100000
	cm.Pose.Pos.Set(0, 0, 500)
	cm.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// Pos returns the camera position in world coordinates.
func (cm *Camera) Pos() math32.Vector3 {
	return cm.Pose.Pos
}

// SetPosition moves the camera, keeping it aimed at its target.
func (cm *Camera) SetPosition(pos math32.Vector3) *Camera {
	cm.Pose.Pos = pos
	cm.LookAtTarget()
	return cm
}

// LookAt points the camera at the target, keeping the up direction.
func (cm *Camera) LookAt(target math32.Vector3) *Camera {
	cm.Camera.LookAt(target, cm.UpDir)
	return cm
}

// SetNearClipDistance sets the near clip plane distance.
func (cm *Camera) SetNearClipDistance(near float32) *Camera {
	cm.Near = near
	cm.UpdateMatrix()
	return cm
}

// SetAspectRatio sets the aspect ratio.
func (cm *Camera) SetAspectRatio(aspect float32) *Camera {
	cm.Aspect = aspect
	cm.UpdateMatrix()
	return cm
}

// Direction returns the normalized view direction, the negative Z
// axis of the pose. A camera whose target equals its position looks
// down negative Z.
func (cm *Camera) Direction() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(cm.Pose.Quat).Normal()
}

// Right returns the normalized right vector of the view.
func (cm *Camera) Right() math32.Vector3 {
	r := cm.Direction().Cross(cm.UpDir)
	if r.Length() == 0 {
		return math32.Vec3(1, 0, 0)
	}
	return r.Normal()
}

// Up returns the normalized up vector of the view, perpendicular to
// the direction.
func (cm *Camera) Up() math32.Vector3 {
	return cm.Right().Cross(cm.Direction()).Normal()
}

// Move translates the camera and its target.
func (cm *Camera) Move(delta math32.Vector3) {
	cm.Pose.Pos = cm.Pose.Pos.Add(delta)
	cm.Target = cm.Target.Add(delta)
	cm.UpdateMatrix()
}

// Yaw turns the view about the world up direction, in degrees.
func (cm *Camera) Yaw(deg float32) {
	cm.rotateView(cm.UpDir.Normal(), deg)
}

// Pitch tilts the view about its right vector, in degrees. The view is
// not allowed to flip past the up direction.
func (cm *Camera) Pitch(deg float32) {
	right := cm.Right()
	old := cm.Target
	cm.rotateView(right, deg)
	if cm.Right().Dot(right) < 0 {
		cm.LookAt(old)
	}
}

// rotateView rotates the target around the camera position.
func (cm *Camera) rotateView(axis math32.Vector3, deg float32) {
	v := cm.Target.Sub(cm.Pose.Pos)
	if v.Length() == 0 {
		v = cm.Direction()
	}
	q := math32.NewQuatAxisAngle(axis, math32.DegToRad(deg))
	cm.LookAt(cm.Pose.Pos.Add(v.MulQuat(q)))
}
