// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tutorials

import (
	"cogentcore.org/core/math32"
	"github.com/juicycheckers/ogretut/app"
	"github.com/juicycheckers/ogretut/scene"
)

// Heads places two ogre heads side by side under a single point light.
type Heads struct {
	app.Base
}

func (hd *Heads) CreateScene(sm *scene.Manager) error {
	sm.SetAmbientLight(scene.Grey(0.5))

	if _, err := placeEntity(sm, "", "ogrehead.mesh", "", math32.Vector3{}); err != nil {
		return err
	}
	if _, err := placeEntity(sm, "", "ogrehead.mesh", "", math32.Vec3(84, 48, 0)); err != nil {
		return err
	}
	if _, err := createGround(sm, 1500, 5, "Examples/Rockwall"); err != nil {
		return err
	}

	lt, err := sm.CreateLight("MainLight")
	if err != nil {
		return err
	}
	lt.SetPosition(math32.Vec3(20, 80, 50))
	return nil
}

func (hd *Heads) CreateCamera(sm *scene.Manager) (*scene.Camera, error) {
	cam, err := hd.Base.CreateCamera(sm)
	if err != nil {
		return nil, err
	}
	cam.SetPosition(math32.Vec3(0, 0, 80)).LookAt(math32.Vec3(0, 0, -300))
	return cam, nil
}
