// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tutorials

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/juicycheckers/ogretut/app"
	"github.com/juicycheckers/ogretut/scene"
)

// NumNinjas is the number of ninja entities in the [Ninjas] scene.
const NumNinjas = 8

// Ninjas creates eight ninjas, two of which are placed on a metal
// floor, lit by a blue spot light, a directional light and a dim
// point light, with stencil shadows.
type Ninjas struct {
	app.Base
}

func (nj *Ninjas) CreateScene(sm *scene.Manager) error {
	sm.SetAmbientLight(scene.Grey(0.5))

	ents := make([]*scene.Entity, NumNinjas)
	nodes := make([]*scene.Node, NumNinjas)
	for i := range NumNinjas {
		var err error
		ents[i], err = sm.CreateNamedEntity(fmt.Sprintf("ninja %d", i+1), "ninja.mesh")
		if err != nil {
			return err
		}
		nodes[i], err = sm.Root().CreateChild(fmt.Sprintf("Node %d", i+1), math32.Vector3{})
		if err != nil {
			return err
		}
	}
	nodes[0].SetPosition(600, 0, 600)
	nodes[1].SetPosition(600, 0, 500)
	for i := range 2 {
		if err := nodes[i].AttachObject(ents[i]); err != nil {
			return err
		}
	}

	if _, err := createGround(sm, 1600, 4, "Examples/BumpyMetal"); err != nil {
		return err
	}

	sm.SetAmbientLight(scene.Black)
	sm.SetShadowTechnique(scene.StencilAdditive)

	spot, err := sm.CreateLight("SpotLight")
	if err != nil {
		return err
	}
	spot.SetType(scene.SpotLight).
		SetDiffuse(scene.Color{R: 0, G: 0, B: 1}).
		SetSpecular(scene.Color{R: 0, G: 0, B: 1}).
		SetDirection(math32.Vec3(-1, -1, 0)).
		SetPosition(math32.Vec3(200, 200, 0)).
		SetSpotRange(35, 50)

	dir, err := sm.CreateLight("DirectionalLight")
	if err != nil {
		return err
	}
	dir.SetType(scene.DirectionalLight).
		SetDiffuse(scene.Grey(256)).
		SetSpecular(scene.Grey(256)).
		SetDirection(math32.Vec3(0, -1, 0))

	point, err := sm.CreateLight("PointLight")
	if err != nil {
		return err
	}
	point.SetType(scene.PointLight).
		SetDiffuse(scene.Grey(0.3)).
		SetSpecular(scene.Grey(0.3)).
		SetPosition(math32.Vec3(0, 150, 250))
	return nil
}

func (nj *Ninjas) CreateCamera(sm *scene.Manager) (*scene.Camera, error) {
	cam, err := nj.Base.CreateCamera(sm)
	if err != nil {
		return nil, err
	}
	cam.SetPosition(math32.Vec3(0, 800, 1000)).LookAt(math32.Vec3(300, 0, 800))
	return cam, nil
}
