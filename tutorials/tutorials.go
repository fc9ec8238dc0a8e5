// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tutorials contains the tutorial scenes: fixed arrangements
// of character meshes, a ground plane and lights, each with its own
// camera pose.
package tutorials

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/juicycheckers/ogretut/app"
	"github.com/juicycheckers/ogretut/scene"
)

// Default is the tutorial run when none is named.
const Default = "ninjas"

var registry = map[string]func() app.Hooks{
	"ninjas":  func() app.Hooks { return &Ninjas{} },
	"shadows": func() app.Hooks { return &Shadows{} },
	"heads":   func() app.Hooks { return &Heads{} },
}

// Names returns the tutorial names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for nm := range registry {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

// New returns the hooks of the named tutorial.
func New(name string) (app.Hooks, error) {
	if name == "" {
		name = Default
	}
	fun, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown tutorial %q (have %v)", name, Names())
	}
	return fun(), nil
}

// GroundMesh is the name of the ground plane mesh.
const GroundMesh = "ground"

// createGround creates a square ground plane of the given size facing
// up, with the texture tiled tile times, and attaches a non shadow
// casting entity of it to a new root child.
func createGround(sm *scene.Manager, size, tile float32, material string) (*scene.Entity, error) {
	_, err := sm.Meshes.CreatePlane(GroundMesh, scene.DefaultGroup, scene.PlaneParams{
		Plane:        scene.Plane{Normal: math32.Vec3(0, 1, 0)},
		Width:        size,
		Height:       size,
		XSegments:    20,
		YSegments:    20,
		Normals:      true,
		TexCoordSets: 1,
		UTile:        tile,
		VTile:        tile,
		Up:           math32.Vec3(0, 0, 1),
	})
	if err != nil {
		return nil, err
	}
	ground, err := sm.CreateEntity(GroundMesh)
	if err != nil {
		return nil, err
	}
	nd, err := sm.Root().CreateChild("", math32.Vector3{})
	if err != nil {
		return nil, err
	}
	if err := nd.AttachObject(ground); err != nil {
		return nil, err
	}
	ground.SetCastShadows(false).SetMaterialName(material)
	return ground, nil
}

// placeEntity creates an entity of the mesh on a new root child at pos.
func placeEntity(sm *scene.Manager, name, mesh, node string, pos math32.Vector3) (*scene.Entity, error) {
	ent, err := sm.CreateNamedEntity(name, mesh)
	if err != nil {
		return nil, err
	}
	nd, err := sm.Root().CreateChild(node, pos)
	if err != nil {
		return nil, err
	}
	return ent, nd.AttachObject(ent)
}
