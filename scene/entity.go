// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/xyz"
)

// Entity is an instance of a mesh placed in the scene by attaching
// its [xyz.Solid] to a [Node].
type Entity struct {

	// Solid is the xyz solid of the entity. It has no parent while
	// the entity is detached.
	Solid *xyz.Solid

	// Mesh is the mesh this entity instances.
	Mesh *Mesh

	// Material overrides the mesh material when set.
	Material string

	// CastShadows is whether the entity casts shadows.
	CastShadows bool

	node *Node
}

func newEntity(name string, ms *Mesh) *Entity {
	sld := xyz.NewSolid()
	sld.SetName(name)
	sld.SetMesh(ms.XYZ)
	if pp := ms.Plane; pp != nil && pp.UTile > 0 && pp.VTile > 0 {
		sld.Material.Tiling.Repeat.Set(pp.UTile, pp.VTile)
	}
	return &Entity{Solid: sld, Mesh: ms, Material: ms.Material, CastShadows: true}
}

// Name returns the entity name.
func (ent *Entity) Name() string {
	return ent.Solid.Name
}

// ParentNode returns the node the entity is attached to, or nil.
func (ent *Entity) ParentNode() *Node {
	return ent.node
}

// SetMaterialName sets the material.
func (ent *Entity) SetMaterialName(name string) *Entity {
	ent.Material = name
	return ent
}

// SetCastShadows sets whether the entity casts shadows.
func (ent *Entity) SetCastShadows(on bool) *Entity {
	ent.CastShadows = on
	return ent
}
