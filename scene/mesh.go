// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

const (
	// DefaultGroup is the resource group meshes are created in when
	// no group is given.
	DefaultGroup = "General"

	// AutodetectGroup searches every resource group.
	AutodetectGroup = ""

	// DefaultMaterial is the material of meshes without one.
	DefaultMaterial = "BaseWhite"
)

// Locator finds resource files by name within a resource group.
// An empty group searches all groups.
type Locator interface {
	Find(group, name string) (string, error)
}

// Plane is an infinite plane: points p with Normal . p = D.
type Plane struct {
	Normal math32.Vector3
	D      float32
}

// PlaneParams are the parameters of a procedural plane mesh.
type PlaneParams struct {
	Plane Plane

	// Width and Height are the size of the plane.
	Width, Height float32

	// XSegments and YSegments are the number of subdivisions.
	XSegments, YSegments int

	// Normals is whether to generate vertex normals.
	Normals bool

	// TexCoordSets is the number of texture coordinate sets.
	TexCoordSets int

	// UTile and VTile are the texture repeat counts.
	UTile, VTile float32

	// Up is the up vector of the plane's texture space.
	Up math32.Vector3
}

// Mesh is a mesh registered with a [MeshManager]: either loaded from
// a file found through the resource locations, or generated.
type Mesh struct {
	Name  string
	Group string

	// Path is the file the mesh was found at; empty for generated meshes.
	Path string

	// Material is the default material for entities of this mesh.
	Material string

	// Plane holds the parameters of a generated plane.
	Plane *PlaneParams

	// XYZ is the mesh registered on the xyz scene under Name.
	XYZ xyz.Mesh
}

// Vertices returns the number of vertices. Loaded meshes have no
// geometry until their file is read, and report zero.
func (ms *Mesh) Vertices() int {
	nv, _, _ := ms.XYZ.MeshSize()
	return nv
}

// Triangles returns the number of triangles.
func (ms *Mesh) Triangles() int {
	_, ni, _ := ms.XYZ.MeshSize()
	return ni / 3
}

// MeshManager is the registry of meshes, which are resolved through
// its [Locator] the first time they are loaded. Every mesh is also
// registered in the Meshes of the xyz scene.
type MeshManager struct {
	sc      *xyz.Scene
	locator Locator
	meshes  map[string]*Mesh
}

func newMeshManager(sc *xyz.Scene, loc Locator) *MeshManager {
	return &MeshManager{sc: sc, locator: loc, meshes: make(map[string]*Mesh)}
}

// Mesh returns the mesh with the given name, or nil.
func (mm *MeshManager) Mesh(name string) *Mesh {
	return mm.meshes[name]
}

// Names returns the registered mesh names in registration order.
func (mm *MeshManager) Names() []string {
	return mm.sc.Meshes.Keys()
}

// planeAxis returns the axis closest to the normal and whether the
// normal points along its negative direction.
func planeAxis(n math32.Vector3) (math32.Dims, bool) {
	a := n.Abs()
	switch {
	case a.X >= a.Y && a.X >= a.Z:
		return math32.X, n.X < 0
	case a.Z > a.Y:
		return math32.Z, n.Z < 0
	}
	return math32.Y, n.Y < 0
}

// CreatePlane registers a generated plane mesh, facing along the axis
// closest to the plane normal and offset along it by the plane's D.
func (mm *MeshManager) CreatePlane(name, group string, pp PlaneParams) (*Mesh, error) {
	if _, has := mm.meshes[name]; has {
		return nil, fmt.Errorf("%w: mesh %q", ErrDuplicateName, name)
	}
	if pp.Width <= 0 || pp.Height <= 0 {
		return nil, fmt.Errorf("scene: plane %q has non-positive size %gx%g", name, pp.Width, pp.Height)
	}
	if pp.XSegments < 1 || pp.YSegments < 1 {
		return nil, fmt.Errorf("scene: plane %q needs at least one segment, got %dx%d", name, pp.XSegments, pp.YSegments)
	}
	if pp.Plane.Normal.Length() == 0 {
		return nil, fmt.Errorf("scene: plane %q has a zero normal", name)
	}
	if group == "" {
		group = DefaultGroup
	}
	pl := xyz.NewPlane(mm.sc, name, pp.Width, pp.Height)
	pl.NormAxis, pl.NormalNeg = planeAxis(pp.Plane.Normal)
	pl.Segs.Set(int32(pp.XSegments), int32(pp.YSegments))
	pl.Offset = pp.Plane.D
	p := pp
	ms := &Mesh{Name: name, Group: group, Material: DefaultMaterial, Plane: &p, XYZ: pl}
	mm.meshes[name] = ms
	slog.Debug("created plane mesh", "name", name, "vertices", ms.Vertices())
	return ms, nil
}

// Load returns the named mesh, locating its file in the given group
// (or all groups) the first time it is requested. The file is
// registered as an empty [xyz.GenMesh] for entities to share.
func (mm *MeshManager) Load(name, group string) (*Mesh, error) {
	if ms, has := mm.meshes[name]; has {
		return ms, nil
	}
	if mm.locator == nil {
		return nil, fmt.Errorf("%w: %q (no resource locations)", ErrMeshNotFound, name)
	}
	path, err := mm.locator.Find(group, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMeshNotFound, name, err)
	}
	if group == AutodetectGroup {
		group = DefaultGroup
	}
	gm := &xyz.GenMesh{}
	gm.Name = name
	mm.sc.SetMesh(gm)
	ms := &Mesh{Name: name, Group: group, Path: path, Material: DefaultMaterial, XYZ: gm}
	mm.meshes[name] = ms
	slog.Debug("loaded mesh", "name", name, "path", path)
	return ms, nil
}
