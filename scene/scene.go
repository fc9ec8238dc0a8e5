// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene graph that tutorial applications
// populate at startup: a tree of [Node]s holding [Entity] objects,
// plus the lights, camera and viewports of the scene, all owned by
// a [Manager] and built in an [xyz.Scene].
package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/xyz"
)

var (
	// ErrDuplicateName is returned when creating an object whose name
	// is already used by another object of the same kind.
	ErrDuplicateName = errors.New("scene: duplicate name")

	// ErrAlreadyAttached is returned when attaching an object that is
	// already attached to a node.
	ErrAlreadyAttached = errors.New("scene: object already attached")

	// ErrMeshNotFound is returned when a mesh cannot be found in any
	// resource location.
	ErrMeshNotFound = errors.New("scene: mesh not found")

	// ErrZeroSize is returned when a viewport would have no area.
	ErrZeroSize = errors.New("scene: zero size viewport")
)

// ShadowTechniques are the shadow techniques a [Manager] can request.
type ShadowTechniques int32

const (
	NoShadows ShadowTechniques = iota
	StencilModulative
	StencilAdditive
	TextureModulative
	TextureAdditive
)

var shadowNames = [...]string{"none", "stencil-modulative", "stencil-additive", "texture-modulative", "texture-additive"}

func (st ShadowTechniques) String() string {
	if st < 0 || int(st) >= len(shadowNames) {
		return fmt.Sprintf("ShadowTechniques(%d)", int32(st))
	}
	return shadowNames[st]
}

// FogModes are the fog falloff functions.
type FogModes int32

const (
	FogNone FogModes = iota
	FogExp
	FogExp2
	FogLinear
)

var fogNames = [...]string{"none", "exp", "exp2", "linear"}

func (fm FogModes) String() string {
	if fm < 0 || int(fm) >= len(fogNames) {
		return fmt.Sprintf("FogModes(%d)", int32(fm))
	}
	return fogNames[fm]
}

// Fog describes scene fog.
type Fog struct {
	Mode    FogModes
	Color   Color
	Density float32

	// Start and End are used by [FogLinear].
	Start, End float32
}

// SkyDome describes a curved sky rendered behind the scene.
type SkyDome struct {
	Material  string
	Curvature float32
	Tiling    float32
	Distance  float32
}

// Manager owns a scene graph and everything placed in it. The graph
// itself is an [xyz.Scene]: nodes are [xyz.Group]s under a root group,
// attached entities are [xyz.Solid]s, and lights, meshes and the
// primary camera live on the xyz scene. The Manager adds the state
// xyz has no notion of, such as shadows, fog, the sky dome, detached
// entities and the viewport list.
//
// Names are unique per kind of object. A Manager is not safe for
// concurrent use; it is built and read on the host's loop thread.
type Manager struct {

	// Name identifies the manager in logs and dumps.
	Name string

	// XYZ is the scene the graph is built in.
	XYZ *xyz.Scene

	// Meshes is the mesh registry entities are created from.
	Meshes *MeshManager

	// Ambient is the ambient light colour.
	Ambient Color

	// Shadows is the requested shadow technique.
	Shadows ShadowTechniques

	// Fog is the scene fog; Mode is FogNone when disabled.
	Fog Fog

	// Sky is the sky dome, or nil.
	Sky *SkyDome

	root      *Node
	nodes     map[string]*Node
	entities  []*Entity
	entByName map[string]*Entity
	lights    []*Light
	ltByName  map[string]*Light
	cameras   []*Camera
	viewports []*Viewport
	autoID    int
}

// AmbientLight is the name of the ambient light on the xyz scene.
const AmbientLight = "Ambient"

// NewManager returns an empty scene graph whose meshes are located
// through loc, which may be nil if only generated meshes are used.
func NewManager(name string, loc Locator) *Manager {
	sc := xyz.NewScene()
	sc.SetName(name)
	sm := &Manager{
		Name:      name,
		XYZ:       sc,
		nodes:     make(map[string]*Node),
		entByName: make(map[string]*Entity),
		ltByName:  make(map[string]*Light),
	}
	sm.Meshes = newMeshManager(sc, loc)
	gp := xyz.NewGroup(sc)
	gp.SetName("Root")
	gp.Defaults()
	sm.root = &Node{Group: gp, sm: sm}
	sm.nodes["Root"] = sm.root
	return sm
}

// Root returns the root node of the graph.
func (sm *Manager) Root() *Node {
	return sm.root
}

// autoName returns a generated name with the given prefix.
func (sm *Manager) autoName(prefix string) string {
	sm.autoID++
	return fmt.Sprintf("%s%d", prefix, sm.autoID)
}

// SetAmbientLight sets the ambient light colour. Black removes the
// ambient light from the xyz scene.
func (sm *Manager) SetAmbientLight(c Color) {
	sm.Ambient = c
	if c == Black {
		sm.XYZ.Lights.DeleteKey(AmbientLight)
		return
	}
	lumens, clr := c.lumens()
	amb := xyz.NewAmbient(sm.XYZ, AmbientLight, lumens, xyz.DirectSun)
	amb.Color = clr
}

// SetShadowTechnique sets the shadow technique.
func (sm *Manager) SetShadowTechnique(st ShadowTechniques) {
	sm.Shadows = st
}

// SetFog enables fog with the given mode, colour and density.
func (sm *Manager) SetFog(mode FogModes, c Color, density float32) {
	sm.Fog = Fog{Mode: mode, Color: c, Density: density, Start: 0, End: 1}
}

// SetSkyDome enables a sky dome using the given material.
func (sm *Manager) SetSkyDome(material string, curvature, tiling float32) error {
	if material == "" {
		return errors.New("scene: sky dome needs a material")
	}
	sm.Sky = &SkyDome{Material: material, Curvature: curvature, Tiling: tiling, Distance: 4000}
	return nil
}

// CreateEntity creates an entity from the named mesh with a generated name.
func (sm *Manager) CreateEntity(mesh string) (*Entity, error) {
	return sm.CreateNamedEntity("", mesh)
}

// CreateNamedEntity creates an entity from the named mesh, loading the
// mesh from the resource locations if it is not already registered.
// The entity is not attached to any node.
func (sm *Manager) CreateNamedEntity(name, mesh string) (*Entity, error) {
	if name == "" {
		name = sm.autoName("Entity")
	}
	if _, has := sm.entByName[name]; has {
		return nil, fmt.Errorf("%w: entity %q", ErrDuplicateName, name)
	}
	ms, err := sm.Meshes.Load(mesh, AutodetectGroup)
	if err != nil {
		return nil, fmt.Errorf("creating entity %q: %w", name, err)
	}
	ent := newEntity(name, ms)
	sm.entities = append(sm.entities, ent)
	sm.entByName[name] = ent
	slog.Debug("created entity", "name", name, "mesh", mesh)
	return ent, nil
}

// Entity returns the entity with the given name, or nil.
func (sm *Manager) Entity(name string) *Entity {
	return sm.entByName[name]
}

// Entities returns all entities in creation order.
func (sm *Manager) Entities() []*Entity {
	return sm.entities
}

// AttachedEntities returns the entities that are attached to a node.
func (sm *Manager) AttachedEntities() []*Entity {
	var ents []*Entity
	for _, ent := range sm.entities {
		if ent.ParentNode() != nil {
			ents = append(ents, ent)
		}
	}
	return ents
}

// CreateLight creates a point light with the given name, which may be empty.
func (sm *Manager) CreateLight(name string) (*Light, error) {
	if name == "" {
		name = sm.autoName("Light")
	}
	if _, has := sm.ltByName[name]; has || name == AmbientLight {
		return nil, fmt.Errorf("%w: light %q", ErrDuplicateName, name)
	}
	lt := newLight(sm.XYZ, name)
	sm.lights = append(sm.lights, lt)
	sm.ltByName[name] = lt
	slog.Debug("created light", "name", name)
	return lt, nil
}

// Light returns the light with the given name, or nil.
func (sm *Manager) Light(name string) *Light {
	return sm.ltByName[name]
}

// Lights returns all lights in creation order.
func (sm *Manager) Lights() []*Light {
	return sm.lights
}

// CreateCamera creates a camera with the given name. The first camera
// is the camera of the xyz scene.
func (sm *Manager) CreateCamera(name string) (*Camera, error) {
	if name == "" {
		name = sm.autoName("Camera")
	}
	if sm.Camera(name) != nil {
		return nil, fmt.Errorf("%w: camera %q", ErrDuplicateName, name)
	}
	xc := &xyz.Camera{}
	if len(sm.cameras) == 0 {
		xc = &sm.XYZ.Camera
	}
	cam := newCamera(name, xc)
	sm.cameras = append(sm.cameras, cam)
	return cam, nil
}

// Camera returns the camera with the given name, or nil.
func (sm *Manager) Camera(name string) *Camera {
	for _, cam := range sm.cameras {
		if cam.name == name {
			return cam
		}
	}
	return nil
}

// Cameras returns all cameras in creation order.
func (sm *Manager) Cameras() []*Camera {
	return sm.cameras
}

// Node returns the node with the given name, or nil.
func (sm *Manager) Node(name string) *Node {
	return sm.nodes[name]
}

// NumNodes returns the number of nodes in the graph, including the root.
func (sm *Manager) NumNodes() int {
	return len(sm.nodes)
}
