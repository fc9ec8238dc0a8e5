// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"io"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
)

type vecDump [3]float32

func toVec(v math32.Vector3) vecDump {
	return vecDump{v.X, v.Y, v.Z}
}

type nodeDump struct {
	Name     string     `yaml:"name"`
	Pos      vecDump    `yaml:"pos,flow"`
	Objects  []string   `yaml:"objects,omitempty"`
	Children []nodeDump `yaml:"children,omitempty"`
}

type entityDump struct {
	Name     string `yaml:"name"`
	Mesh     string `yaml:"mesh"`
	Material string `yaml:"material"`
	Shadows  bool   `yaml:"shadows"`
	Node     string `yaml:"node,omitempty"`
}

type lightDump struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	Diffuse  vecDump `yaml:"diffuse,flow"`
	Specular vecDump `yaml:"specular,flow"`
	Pos      vecDump `yaml:"pos,flow"`
	Dir      vecDump `yaml:"dir,flow"`
}

type cameraDump struct {
	Name   string  `yaml:"name"`
	Pos    vecDump `yaml:"pos,flow"`
	Target vecDump `yaml:"target,flow"`
	Near   float32 `yaml:"near"`
	Aspect float32 `yaml:"aspect"`
}

type sceneDump struct {
	Name     string       `yaml:"name"`
	Ambient  vecDump      `yaml:"ambient,flow"`
	Shadows  string       `yaml:"shadows"`
	Fog      string       `yaml:"fog,omitempty"`
	Sky      string       `yaml:"sky,omitempty"`
	Root     nodeDump     `yaml:"root"`
	Entities []entityDump `yaml:"entities"`
	Lights   []lightDump  `yaml:"lights"`
	Cameras  []cameraDump `yaml:"cameras"`
	Meshes   []string     `yaml:"meshes"`
}

func colorVec(c Color) vecDump {
	return vecDump{c.R, c.G, c.B}
}

func dumpNode(nd *Node) nodeDump {
	d := nodeDump{Name: nd.Name(), Pos: toVec(nd.Pos())}
	for _, ent := range nd.Objects() {
		d.Objects = append(d.Objects, ent.Name())
	}
	for _, ch := range nd.Children() {
		d.Children = append(d.Children, dumpNode(ch))
	}
	return d
}

// WriteYAML writes a description of the scene graph to w.
func (sm *Manager) WriteYAML(w io.Writer) error {
	d := sceneDump{
		Name:    sm.Name,
		Ambient: colorVec(sm.Ambient),
		Shadows: sm.Shadows.String(),
		Root:    dumpNode(sm.root),
	}
	if sm.Fog.Mode != FogNone {
		d.Fog = sm.Fog.Mode.String()
	}
	if sm.Sky != nil {
		d.Sky = sm.Sky.Material
	}
	for _, ent := range sm.entities {
		ed := entityDump{Name: ent.Name(), Mesh: ent.Mesh.Name, Material: ent.Material, Shadows: ent.CastShadows}
		if ent.node != nil {
			ed.Node = ent.node.Name()
		}
		d.Entities = append(d.Entities, ed)
	}
	for _, lt := range sm.lights {
		d.Lights = append(d.Lights, lightDump{
			Name:     lt.name,
			Type:     lt.Type.String(),
			Diffuse:  colorVec(lt.Diffuse),
			Specular: colorVec(lt.Specular),
			Pos:      toVec(lt.pos),
			Dir:      toVec(lt.dir),
		})
	}
	for _, cam := range sm.cameras {
		d.Cameras = append(d.Cameras, cameraDump{
			Name:   cam.name,
			Pos:    toVec(cam.Pose.Pos),
			Target: toVec(cam.Target),
			Near:   cam.Near,
			Aspect: cam.Aspect,
		})
	}
	d.Meshes = sm.Meshes.Names()
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
