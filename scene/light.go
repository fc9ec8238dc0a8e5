// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// Color is a linear RGB colour. Components are nominally 0-1 but
// values above 1 are kept as given, for over-bright lights.
type Color struct {
	R, G, B float32
}

// Grey returns a colour with all components set to v.
func Grey(v float32) Color {
	return Color{v, v, v}
}

// Black is the zero colour.
var Black = Color{}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}

// ToRGBA returns the colour clamped to the displayable range.
func (c Color) ToRGBA() color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), 255}
}

// lumens splits the colour into an intensity, the largest component,
// and the colour scaled by it, as xyz lights take them.
func (c Color) lumens() (float32, color.RGBA) {
	l := max(c.R, c.G, c.B)
	if l <= 0 {
		return 0, color.RGBA{A: 255}
	}
	return l, Color{c.R / l, c.G / l, c.B / l}.ToRGBA()
}

// LightTypes are the kinds of light.
type LightTypes int32

const (
	// PointLight emits in all directions from its position.
	PointLight LightTypes = iota

	// DirectionalLight has a direction but no position, like the sun.
	DirectionalLight

	// SpotLight emits a cone from its position along its direction.
	SpotLight
)

var lightTypeNames = [...]string{"point", "directional", "spot"}

func (lt LightTypes) String() string {
	if lt < 0 || int(lt) >= len(lightTypeNames) {
		return fmt.Sprintf("LightTypes(%d)", int32(lt))
	}
	return lightTypeNames[lt]
}

// Light illuminates the scene. Each Light is backed by an xyz light of
// the same name on the scene, which is replaced when the type changes
// and updated by every setter.
type Light struct {

	// Type is the kind of light.
	Type LightTypes

	// Diffuse is the diffuse colour.
	Diffuse Color

	// Specular is the specular colour.
	Specular Color

	// SpotInner and SpotOuter are the cone angles of a spot light, in degrees.
	SpotInner, SpotOuter float32

	// CastShadows is whether the light casts shadows.
	CastShadows bool

	// XYZ is the light on the xyz scene.
	XYZ xyz.Light

	name string
	sc   *xyz.Scene
	pos  math32.Vector3
	dir  math32.Vector3
}

func newLight(sc *xyz.Scene, name string) *Light {
	lt := &Light{
		name:        name,
		sc:          sc,
		Type:        PointLight,
		Diffuse:     Grey(1),
		Specular:    Black,
		dir:         math32.Vec3(0, 0, 1),
		SpotInner:   30,
		SpotOuter:   40,
		CastShadows: true,
	}
	lt.update()
	return lt
}

// update rebuilds the xyz light from the light settings.
func (lt *Light) update() {
	lumens, clr := lt.Diffuse.lumens()
	switch lt.Type {
	case DirectionalLight:
		dl := xyz.NewDirectional(lt.sc, lt.name, lumens, xyz.DirectSun)
		dl.Color = clr
		// xyz directional lights shine from Pos toward the origin
		dl.Pos = lt.dir.Negate()
		lt.XYZ = dl
	case SpotLight:
		sl := xyz.NewSpot(lt.sc, lt.name, lumens, xyz.DirectSun)
		sl.Color = clr
		sl.CutoffAngle = math32.Clamp(lt.SpotOuter, 1, 90)
		sl.Pose.Pos = lt.pos
		up := math32.Vec3(0, 1, 0)
		if math32.Abs(lt.dir.Dot(up)) > 0.999 {
			up = math32.Vec3(0, 0, 1)
		}
		sl.LookAt(lt.pos.Add(lt.dir), up)
		lt.XYZ = sl
	default:
		pl := xyz.NewPoint(lt.sc, lt.name, lumens, xyz.DirectSun)
		pl.Color = clr
		pl.Pos = lt.pos
		lt.XYZ = pl
	}
}

// Name returns the light name.
func (lt *Light) Name() string {
	return lt.name
}

// Position returns the position, used by point and spot lights.
func (lt *Light) Position() math32.Vector3 {
	return lt.pos
}

// Direction returns the unit direction, used by directional and spot lights.
func (lt *Light) Direction() math32.Vector3 {
	return lt.dir
}

// SetType sets the light type.
func (lt *Light) SetType(typ LightTypes) *Light {
	lt.Type = typ
	lt.update()
	return lt
}

// SetDiffuse sets the diffuse colour.
func (lt *Light) SetDiffuse(c Color) *Light {
	lt.Diffuse = c
	lt.update()
	return lt
}

// SetSpecular sets the specular colour. xyz derives specular
// highlights from the diffuse colour, so it is only recorded.
func (lt *Light) SetSpecular(c Color) *Light {
	lt.Specular = c
	return lt
}

// SetPosition sets the position.
func (lt *Light) SetPosition(pos math32.Vector3) *Light {
	lt.pos = pos
	lt.update()
	return lt
}

// SetDirection sets the direction, which is normalized.
func (lt *Light) SetDirection(dir math32.Vector3) *Light {
	lt.dir = dir.Normal()
	lt.update()
	return lt
}

// SetSpotRange sets the inner and outer spot cone angles, in degrees.
// The outer angle is raised to the inner angle if smaller.
func (lt *Light) SetSpotRange(inner, outer float32) *Light {
	if outer < inner {
		outer = inner
	}
	lt.SpotInner, lt.SpotOuter = inner, outer
	lt.update()
	return lt
}
