// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tutorials

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"github.com/juicycheckers/ogretut/app"
	"github.com/juicycheckers/ogretut/input"
	"github.com/juicycheckers/ogretut/scene"
)

// FadeColor is the fog and background colour of the [Shadows] scene.
var FadeColor = scene.Grey(0.9)

// Shadows places one shadow casting ninja on a rock floor under a
// cloudy sky dome, fading into fog. The camera stays fixed: mouse
// and movement keys are accepted and ignored, and Escape exits.
type Shadows struct {
	app.Base
}

// CreateScene implements [app.Hooks].
func (sh *Shadows) CreateScene(sm *scene.Manager) error {
	sm.SetAmbientLight(scene.Black)
	sm.SetShadowTechnique(scene.StencilAdditive)
	if err := sm.SetSkyDome("Examples/CloudySky", 5, 8); err != nil {
		return err
	}

	vp := sm.Viewport(0)
	if vp == nil {
		return errors.New("shadows: no viewport")
	}
	vp.SetBackground(FadeColor)
	sm.SetFog(scene.FogExp, FadeColor, 0.002)

	ninja, err := placeEntity(sm, "", "ninja.mesh", "", math32.Vector3{})
	if err != nil {
		return err
	}
	ninja.SetCastShadows(true)

	if _, err := createGround(sm, 2000, 5, "Examples/Rockwall"); err != nil {
		return err
	}

	dir, err := sm.CreateLight("DirectionalLight")
	if err != nil {
		return err
	}
	dir.SetType(scene.DirectionalLight).
		SetDiffuse(scene.Grey(0.6)).
		SetSpecular(scene.Grey(0.6)).
		SetDirection(math32.Vec3(0, -1, 1))
	return nil
}

// CreateCamera implements [app.Hooks].
func (sh *Shadows) CreateCamera(sm *scene.Manager) (*scene.Camera, error) {
	cam, err := sh.Base.CreateCamera(sm)
	if err != nil {
		return nil, err
	}
	cam.SetPosition(math32.Vec3(0, 300, 500)).LookAt(math32.Vector3{})
	return cam, nil
}

// MouseMoved implements [input.Listener].
func (sh *Shadows) MouseMoved(ev input.Mouse) bool {
	return true
}

// MousePressed implements [input.Listener].
func (sh *Shadows) MousePressed(ev input.Mouse, btn events.Buttons) bool {
	return true
}

// MouseReleased implements [input.Listener].
func (sh *Shadows) MouseReleased(ev input.Mouse, btn events.Buttons) bool {
	return true
}

// KeyPressed implements [input.Listener].
func (sh *Shadows) KeyPressed(ev input.Key) bool {
	switch ev.Code {
	case key.CodeEscape:
		if sh.App != nil {
			sh.App.Shutdown()
		}
	}
	return true
}

// KeyReleased implements [input.Listener].
func (sh *Shadows) KeyReleased(ev input.Key) bool {
	return true
}
