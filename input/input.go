// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input defines the keyboard and mouse events delivered
// by a host window, the [Listener] interface that receives them,
// and [KeyState], which tracks which keys are currently held down.
package input

import (
	"fmt"
	"image"

	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
)

// Key is a keyboard press or release.
type Key struct {

	// Code is the physical key.
	Code key.Codes

	// Mods are the modifier keys held when the event was generated.
	Mods key.Modifiers
}

func (ev Key) String() string {
	return fmt.Sprintf("Key{Code: %v, Mods: %v}", ev.Code, ev.Mods.ModifiersString())
}

// Mouse is a mouse motion or button event.
type Mouse struct {

	// Pos is the absolute cursor position in window pixels.
	Pos image.Point

	// Rel is the motion since the previous mouse event.
	Rel image.Point

	// Wheel is the scroll wheel delta, in steps.
	Wheel int

	// Button is the button that changed, for press and release events.
	Button events.Buttons
}

// Listener receives input events from the host.
// Each method returns whether the event was accepted.
type Listener interface {
	MouseMoved(ev Mouse) bool
	MousePressed(ev Mouse, btn events.Buttons) bool
	MouseReleased(ev Mouse, btn events.Buttons) bool
	KeyPressed(ev Key) bool
	KeyReleased(ev Key) bool
}

// Keyboard reports the current state of keys.
type Keyboard interface {
	IsKeyDown(code key.Codes) bool
}

// Kinds are the kinds of [Event].
type Kinds int32

const (
	KeyPress Kinds = iota
	KeyRelease
	MouseMove
	MousePress
	MouseRelease
)

// Event is a single input event of any kind, as queued by a host
// before it is dispatched to a [Listener].
type Event struct {
	Kind  Kinds
	Key   Key
	Mouse Mouse
}

// KeyDown returns a [KeyPress] event for the given code.
func KeyDown(code key.Codes) Event {
	return Event{Kind: KeyPress, Key: Key{Code: code}}
}

// KeyUp returns a [KeyRelease] event for the given code.
func KeyUp(code key.Codes) Event {
	return Event{Kind: KeyRelease, Key: Key{Code: code}}
}

// MouseBy returns a [MouseMove] event with the given relative motion.
func MouseBy(dx, dy int) Event {
	return Event{Kind: MouseMove, Mouse: Mouse{Rel: image.Pt(dx, dy)}}
}

// Dispatch updates the key state (if non-nil) and delivers the event
// to the listener (if non-nil), returning the listener's result.
func Dispatch(ev Event, ks *KeyState, l Listener) bool {
	switch ev.Kind {
	case KeyPress:
		if ks != nil {
			ks.Press(ev.Key.Code)
		}
	case KeyRelease:
		if ks != nil {
			ks.Release(ev.Key.Code)
		}
	}
	if l == nil {
		return true
	}
	switch ev.Kind {
	case KeyPress:
		return l.KeyPressed(ev.Key)
	case KeyRelease:
		return l.KeyReleased(ev.Key)
	case MouseMove:
		return l.MouseMoved(ev.Mouse)
	case MousePress:
		return l.MousePressed(ev.Mouse, ev.Mouse.Button)
	case MouseRelease:
		return l.MouseReleased(ev.Mouse, ev.Mouse.Button)
	}
	return true
}

// KeyState records which keys are held down. The zero value is ready to use.
type KeyState struct {
	down map[key.Codes]bool
}

// Press marks the key as down. Unknown keys are not tracked, since
// distinct physical keys would share that code.
func (ks *KeyState) Press(code key.Codes) {
	if code == key.CodeUnknown {
		return
	}
	if ks.down == nil {
		ks.down = make(map[key.Codes]bool)
	}
	ks.down[code] = true
}

// Release marks the key as up.
func (ks *KeyState) Release(code key.Codes) {
	delete(ks.down, code)
}

// IsKeyDown implements [Keyboard].
func (ks *KeyState) IsKeyDown(code key.Codes) bool {
	return ks.down[code]
}

// Reset releases all keys.
func (ks *KeyState) Reset() {
	clear(ks.down)
}
