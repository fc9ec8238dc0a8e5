// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package host

import (
	"context"
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/juicycheckers/ogretut/display"
	"github.com/juicycheckers/ogretut/input"
)

// GLFW is a [Host] backed by a glfw desktop window.
// IMPORTANT: it must be created and run on the main initial thread!
type GLFW struct {

	// MaxFrames stops the loop after this many frames, if positive.
	MaxFrames int

	window   *glfw.Window
	vsync    bool
	keys     input.KeyState
	listener input.Listener
	lastPos  image.Point
	havePos  bool
}

// NewGLFW initializes glfw.
func NewGLFW() (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	return &GLFW{}, nil
}

// OpenWindow implements [Host].
func (gh *GLFW) OpenWindow(s display.Settings) (Window, error) {
	if gh.window != nil {
		return nil, errors.New("host: window already open")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	// drawing is done by the render system, not through a glfw context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	var mon *glfw.Monitor
	if s.FullScreen {
		mon = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(s.Width, s.Height, s.Title, mon, nil)
	if err != nil {
		return nil, err
	}
	gh.window = win
	gh.vsync = s.VSync
	win.SetKeyCallback(gh.keyEvent)
	win.SetCursorPosCallback(gh.cursorPosEvent)
	win.SetMouseButtonCallback(gh.mouseButtonEvent)
	win.SetScrollCallback(gh.scrollEvent)
	return &glfwWindow{gh: gh}, nil
}

// Keyboard implements [Host].
func (gh *GLFW) Keyboard() input.Keyboard {
	return &gh.keys
}

// SetListener implements [Host].
func (gh *GLFW) SetListener(l input.Listener) {
	gh.listener = l
}

// frameInterval is the loop pacing used when vsync is requested.
const frameInterval = time.Second / 60

// Run implements [Host].
func (gh *GLFW) Run(ctx context.Context, fun FrameFunc) error {
	if gh.window == nil {
		return errors.New("host: no window")
	}
	last := time.Now()
	for frame := 0; gh.MaxFrames <= 0 || frame < gh.MaxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		glfw.PollEvents()
		if gh.window.ShouldClose() {
			return nil
		}
		now := time.Now()
		ev := frameEvent(now.Sub(last))
		ev.Frame = frame
		last = now
		if !fun(ev) {
			return nil
		}
		if gh.vsync {
			time.Sleep(time.Until(now.Add(frameInterval)))
		}
	}
	return nil
}

// Terminate implements [Host].
func (gh *GLFW) Terminate() {
	if gh.window != nil {
		gh.window.Destroy()
		gh.window = nil
	}
	glfw.Terminate()
}

func (gh *GLFW) dispatch(ev input.Event) {
	input.Dispatch(ev, &gh.keys, gh.listener)
}

func (gh *GLFW) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	kev := input.Key{Code: glfwKeyCode(ky), Mods: glfwMods(mod)}
	switch action {
	case glfw.Press:
		gh.dispatch(input.Event{Kind: input.KeyPress, Key: kev})
	case glfw.Release:
		gh.dispatch(input.Event{Kind: input.KeyRelease, Key: kev})
	}
}

func (gh *GLFW) cursorPosEvent(gw *glfw.Window, x, y float64) {
	pos := image.Pt(int(x), int(y))
	var rel image.Point
	if gh.havePos {
		rel = pos.Sub(gh.lastPos)
	}
	gh.lastPos, gh.havePos = pos, true
	gh.dispatch(input.Event{Kind: input.MouseMove, Mouse: input.Mouse{Pos: pos, Rel: rel}})
}

func (gh *GLFW) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	but := events.Left
	switch button {
	case glfw.MouseButtonMiddle:
		but = events.Middle
	case glfw.MouseButtonRight:
		but = events.Right
	}
	kind := input.MousePress
	if action == glfw.Release {
		kind = input.MouseRelease
	}
	gh.dispatch(input.Event{Kind: kind, Mouse: input.Mouse{Pos: gh.lastPos, Button: but}})
}

func (gh *GLFW) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	gh.dispatch(input.Event{Kind: input.MouseMove, Mouse: input.Mouse{Pos: gh.lastPos, Wheel: int(yoff)}})
}

type glfwWindow struct {
	gh *GLFW
}

func (w *glfwWindow) Size() image.Point {
	if w.gh.window == nil {
		return image.Point{}
	}
	fw, fh := w.gh.window.GetFramebufferSize()
	return image.Pt(fw, fh)
}

func (w *glfwWindow) Closed() bool {
	return w.gh.window == nil || w.gh.window.ShouldClose()
}

func (w *glfwWindow) Close() {
	if w.gh.window != nil {
		w.gh.window.Destroy()
		w.gh.window = nil
	}
}

func glfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}

// glfwKeys maps glfw physical keys to key codes.
var glfwKeys = map[glfw.Key]key.Codes{
	glfw.KeyA:            key.CodeA,
	glfw.KeyB:            key.CodeB,
	glfw.KeyC:            key.CodeC,
	glfw.KeyD:            key.CodeD,
	glfw.KeyE:            key.CodeE,
	glfw.KeyF:            key.CodeF,
	glfw.KeyG:            key.CodeG,
	glfw.KeyH:            key.CodeH,
	glfw.KeyI:            key.CodeI,
	glfw.KeyJ:            key.CodeJ,
	glfw.KeyK:            key.CodeK,
	glfw.KeyL:            key.CodeL,
	glfw.KeyM:            key.CodeM,
	glfw.KeyN:            key.CodeN,
	glfw.KeyO:            key.CodeO,
	glfw.KeyP:            key.CodeP,
	glfw.KeyQ:            key.CodeQ,
	glfw.KeyR:            key.CodeR,
	glfw.KeyS:            key.CodeS,
	glfw.KeyT:            key.CodeT,
	glfw.KeyU:            key.CodeU,
	glfw.KeyV:            key.CodeV,
	glfw.KeyW:            key.CodeW,
	glfw.KeyX:            key.CodeX,
	glfw.KeyY:            key.CodeY,
	glfw.KeyZ:            key.CodeZ,
	glfw.Key1:            key.Code1,
	glfw.Key2:            key.Code2,
	glfw.Key3:            key.Code3,
	glfw.Key4:            key.Code4,
	glfw.Key5:            key.Code5,
	glfw.Key6:            key.Code6,
	glfw.Key7:            key.Code7,
	glfw.Key8:            key.Code8,
	glfw.Key9:            key.Code9,
	glfw.Key0:            key.Code0,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyBackspace:    key.CodeBackspace,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyMinus:        key.CodeHyphenMinus,
	glfw.KeyEqual:        key.CodeEqualSign,
	glfw.KeyLeftBracket:  key.CodeLeftSquareBracket,
	glfw.KeyRightBracket: key.CodeRightSquareBracket,
	glfw.KeyBackslash:    key.CodeBackslash,
	glfw.KeySemicolon:    key.CodeSemicolon,
	glfw.KeyApostrophe:   key.CodeApostrophe,
	glfw.KeyGraveAccent:  key.CodeGraveAccent,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyPeriod:       key.CodeFullStop,
	glfw.KeySlash:        key.CodeSlash,
	glfw.KeyCapsLock:     key.CodeCapsLock,
	glfw.KeyF1:           key.CodeF1,
	glfw.KeyF2:           key.CodeF2,
	glfw.KeyF3:           key.CodeF3,
	glfw.KeyF4:           key.CodeF4,
	glfw.KeyF5:           key.CodeF5,
	glfw.KeyF6:           key.CodeF6,
	glfw.KeyF7:           key.CodeF7,
	glfw.KeyF8:           key.CodeF8,
	glfw.KeyF9:           key.CodeF9,
	glfw.KeyF10:          key.CodeF10,
	glfw.KeyF11:          key.CodeF11,
	glfw.KeyF12:          key.CodeF12,
	glfw.KeyHome:         key.CodeHome,
	glfw.KeyPageUp:       key.CodePageUp,
	glfw.KeyDelete:       key.CodeDelete,
	glfw.KeyEnd:          key.CodeEnd,
	glfw.KeyPageDown:     key.CodePageDown,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyNumLock:      key.CodeKeypadNumLock,
	glfw.KeyKPDivide:     key.CodeKeypadSlash,
	glfw.KeyKPMultiply:   key.CodeKeypadAsterisk,
	glfw.KeyKPSubtract:   key.CodeKeypadHyphenMinus,
	glfw.KeyKPAdd:        key.CodeKeypadPlusSign,
	glfw.KeyKPEnter:      key.CodeKeypadEnter,
	glfw.KeyKP1:          key.CodeKeypad1,
	glfw.KeyKP2:          key.CodeKeypad2,
	glfw.KeyKP3:          key.CodeKeypad3,
	glfw.KeyKP4:          key.CodeKeypad4,
	glfw.KeyKP5:          key.CodeKeypad5,
	glfw.KeyKP6:          key.CodeKeypad6,
	glfw.KeyKP7:          key.CodeKeypad7,
	glfw.KeyKP8:          key.CodeKeypad8,
	glfw.KeyKP9:          key.CodeKeypad9,
	glfw.KeyKP0:          key.CodeKeypad0,
	glfw.KeyKPDecimal:    key.CodeKeypadFullStop,
	glfw.KeyKPEqual:      key.CodeKeypadEqualSign,
	glfw.KeyF13:          key.CodeF13,
	glfw.KeyF14:          key.CodeF14,
	glfw.KeyF15:          key.CodeF15,
	glfw.KeyF16:          key.CodeF16,
	glfw.KeyF17:          key.CodeF17,
	glfw.KeyF18:          key.CodeF18,
	glfw.KeyF19:          key.CodeF19,
	glfw.KeyF20:          key.CodeF20,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}

func glfwKeyCode(k glfw.Key) key.Codes {
	return glfwKeys[k]
}
