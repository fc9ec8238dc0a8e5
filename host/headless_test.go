// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"image"
	"testing"
	"time"

	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"github.com/juicycheckers/ogretut/display"
	"github.com/juicycheckers/ogretut/input"
	"github.com/juicycheckers/ogretut/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyLog struct {
	pressed []key.Codes
}

func (kl *keyLog) MouseMoved(ev input.Mouse) bool                         { return true }
func (kl *keyLog) MousePressed(ev input.Mouse, btn events.Buttons) bool  { return true }
func (kl *keyLog) MouseReleased(ev input.Mouse, btn events.Buttons) bool { return true }
func (kl *keyLog) KeyReleased(ev input.Key) bool                          { return true }

func (kl *keyLog) KeyPressed(ev input.Key) bool {
	kl.pressed = append(kl.pressed, ev.Code)
	return true
}

func openHeadless(t *testing.T, maxFrames int) (*Headless, Window) {
	t.Helper()
	hl := NewHeadless(maxFrames)
	s := display.Defaults()
	s.Width, s.Height = 1280, 720
	win, err := hl.OpenWindow(s)
	require.NoError(t, err)
	return hl, win
}

func TestHeadlessMaxFrames(t *testing.T) {
	hl, win := openHeadless(t, 5)
	assert.Equal(t, image.Pt(1280, 720), win.Size())

	var frames []int
	err := hl.Run(context.Background(), func(ev scene.FrameEvent) bool {
		frames = append(frames, ev.Frame)
		assert.InDelta(t, 1.0/60, ev.TimeSinceLastFrame, 1e-6)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, frames)
	assert.Equal(t, 5, hl.Frames)
}

func TestHeadlessFrameFuncStops(t *testing.T) {
	hl, _ := openHeadless(t, 0)
	n := 0
	require.NoError(t, hl.Run(context.Background(), func(ev scene.FrameEvent) bool {
		n++
		return n < 3
	}))
	assert.Equal(t, 3, n)
}

func TestHeadlessCloseAt(t *testing.T) {
	hl, win := openHeadless(t, 100)
	hl.CloseAt(4)
	require.NoError(t, hl.Run(context.Background(), func(ev scene.FrameEvent) bool { return true }))
	assert.Equal(t, 4, hl.Frames)
	assert.True(t, win.Closed())
}

func TestHeadlessScript(t *testing.T) {
	hl, _ := openHeadless(t, 4)
	kl := &keyLog{}
	hl.SetListener(kl)
	hl.At(1, input.KeyDown(key.CodeW)).At(3, input.KeyUp(key.CodeW), input.KeyDown(key.CodeEscape))

	var down []bool
	require.NoError(t, hl.Run(context.Background(), func(ev scene.FrameEvent) bool {
		down = append(down, hl.Keyboard().IsKeyDown(key.CodeW))
		return true
	}))
	assert.Equal(t, []bool{false, true, true, false}, down)
	assert.Equal(t, []key.Codes{key.CodeW, key.CodeEscape}, kl.pressed)
	assert.True(t, hl.Keyboard().IsKeyDown(key.CodeEscape))
}

func TestHeadlessContext(t *testing.T) {
	hl, _ := openHeadless(t, 0)
	hl.Step = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := hl.Run(ctx, func(ev scene.FrameEvent) bool {
		n++
		if n == 2 {
			cancel()
		}
		return true
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, n)
}

func TestHeadlessUnboundedPaced(t *testing.T) {
	hl, _ := openHeadless(t, 0)
	hl.Step = 5 * time.Millisecond
	n := 0
	start := time.Now()
	require.NoError(t, hl.Run(context.Background(), func(ev scene.FrameEvent) bool {
		n++
		return n < 4
	}))
	// three frames returned true and each was followed by a step
	assert.GreaterOrEqual(t, time.Since(start), 3*hl.Step)
	assert.Equal(t, 4, hl.Frames)
}

func TestHeadlessErrors(t *testing.T) {
	hl := NewHeadless(1)
	assert.Error(t, hl.Run(context.Background(), func(ev scene.FrameEvent) bool { return true }))

	bad := display.Defaults()
	bad.Width = 0
	_, err := hl.OpenWindow(bad)
	assert.Error(t, err)

	_, err = hl.OpenWindow(display.Defaults())
	require.NoError(t, err)
	_, err = hl.OpenWindow(display.Defaults())
	assert.Error(t, err)

	hl.Terminate()
	_, err = hl.OpenWindow(display.Defaults())
	assert.NoError(t, err)
}
