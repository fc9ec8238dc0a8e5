// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/juicycheckers/ogretut/display"
	"github.com/juicycheckers/ogretut/input"
)

// Headless is a [Host] without a display. Events can be scripted per
// frame, and frames advance by a fixed step.
type Headless struct {

	// MaxFrames stops the loop after this many frames, if positive.
	// Otherwise the loop sleeps for Step after each frame and runs
	// until the frame function returns false or the context is done.
	MaxFrames int

	// Step is the simulated time between frames.
	Step time.Duration

	// Frames is the number of frames run so far.
	Frames int

	win      *headlessWindow
	keys     input.KeyState
	listener input.Listener
	script   map[int][]input.Event
	closeAt  int
}

// NewHeadless returns a headless host that runs at most maxFrames
// frames (unlimited if zero) at 60 frames per second.
func NewHeadless(maxFrames int) *Headless {
	return &Headless{
		MaxFrames: maxFrames,
		Step:      time.Second / 60,
		script:    make(map[int][]input.Event),
		closeAt:   -1,
	}
}

// At queues events to be delivered before the given frame.
func (hl *Headless) At(frame int, evs ...input.Event) *Headless {
	hl.script[frame] = append(hl.script[frame], evs...)
	return hl
}

// CloseAt closes the window before the given frame.
func (hl *Headless) CloseAt(frame int) *Headless {
	hl.closeAt = frame
	return hl
}

// OpenWindow implements [Host].
func (hl *Headless) OpenWindow(s display.Settings) (Window, error) {
	if hl.win != nil {
		return nil, errors.New("host: window already open")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	hl.win = &headlessWindow{size: image.Pt(s.Width, s.Height)}
	return hl.win, nil
}

// Keyboard implements [Host].
func (hl *Headless) Keyboard() input.Keyboard {
	return &hl.keys
}

// SetListener implements [Host].
func (hl *Headless) SetListener(l input.Listener) {
	hl.listener = l
}

// Run implements [Host].
func (hl *Headless) Run(ctx context.Context, fun FrameFunc) error {
	if hl.win == nil {
		return errors.New("host: no window")
	}
	ev := frameEvent(hl.Step)
	for i := 0; hl.MaxFrames <= 0 || i < hl.MaxFrames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i == hl.closeAt {
			hl.win.closed = true
		}
		for _, iev := range hl.script[i] {
			input.Dispatch(iev, &hl.keys, hl.listener)
		}
		if hl.win.closed {
			return nil
		}
		ev.Frame = i
		hl.Frames++
		if !fun(ev) {
			return nil
		}
		if hl.MaxFrames <= 0 {
			// unbounded runs advance in real time
			time.Sleep(hl.Step)
		}
	}
	return nil
}

// Terminate implements [Host].
func (hl *Headless) Terminate() {
	hl.win = nil
	hl.keys.Reset()
}

type headlessWindow struct {
	size   image.Point
	closed bool
}

func (w *headlessWindow) Size() image.Point { return w.size }

func (w *headlessWindow) Closed() bool { return w.closed }

func (w *headlessWindow) Close() { w.closed = true }
