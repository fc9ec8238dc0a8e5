// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// FrameEvent is passed to per-frame callbacks.
type FrameEvent struct {

	// TimeSinceLastFrame is the elapsed time since the previous
	// frame, in seconds.
	TimeSinceLastFrame float32

	// Frame is the zero-based index of the frame.
	Frame int
}
