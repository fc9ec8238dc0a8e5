// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package host

import (
	"cogentcore.org/core/base/errors"
)

// GLFW is not available on this platform.
type GLFW struct {
	Headless
}

// NewGLFW returns an error: use [Headless] on this platform.
func NewGLFW() (*GLFW, error) {
	return nil, errors.New("host: glfw is not supported on this platform")
}
