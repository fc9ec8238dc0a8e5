// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"time"

	"github.com/juicycheckers/ogretut/scene"
)

func frameEvent(dt time.Duration) scene.FrameEvent {
	return scene.FrameEvent{TimeSinceLastFrame: float32(dt.Seconds())}
}
