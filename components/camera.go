package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the camera's position state. SmoothPosition is the
// high-precision follow position and is only ever written by the camera
// system; Rendered is the display position derived from it each tick
// (clamped, shaken, pixel-snapped). Renderers must read Rendered and
// nothing else, so there is exactly one smoothing pass between the
// followed entity and the screen.
type CameraData struct {
	SmoothPosition math.Vec2
	Rendered       math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
