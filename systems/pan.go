package systems

import (
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// StartPan begins a scripted camera movement from the current follow
// position to (toX, toY) over duration seconds. Following is suspended
// until the pan finishes; with snapOnFinish the camera re-syncs to its
// target the moment the pan completes, otherwise it glides back through
// the regular lerp. Starting a new pan replaces any active one.
func StartPan(e *ecs.ECS, toX, toY float64, duration float32, easing ease.TweenFunc, snapOnFinish bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	pan := &components.PanData{
		X:            gween.New(float32(camera.SmoothPosition.X), float32(toX), duration, easing),
		Y:            gween.New(float32(camera.SmoothPosition.Y), float32(toY), duration, easing),
		SnapOnFinish: snapOnFinish,
	}

	if cameraEntry.HasComponent(components.Pan) {
		components.Pan.Set(cameraEntry, pan)
	} else {
		cameraEntry.AddComponent(components.Pan)
		components.Pan.Set(cameraEntry, pan)
	}
}

// StartPanTour runs the demo pan: sweep to the top-left of the allowed
// camera area (or the world origin when limits are off) and glide back
// to the follow target through the regular lerp.
func StartPanTour(e *ecs.ECS) {
	toX, toY := 0.0, 0.0
	if cfg.Camera.UseLimits {
		toX, toY = cfg.Camera.LimitLeft, cfg.Camera.LimitTop
	}
	StartPan(e, toX, toY, 1.5, ease.InOutQuad, false)
}

// PanActive reports whether a scripted pan currently owns the camera.
func PanActive(e *ecs.ECS) bool {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return false
	}
	return cameraEntry.HasComponent(components.Pan)
}

// advancePan steps the active pan, writing the tweened position into
// SmoothPosition. Returns true while a pan owns the camera this tick.
func advancePan(cameraEntry *donburi.Entry, camera *components.CameraData, follow *components.FollowData, dt float64) bool {
	if !cameraEntry.HasComponent(components.Pan) {
		return false
	}
	pan := components.Pan.Get(cameraEntry)

	x, doneX := pan.X.Update(float32(dt))
	y, doneY := pan.Y.Update(float32(dt))
	camera.SmoothPosition = dmath.Vec2{X: float64(x), Y: float64(y)}

	if doneX && doneY {
		snap := pan.SnapOnFinish
		cameraEntry.RemoveComponent(components.Pan)
		if snap && follow.HasTarget() {
			camera.SmoothPosition = followDesired(follow)
		}
	}
	return true
}
