package systems

import (
	"math"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera advances the camera by one fixed simulation tick.
func UpdateCamera(e *ecs.ECS) {
	AdvanceCamera(e, 1.0/float64(cfg.C.TPS))
}

// AdvanceCamera moves the camera's follow position toward its target by
// dt seconds, clamps it to the configured limits, and recomputes the
// rendered position. With no live target the camera holds its last
// position (shake still decays). dt must be >= 0.
func AdvanceCamera(e *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	follow := components.Follow.Get(cameraEntry)

	shakeX, shakeY := advanceScreenShake(cameraEntry)

	// A scripted pan owns the position while it runs.
	if advancePan(cameraEntry, camera, follow, dt) {
		applyCameraPosition(camera, shakeX, shakeY)
		return
	}

	if !follow.HasTarget() {
		applyCameraPosition(camera, shakeX, shakeY)
		return
	}

	desired := followDesired(follow)

	if cfg.Camera.Smoothing {
		// Fraction clamped to [0,1] so a frame hitch with a large dt
		// cannot overshoot the target or oscillate around it.
		t := cfg.Camera.FollowSpeed * dt
		if t > 1 {
			t = 1
		} else if t < 0 {
			t = 0
		}
		camera.SmoothPosition.X += (desired.X - camera.SmoothPosition.X) * t
		camera.SmoothPosition.Y += (desired.Y - camera.SmoothPosition.Y) * t
	} else {
		camera.SmoothPosition = desired
	}

	if cfg.Camera.UseLimits {
		// Clamp the float position before pixel snapping so quantization
		// can never push the displayed position outside the box by more
		// than one pixel unit.
		camera.SmoothPosition.X = clampF(camera.SmoothPosition.X, cfg.Camera.LimitLeft, cfg.Camera.LimitRight)
		camera.SmoothPosition.Y = clampF(camera.SmoothPosition.Y, cfg.Camera.LimitTop, cfg.Camera.LimitBottom)
	}

	applyCameraPosition(camera, shakeX, shakeY)
}

// SnapCameraToTarget re-syncs the camera to its target instantly,
// bypassing interpolation. No-op when no live target is bound. Intended
// for scene transitions and respawns where a visible slide-in would be
// wrong.
func SnapCameraToTarget(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	follow := components.Follow.Get(cameraEntry)
	if !follow.HasTarget() {
		return
	}
	camera.SmoothPosition = followDesired(follow)
	applyCameraPosition(camera, 0, 0)
}

// SetFollowTarget rebinds the camera to a new target entity. With snap
// the camera jumps straight to it; without, the next ticks glide from
// the current position toward the new target through the regular lerp.
// A nil target puts the camera in its idle hold state.
func SetFollowTarget(e *ecs.ECS, target *donburi.Entry, snap bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	follow := components.Follow.Get(cameraEntry)
	follow.Target = target
	if snap {
		SnapCameraToTarget(e)
	}
}

// CameraPosition returns the current rendered camera position.
func CameraPosition(e *ecs.ECS) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Rendered.X, camera.Rendered.Y, true
}

// followDesired computes target position + offset. The caller must have
// checked HasTarget.
func followDesired(follow *components.FollowData) dmath.Vec2 {
	o := components.Object.Get(follow.Target)
	return dmath.Vec2{X: o.X + follow.Offset.X, Y: o.Y + follow.Offset.Y}
}

// applyCameraPosition derives the rendered position from the follow
// position: shake offset first, then pixel snapping, so the shake moves
// in whole pixels and sprites stay crisp.
func applyCameraPosition(camera *components.CameraData, shakeX, shakeY float64) {
	x := camera.SmoothPosition.X + shakeX
	y := camera.SmoothPosition.Y + shakeY
	if cfg.Camera.PixelSnap {
		p := cfg.Camera.PixelSize
		x = math.Round(x/p) * p
		y = math.Round(y/p) * p
	}
	camera.Rendered = dmath.Vec2{X: x, Y: y}
}

// advanceScreenShake decrements the active shake and returns this
// tick's offsets. Removes the component once the shake runs out.
func advanceScreenShake(cameraEntry *donburi.Entry) (float64, float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return 0, 0
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	offsetX := math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	offsetY := math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}

	return offsetX, offsetY
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if the new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
