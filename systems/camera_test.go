package systems

import (
	"math"
	"testing"

	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const tickDt = 1.0 / 60.0

func setCameraConfig(t *testing.T, c cfg.CameraConfig) {
	t.Helper()
	prev := cfg.Camera
	if err := cfg.SetCamera(c); err != nil {
		t.Fatalf("SetCamera: %v", err)
	}
	t.Cleanup(func() { cfg.Camera = prev })
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func spawnTarget(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)
	obj := resolv.NewObject(x, y, 16, 16)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return entry
}

func spawnCamera(e *ecs.ECS, target *donburi.Entry, offset dmath.Vec2) *donburi.Entry {
	entry := archetypes.Camera.Spawn(e)
	components.Camera.Set(entry, &components.CameraData{})
	components.Follow.SetValue(entry, components.FollowData{Offset: offset})
	SetFollowTarget(e, target, true)
	return entry
}

func cameraState(e *ecs.ECS) *components.CameraData {
	entry, _ := components.Camera.First(e.World)
	return components.Camera.Get(entry)
}

func moveTarget(target *donburi.Entry, x, y float64) {
	obj := components.Object.Get(target)
	obj.X = x
	obj.Y = y
}

func TestBindingSeedsFromTargetWithoutLerp(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: true, FollowSpeed: 8, PixelSnap: true, PixelSize: 1,
	})

	e := newTestECS()
	target := spawnTarget(e, 123.4, 56.7)
	spawnCamera(e, target, dmath.Vec2{X: 10, Y: -5})

	cam := cameraState(e)
	if cam.SmoothPosition.X != 133.4 || cam.SmoothPosition.Y != 51.7 {
		t.Fatalf("smooth position = %+v, want target+offset exactly", cam.SmoothPosition)
	}
	// Already applied: no interpolation-from-origin artifact on frame one.
	if cam.Rendered.X != 133 || cam.Rendered.Y != 52 {
		t.Fatalf("rendered = %+v, want (133, 52)", cam.Rendered)
	}
}

func TestConvergenceTowardMovedTarget(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: true, FollowSpeed: 8, PixelSnap: false, PixelSize: 1,
	})

	e := newTestECS()
	target := spawnTarget(e, 0, 0)
	spawnCamera(e, target, dmath.Vec2{})
	moveTarget(target, 500, -300)

	cam := cameraState(e)
	prev := math.Hypot(500-cam.SmoothPosition.X, -300-cam.SmoothPosition.Y)
	for i := 0; i < 300; i++ {
		AdvanceCamera(e, tickDt)
		d := math.Hypot(500-cam.SmoothPosition.X, -300-cam.SmoothPosition.Y)
		if d > prev {
			t.Fatalf("tick %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Fatalf("camera did not converge, still %v away", prev)
	}
}

func TestLargeDeltaTimeDoesNotOvershoot(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: true, FollowSpeed: 30, PixelSnap: false, PixelSize: 1,
	})

	e := newTestECS()
	target := spawnTarget(e, 0, 0)
	spawnCamera(e, target, dmath.Vec2{})
	moveTarget(target, 100, 100)

	// 30 * 1.0 would be a lerp fraction of 30 without the clamp.
	AdvanceCamera(e, 1.0)

	cam := cameraState(e)
	if cam.SmoothPosition.X != 100 || cam.SmoothPosition.Y != 100 {
		t.Fatalf("smooth position = %+v, want exactly the target (clamped fraction)", cam.SmoothPosition)
	}
}

func TestSnapToTargetIsIdempotent(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: true, FollowSpeed: 8, PixelSnap: true, PixelSize: 2,
	})

	e := newTestECS()
	target := spawnTarget(e, 77.7, 33.3)
	spawnCamera(e, target, dmath.Vec2{})

	SnapCameraToTarget(e)
	cam := cameraState(e)
	first := cam.SmoothPosition
	firstRendered := cam.Rendered

	SnapCameraToTarget(e)
	if cam.SmoothPosition != first || cam.Rendered != firstRendered {
		t.Fatalf("second snap changed state: %+v -> %+v", first, cam.SmoothPosition)
	}
}

func TestRenderedIsAlwaysOnPixelGrid(t *testing.T) {
	for _, pixelSize := range []float64{1, 2, 4, 0.5} {
		setCameraConfig(t, cfg.CameraConfig{
			Smoothing: true, FollowSpeed: 11, PixelSnap: true, PixelSize: pixelSize,
		})

		e := newTestECS()
		target := spawnTarget(e, 3.17, 9.42)
		spawnCamera(e, target, dmath.Vec2{})
		moveTarget(target, 481.13, -77.99)

		cam := cameraState(e)
		for i := 0; i < 50; i++ {
			AdvanceCamera(e, tickDt)
			for _, v := range []float64{cam.Rendered.X, cam.Rendered.Y} {
				_, frac := math.Modf(math.Abs(v) / pixelSize)
				if frac > 1e-9 && frac < 1-1e-9 {
					t.Fatalf("pixelSize=%v tick=%d: rendered %v not a grid multiple", pixelSize, i, v)
				}
			}
		}
	}
}

func TestScenarioSnapWithoutSmoothing(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: false, FollowSpeed: 8, PixelSnap: true, PixelSize: 1,
	})

	e := newTestECS()
	target := spawnTarget(e, 0, 0)
	spawnCamera(e, target, dmath.Vec2{})
	moveTarget(target, 10.3, 5.7)

	AdvanceCamera(e, tickDt)

	cam := cameraState(e)
	if cam.Rendered.X != 10 || cam.Rendered.Y != 6 {
		t.Fatalf("rendered = %+v, want (10, 6)", cam.Rendered)
	}
}

func TestLimitsHoldAgainstDistantTarget(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: false, FollowSpeed: 8, PixelSnap: true, PixelSize: 4,
		UseLimits: true, LimitLeft: 100, LimitRight: 200, LimitTop: 50, LimitBottom: 120,
	})

	e := newTestECS()
	target := spawnTarget(e, 150, 80)
	spawnCamera(e, target, dmath.Vec2{})
	moveTarget(target, 10000, -10000)

	AdvanceCamera(e, tickDt)

	cam := cameraState(e)
	if cam.SmoothPosition.X != 200 || cam.SmoothPosition.Y != 50 {
		t.Fatalf("pre-snap position = %+v, want clamped to (200, 50)", cam.SmoothPosition)
	}
	// Quantization may step past the box, but never by more than one pixel.
	if cam.Rendered.X > 200+4 || cam.Rendered.Y < 50-4 {
		t.Fatalf("rendered = %+v escaped the limit box by more than a pixel", cam.Rendered)
	}
}

func TestRetargetWithoutSnapAndWithoutSmoothing(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: false, FollowSpeed: 8, PixelSnap: false, PixelSize: 1,
	})

	e := newTestECS()
	first := spawnTarget(e, 0, 0)
	second := spawnTarget(e, 640, 480)
	spawnCamera(e, first, dmath.Vec2{})

	SetFollowTarget(e, second, false)
	AdvanceCamera(e, tickDt)

	// Disabled smoothing short-circuits the lerp even across a swap.
	cam := cameraState(e)
	if cam.SmoothPosition.X != 640 || cam.SmoothPosition.Y != 480 {
		t.Fatalf("smooth position = %+v, want the new target immediately", cam.SmoothPosition)
	}
}

func TestRetargetWithoutSnapGlidesWhenSmoothing(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: true, FollowSpeed: 8, PixelSnap: false, PixelSize: 1,
	})

	e := newTestECS()
	first := spawnTarget(e, 0, 0)
	second := spawnTarget(e, 600, 0)
	spawnCamera(e, first, dmath.Vec2{})

	SetFollowTarget(e, second, false)
	AdvanceCamera(e, tickDt)

	cam := cameraState(e)
	if cam.SmoothPosition.X <= 0 || cam.SmoothPosition.X >= 600 {
		t.Fatalf("smooth position X = %v, want a partial glide toward 600", cam.SmoothPosition.X)
	}
}

func TestIdleCameraHoldsPosition(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: true, FollowSpeed: 8, PixelSnap: true, PixelSize: 1,
	})

	e := newTestECS()
	target := spawnTarget(e, 50, 60)
	spawnCamera(e, target, dmath.Vec2{})

	SetFollowTarget(e, nil, false)
	moveTarget(target, 999, 999)

	cam := cameraState(e)
	before := cam.SmoothPosition
	for i := 0; i < 10; i++ {
		AdvanceCamera(e, tickDt)
	}
	if cam.SmoothPosition != before {
		t.Fatalf("idle camera moved: %+v -> %+v", before, cam.SmoothPosition)
	}
}

func TestDestroyedTargetBehavesLikeIdle(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: true, FollowSpeed: 8, PixelSnap: false, PixelSize: 1,
	})

	e := newTestECS()
	target := spawnTarget(e, 50, 60)
	spawnCamera(e, target, dmath.Vec2{})

	e.World.Remove(target.Entity())

	cam := cameraState(e)
	before := cam.SmoothPosition
	for i := 0; i < 10; i++ {
		AdvanceCamera(e, tickDt)
	}
	if cam.SmoothPosition != before {
		t.Fatalf("camera moved after its target was destroyed: %+v -> %+v", before, cam.SmoothPosition)
	}

	// A snap against a dead target is a no-op too, not a crash.
	SnapCameraToTarget(e)
	if cam.SmoothPosition != before {
		t.Fatalf("snap against a destroyed target moved the camera")
	}
}

func TestScreenShakeDecaysAndStopsOnGrid(t *testing.T) {
	setCameraConfig(t, cfg.CameraConfig{
		Smoothing: false, FollowSpeed: 8, PixelSnap: true, PixelSize: 1,
	})

	e := newTestECS()
	target := spawnTarget(e, 100, 100)
	cameraEntry := spawnCamera(e, target, dmath.Vec2{})

	TriggerScreenShake(e, 6, 12)
	cam := cameraState(e)

	shaken := false
	for i := 0; i < 12; i++ {
		AdvanceCamera(e, tickDt)
		if cam.Rendered.X != 100 || cam.Rendered.Y != 100 {
			shaken = true
		}
		// The shake offset is snapped along with everything else.
		if cam.Rendered.X != math.Round(cam.Rendered.X) || cam.Rendered.Y != math.Round(cam.Rendered.Y) {
			t.Fatalf("tick %d: shaken position %+v left the pixel grid", i, cam.Rendered)
		}
	}
	if !shaken {
		t.Fatalf("shake never displaced the rendered position")
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		t.Fatalf("shake component not removed after its duration")
	}
	AdvanceCamera(e, tickDt)
	if cam.Rendered.X != 100 || cam.Rendered.Y != 100 {
		t.Fatalf("rendered = %+v after shake ended, want (100, 100)", cam.Rendered)
	}
}
