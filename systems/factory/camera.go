package factory

import (
	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera entity and binds it to target. The
// follow position is seeded straight from the target and applied
// immediately, so the first displayed frame never interpolates from a
// default origin. target may be nil for an idle camera.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	components.Follow.SetValue(camera, components.FollowData{
		Offset: math.Vec2{X: cfg.Camera.OffsetX, Y: cfg.Camera.OffsetY},
	})
	systems.SetFollowTarget(ecs, target, true)
	return camera
}
