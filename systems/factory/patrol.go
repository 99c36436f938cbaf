package factory

import (
	"math"

	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	"github.com/automoto/pixelcam/leveldata"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	markerSize  = 16
	patrolSpeed = 96.0 // world pixels per second along each leg
)

// CreatePatrol spawns the demo marker entity that loops through the
// map's patrol waypoints on a tween sequence. Needs at least two
// waypoints; returns nil otherwise.
func CreatePatrol(ecs *ecs.ECS, waypoints []leveldata.Waypoint) *donburi.Entry {
	if len(waypoints) < 2 {
		return nil
	}

	marker := archetypes.Patrol.Spawn(ecs)

	first := waypoints[0]
	obj := resolv.NewObject(first.X, first.Y, markerSize, markerSize)
	obj.Data = marker
	components.Object.SetValue(marker, components.ObjectData{Object: obj})

	// One tween per leg, closing the loop back to the first waypoint.
	seqX := gween.NewSequence()
	seqY := gween.NewSequence()
	for i := range waypoints {
		from := waypoints[i]
		to := waypoints[(i+1)%len(waypoints)]
		duration := float32(math.Hypot(to.X-from.X, to.Y-from.Y) / patrolSpeed)
		seqX.Add(gween.New(float32(from.X), float32(to.X), duration, ease.InOutQuad))
		seqY.Add(gween.New(float32(from.Y), float32(to.Y), duration, ease.InOutQuad))
	}
	components.Patrol.SetValue(marker, components.PatrolData{X: seqX, Y: seqY})

	return marker
}
