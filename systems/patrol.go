package systems

import (
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrol moves patrol markers along their looping tween sequences.
func UpdatePatrol(e *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.C.TPS))
	components.Patrol.Each(e.World, func(entry *donburi.Entry) {
		patrol := components.Patrol.Get(entry)
		obj := components.Object.Get(entry)

		x, _, seqDoneX := patrol.X.Update(dt)
		y, _, seqDoneY := patrol.Y.Update(dt)
		obj.X = float64(x)
		obj.Y = float64(y)
		obj.Update()

		// The sequences close their own loop, so restarting them from
		// the top is seamless.
		if seqDoneX {
			patrol.X.Reset()
		}
		if seqDoneY {
			patrol.Y.Reset()
		}
	})
}
