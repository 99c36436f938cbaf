package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PatrolData moves a demo entity back and forth along a tween sequence,
// giving the camera a moving target to chase.
type PatrolData struct {
	X, Y *gween.Sequence
}

var Patrol = donburi.NewComponentType[PatrolData]()
