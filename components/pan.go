package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PanData is a scripted camera movement. While a pan is active the
// follow system is suspended; the pan tweens SmoothPosition toward its
// destination and releases control when both axes finish.
type PanData struct {
	X, Y *gween.Tween
	// SnapOnFinish re-syncs to the follow target the moment the pan
	// completes instead of gliding back through the regular lerp.
	SnapOnFinish bool
}

var Pan = donburi.NewComponentType[PanData]()
