package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FollowData binds the camera to a followed entity. Target is a weak
// handle: the camera never owns the entity, and a nil or invalidated
// entry simply means "not following" (the camera holds its last
// position). Offset is added to the target position in world space.
type FollowData struct {
	Target *donburi.Entry
	Offset math.Vec2
}

// HasTarget reports whether the follow target is bound and still alive.
func (f *FollowData) HasTarget() bool {
	return f.Target != nil && f.Target.Valid()
}

var Follow = donburi.NewComponentType[FollowData]()
