// Package leveldata provides TMX level parsing for the demo world.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// WorldData holds everything the camera demo needs from a TMX level file.
type WorldData struct {
	SolidRects []SolidRect
	Waypoints  []Waypoint
	SpawnX     float64
	SpawnY     float64
	MapWidth   int // world pixels
	MapHeight  int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// Waypoint is one stop on the demo patrol path.
type Waypoint struct {
	X, Y  float64
	Index int
}

// CameraLimits returns the follow-position clamp box for this map and
// screen size: the map edges pulled in by half a screen, so the level
// always fills the viewport. Degenerates to the map center on an axis
// where the map is smaller than the screen.
func (w *WorldData) CameraLimits(screenWidth, screenHeight int) (left, right, top, bottom float64) {
	left = float64(screenWidth) / 2
	right = float64(w.MapWidth) - float64(screenWidth)/2
	top = float64(screenHeight) / 2
	bottom = float64(w.MapHeight) - float64(screenHeight)/2
	if left >= right {
		center := float64(w.MapWidth) / 2
		left, right = center-0.5, center+0.5
	}
	if top >= bottom {
		center := float64(w.MapHeight) / 2
		top, bottom = center-0.5, center+0.5
	}
	return left, right, top, bottom
}
