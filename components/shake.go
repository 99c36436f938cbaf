package components

import "github.com/yohamta/donburi"

// ScreenShakeData drives a decaying camera shake measured in frames.
type ScreenShakeData struct {
	Intensity float64 // peak offset in world pixels
	Duration  int     // total frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
