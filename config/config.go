package config

import (
	"fmt"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// CameraConfig contains camera follow behavior configuration
type CameraConfig struct {
	Smoothing   bool    // false: camera jumps straight to the target each tick
	FollowSpeed float64 // lerp rate per second, higher = faster catch-up
	PixelSnap   bool    // quantize the rendered position to the pixel grid
	PixelSize   float64 // world units per pixel, must be > 0
	OffsetX     float64 // constant world-space offset added to the target
	OffsetY     float64
	UseLimits   bool // clamp the follow position to the box below
	LimitLeft   float64
	LimitRight  float64
	LimitTop    float64
	LimitBottom float64
}

// Validate rejects configurations that would corrupt a later tick.
// Bad values are caught here, at set time, so the per-tick path never
// has to check them.
func (c CameraConfig) Validate() error {
	if c.PixelSize <= 0 {
		return fmt.Errorf("camera config: pixel size must be > 0, got %v", c.PixelSize)
	}
	if c.Smoothing && c.FollowSpeed <= 0 {
		return fmt.Errorf("camera config: follow speed must be > 0 when smoothing, got %v", c.FollowSpeed)
	}
	if c.UseLimits {
		if c.LimitLeft >= c.LimitRight {
			return fmt.Errorf("camera config: limit left (%v) must be < right (%v)", c.LimitLeft, c.LimitRight)
		}
		if c.LimitTop >= c.LimitBottom {
			return fmt.Errorf("camera config: limit top (%v) must be < bottom (%v)", c.LimitTop, c.LimitBottom)
		}
	}
	return nil
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	ImpactIntensity float64 // pixels
	ImpactDuration  int     // frames
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var ScreenShake ScreenShakeConfig

// SetCamera is the only mutation path for the camera configuration.
// It validates first, so ticks only ever observe a usable config.
func SetCamera(c CameraConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	Camera = c
	return nil
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Camera = CameraConfig{
		Smoothing:   true,
		FollowSpeed: 8.0, // snappy but visible lag, tuned against the demo map
		PixelSnap:   true,
		PixelSize:   1.0,
		UseLimits:   false,
	}

	ScreenShake = ScreenShakeConfig{
		ImpactIntensity: 4.0,
		ImpactDuration:  18,
	}
}
