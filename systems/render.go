package systems

import (
	"image/color"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor   = color.RGBA{70, 70, 90, 255}
	playerColor = color.RGBA{90, 200, 120, 255}
	patrolColor = color.RGBA{220, 160, 60, 255}
	limitColor  = color.RGBA{180, 60, 60, 255}
)

// Viewport culling skips draw calls for objects that are off-screen.
// A small padding prevents rects from popping in/out at the edges.
const cullPadding = 32.0

// DrawWorld renders every entity with an Object as a flat rect, offset
// by the camera's rendered position. The camera position is the center
// of the screen.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := CameraPosition(e)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	originX := camX - float64(width)/2
	originY := camY - float64(height)/2

	minX := originX - cullPadding
	maxX := originX + float64(width) + cullPadding
	minY := originY - cullPadding
	maxY := originY + float64(height) + cullPadding

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)

		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}

		clr := wallColor
		switch {
		case entry.HasComponent(tags.Player):
			clr = playerColor
		case entry.HasComponent(tags.Patrol):
			clr = patrolColor
		}

		vector.DrawFilledRect(screen,
			float32(o.X-originX), float32(o.Y-originY),
			float32(o.W), float32(o.H),
			clr, false)
	})

	drawCameraLimits(screen, originX, originY)
}

// drawCameraLimits outlines the configured clamp box in world space.
func drawCameraLimits(screen *ebiten.Image, originX, originY float64) {
	if !cfg.Camera.UseLimits {
		return
	}
	x := float32(cfg.Camera.LimitLeft - originX)
	y := float32(cfg.Camera.LimitTop - originY)
	w := float32(cfg.Camera.LimitRight - cfg.Camera.LimitLeft)
	h := float32(cfg.Camera.LimitBottom - cfg.Camera.LimitTop)
	vector.StrokeRect(screen, x, y, w, h, 1, limitColor, false)
}
