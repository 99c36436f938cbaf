package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
)

var hudTextColor = color.RGBA{230, 230, 230, 255}

// DrawHUD renders the camera state readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	follow := components.Follow.Get(cameraEntry)

	mode := "idle"
	switch {
	case PanActive(e):
		mode = "pan"
	case follow.HasTarget():
		mode = "following"
	}

	smoothing := "off"
	if cfg.Camera.Smoothing {
		smoothing = fmt.Sprintf("%.1f/s", cfg.Camera.FollowSpeed)
	}
	snap := "off"
	if cfg.Camera.PixelSnap {
		snap = fmt.Sprintf("%gpx", cfg.Camera.PixelSize)
	}

	lines := []string{
		fmt.Sprintf("camera: %s  smooth: %s  snap: %s", mode, smoothing, snap),
		fmt.Sprintf("float (%7.2f, %7.2f)", camera.SmoothPosition.X, camera.SmoothPosition.Y),
		fmt.Sprintf("shown (%7.2f, %7.2f)", camera.Rendered.X, camera.Rendered.Y),
		"move WASD | T/Y retarget | R snap | Space shake | P pan | Tab tuning",
	}

	face := fonts.Small.Get()
	y := hudMargin + hudLineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, hudMargin, y, hudTextColor)
		y += hudLineHeight
	}
}
