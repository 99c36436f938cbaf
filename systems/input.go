package systems

import (
	"github.com/automoto/pixelcam/components"
	"github.com/automoto/pixelcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

const playerSpeed = 2.5 // pixels per tick

// UpdatePlayerInput moves the demo player from the keyboard and handles
// the camera hotkeys:
//
//	T:     swap follow target between player and patrol marker (glide)
//	Y:     same swap but with an instant snap
//	R:     snap to the current target
//	Space: screen shake
//	P:     scripted pan to the map origin and back
func UpdatePlayerInput(e *ecs.ECS) {
	movePlayer(e)
	handleCameraKeys(e)
}

func movePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += playerSpeed
	}

	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
	}
	if dx != 0 || dy != 0 {
		obj.Update()
	}
}

func handleCameraKeys(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		swapFollowTarget(e, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		swapFollowTarget(e, true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		SnapCameraToTarget(e)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		TriggerScreenShake(e, 4.0, 18)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !PanActive(e) {
		StartPanTour(e)
	}
}

// swapFollowTarget flips the camera between the player and the patrol
// marker.
func swapFollowTarget(e *ecs.ECS, snap bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	follow := components.Follow.Get(cameraEntry)

	playerEntry, okPlayer := tags.Player.First(e.World)
	patrolEntry, okPatrol := tags.Patrol.First(e.World)
	if !okPlayer || !okPatrol {
		return
	}

	next := playerEntry
	if follow.Target != nil && follow.Target.Entity() == playerEntry.Entity() {
		next = patrolEntry
	}
	SetFollowTarget(e, next, snap)
}
