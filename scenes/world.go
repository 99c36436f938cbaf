package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pixelcam/assets"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/leveldata"
	"github.com/automoto/pixelcam/systems"
	"github.com/automoto/pixelcam/systems/factory"
	"github.com/automoto/pixelcam/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is the camera demo: a small tiled arena, a keyboard player,
// a patrolling marker, and the tuning panel.
type WorldScene struct {
	ecs    *ecs.ECS
	tuning *ui.TuningUI
	showUI bool
	once   sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ws.showUI = !ws.showUI
	}
	if ws.showUI {
		ws.tuning.Update()
		return // panel captures input while open
	}

	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if ws.showUI {
		ws.tuning.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	world, err := leveldata.LoadWorldData(assets.FS(), assets.DemoLevelPath)
	if err != nil {
		panic("failed to load demo level: " + err.Error())
	}

	// The clamp box comes from the map: edges pulled in by half a screen.
	left, right, top, bottom := world.CameraLimits(cfg.C.Width, cfg.C.Height)
	c := cfg.Camera
	c.UseLimits = true
	c.LimitLeft, c.LimitRight = left, right
	c.LimitTop, c.LimitBottom = top, bottom
	if err := cfg.SetCamera(c); err != nil {
		log.Printf("Warning: Could not apply camera limits: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdatePlayerInput)
	e.AddSystem(systems.UpdatePatrol)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	factory.CreateSpace(e, world.MapWidth, world.MapHeight, 16, 16)
	for _, r := range world.SolidRects {
		factory.CreateWall(e, r.X, r.Y, r.W, r.H)
	}

	player := factory.CreatePlayer(e, world.SpawnX, world.SpawnY)
	factory.CreatePatrol(e, world.Waypoints)
	factory.CreateCamera(e, player)

	ws.tuning = ui.NewTuningUI(systems.SaveCurrentTuning)
}
