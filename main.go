package main

import (
	"log"

	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/fonts"
	"github.com/automoto/pixelcam/scenes"
	"github.com/automoto/pixelcam/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("pixelcam demo")
	ebiten.SetTPS(cfg.C.TPS)

	// Load saved camera tuning before the first scene runs.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadTuning(); err == nil && saved != nil {
		systems.ApplySavedTuning(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
