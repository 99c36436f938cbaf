package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Patrol = donburi.NewTag().SetName("Patrol")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for the demo collision space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
)
