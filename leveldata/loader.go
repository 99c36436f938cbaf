package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// LoadWorldData parses a TMX file and returns the world data the demo
// needs (map size, solid tiles, player spawn, patrol waypoints). It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadWorldData(fsys fs.FS, tmxPath string) (*WorldData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &WorldData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles come from the "solid" layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "solid" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				data.SpawnX = og.Objects[0].X
				data.SpawnY = og.Objects[0].Y
			}
		case "Patrol":
			for _, o := range og.Objects {
				index := o.Properties.GetInt("index")
				data.Waypoints = append(data.Waypoints, Waypoint{
					X:     o.X,
					Y:     o.Y,
					Index: index,
				})
			}
		}
	}

	// Patrol order follows the authored index, not map file order
	sort.Slice(data.Waypoints, func(i, j int) bool {
		return data.Waypoints[i].Index < data.Waypoints[j].Index
	})

	return data, nil
}
