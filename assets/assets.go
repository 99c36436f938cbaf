package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// FS returns the embedded asset filesystem (levels/*.tmx).
func FS() fs.FS {
	return assetFS
}

// DemoLevelPath is the TMX map the demo scene loads.
const DemoLevelPath = "levels/demo.tmx"
