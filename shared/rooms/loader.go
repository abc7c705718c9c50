package rooms

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/lafriks/go-tiled"
)

// solidLayerName is the tile layer holding collision geometry; any non-empty
// tile in it is solid.
const solidLayerName = "solid"

// entityGroupName is the object group holding entity placements.
const entityGroupName = "entities"

var knownKinds = map[string]bool{
	KindSpawn:             true,
	KindCheckpoint:        true,
	KindKey:               true,
	KindLock:              true,
	KindStar:              true,
	KindPortal:            true,
	KindSwitchDoor:        true,
	KindPressurePlate:     true,
	KindMovingPlatform:    true,
	KindCrumblingPlatform: true,
}

// ParseRoom parses a TMX room file into a Definition. It takes an fs.FS so
// callers can pass embed.FS (shipped rooms) or os.DirFS (dev hot-reload).
func ParseRoom(fsys fs.FS, path string, coord Coord) (*Definition, error) {
	roomMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	def := &Definition{
		Coord:  coord,
		PixelW: roomMap.Width * roomMap.TileWidth,
		PixelH: roomMap.Height * roomMap.TileHeight,
		TileW:  roomMap.TileWidth,
		TileH:  roomMap.TileHeight,
	}

	tileW := float64(roomMap.TileWidth)
	tileH := float64(roomMap.TileHeight)
	for _, layer := range roomMap.Layers {
		if layer.Name != solidLayerName {
			continue
		}
		for y := 0; y < roomMap.Height; y++ {
			for x := 0; x < roomMap.Width; x++ {
				tile := layer.Tiles[y*roomMap.Width+x]
				if tile.IsNil() {
					continue
				}
				def.Solids = append(def.Solids, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range roomMap.ObjectGroups {
		if og.Name != entityGroupName {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			if !knownKinds[kind] {
				log.Printf("Warning: %s: skipping unknown entity kind %q (object %q)", path, kind, o.Name)
				continue
			}
			spawn := EntitySpawn{
				Kind: kind,
				Name: o.Name,
				X:    o.X,
				Y:    o.Y,
				W:    o.Width,
				H:    o.Height,
			}
			if len(o.Properties) > 0 {
				spawn.Props = make(Props, len(o.Properties))
				for _, p := range o.Properties {
					spawn.Props[p.Name] = p.Value
				}
			}
			def.Spawns = append(def.Spawns, spawn)
		}
	}

	return def, nil
}
