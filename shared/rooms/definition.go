package rooms

import "strconv"

// Entity spawn kinds recognized by the room loader. Anything else in an
// authored file is skipped with a warning.
const (
	KindSpawn             = "spawn"
	KindCheckpoint        = "checkpoint"
	KindKey               = "key"
	KindLock              = "lock"
	KindStar              = "star"
	KindPortal            = "portal"
	KindSwitchDoor        = "switch_door"
	KindPressurePlate     = "pressure_plate"
	KindMovingPlatform    = "moving_platform"
	KindCrumblingPlatform = "crumbling_platform"
)

// SolidRect is one solid collision tile in room-local pixel coordinates.
type SolidRect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Props holds authored object properties as strings, with typed accessors so
// factories can read what they need without re-touching the TMX layer.
type Props map[string]string

func (p Props) String(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

func (p Props) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func (p Props) clone() Props {
	if p == nil {
		return nil
	}
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// EntitySpawn is one authored entity placement inside a room.
type EntitySpawn struct {
	Kind  string
	Name  string
	X     float64
	Y     float64
	W     float64
	H     float64
	Props Props
}

// Definition is the parsed content of one room file: dimensions, solid
// geometry, and entity placements. Definitions are read-only after parsing;
// live rooms work on Instance copies.
type Definition struct {
	Coord  Coord
	PixelW int
	PixelH int
	TileW  int
	TileH  int
	Solids []SolidRect
	Spawns []EntitySpawn
}
