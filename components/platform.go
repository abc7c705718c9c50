package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/starlock/config"
)

// MovingPlatformData holds a platform's path and its position on the
// previous tick. Riders are carried by the per-tick delta, not by the
// platform's absolute position.
type MovingPlatformData struct {
	OriginX, OriginY float64
	DX, DY           float64
	PrevX, PrevY     float64
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()

// CrumblingPlatformData shakes when stepped on, falls away, then respawns
// at its home position.
type CrumblingPlatformData struct {
	State cfg.StateID
	Timer float64
	HomeX float64
	HomeY float64
}

var CrumblingPlatform = donburi.NewComponentType[CrumblingPlatformData]()
