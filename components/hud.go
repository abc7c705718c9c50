package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData stores transient HUD state: the star counter flash after a pickup
// and whether the world map overlay is open.
type HUDData struct {
	StarFlash  *gween.Tween // counter glow after a pickup, nil when idle
	FlashValue float64      // current glow strength, 1..0
	MapOpen    bool
}

var HUD = donburi.NewComponentType[HUDData]()
