package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/starlock/config"
)

// SwitchDoorData is a solid door driven by pressure plates that share its
// Name. Progress runs 0 (fully closed) to 1 (fully open); the collision
// shape retracts upward as it opens, so the gap grows from the floor.
type SwitchDoorData struct {
	Name        string
	State       cfg.StateID
	Progress    float64
	FullH       float64
	OpenSeconds float64 // sweep duration, authored per door
	Hold        float64 // open time left after the plate released
}

var SwitchDoor = donburi.NewComponentType[SwitchDoorData]()
