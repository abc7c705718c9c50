package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/starlock/shared/save"
)

// LockData is a solid barrier opened by spending a collected key. Collected
// and spent counts both only grow, so "a key is available" means more keys
// collected than locks unlocked.
type LockData struct {
	ID save.EntityID
}

var Lock = donburi.NewComponentType[LockData]()
