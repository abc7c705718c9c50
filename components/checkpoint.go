package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/starlock/shared/save"
)

type CheckpointData struct {
	ID        save.EntityID
	SpawnX    float64 // authored position, where the player respawns
	SpawnY    float64
	Activated bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
