package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/starlock/shared/save"
)

// SaveData is the singleton giving systems access to the save service. Slot
// is the active save slot for this session.
type SaveData struct {
	Service *save.Service
	Slot    int
}

var Save = donburi.NewComponentType[SaveData]()
