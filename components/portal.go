package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/starlock/shared/rooms"
)

// PortalData teleports the player to a fixed room when touched. The landing
// position is resolved at teleport time: the destination room's own portal
// if it has one, else its spawn marker, else the room default.
type PortalData struct {
	Dest rooms.Coord
}

var Portal = donburi.NewComponentType[PortalData]()
