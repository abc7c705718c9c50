package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	"github.com/automoto/starlock/tags"
)

// UpdatePortals starts a teleport when the player touches a portal. The room
// transition machinery does the actual swap; this only picks the destination
// and the landing position.
func UpdatePortals(ecs *ecs.ECS) {
	room, ok := roomState(ecs)
	if !ok || room.Transitioning {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvPortal)

	// After a teleport the player stands on the destination pad; portals
	// stay cold until they step off it.
	if room.PortalCooldown {
		if check == nil {
			room.PortalCooldown = false
		}
		return
	}
	if check == nil {
		return
	}

	for _, o := range check.ObjectsByTags(tags.ResolvPortal) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		beginPortalTransition(ecs, room, components.Portal.Get(entry))
		return
	}
}
