package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	"github.com/automoto/starlock/shared/save"
	"github.com/automoto/starlock/tags"
)

// UpdateCollectibles picks up keys and stars the player overlaps. The pickup
// despawns immediately and its flag goes straight to the durable store; the
// entity never respawns in this slot again.
func UpdateCollectibles(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvCollectible)
	if check == nil {
		return
	}
	sv, ok := saveState(ecs)
	if !ok {
		return
	}

	collected := false
	for _, o := range check.ObjectsByTags(tags.ResolvCollectible) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		c := components.Collectible.Get(entry)

		already := sv.Service.Contact(sv.Slot, c.Kind, c.ID)
		despawnRoomEntity(ecs, entry)
		if already {
			// Stale spawn, possible after a room hot reload.
			continue
		}
		if c.Kind == save.KindStar {
			flashStarCounter(ecs)
		}
		collected = true
	}

	if collected {
		FlushSave()
	}
}
