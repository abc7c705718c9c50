package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/assets"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
)

// UpdateCheckpoints activates a checkpoint when the player touches it. The
// new snapshot replaces the previous one and is written straight through to
// the durable store, so progress survives a crash right after the touch.
func UpdateCheckpoints(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return
	}

	room, ok := roomState(ecs)
	if !ok {
		return
	}
	sv, ok := saveState(ecs)
	if !ok {
		return
	}

	for _, o := range check.ObjectsByTags(tags.ResolvCheckpoint) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		cp := components.Checkpoint.Get(entry)
		if cp.Activated {
			continue
		}
		activateCheckpoint(ecs, entry, cp)

		// The snapshot records the checkpoint's authored position, not the
		// player's, so restoring matches it back to this checkpoint exactly.
		sv.Service.SaveCheckpoint(sv.Slot, room.Current, cp.ID.X, cp.ID.Y)
		FlushSave()
	}
}

// activateCheckpoint lights the touched checkpoint and dims every other one.
// Only the latest touched checkpoint restores.
func activateCheckpoint(ecs *ecs.ECS, active *donburi.Entry, cp *components.CheckpointData) {
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		other := components.Checkpoint.Get(e)
		if e.Entity() == active.Entity() || !other.Activated {
			return
		}
		other.Activated = false
		setCheckpointSprite(e, false)
	})

	cp.Activated = true
	setCheckpointSprite(active, true)
}

func setCheckpointSprite(entry *donburi.Entry, activated bool) {
	sprite := components.Sprite.Get(entry)
	obj := components.Object.Get(entry)
	if sprite == nil || obj == nil {
		return
	}
	c := cfg.CheckpointIdle
	if activated {
		c = cfg.CheckpointActive
	}
	sprite.Image = assets.SolidImage(int(obj.W), int(obj.H), c)
}
