package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	"github.com/automoto/starlock/tags"
)

// UpdateLocks spends a collected key on any lock the player pushes against.
// A key is available while more keys have been collected than locks opened;
// individual keys are interchangeable.
func UpdateLocks(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	sv, ok := saveState(ecs)
	if !ok {
		return
	}
	if !sv.Service.KeyAvailable(sv.Slot) {
		return
	}

	entry := adjacentLock(components.Object.Get(playerEntry))
	if entry == nil || !entry.Valid() {
		return
	}
	lock := components.Lock.Get(entry)
	if sv.Service.IsLockUnlocked(sv.Slot, lock.ID) {
		return
	}

	sv.Service.MarkLockUnlocked(sv.Slot, lock.ID)
	despawnRoomEntity(ecs, entry)
	FlushSave()
}

// adjacentLock finds a lock the player is flush against. Locks are solid, so
// overlap checks never fire; probe one pixel out on each side instead.
func adjacentLock(playerObj *components.ObjectData) *donburi.Entry {
	probes := [4][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, p := range probes {
		check := playerObj.Check(p[0], p[1], tags.ResolvLock)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvLock) {
			if entry, ok := o.Data.(*donburi.Entry); ok {
				return entry
			}
		}
	}
	return nil
}
