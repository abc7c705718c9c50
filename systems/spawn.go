package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/shared/rooms"
	"github.com/automoto/starlock/shared/save"
)

// SpawnPlan is where a new world session starts: which room, where in it,
// and which save slot the session plays on.
type SpawnPlan struct {
	Room     rooms.Coord
	X, Y     float64
	Slot     int
	FromSave bool
}

// ResolveSpawn consumes any pending load request and decides the starting
// position. A snapshot pointing at a room the manifest no longer lists falls
// back to a fresh start rather than failing; save files outlive world edits.
func ResolveSpawn(svc *save.Service, m *rooms.Manifest) SpawnPlan {
	if slot, ok := svc.TakePendingLoad(); ok {
		if snap, ok := svc.LoadCheckpoint(slot); ok {
			if m.HasRoom(snap.Room) {
				return SpawnPlan{Room: snap.Room, X: snap.X, Y: snap.Y, Slot: slot, FromSave: true}
			}
			log.Printf("Warning: saved room %s is gone from the world; starting fresh", snap.Room)
		}
	}
	return SpawnPlan{
		Room: m.InitialRoom,
		X:    m.InitialSpawn[0],
		Y:    m.InitialSpawn[1],
		Slot: cfg.Save.DefaultSlot,
	}
}

// PlayerStart picks the player's first position once the starting room is
// spawned. A restored session lands standing on its checkpoint rather than
// at the snapshot's raw coordinates.
func PlayerStart(ecs *ecs.ECS, plan SpawnPlan) (float64, float64) {
	if plan.FromSave {
		var x, y float64
		found := false
		components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
			cp := components.Checkpoint.Get(e)
			if !found && cp.Activated {
				x, y = cp.SpawnX, cp.SpawnY
				found = true
			}
		})
		if found {
			return x, y
		}
	}
	return plan.X, plan.Y
}
