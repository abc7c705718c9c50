package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/shared/rooms"
	"github.com/automoto/starlock/shared/save"
)

// CreateRoomState creates the room singleton for a world session starting in
// the given room.
func CreateRoomState(ecs *ecs.ECS, m *rooms.Manifest, cache *rooms.Cache, watcher *rooms.Watcher, current rooms.Coord, inst *rooms.Instance) *donburi.Entry {
	room := archetypes.Room.Spawn(ecs)
	components.Room.SetValue(room, components.RoomData{
		Manifest: m,
		Cache:    cache,
		Watcher:  watcher,
		Detector: rooms.BoundaryDetector{
			RoomW:     cfg.Room.Width,
			RoomH:     cfg.Room.Height,
			BodyW:     cfg.Player.CollisionWidth,
			BodyH:     cfg.Player.CollisionHeight,
			Threshold: cfg.Room.CrossThreshold,
		},
		Current:  current,
		Instance: inst,
	})
	return room
}

// CreateSaveState creates the save singleton binding this session to a slot.
func CreateSaveState(ecs *ecs.ECS, svc *save.Service, slot int) *donburi.Entry {
	entry := archetypes.Save.Spawn(ecs)
	components.Save.SetValue(entry, components.SaveData{Service: svc, Slot: slot})
	return entry
}
