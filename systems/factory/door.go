package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/assets"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/shared/rooms"
	"github.com/automoto/starlock/tags"
)

// CreateSwitchDoor creates a closed door. Pressure plates address it by its
// authored object name; open_time overrides the sweep duration.
func CreateSwitchDoor(ecs *ecs.ECS, s rooms.EntitySpawn) *donburi.Entry {
	door := archetypes.SwitchDoor.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvSolid, tags.ResolvDoor)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = door

	components.Object.SetValue(door, components.ObjectData{Object: obj})
	components.SwitchDoor.SetValue(door, components.SwitchDoorData{
		Name:        s.Name,
		State:       cfg.DoorClosed,
		FullH:       s.H,
		OpenSeconds: s.Props.Float("open_time", cfg.Door.OpenSeconds),
	})
	components.Sprite.SetValue(door, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), cfg.DoorColor),
	})

	addToSpace(ecs, obj)

	return door
}
