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

// CreatePressurePlate creates a floor plate wired to the door named in its
// target property. Plates are not solid.
func CreatePressurePlate(ecs *ecs.ECS, s rooms.EntitySpawn) *donburi.Entry {
	plate := archetypes.PressurePlate.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvPlate)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = plate

	components.Object.SetValue(plate, components.ObjectData{Object: obj})
	components.PressurePlate.SetValue(plate, components.PressurePlateData{
		Target: s.Props.String("target", ""),
	})
	components.Sprite.SetValue(plate, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), cfg.PlateColor),
	})

	addToSpace(ecs, obj)

	return plate
}
