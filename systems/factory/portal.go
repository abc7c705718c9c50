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

// CreatePortal creates a teleport pad. The destination room coordinate comes
// from the authored dest_x/dest_y properties.
func CreatePortal(ecs *ecs.ECS, s rooms.EntitySpawn) *donburi.Entry {
	portal := archetypes.Portal.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvPortal)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = portal

	components.Object.SetValue(portal, components.ObjectData{Object: obj})
	components.Portal.SetValue(portal, components.PortalData{
		Dest: rooms.Coord{
			X: int(s.Props.Float("dest_x", 0)),
			Y: int(s.Props.Float("dest_y", 0)),
		},
	})
	components.Sprite.SetValue(portal, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), cfg.PortalColor),
	})

	addToSpace(ecs, obj)

	return portal
}
