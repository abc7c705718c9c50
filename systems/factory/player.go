package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/assets"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		State:  cfg.StateIdle,
		Facing: 1,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Sprite.SetValue(player, components.SpriteData{
		Image: assets.SolidImage(int(cfg.Player.CollisionWidth), int(cfg.Player.CollisionHeight), cfg.PlayerColor),
	})

	addToSpace(ecs, obj)

	return player
}
