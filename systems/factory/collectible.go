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
	"github.com/automoto/starlock/shared/save"
	"github.com/automoto/starlock/tags"
)

// CreateCollectible creates a key or star pickup. Already-collected pickups
// are filtered out before this is called, so a spawned collectible is always
// live.
func CreateCollectible(ecs *ecs.ECS, room rooms.Coord, kind save.Kind, s rooms.EntitySpawn) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = collectible

	components.Object.SetValue(collectible, components.ObjectData{Object: obj})
	components.Collectible.SetValue(collectible, components.CollectibleData{
		Kind: kind,
		ID:   save.DeriveEntityID(room, s.X, s.Y),
	})

	c := cfg.KeyColor
	if kind == save.KindStar {
		c = cfg.StarColor
	}
	components.Sprite.SetValue(collectible, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), c),
	})

	addToSpace(ecs, obj)

	return collectible
}
