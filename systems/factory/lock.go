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

// CreateLock creates a solid lock barrier. Unlocked locks are filtered out
// before this is called.
func CreateLock(ecs *ecs.ECS, room rooms.Coord, s rooms.EntitySpawn) *donburi.Entry {
	lock := archetypes.Lock.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvSolid, tags.ResolvLock)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = lock

	components.Object.SetValue(lock, components.ObjectData{Object: obj})
	components.Lock.SetValue(lock, components.LockData{
		ID: save.DeriveEntityID(room, s.X, s.Y),
	})
	components.Sprite.SetValue(lock, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), cfg.LockColor),
	})

	addToSpace(ecs, obj)

	return lock
}
