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

// CreateCheckpoint creates a checkpoint entity. Its identity is derived from
// the room and the authored position, so the same checkpoint gets the same
// identity every time the room is instantiated.
func CreateCheckpoint(ecs *ecs.ECS, room rooms.Coord, s rooms.EntitySpawn, activated bool) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	// Respawn standing on the checkpoint, feet on its base
	spawnX := s.X + s.W/2 - cfg.Player.CollisionWidth/2
	spawnY := s.Y + s.H - cfg.Player.CollisionHeight

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID:        save.DeriveEntityID(room, s.X, s.Y),
		SpawnX:    spawnX,
		SpawnY:    spawnY,
		Activated: activated,
	})

	img := cfg.CheckpointIdle
	if activated {
		img = cfg.CheckpointActive
	}
	components.Sprite.SetValue(checkpoint, components.SpriteData{
		Image: assets.SolidImage(int(s.W), int(s.H), img),
	})

	addToSpace(ecs, obj)

	return checkpoint
}
