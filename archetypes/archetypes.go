package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		tags.RoomEntity,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		tags.RoomEntity,
		components.Checkpoint,
		components.Object,
		components.Sprite,
	)
	Collectible = newArchetype(
		tags.Collectible,
		tags.RoomEntity,
		components.Collectible,
		components.Object,
		components.Sprite,
	)
	Lock = newArchetype(
		tags.Lock,
		tags.RoomEntity,
		components.Lock,
		components.Object,
		components.Sprite,
	)
	Portal = newArchetype(
		tags.Portal,
		tags.RoomEntity,
		components.Portal,
		components.Object,
		components.Sprite,
	)
	SwitchDoor = newArchetype(
		tags.SwitchDoor,
		tags.RoomEntity,
		components.SwitchDoor,
		components.Object,
		components.Sprite,
	)
	PressurePlate = newArchetype(
		tags.PressurePlate,
		tags.RoomEntity,
		components.PressurePlate,
		components.Object,
		components.Sprite,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		tags.RoomEntity,
		components.MovingPlatform,
		components.Object,
		components.Tween,
		components.Sprite,
	)
	CrumblingPlatform = newArchetype(
		tags.CrumblingPlatform,
		tags.RoomEntity,
		components.CrumblingPlatform,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Room = newArchetype(
		components.Room,
	)
	Save = newArchetype(
		components.Save,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Debug = newArchetype(
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
