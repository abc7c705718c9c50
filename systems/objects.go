package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	"github.com/automoto/starlock/tags"
)

// UpdateObjects pushes every entity's position into the collision space.
// Runs after all movement systems.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()
	})
}

// spaceOf returns the collision space singleton.
func spaceOf(ecs *ecs.ECS) (*resolv.Space, bool) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}

// solidifyObject puts an object back into the collision space. No-op when
// it is already there.
func solidifyObject(ecs *ecs.ECS, obj *resolv.Object) {
	if obj.Space != nil {
		return
	}
	if space, ok := spaceOf(ecs); ok {
		space.Add(obj)
	}
}

// desolidifyObject pulls an object out of the collision space without
// despawning its entity.
func desolidifyObject(obj *resolv.Object) {
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
}

// despawnRoomEntity removes an entity and its collision object. Safe to call
// on entities whose object was already pulled from the space.
func despawnRoomEntity(ecs *ecs.ECS, entry *donburi.Entry) {
	if obj := components.Object.Get(entry); obj != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	ecs.World.Remove(entry.Entity())
}

// despawnRoomEntities clears everything the current room spawned. Entries
// are collected first; removing mid-iteration invalidates the iterator.
func despawnRoomEntities(ecs *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.RoomEntity.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		despawnRoomEntity(ecs, e)
	}
}
