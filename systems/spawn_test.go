package systems

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/starlock/shared/rooms"
	"github.com/automoto/starlock/shared/save"
)

const spawnTestManifest = `title: Spawn Test
initial_room: [0, 1]
initial_spawn: [48.0, 200.0]
star_total: 1
rooms:
  - [0, 1]
  - [1, 1]
`

func spawnTestWorld(t *testing.T) *rooms.Manifest {
	t.Helper()
	fsys := fstest.MapFS{"world.yaml": {Data: []byte(spawnTestManifest)}}
	m, err := rooms.LoadManifest(fsys, "world.yaml")
	require.NoError(t, err)
	return m
}

func TestResolveSpawn_FreshStart(t *testing.T) {
	svc := save.NewService()
	m := spawnTestWorld(t)

	plan := ResolveSpawn(svc, m)

	assert.False(t, plan.FromSave)
	assert.Equal(t, rooms.Coord{X: 0, Y: 1}, plan.Room)
	assert.Equal(t, 48.0, plan.X)
	assert.Equal(t, 200.0, plan.Y)
}

func TestResolveSpawn_PendingLoadRestoresCheckpoint(t *testing.T) {
	svc := save.NewService()
	m := spawnTestWorld(t)

	svc.SaveCheckpoint(1, rooms.Coord{X: 1, Y: 1}, 96, 200)
	svc.QueueLoad(1)

	plan := ResolveSpawn(svc, m)

	assert.True(t, plan.FromSave)
	assert.Equal(t, rooms.Coord{X: 1, Y: 1}, plan.Room)
	assert.Equal(t, 96.0, plan.X)
	assert.Equal(t, 200.0, plan.Y)
	assert.Equal(t, 1, plan.Slot)
}

func TestResolveSpawn_ConsumesThePendingLoad(t *testing.T) {
	svc := save.NewService()
	m := spawnTestWorld(t)

	svc.SaveCheckpoint(0, rooms.Coord{X: 1, Y: 1}, 96, 200)
	svc.QueueLoad(0)

	first := ResolveSpawn(svc, m)
	second := ResolveSpawn(svc, m)

	assert.True(t, first.FromSave)
	assert.False(t, second.FromSave, "a queued load applies to one session only")
}

func TestResolveSpawn_EmptySlotFallsBackToInitial(t *testing.T) {
	svc := save.NewService()
	m := spawnTestWorld(t)

	// Continue pressed with nothing ever saved on the slot.
	svc.QueueLoad(0)

	plan := ResolveSpawn(svc, m)

	assert.False(t, plan.FromSave)
	assert.Equal(t, rooms.Coord{X: 0, Y: 1}, plan.Room)
}

func TestResolveSpawn_SavedRoomRemovedFromWorld(t *testing.T) {
	svc := save.NewService()
	m := spawnTestWorld(t)

	// The world file no longer lists the room this save points at.
	svc.SaveCheckpoint(0, rooms.Coord{X: 7, Y: 7}, 96, 200)
	svc.QueueLoad(0)

	plan := ResolveSpawn(svc, m)

	assert.False(t, plan.FromSave)
	assert.Equal(t, m.InitialRoom, plan.Room)
	assert.Equal(t, m.InitialSpawn[0], plan.X)
}
