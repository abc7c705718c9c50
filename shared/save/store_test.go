package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/starlock/shared/rooms"
)

func TestService_MarkingIsIdempotent(t *testing.T) {
	svc := NewService()
	id := DeriveEntityID(rooms.Coord{X: 1, Y: 0}, 20.0, 5.0)

	for _, kind := range []Kind{KindKey, KindLock, KindStar} {
		assert.False(t, svc.HasFlag(0, kind, id), "%s flag should start unset", kind)

		svc.MarkFlag(0, kind, id)
		assert.True(t, svc.HasFlag(0, kind, id), "%s flag should be set after one mark", kind)

		svc.MarkFlag(0, kind, id)
		assert.True(t, svc.HasFlag(0, kind, id), "%s flag should be set after a repeat mark", kind)
	}

	// Marking one star twice counts once.
	assert.Equal(t, 1, svc.StarCount(0), "repeated marks must not inflate the star count")
}

func TestService_KindNamespacesAreIndependent(t *testing.T) {
	svc := NewService()
	id := DeriveEntityID(rooms.Coord{X: 3, Y: 2}, 48.0, 96.0)

	svc.MarkKeyCollected(0, id)

	assert.True(t, svc.IsKeyCollected(0, id))
	assert.False(t, svc.IsLockUnlocked(0, id), "a key flag must not leak into the lock namespace")
	assert.False(t, svc.IsStarCollected(0, id), "a key flag must not leak into the star namespace")
}

func TestService_SlotIsolation(t *testing.T) {
	svc := NewService()
	room := rooms.Coord{X: 1, Y: 0}
	id := DeriveEntityID(room, 20.0, 5.0)

	svc.SaveCheckpoint(0, room, 64, 32)
	svc.MarkKeyCollected(0, id)
	svc.MarkLockUnlocked(0, id)
	svc.MarkStarCollected(0, id)
	svc.MarkExplored(0, room)

	assert.False(t, svc.HasSave(1), "slot 1 must not see slot 0's snapshot")
	assert.False(t, svc.IsKeyCollected(1, id), "slot 1 must not see slot 0's keys")
	assert.False(t, svc.IsLockUnlocked(1, id), "slot 1 must not see slot 0's locks")
	assert.False(t, svc.IsStarCollected(1, id), "slot 1 must not see slot 0's stars")
	assert.False(t, svc.IsExplored(1, room), "slot 1 must not see slot 0's exploration")
	assert.Equal(t, 0, svc.StarCount(1))

	_, ok := svc.LoadCheckpoint(1)
	assert.False(t, ok)
}

func TestService_PendingLoadAtMostOnce(t *testing.T) {
	svc := NewService()

	_, ok := svc.TakePendingLoad()
	assert.False(t, ok, "no request queued yet")

	svc.QueueLoad(0)

	slot, ok := svc.TakePendingLoad()
	require.True(t, ok)
	assert.Equal(t, 0, slot)

	_, ok = svc.TakePendingLoad()
	assert.False(t, ok, "a consumed request must not be observable again")
}

func TestService_PendingLoadLastWriterWins(t *testing.T) {
	svc := NewService()

	svc.QueueLoad(1)
	svc.QueueLoad(2)

	slot, ok := svc.TakePendingLoad()
	require.True(t, ok)
	assert.Equal(t, 2, slot, "the earlier request must never be observed")

	_, ok = svc.TakePendingLoad()
	assert.False(t, ok)
}

func TestService_ClearPendingLoad(t *testing.T) {
	svc := NewService()

	svc.QueueLoad(0)
	svc.ClearPendingLoad()

	_, ok := svc.TakePendingLoad()
	assert.False(t, ok, "a cleared request must not be delivered")
}

func TestService_ResetClearsEverything(t *testing.T) {
	svc := NewService()
	room := rooms.Coord{X: 2, Y: 3}
	id := DeriveEntityID(room, 10.0, 10.0)

	for slot := 0; slot < 3; slot++ {
		svc.SaveCheckpoint(slot, room, 100, 50)
		svc.MarkKeyCollected(slot, id)
		svc.MarkLockUnlocked(slot, id)
		svc.MarkStarCollected(slot, id)
		svc.MarkExplored(slot, room)
	}
	svc.QueueLoad(1)

	svc.ResetAll()

	for slot := 0; slot < 3; slot++ {
		assert.False(t, svc.HasSave(slot), "slot %d snapshot should be gone", slot)
		assert.False(t, svc.IsKeyCollected(slot, id), "slot %d keys should be gone", slot)
		assert.False(t, svc.IsLockUnlocked(slot, id), "slot %d locks should be gone", slot)
		assert.False(t, svc.IsStarCollected(slot, id), "slot %d stars should be gone", slot)
		assert.False(t, svc.IsExplored(slot, room), "slot %d exploration should be gone", slot)
	}
	_, ok := svc.TakePendingLoad()
	assert.False(t, ok, "reset should drop the pending load")
}

func TestService_ContactReportsPriorState(t *testing.T) {
	svc := NewService()
	id := DeriveEntityID(rooms.Coord{X: 0, Y: 0}, 5.0, 5.0)

	already := svc.Contact(0, KindStar, id)
	assert.False(t, already, "first contact is new")
	assert.True(t, svc.IsStarCollected(0, id), "contact must persist the flag")

	already = svc.Contact(0, KindStar, id)
	assert.True(t, already, "second contact sees the persisted flag")
	assert.Equal(t, 1, svc.StarCount(0))
}

func TestService_StarCountCountsOnlyStars(t *testing.T) {
	svc := NewService()
	room := rooms.Coord{X: 0, Y: 0}

	svc.MarkStarCollected(0, DeriveEntityID(room, 1, 1))
	svc.MarkStarCollected(0, DeriveEntityID(room, 2, 2))
	svc.MarkKeyCollected(0, DeriveEntityID(room, 3, 3))

	assert.Equal(t, 2, svc.StarCount(0))
}

func TestService_ExploredRooms(t *testing.T) {
	svc := NewService()

	assert.Empty(t, svc.ExploredRooms(0))

	a := rooms.Coord{X: 0, Y: 1}
	b := rooms.Coord{X: 1, Y: 1}
	svc.MarkExplored(0, a)
	svc.MarkExplored(0, b)
	svc.MarkExplored(0, b)

	explored := svc.ExploredRooms(0)
	assert.Len(t, explored, 2, "re-visiting must not duplicate entries")
	assert.Contains(t, explored, a)
	assert.Contains(t, explored, b)
	assert.True(t, svc.IsExplored(0, a))
	assert.False(t, svc.IsExplored(0, rooms.Coord{X: 5, Y: 5}))
}

// Full playthrough sequence: new game, checkpoint, key pickup, game over,
// continue from the menu.
func TestService_PlaythroughScenario(t *testing.T) {
	svc := NewService()

	svc.ResetAll()
	assert.False(t, svc.HasSave(0))

	checkpointRoom := rooms.Coord{X: 1, Y: 0}
	svc.SaveCheckpoint(0, checkpointRoom, 64, 32)
	assert.True(t, svc.HasSave(0))

	keyID := DeriveEntityID(rooms.Coord{X: 1, Y: 0}, 20.0, 5.0)
	svc.MarkKeyCollected(0, keyID)
	assert.True(t, svc.IsKeyCollected(0, keyID))

	// Game over: the menu queues a load, the next session consumes it.
	svc.QueueLoad(0)

	slot, ok := svc.TakePendingLoad()
	require.True(t, ok)
	assert.Equal(t, 0, slot)

	snap, ok := svc.LoadCheckpoint(slot)
	require.True(t, ok)
	assert.Equal(t, checkpointRoom, snap.Room)
	assert.Equal(t, 64.0, snap.X)
	assert.Equal(t, 32.0, snap.Y)

	assert.True(t, svc.IsKeyCollected(0, keyID), "loading must not disturb collected state")
}
