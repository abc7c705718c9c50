package save

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/starlock/shared/rooms"
)

func TestService_FlushRestoreRoundTrip(t *testing.T) {
	ms := &MemoryStore{}

	svc := NewService()
	svc.AttachDurable(ms)

	room := rooms.Coord{X: 1, Y: 0}
	keyID := DeriveEntityID(room, 20.0, 5.0)
	starID := DeriveEntityID(room, 300.0, 40.0)

	svc.SaveCheckpoint(0, room, 64, 32)
	svc.MarkKeyCollected(0, keyID)
	svc.MarkStarCollected(0, starID)
	svc.MarkExplored(0, room)
	svc.MarkLockUnlocked(2, DeriveEntityID(rooms.Coord{X: -1, Y: 4}, 8.0, 8.0))
	require.NoError(t, svc.Flush())

	// Fresh service, same backing file: a new process starting up.
	restored := NewService()
	restored.AttachDurable(ms)
	require.NoError(t, restored.Restore())

	snap, ok := restored.LoadCheckpoint(0)
	require.True(t, ok)
	assert.Equal(t, Snapshot{Room: room, X: 64, Y: 32}, snap)
	assert.True(t, restored.IsKeyCollected(0, keyID))
	assert.True(t, restored.IsStarCollected(0, starID))
	assert.True(t, restored.IsExplored(0, room))
	assert.Equal(t, 1, restored.StarCount(0))
	assert.True(t, restored.IsLockUnlocked(2, DeriveEntityID(rooms.Coord{X: -1, Y: 4}, 8.0, 8.0)))
	assert.False(t, restored.HasSave(1))

	// The pending load is session state, never persisted.
	_, ok = restored.TakePendingLoad()
	assert.False(t, ok)
}

func TestService_RestoreWithoutFileLeavesStoreEmpty(t *testing.T) {
	svc := NewService()
	svc.AttachDurable(&MemoryStore{})

	require.NoError(t, svc.Restore(), "a missing file is a fresh install, not an error")
	assert.False(t, svc.HasSave(0))
}

func TestService_RestoreRejectsUnknownVersion(t *testing.T) {
	ms := &MemoryStore{}
	data, err := json.Marshal(map[string]any{"version": 99})
	require.NoError(t, err)
	require.NoError(t, ms.Save(data))

	svc := NewService()
	svc.AttachDurable(ms)

	err = svc.Restore()
	assert.ErrorIs(t, err, ErrVersion)
}

func TestService_RestoreRejectsUnknownFlagKind(t *testing.T) {
	ms := &MemoryStore{}
	data, err := json.Marshal(fileV1{
		Version: FileVersion,
		Slots: map[int]slotV1{
			0: {Flags: []flagV1{{Kind: "gem", RoomX: 0, RoomY: 0, X: 1, Y: 1}}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, ms.Save(data))

	svc := NewService()
	svc.AttachDurable(ms)

	assert.Error(t, svc.Restore())
}

func TestService_FlushWithoutDurableIsNoOp(t *testing.T) {
	svc := NewService()
	svc.SaveCheckpoint(0, rooms.Coord{X: 0, Y: 1}, 1, 1)

	assert.NoError(t, svc.Flush())
	assert.NoError(t, svc.Restore())
	assert.True(t, svc.HasSave(0), "restore without a store must not clear memory")
}

func TestService_RestoreOverwritesMemoryState(t *testing.T) {
	ms := &MemoryStore{}

	first := NewService()
	first.AttachDurable(ms)
	first.SaveCheckpoint(0, rooms.Coord{X: 3, Y: 3}, 10, 10)
	require.NoError(t, first.Flush())

	second := NewService()
	second.AttachDurable(ms)
	second.SaveCheckpoint(0, rooms.Coord{X: 9, Y: 9}, 99, 99)
	require.NoError(t, second.Restore())

	snap, ok := second.LoadCheckpoint(0)
	require.True(t, ok)
	assert.Equal(t, rooms.Coord{X: 3, Y: 3}, snap.Room, "the durable file wins on restore")
}
