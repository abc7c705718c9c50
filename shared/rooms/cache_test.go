package rooms

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFS counts Open calls so tests can prove a template is parsed only
// once however many instances are handed out.
type countingFS struct {
	inner fs.FS
	opens int
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens++
	return c.inner.Open(name)
}

func TestCache_ParseOnceInstantiateFresh(t *testing.T) {
	cfs := &countingFS{inner: testRoomFS()}
	cache := NewCache(cfs, "rooms")

	first, err := cache.GetOrLoad(Coord{5, -2})
	require.NoError(t, err)
	opensAfterFirst := cfs.opens

	second, err := cache.GetOrLoad(Coord{5, -2})
	require.NoError(t, err)

	assert.Equal(t, opensAfterFirst, cfs.opens, "a cache hit must not touch the source")
	loads, hits := cache.Stats()
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, cache.Len())

	require.NotSame(t, first, second, "every call returns its own instance")
	assert.Equal(t, first.Spawns, second.Spawns, "instances start as equal copies")
}

func TestCache_InstancesNeverAlias(t *testing.T) {
	cache := NewCache(testRoomFS(), "rooms")

	first, err := cache.GetOrLoad(Coord{0, 0})
	require.NoError(t, err)

	// Engine-side mutation of a live room.
	first.Solids[0].X = 9999
	first.Spawns[0].X = 9999
	first.Spawns[2].Props["dest_x"] = "mutated"
	first.Spawns = first.Spawns[:1]

	second, err := cache.GetOrLoad(Coord{0, 0})
	require.NoError(t, err)

	assert.Equal(t, 0.0, second.Solids[0].X, "solids must come from the untouched template")
	assert.Equal(t, 16.0, second.Spawns[0].X, "spawns must come from the untouched template")
	require.Len(t, second.Spawns, 3)
	assert.Equal(t, "2", second.Spawns[2].Props["dest_x"], "props maps must be per-instance")
}

func TestCache_MissingRoom(t *testing.T) {
	cache := NewCache(testRoomFS(), "rooms")

	_, err := cache.GetOrLoad(Coord{9, 9})
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorContains(t, err, "Room_9_9")

	loads, _ := cache.Stats()
	assert.Equal(t, 0, loads)
	assert.Equal(t, 0, cache.Len(), "failures must not populate the cache")
}

func TestCache_ParseFailureDoesNotPoison(t *testing.T) {
	fsys := testRoomFS()
	fsys["rooms/Room_0_0.tmx"] = &fstest.MapFile{Data: []byte(brokenRoomTMX)}
	cache := NewCache(fsys, "rooms")

	_, err := cache.GetOrLoad(Coord{0, 0})
	require.ErrorIs(t, err, ErrRoomParse)
	assert.NotErrorIs(t, err, ErrRoomNotFound)

	// Content gets fixed (e.g. re-exported by the editor); the retry must
	// succeed because the failure never entered the cache.
	fsys["rooms/Room_0_0.tmx"] = &fstest.MapFile{Data: []byte(testRoomTMX)}

	inst, err := cache.GetOrLoad(Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, Coord{0, 0}, inst.Coord)

	loads, _ := cache.Stats()
	assert.Equal(t, 1, loads, "only the successful parse counts")
}

func TestCache_InvalidateForcesReparse(t *testing.T) {
	cache := NewCache(testRoomFS(), "rooms")

	_, err := cache.GetOrLoad(Coord{0, 0})
	require.NoError(t, err)

	cache.Invalidate(Coord{0, 0})
	assert.Equal(t, 0, cache.Len())

	_, err = cache.GetOrLoad(Coord{0, 0})
	require.NoError(t, err)

	loads, hits := cache.Stats()
	assert.Equal(t, 2, loads)
	assert.Equal(t, 0, hits)
}
