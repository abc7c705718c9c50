package rooms

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifestYAML = `title: Test World
initial_room: [0, 1]
initial_spawn: [64.0, 64.0]
star_total: 2
rooms:
  - [0, 0]
  - [0, 1]
  - [1, 1]
  - [-1, 1]
`

func testManifestFS() fstest.MapFS {
	return fstest.MapFS{"rooms/world.yaml": {Data: []byte(testManifestYAML)}}
}

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(testManifestFS(), "rooms/world.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Test World", m.Title)
	assert.Equal(t, Coord{0, 1}, m.InitialRoom)
	assert.Equal(t, [2]float64{64, 64}, m.InitialSpawn)
	assert.Equal(t, 2, m.StarTotal)
	assert.Len(t, m.Rooms, 4)

	assert.True(t, m.HasRoom(Coord{0, 0}))
	assert.True(t, m.HasRoom(Coord{-1, 1}))
	assert.False(t, m.HasRoom(Coord{5, 5}))
}

func TestLoadManifest_Bounds(t *testing.T) {
	m, err := LoadManifest(testManifestFS(), "rooms/world.yaml")
	require.NoError(t, err)

	minX, minY, maxX, maxY := m.Bounds()
	assert.Equal(t, -1, minX)
	assert.Equal(t, 0, minY)
	assert.Equal(t, 1, maxX)
	assert.Equal(t, 1, maxY)
}

func TestLoadManifest_Rejections(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"initial room missing from list", "initial_room: [9, 9]\ninitial_spawn: [0, 0]\nrooms:\n  - [0, 0]\n"},
		{"malformed initial room", "initial_room: [1]\ninitial_spawn: [0, 0]\nrooms:\n  - [0, 0]\n"},
		{"malformed room entry", "initial_room: [0, 0]\ninitial_spawn: [0, 0]\nrooms:\n  - [0, 0, 0]\n"},
		{"duplicate room entry", "initial_room: [0, 0]\ninitial_spawn: [0, 0]\nrooms:\n  - [0, 0]\n  - [0, 0]\n"},
		{"not yaml at all", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"world.yaml": {Data: []byte(tt.yaml)}}
			_, err := LoadManifest(fsys, "world.yaml")
			assert.Error(t, err)
		})
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(fstest.MapFS{}, "world.yaml")
	assert.Error(t, err)
}

func TestManifest_Validate(t *testing.T) {
	fsys := testManifestFS()
	fsys["rooms/Room_0_0.tmx"] = &fstest.MapFile{Data: []byte(testRoomTMX)}
	fsys["rooms/Room_0_1.tmx"] = &fstest.MapFile{Data: []byte(testRoomTMX)}
	fsys["rooms/Room_1_1.tmx"] = &fstest.MapFile{Data: []byte(testRoomTMX)}
	fsys["rooms/Room_-1_1.tmx"] = &fstest.MapFile{Data: []byte(testRoomTMX)}

	m, err := LoadManifest(fsys, "rooms/world.yaml")
	require.NoError(t, err)

	assert.NoError(t, m.Validate(fsys, "rooms"))
}

func TestManifest_ValidateReportsAllProblems(t *testing.T) {
	// Two entities sharing an exact position would collapse to one
	// persistent identity; that and an unloadable room must both surface.
	collidingTMX := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="entities">
  <object id="1" name="a" type="key" x="32" y="16" width="12" height="12"/>
  <object id="2" name="b" type="star" x="32" y="16" width="12" height="12"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{
		"rooms/world.yaml": {Data: []byte(
			"initial_room: [0, 0]\ninitial_spawn: [0, 0]\nrooms:\n  - [0, 0]\n  - [7, 7]\n")},
		"rooms/Room_0_0.tmx": {Data: []byte(collidingTMX)},
	}

	m, err := LoadManifest(fsys, "rooms/world.yaml")
	require.NoError(t, err)

	err = m.Validate(fsys, "rooms")
	require.Error(t, err)
	assert.ErrorContains(t, err, "share position")
	assert.ErrorContains(t, err, "Room_7_7", "the unloadable room is reported too")
}

func TestManifest_ValidateAllowsSpawnOverlap(t *testing.T) {
	// Player spawn markers are not persistent entities; one may sit on top
	// of a checkpoint.
	overlapTMX := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="entities">
  <object id="1" name="start" type="spawn" x="32" y="16" width="16" height="24"/>
  <object id="2" name="cp" type="checkpoint" x="32" y="16" width="16" height="24"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{
		"rooms/world.yaml":   {Data: []byte("initial_room: [0, 0]\ninitial_spawn: [0, 0]\nrooms:\n  - [0, 0]\n")},
		"rooms/Room_0_0.tmx": {Data: []byte(overlapTMX)},
	}

	m, err := LoadManifest(fsys, "rooms/world.yaml")
	require.NoError(t, err)
	assert.NoError(t, m.Validate(fsys, "rooms"))
}
