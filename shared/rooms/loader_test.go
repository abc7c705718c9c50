package rooms

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 4x3 room in the authored format: solid floor row, a spawn point, a key,
// a portal with destination properties, and one unknown object kind that the
// loader must skip.
const testRoomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="9">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="4" columns="4">
  <image source="tiles.png" width="64" height="16"/>
 </tileset>
 <layer id="1" name="solid" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="entities">
  <object id="1" name="start" type="spawn" x="16" y="8" width="16" height="24"/>
  <object id="2" name="" type="key" x="32" y="16" width="12" height="12"/>
  <object id="3" name="exit" type="portal" x="48" y="16" width="16" height="16">
   <properties>
    <property name="dest_x" type="int" value="2"/>
    <property name="dest_y" type="int" value="0"/>
   </properties>
  </object>
  <object id="4" name="weird" type="gizmo" x="8" y="8" width="8" height="8"/>
 </objectgroup>
</map>
`

const brokenRoomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="3"
`

func testRoomFS() fstest.MapFS {
	return fstest.MapFS{
		"rooms/Room_0_0.tmx":  {Data: []byte(testRoomTMX)},
		"rooms/Room_5_-2.tmx": {Data: []byte(testRoomTMX)},
	}
}

func TestParseRoom_SolidsAndSpawns(t *testing.T) {
	def, err := ParseRoom(testRoomFS(), "rooms/Room_0_0.tmx", Coord{0, 0})
	require.NoError(t, err)

	assert.Equal(t, Coord{0, 0}, def.Coord)
	assert.Equal(t, 64, def.PixelW)
	assert.Equal(t, 48, def.PixelH)
	assert.Equal(t, 16, def.TileW)

	require.Len(t, def.Solids, 4, "the floor row is solid")
	assert.Equal(t, SolidRect{X: 0, Y: 32, W: 16, H: 16}, def.Solids[0])
	assert.Equal(t, SolidRect{X: 48, Y: 32, W: 16, H: 16}, def.Solids[3])

	require.Len(t, def.Spawns, 3, "the unknown kind is skipped")
	assert.Equal(t, KindSpawn, def.Spawns[0].Kind)
	assert.Equal(t, "start", def.Spawns[0].Name)
	assert.Equal(t, 16.0, def.Spawns[0].X)
	assert.Equal(t, 8.0, def.Spawns[0].Y)

	assert.Equal(t, KindKey, def.Spawns[1].Kind)
	assert.Equal(t, 12.0, def.Spawns[1].W)

	portal := def.Spawns[2]
	assert.Equal(t, KindPortal, portal.Kind)
	assert.Equal(t, 2.0, portal.Props.Float("dest_x", -1))
	assert.Equal(t, 0.0, portal.Props.Float("dest_y", -1))
}

func TestParseRoom_MissingFile(t *testing.T) {
	_, err := ParseRoom(testRoomFS(), "rooms/Room_9_9.tmx", Coord{9, 9})
	assert.Error(t, err)
}

func TestParseRoom_CorruptContent(t *testing.T) {
	fsys := fstest.MapFS{"rooms/Room_0_0.tmx": {Data: []byte(brokenRoomTMX)}}
	_, err := ParseRoom(fsys, "rooms/Room_0_0.tmx", Coord{0, 0})
	assert.Error(t, err)
}

func TestProps_TypedAccessors(t *testing.T) {
	p := Props{"dx": "32.5", "target": "door_a", "bad": "x2"}

	assert.Equal(t, 32.5, p.Float("dx", 0))
	assert.Equal(t, 7.0, p.Float("missing", 7))
	assert.Equal(t, 7.0, p.Float("bad", 7), "unparseable values fall back to the default")
	assert.Equal(t, "door_a", p.String("target", ""))
	assert.Equal(t, "none", p.String("missing", "none"))

	var nilProps Props
	assert.Equal(t, 1.0, nilProps.Float("dx", 1))
	assert.Nil(t, nilProps.clone())
}
