package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_CardinalOffsets(t *testing.T) {
	tests := []struct {
		name string
		from Coord
		dir  Direction
		want Coord
	}{
		{"north decrements y", Coord{0, 0}, North, Coord{0, -1}},
		{"south increments y", Coord{0, 0}, South, Coord{0, 1}},
		{"east increments x", Coord{3, 4}, East, Coord{4, 4}},
		{"west decrements x", Coord{3, 4}, West, Coord{2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.from, tt.dir))
		})
	}
}

func TestResolve_OppositeRoundTrips(t *testing.T) {
	coords := []Coord{{0, 0}, {3, 4}, {-2, 7}, {-5, -5}}
	dirs := []Direction{North, South, East, West}

	for _, c := range coords {
		for _, d := range dirs {
			assert.Equal(t, c, Resolve(Resolve(c, d), d.Opposite()),
				"stepping %s then %s from %s must return home", d, d.Opposite(), c)
		}
	}
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
}

func TestSpawnSideFor_IsOppositeEdge(t *testing.T) {
	// Leaving through the south edge puts the player on the new room's
	// north edge, and so on around the compass.
	assert.Equal(t, North, SpawnSideFor(South))
	assert.Equal(t, South, SpawnSideFor(North))
	assert.Equal(t, West, SpawnSideFor(East))
	assert.Equal(t, East, SpawnSideFor(West))
}

func TestCoord_ID(t *testing.T) {
	assert.Equal(t, "Room_2_-1", Coord{2, -1}.ID())
	assert.Equal(t, "Room_0_0", Coord{0, 0}.ID())
	assert.Equal(t, "Room_-10_3", Coord{-10, 3}.ID())
	assert.Equal(t, "Room_2_-1.tmx", Coord{2, -1}.Filename())
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name string
		want Coord
		ok   bool
	}{
		{"Room_2_-1.tmx", Coord{2, -1}, true},
		{"Room_0_0.tmx", Coord{0, 0}, true},
		{"Room_-10_3.tmx", Coord{-10, 3}, true},
		{"Room_2_-1.png", Coord{}, false},
		{"Level_2_1.tmx", Coord{}, false},
		{"Room_2.tmx", Coord{}, false},
		{"Room_a_b.tmx", Coord{}, false},
		{"Room__.tmx", Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseFilename(tt.name)
		assert.Equal(t, tt.ok, ok, "parse %q", tt.name)
		if tt.ok {
			assert.Equal(t, tt.want, got, "parse %q", tt.name)
		}
	}
}

func TestParseFilename_RoundTripsID(t *testing.T) {
	for _, c := range []Coord{{0, 0}, {2, -1}, {-3, -4}, {17, 9}} {
		got, ok := ParseFilename(c.Filename())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
}
