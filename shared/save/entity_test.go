package save

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/starlock/shared/rooms"
)

func TestDeriveEntityID_Deterministic(t *testing.T) {
	room := rooms.Coord{X: 2, Y: -1}

	a := DeriveEntityID(room, 20.0, 5.0)
	b := DeriveEntityID(room, 20.0, 5.0)

	assert.Equal(t, a, b, "equal inputs must derive equal IDs")

	// Comparable: usable directly as a map key across re-derivations.
	seen := map[EntityID]bool{a: true}
	assert.True(t, seen[b])
}

func TestDeriveEntityID_DistinguishesInputs(t *testing.T) {
	room := rooms.Coord{X: 0, Y: 0}

	base := DeriveEntityID(room, 10.0, 10.0)

	assert.NotEqual(t, base, DeriveEntityID(room, 10.5, 10.0), "position is identity-exact")
	assert.NotEqual(t, base, DeriveEntityID(rooms.Coord{X: 0, Y: 1}, 10.0, 10.0))
	assert.Equal(t, room, base.Room())
}

func TestSnapshot_MatchesWithinEpsilon(t *testing.T) {
	snap := Snapshot{Room: rooms.Coord{X: 2, Y: 3}, X: 100.0, Y: 50.0}
	const epsilon = 1.0

	assert.True(t, snap.Matches(rooms.Coord{X: 2, Y: 3}, 100.0, 50.0, epsilon), "exact position matches")
	assert.True(t, snap.Matches(rooms.Coord{X: 2, Y: 3}, 100.9, 50.0, epsilon), "distance 0.9 is within epsilon")
	assert.False(t, snap.Matches(rooms.Coord{X: 2, Y: 3}, 101.1, 50.0, epsilon), "distance 1.1 is out")
	assert.False(t, snap.Matches(rooms.Coord{X: 2, Y: 4}, 100.0, 50.0, epsilon), "room must match exactly")
}

func TestSnapshot_MatchesUsesEuclideanDistance(t *testing.T) {
	snap := Snapshot{Room: rooms.Coord{X: 0, Y: 0}, X: 0, Y: 0}

	// 0.8 on each axis is ~1.13 apart, over a 1.0 epsilon even though both
	// axes individually are within it.
	assert.False(t, snap.Matches(rooms.Coord{X: 0, Y: 0}, 0.8, 0.8, 1.0))
	assert.True(t, snap.Matches(rooms.Coord{X: 0, Y: 0}, 0.7, 0.7, 1.0))
}

func TestKind_StringRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindKey, KindLock, KindStar} {
		parsed, ok := KindFromString(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, parsed)
	}

	_, ok := KindFromString("banana")
	assert.False(t, ok)
}
