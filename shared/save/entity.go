// Package save implements the save-game core: stable entity identity,
// slot-based progress storage, the pending-load handshake, and the durable
// file layer. Pure data only - no ebiten or donburi imports - so entities,
// menus, and tests all consume the same API headlessly.
package save

import (
	"fmt"
	"math"

	"github.com/automoto/starlock/shared/rooms"
)

// EntityID is the derived, stable identity of a persistent world object: the
// room it was authored in plus its authored position. Engine-assigned handles
// change across room reloads; this never does. Comparable, so it keys maps
// directly. Identity comparison is bit-exact; the restore epsilon in
// Snapshot.Matches never applies here.
type EntityID struct {
	RoomX int
	RoomY int
	X     float64
	Y     float64
}

// DeriveEntityID computes the identity for an entity authored at (x, y) in
// the given room. Pure: equal inputs always produce equal IDs.
func DeriveEntityID(room rooms.Coord, x, y float64) EntityID {
	return EntityID{RoomX: room.X, RoomY: room.Y, X: x, Y: y}
}

// Room returns the room component of the identity.
func (id EntityID) Room() rooms.Coord {
	return rooms.Coord{X: id.RoomX, Y: id.RoomY}
}

func (id EntityID) String() string {
	return fmt.Sprintf("(%d,%d,%g,%g)", id.RoomX, id.RoomY, id.X, id.Y)
}

// Kind is the namespace a persistent flag lives in. Keys, locks, and stars
// share one generic flag set, partitioned by Kind.
type Kind int

const (
	KindKey Kind = iota
	KindLock
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindLock:
		return "lock"
	case KindStar:
		return "star"
	}
	return "unknown"
}

// KindFromString is the inverse of String, for decoding durable files.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "key":
		return KindKey, true
	case "lock":
		return KindLock, true
	case "star":
		return KindStar, true
	}
	return 0, false
}

// Snapshot records one checkpoint activation: the room and position the
// player respawns at.
type Snapshot struct {
	Room rooms.Coord
	X    float64
	Y    float64
}

// Matches reports whether an entity at (x, y) in room is the one this
// snapshot refers to. The room must match exactly; the position matches
// within epsilon Euclidean distance, absorbing float drift between authoring
// and runtime placement. Position units are pixels.
func (s Snapshot) Matches(room rooms.Coord, x, y, epsilon float64) bool {
	if s.Room != room {
		return false
	}
	dx := s.X - x
	dy := s.Y - y
	return math.Hypot(dx, dy) <= epsilon
}
