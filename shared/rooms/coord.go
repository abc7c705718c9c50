// Package rooms implements the room-grid core: grid coordinates, boundary
// transitions, the TMX room loader, the template cache, and the world
// manifest. Pure data only - no ebiten or donburi imports - so it can be
// used headlessly (tests, tools) the same way the game uses it.
package rooms

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord identifies one room cell in the world grid.
type Coord struct {
	X int
	Y int
}

// ID returns the canonical room identifier, e.g. (2,-1) -> "Room_2_-1".
// The format is a compatibility contract with the authored room files.
func (c Coord) ID() string {
	return fmt.Sprintf("Room_%d_%d", c.X, c.Y)
}

// Filename returns the room's TMX file name, e.g. "Room_2_-1.tmx".
func (c Coord) Filename() string {
	return c.ID() + ".tmx"
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ParseFilename recovers a coordinate from a room file name. Returns false
// for anything that does not match the Room_{x}_{y}.tmx convention.
func ParseFilename(name string) (Coord, bool) {
	stem, ok := strings.CutSuffix(name, ".tmx")
	if !ok {
		return Coord{}, false
	}
	rest, ok := strings.CutPrefix(stem, "Room_")
	if !ok {
		return Coord{}, false
	}
	// Split on the last underscore so negative x values keep their sign.
	i := strings.LastIndex(rest, "_")
	if i <= 0 || i == len(rest)-1 {
		return Coord{}, false
	}
	x, err := strconv.Atoi(rest[:i])
	if err != nil {
		return Coord{}, false
	}
	y, err := strconv.Atoi(rest[i+1:])
	if err != nil {
		return Coord{}, false
	}
	return Coord{X: x, Y: y}, true
}

// Direction is a cardinal boundary-crossing direction in screen space
// (Y grows downward, so North decreases Y).
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Offset returns the grid delta for one step in this direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Resolve computes the neighboring coordinate one step in the given
// direction. It always produces a candidate; whether a room exists there is
// decided by the cache load, not here.
func Resolve(c Coord, d Direction) Coord {
	dx, dy := d.Offset()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// SpawnSideFor returns the side of the destination room the player enters
// when leaving the old room in the given direction: exit south, enter from
// the north edge.
func SpawnSideFor(crossing Direction) Direction {
	return crossing.Opposite()
}
