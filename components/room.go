package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/shared/rooms"
)

// RoomData is the world-scene singleton: which room is live, the shared
// cache/manifest handles, and the transition state machine. The machine is
// either stable (Transitioning false, Current/Instance valid) or mid
// transition (From/To/Dir/SpawnX/SpawnY valid); nothing else carries across
// a transition, so an aborted one simply stays stable at From.
type RoomData struct {
	Manifest *rooms.Manifest
	Cache    *rooms.Cache
	Detector rooms.BoundaryDetector
	Watcher  *rooms.Watcher // dev hot-reload, nil in normal play

	Current  rooms.Coord
	Instance *rooms.Instance

	Transitioning bool
	From          rooms.Coord
	To            rooms.Coord
	Dir           rooms.Direction
	Next          *rooms.Instance // destination, loaded before the fade starts
	ViaPortal     bool
	SpawnX        float64 // player position inside the destination room
	SpawnY        float64

	// Set when the player falls out of a bottom edge with no room below.
	FellOut bool

	// Set after a portal arrival until the player steps off the pad, so the
	// destination portal does not fire straight back.
	PortalCooldown bool

	// Fade presentation over the swap
	FadePhase cfg.StateID
	Fade      *gween.Tween
	FadeAlpha float64
}

var Room = donburi.NewComponentType[RoomData]()
