package systems

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/assets"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/shared/rooms"
	"github.com/automoto/starlock/shared/save"
	"github.com/automoto/starlock/systems/factory"
	"github.com/automoto/starlock/tags"
)

// Landing position of last resort inside a room with no spawn marker.
const (
	defaultSpawnX = 64
	defaultSpawnY = 64
)

// Room content handles shared by every world scene instance. Loaded once in
// main; scenes get fresh ECS worlds but the same cache, so a room template
// parses once per process no matter how many sessions touch it.
var (
	roomManifest *rooms.Manifest
	roomCache    *rooms.Cache
	roomWatcher  *rooms.Watcher
)

// InitRooms loads the world manifest and prepares the room cache. With
// STARLOCK_ROOM_DIR set, rooms come from that directory instead of the
// embedded copies and hot-reload on change. Called once from main.
func InitRooms() error {
	m, err := rooms.LoadManifest(assets.GameFS, assets.WorldManifest)
	if err != nil {
		return fmt.Errorf("load world manifest: %w", err)
	}
	roomManifest = m

	var fsys fs.FS = assets.GameFS
	dir := assets.RoomsDir
	if cfg.Env.RoomDir != "" {
		fsys = os.DirFS(cfg.Env.RoomDir)
		dir = "."
		w, err := rooms.WatchRooms(cfg.Env.RoomDir)
		if err != nil {
			log.Printf("Warning: room hot-reload unavailable: %v", err)
		} else {
			roomWatcher = w
			log.Printf("Loading rooms from %s with hot-reload", cfg.Env.RoomDir)
		}
	}
	roomCache = rooms.NewCache(fsys, dir)

	if cfg.Env.Debug {
		if err := m.Validate(fsys, dir); err != nil {
			return fmt.Errorf("validate world content: %w", err)
		}
	}
	return nil
}

// RoomsManifest returns the world manifest. Valid after InitRooms.
func RoomsManifest() *rooms.Manifest { return roomManifest }

// RoomsCache returns the shared room cache. Valid after InitRooms.
func RoomsCache() *rooms.Cache { return roomCache }

// RoomsWatcher returns the dev hot-reload watcher, nil in normal play.
func RoomsWatcher() *rooms.Watcher { return roomWatcher }

// roomState returns the room singleton, false before the world scene set it
// up.
func roomState(ecs *ecs.ECS) (*components.RoomData, bool) {
	entry, ok := components.Room.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Room.Get(entry), true
}

// PlayerFellOut reports whether the player dropped out of a bottom edge with
// no room below. The scene switches to game over on it.
func PlayerFellOut(ecs *ecs.ECS) bool {
	room, ok := roomState(ecs)
	return ok && room.FellOut
}

// UpdateRoom drives the room lifecycle: dev hot-reloads, the fade transition
// machine, and boundary crossing detection.
func UpdateRoom(ecs *ecs.ECS) {
	room, ok := roomState(ecs)
	if !ok {
		return
	}
	if pause := GetOrCreatePause(ecs); pause.IsPaused {
		return
	}

	drainRoomReloads(ecs, room)

	if room.Transitioning {
		advanceTransition(ecs, room)
		return
	}

	detectBoundaryCrossing(ecs, room)
}

// drainRoomReloads applies pending watcher events. Edits to the live room
// re-instantiate it in place; edits elsewhere just invalidate the template.
func drainRoomReloads(ecs *ecs.ECS, room *components.RoomData) {
	if room.Watcher == nil {
		return
	}
	for {
		select {
		case c := <-room.Watcher.Events():
			room.Cache.Invalidate(c)
			log.Printf("Room %s changed on disk", c)
			if c == room.Current && !room.Transitioning {
				reloadCurrentRoom(ecs, room)
			}
		case err := <-room.Watcher.Errors():
			log.Printf("Warning: room watcher: %v", err)
		default:
			return
		}
	}
}

// reloadCurrentRoom swaps the live room for its freshly parsed template. The
// player keeps position and velocity; persisted pickups stay gone.
func reloadCurrentRoom(ecs *ecs.ECS, room *components.RoomData) {
	inst, err := room.Cache.GetOrLoad(room.Current)
	if err != nil {
		log.Printf("Warning: could not reload room %s: %v", room.Current, err)
		return
	}
	despawnRoomEntities(ecs)
	room.Instance = inst
	SpawnRoomContents(ecs, inst)
}

// advanceTransition steps the fade. The swap happens at the dark midpoint so
// the player never sees entities pop.
func advanceTransition(ecs *ecs.ECS, room *components.RoomData) {
	v, done := room.Fade.Update(float32(dt))
	room.FadeAlpha = float64(v)
	if !done {
		return
	}

	switch room.FadePhase {
	case cfg.TransitionFadeOut:
		performRoomSwap(ecs, room)
		room.FadePhase = cfg.TransitionFadeIn
		room.Fade = gween.New(1, 0, float32(cfg.Transition.FadeSeconds), ease.Linear)
	case cfg.TransitionFadeIn:
		room.Transitioning = false
		room.FadePhase = cfg.TransitionNone
		room.Fade = nil
		room.FadeAlpha = 0
	}
}

// detectBoundaryCrossing fires a transition when the player pushes through a
// room edge toward a manifest room. An edge with nothing behind it clamps,
// except the bottom: falling out of the world is fatal.
func detectBoundaryCrossing(ecs *ecs.ECS, room *components.RoomData) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	dir, crossed := room.Detector.Detect(obj.X, obj.Y, physics.SpeedX, physics.SpeedY)
	if !crossed {
		return
	}

	dest := rooms.Resolve(room.Current, dir)
	if !room.Manifest.HasRoom(dest) {
		handleFailedCrossing(room, obj, physics, dir, rooms.ErrRoomNotFound)
		return
	}

	inst, err := room.Cache.GetOrLoad(dest)
	if err != nil {
		log.Printf("Warning: room %s unreachable: %v", dest, err)
		handleFailedCrossing(room, obj, physics, dir, err)
		return
	}

	beginTransition(room, dest, dir, inst)
}

func beginTransition(room *components.RoomData, dest rooms.Coord, dir rooms.Direction, inst *rooms.Instance) {
	room.Transitioning = true
	room.From = room.Current
	room.To = dest
	room.Dir = dir
	room.Next = inst
	room.ViaPortal = false
	room.FadePhase = cfg.TransitionFadeOut
	room.Fade = gween.New(0, 1, float32(cfg.Transition.FadeSeconds), ease.Linear)
	room.FadeAlpha = 0
}

// beginPortalTransition is the portal variant: the landing position is fixed
// now, from the destination room's own portal or spawn marker.
func beginPortalTransition(ecs *ecs.ECS, room *components.RoomData, portal *components.PortalData) {
	if !room.Manifest.HasRoom(portal.Dest) {
		log.Printf("Warning: portal leads to %s, which is not in the world", portal.Dest)
		return
	}
	inst, err := room.Cache.GetOrLoad(portal.Dest)
	if err != nil {
		log.Printf("Warning: portal destination %s unreachable: %v", portal.Dest, err)
		return
	}

	beginTransition(room, portal.Dest, 0, inst)
	room.ViaPortal = true
	room.SpawnX, room.SpawnY = portalLanding(inst)
}

// handleFailedCrossing keeps the player inside the room, or marks the run
// over when they fell out the bottom of the world.
func handleFailedCrossing(room *components.RoomData, obj *components.ObjectData, physics *components.PhysicsData, dir rooms.Direction, err error) {
	if dir == rooms.South && errors.Is(err, rooms.ErrRoomNotFound) {
		room.FellOut = true
		return
	}

	switch dir {
	case rooms.East:
		obj.X = room.Detector.RoomW - obj.W
		if physics.SpeedX > 0 {
			physics.SpeedX = 0
		}
	case rooms.West:
		obj.X = 0
		if physics.SpeedX < 0 {
			physics.SpeedX = 0
		}
	case rooms.South:
		obj.Y = room.Detector.RoomH - obj.H
		if physics.SpeedY > 0 {
			physics.SpeedY = 0
		}
	case rooms.North:
		obj.Y = 0
		if physics.SpeedY < 0 {
			physics.SpeedY = 0
		}
	}
	obj.Update()
}

// performRoomSwap tears down the old room and brings up the new one. Runs at
// the fade's dark midpoint.
func performRoomSwap(ecs *ecs.ECS, room *components.RoomData) {
	sv, ok := saveState(ecs)
	if !ok {
		return
	}

	despawnRoomEntities(ecs)

	from := room.Current
	room.Current = room.To
	room.Instance = room.Next
	room.Next = nil

	SpawnRoomContents(ecs, room.Instance)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		if room.ViaPortal {
			obj.X, obj.Y = room.SpawnX, room.SpawnY
			physics.SpeedX, physics.SpeedY = 0, 0
			room.PortalCooldown = true
		} else {
			// Continuous motion: same velocity, position wrapped across the edge.
			obj.X, obj.Y = room.Detector.WrapPosition(room.Dir, obj.X, obj.Y)
		}
		physics.OnGround = nil
		obj.Update()
	}
	room.ViaPortal = false

	sv.Service.MarkExplored(sv.Slot, room.Current)
	FlushSave()
	log.Printf("Room %s -> %s", from, room.Current)
}

// SpawnRoomContents creates the walls and entities of a room instance,
// skipping everything this slot already collected or unlocked.
func SpawnRoomContents(ecs *ecs.ECS, inst *rooms.Instance) {
	sv, ok := saveState(ecs)
	if !ok {
		return
	}

	for _, s := range inst.Solids {
		factory.CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}

	snapshot, hasSnapshot := sv.Service.LoadCheckpoint(sv.Slot)

	for _, s := range inst.Spawns {
		switch s.Kind {
		case rooms.KindSpawn:
			// Marker only; consumed by spawn resolution.
		case rooms.KindCheckpoint:
			activated := hasSnapshot && snapshot.Matches(inst.Coord, s.X, s.Y, cfg.Save.RestoreEpsilon)
			factory.CreateCheckpoint(ecs, inst.Coord, s, activated)
		case rooms.KindKey:
			if !sv.Service.IsKeyCollected(sv.Slot, save.DeriveEntityID(inst.Coord, s.X, s.Y)) {
				factory.CreateCollectible(ecs, inst.Coord, save.KindKey, s)
			}
		case rooms.KindStar:
			if !sv.Service.IsStarCollected(sv.Slot, save.DeriveEntityID(inst.Coord, s.X, s.Y)) {
				factory.CreateCollectible(ecs, inst.Coord, save.KindStar, s)
			}
		case rooms.KindLock:
			if !sv.Service.IsLockUnlocked(sv.Slot, save.DeriveEntityID(inst.Coord, s.X, s.Y)) {
				factory.CreateLock(ecs, inst.Coord, s)
			}
		case rooms.KindPortal:
			factory.CreatePortal(ecs, s)
		case rooms.KindSwitchDoor:
			factory.CreateSwitchDoor(ecs, s)
		case rooms.KindPressurePlate:
			factory.CreatePressurePlate(ecs, s)
		case rooms.KindMovingPlatform:
			factory.CreateMovingPlatform(ecs, s)
		case rooms.KindCrumblingPlatform:
			factory.CreateCrumblingPlatform(ecs, s)
		}
	}
}

// portalLanding picks where a teleport drops the player: on the destination
// room's portal pad when it has one, else its spawn marker.
func portalLanding(inst *rooms.Instance) (float64, float64) {
	for _, s := range inst.Spawns {
		if s.Kind == rooms.KindPortal {
			return s.X, s.Y
		}
	}
	return roomDefaultSpawn(inst)
}

func roomDefaultSpawn(inst *rooms.Instance) (float64, float64) {
	for _, s := range inst.Spawns {
		if s.Kind == rooms.KindSpawn {
			return s.X, s.Y
		}
	}
	return defaultSpawnX, defaultSpawnY
}
