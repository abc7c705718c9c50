package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/systems"
	"github.com/automoto/starlock/systems/factory"
)

// WorldScene runs the game proper: the room grid, the player, and
// everything spawned from room data.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	gameOver     bool
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if ws.gameOver {
		return
	}

	ws.ecs.Update()

	// Falling out of the world ends the run.
	if systems.PlayerFellOut(ws.ecs) {
		ws.gameOver = true
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ws.sceneChanger)
	}

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(ws.sceneChanger, createMenuScene))

	// Game systems, frozen while paused, fading between rooms, or under
	// the world map
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCrumblingPlatforms))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))

	// Plates before doors, so a door reacts the same tick its plate changes
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePressurePlates))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSwitchDoors))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCheckpoints))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollectibles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLocks))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePortals))

	// Room lifecycle runs unwrapped: it drives the transition fade and
	// applies hot reloads
	e.AddSystem(systems.UpdateRoom)
	e.AddSystem(systems.UpdateHUD)
	e.AddSystem(systems.UpdateWorldMap)
	e.AddSystem(systems.UpdateDebug)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawRoom)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawWorldMap)
	e.AddRenderer(cfg.Default, systems.DrawFade)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = e
	ws.setupWorld()
}

// setupWorld builds the starting state: collision space, save state, the
// spawn room and its contents, and the player.
func (ws *WorldScene) setupWorld() {
	factory.CreateSpace(ws.ecs,
		cfg.Screen.Width, cfg.Screen.Height,
		cfg.Room.TileSize, cfg.Room.TileSize)

	svc := systems.SaveService()
	manifest := systems.RoomsManifest()

	plan := systems.ResolveSpawn(svc, manifest)
	factory.CreateSaveState(ws.ecs, svc, plan.Slot)

	inst, err := systems.RoomsCache().GetOrLoad(plan.Room)
	if err != nil {
		// Without a starting room there is nothing to run.
		log.Fatalf("Could not load starting room %s: %v", plan.Room, err)
	}

	factory.CreateRoomState(ws.ecs, manifest, systems.RoomsCache(), systems.RoomsWatcher(), plan.Room, inst)
	systems.SpawnRoomContents(ws.ecs, inst)

	x, y := systems.PlayerStart(ws.ecs, plan)
	factory.CreatePlayer(ws.ecs, x, y)

	svc.MarkExplored(plan.Slot, plan.Room)
	systems.FlushSave()
}
