package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/shared/save"
)

// The save service outlives scenes: progress made in the world scene must
// still be there when the menu scene asks HasSave, so it lives here as a
// package global rather than inside any one ECS world.
var saveService = save.NewService()

// InitSaveGame attaches the durable store and restores prior progress.
// Called once from main. Failure is non-fatal; the game runs with
// in-memory saves only.
func InitSaveGame() error {
	if cfg.Env.NoDurable {
		log.Printf("Durable saves disabled; progress is in-memory only")
		return nil
	}

	ds, err := save.OpenGdataStore(cfg.Save.AppName, cfg.Save.FileKey)
	if err != nil {
		log.Printf("Warning: Could not open save storage: %v", err)
		return err
	}
	saveService.AttachDurable(ds)

	if err := saveService.Restore(); err != nil {
		log.Printf("Warning: Could not restore save file: %v", err)
		return err
	}
	return nil
}

// SaveService returns the process-wide save service.
func SaveService() *save.Service {
	return saveService
}

// FlushSave writes current progress to the durable store. A failed write is
// logged and play continues; the in-memory state stays authoritative.
func FlushSave() {
	if err := saveService.Flush(); err != nil {
		log.Printf("Warning: Could not write save file: %v", err)
	}
}

// saveState returns the save singleton, false before the world scene set it up.
func saveState(ecs *ecs.ECS) (*components.SaveData, bool) {
	entry, ok := components.Save.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Save.Get(entry), true
}
